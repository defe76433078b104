package lite

import (
	"context"

	"github.com/ib-77/rtype/pkg/rt"
)

// FromSlice emits Ok(v) for every value, stopping early when ctx is done.
func FromSlice[T, E any](ctx context.Context, values []T) <-chan rt.Result[T, E] {
	in := make(chan rt.Result[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- rt.Ok[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromResults emits the given results as they are.
func FromResults[T, E any](ctx context.Context, results ...rt.Result[T, E]) <-chan rt.Result[T, E] {
	in := make(chan rt.Result[T, E])

	go func() {
		defer close(in)

		for _, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToSlice drains out until it closes or ctx is done.
func ToSlice[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
