package lite

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/rtype/pkg/rt"
	"github.com/ib-77/rtype/pkg/rt/solo"
)

// Run starts lines workers that apply step to every Ok item of inputCh. Err
// items are forwarded with their payload. The returned channel closes once
// inputCh is drained or ctx is done. With lines <= 0 the count comes from
// LinesFrom(ctx, 1).
func Run[T, U, E any](ctx context.Context, inputCh <-chan rt.Result[T, E],
	step func(ctx context.Context, in T) rt.Result[U, E],
	lines int) <-chan rt.Result[U, E] {
	rt.MustFunc("Run", step)

	if lines <= 0 {
		lines = LinesFrom(ctx, 1)
	}

	out := make(chan rt.Result[U, E])
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < lines; i++ {
		g.Go(func() error {
			return locomotive(gctx, inputCh, out, step)
		})
	}

	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out
}

func locomotive[T, U, E any](ctx context.Context, inputCh <-chan rt.Result[T, E], outCh chan<- rt.Result[U, E],
	step func(ctx context.Context, in T) rt.Result[U, E]) error {

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputCh:
			if !ok {
				return nil
			}

			pr := solo.FlatMap(in, func(t T) rt.Result[U, E] {
				return step(ctx, t)
			})

			select {
			case <-ctx.Done():
				return ctx.Err()
			case outCh <- pr:
			}
		}
	}
}

func Map[T, U, E any](mapOnSuccess func(ctx context.Context, in T) U) func(ctx context.Context,
	in T) rt.Result[U, E] {
	rt.MustFunc("Map", mapOnSuccess)
	return func(ctx context.Context, in T) rt.Result[U, E] {
		return rt.Ok[U, E](mapOnSuccess(ctx, in))
	}
}

func Try[T, U any](onTryExecute func(ctx context.Context, in T) (U, error)) func(ctx context.Context,
	in T) rt.Result[U, error] {
	rt.MustFunc("Try", onTryExecute)
	return func(ctx context.Context, in T) rt.Result[U, error] {
		out, err := onTryExecute(ctx, in)
		return rt.Of(out, err)
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) func(ctx context.Context,
	in T) rt.Result[T, error] {
	rt.MustFunc("Validate", validate)
	return func(ctx context.Context, in T) rt.Result[T, error] {
		if valid, errMsg := validate(ctx, in); !valid {
			return rt.Err[T](errors.New(errMsg))
		}
		return rt.Ok[T, error](in)
	}
}

// Finally reduces every Result of input with the matching handler.
func Finally[T, E, R any](ctx context.Context, input <-chan rt.Result[T, E],
	onSuccess func(ctx context.Context, in T) R,
	onError func(ctx context.Context, err E) R) <-chan R {
	rt.MustFunc("Finally", onSuccess)
	rt.MustFunc("Finally", onError)

	out := make(chan R)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				v := solo.Match(in,
					func(t T) R { return onSuccess(ctx, t) },
					func(e E) R { return onError(ctx, e) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
