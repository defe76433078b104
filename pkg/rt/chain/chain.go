package chain

import (
	"context"

	"github.com/ib-77/rtype/pkg/rt"
	"github.com/ib-77/rtype/pkg/rt/solo"
)

// Chain wraps an rt.Result with a context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rt.Result[T, error]
}

// Start creates a new chain from an rt.Result
func Start[T any](ctx context.Context, result rt.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, rt.Ok[T, error](value))
}

// FromPair creates a new chain from a (value, error) pair
func FromPair[T any](ctx context.Context, value T, err error) Chain[T] {
	return Start(ctx, rt.Of(value, err))
}

// Result returns the underlying rt.Result
func (c Chain[T]) Result() rt.Result[T, error] {
	return c.result
}

// Unpack returns the chain's value and error
func (c Chain[T]) Unpack() (T, error) {
	return rt.Unpack(c.result)
}

// halted reports whether the next step must be skipped, converting a done
// context into a failure on the way.
func (c Chain[T]) halted() (Chain[T], bool) {
	if c.result.IsErr() {
		return c, true
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[T]{ctx: c.ctx, result: rt.Err[T](err)}, true
	}
	return c, false
}

// Then composes functions that already return rt.Result[T, error]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rt.Result[T, error]) Chain[T] {
	return Switch(c, onSuccess)
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return TryTo(c, try)
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return MapTo(c, onSuccess)
}

// Recover replaces a failure with the result of onFailure. A done context is
// not recovered.
func (c Chain[T]) Recover(onFailure func(ctx context.Context, err error) rt.Result[T, error]) Chain[T] {
	rt.MustFunc("Recover", onFailure)

	if c.result.IsOk() || c.ctx.Err() != nil {
		return c
	}
	return Chain[T]{ctx: c.ctx, result: c.result.OrElse(func(err error) rt.Result[T, error] {
		return onFailure(c.ctx, err)
	})}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T)) Chain[T] {
	rt.MustFunc("Ensure", onSuccess)

	if v, ok := c.result.Get(); ok {
		onSuccess(c.ctx, v)
	}
	return c
}

// EnsureFailure performs a side effect on failure without changing the result
func (c Chain[T]) EnsureFailure(onFailure func(context.Context, error)) Chain[T] {
	rt.MustFunc("EnsureFailure", onFailure)

	if err, isErr := c.result.GetErr(); isErr {
		onFailure(c.ctx, err)
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	return Finally(c, onSuccess, onFailure)
}

// Switch chains a function that returns rt.Result[U, error]
func Switch[T, U any](c Chain[T], onSuccess func(context.Context, T) rt.Result[U, error]) Chain[U] {
	rt.MustFunc("Switch", onSuccess)

	if h, stop := c.halted(); stop {
		return Chain[U]{ctx: c.ctx, result: rt.Err[U](h.result.MustGetErr())}
	}
	return Chain[U]{
		ctx: c.ctx,
		result: solo.FlatMap(c.result, func(t T) rt.Result[U, error] {
			return onSuccess(c.ctx, t)
		}),
	}
}

// TryTo chains a function that returns (U, error)
func TryTo[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	rt.MustFunc("TryTo", tryOnSuccess)

	if h, stop := c.halted(); stop {
		return Chain[U]{ctx: c.ctx, result: rt.Err[U](h.result.MustGetErr())}
	}
	return Chain[U]{
		ctx: c.ctx,
		result: solo.Try(c.result, func(t T) (U, error) {
			return tryOnSuccess(c.ctx, t)
		}),
	}
}

// MapTo chains a pure transformation function
func MapTo[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	rt.MustFunc("MapTo", onSuccess)

	if h, stop := c.halted(); stop {
		return Chain[U]{ctx: c.ctx, result: rt.Err[U](h.result.MustGetErr())}
	}
	return Chain[U]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(t T) U {
			return onSuccess(c.ctx, t)
		}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	rt.MustFunc("Finally", onSuccess)
	rt.MustFunc("Finally", onFailure)

	return solo.Match(c.result,
		func(t T) U { return onSuccess(c.ctx, t) },
		func(err error) U { return onFailure(c.ctx, err) })
}
