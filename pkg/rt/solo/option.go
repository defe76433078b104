package solo

import "github.com/ib-77/rtype/pkg/rt"

func MapOption[T, U any](input rt.Option[T], onSome func(T) U) rt.Option[U] {
	rt.MustFunc("MapOption", onSome)

	if v, ok := input.Get(); ok {
		return rt.Some(onSome(v))
	}
	return rt.None[U]()
}

func FlatMapOption[T, U any](input rt.Option[T], onSome func(T) rt.Option[U]) rt.Option[U] {
	rt.MustFunc("FlatMapOption", onSome)

	if v, ok := input.Get(); ok {
		return onSome(v)
	}
	return rt.None[U]()
}

func MatchOption[T, R any](input rt.Option[T], onSome func(T) R, onNone func() R) R {
	rt.MustFunc("MatchOption", onSome)
	rt.MustFunc("MatchOption", onNone)

	if v, ok := input.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// ToOption keeps the Ok value and discards any error payload.
func ToOption[T, E any](input rt.Result[T, E]) rt.Option[T] {
	return input.OkValue()
}

// OkOr turns Some(v) into Ok(v) and None into Err(err).
func OkOr[T, E any](input rt.Option[T], err E) rt.Result[T, E] {
	if v, ok := input.Get(); ok {
		return rt.Ok[T, E](v)
	}
	return rt.Err[T](err)
}

func OkOrElse[T, E any](input rt.Option[T], onNone func() E) rt.Result[T, E] {
	rt.MustFunc("OkOrElse", onNone)

	if v, ok := input.Get(); ok {
		return rt.Ok[T, E](v)
	}
	return rt.Err[T](onNone())
}
