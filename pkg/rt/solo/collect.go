package solo

import (
	"errors"

	"github.com/ib-77/rtype/pkg/rt"
)

// Collect returns Ok with every value, or the first Err in slice order.
func Collect[T, E any](inputs []rt.Result[T, E]) rt.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		v, ok := in.Get()
		if !ok {
			return rt.Err[[]T](in.MustGetErr())
		}
		values = append(values, v)
	}
	return rt.Ok[[]T, E](values)
}

// CollectAll is Collect without the short-circuit: every error is joined.
func CollectAll[T any](inputs []rt.Result[T, error]) rt.Result[[]T, error] {
	values := make([]T, 0, len(inputs))
	var errs []error

	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			values = append(values, v)
		} else {
			errs = append(errs, in.MustGetErr())
		}
	}

	if len(errs) > 0 {
		return rt.Err[[]T](errors.Join(errs...))
	}
	return rt.Ok[[]T, error](values)
}

func Partition[T, E any](inputs []rt.Result[T, E]) (values []T, errs []E) {
	values = make([]T, 0, len(inputs))
	errs = make([]E, 0)

	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			values = append(values, v)
		} else {
			errs = append(errs, in.MustGetErr())
		}
	}
	return values, errs
}

// Values returns the present values of a slice of Results or Options.
func Values[T any, P rt.ValueProvider[T]](inputs []P) []T {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			values = append(values, v)
		}
	}
	return values
}

// Errors returns the failure values of a slice of Results.
func Errors[E any, P rt.ErrorProvider[E]](inputs []P) []E {
	errs := make([]E, 0)
	for _, in := range inputs {
		if e, isErr := in.GetErr(); isErr {
			errs = append(errs, e)
		}
	}
	return errs
}

// Count tallies how many inputs are Ok and how many are Err.
func Count[T, E any, P rt.Either[T, E]](inputs []P) (oks, errs int) {
	for _, in := range inputs {
		if in.IsOk() {
			oks++
		} else {
			errs++
		}
	}
	return oks, errs
}
