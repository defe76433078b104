package solo

import (
	"errors"

	"github.com/ib-77/rtype/pkg/rt"
)

// Map returns Ok(onOk(v)) for Ok(v). Err keeps its payload and onOk is not called.
func Map[T, U, E any](input rt.Result[T, E], onOk func(T) U) rt.Result[U, E] {
	rt.MustFunc("Map", onOk)

	if v, ok := input.Get(); ok {
		return rt.Ok[U, E](onOk(v))
	}
	return rt.Err[U](input.MustGetErr())
}

// MapErr returns Err(onErr(e)) for Err(e). Ok keeps its value.
func MapErr[T, E, F any](input rt.Result[T, E], onErr func(E) F) rt.Result[T, F] {
	rt.MustFunc("MapErr", onErr)

	if e, isErr := input.GetErr(); isErr {
		return rt.Err[T](onErr(e))
	}
	return rt.Ok[T, F](input.MustGet())
}

// FlatMap returns onOk(v) for Ok(v) and short-circuits on Err.
func FlatMap[T, U, E any](input rt.Result[T, E], onOk func(T) rt.Result[U, E]) rt.Result[U, E] {
	rt.MustFunc("FlatMap", onOk)

	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return rt.Err[U](input.MustGetErr())
}

func AndThen[T, U, E any](input rt.Result[T, E], onOk func(T) rt.Result[U, E]) rt.Result[U, E] {
	return FlatMap(input, onOk)
}

// OrElse recovers from Err(e) with onErr(e), possibly changing the error type.
func OrElse[T, E, F any](input rt.Result[T, E], onErr func(E) rt.Result[T, F]) rt.Result[T, F] {
	rt.MustFunc("OrElse", onErr)

	if e, isErr := input.GetErr(); isErr {
		return onErr(e)
	}
	return rt.Ok[T, F](input.MustGet())
}

// Match reduces a Result to R. Exactly one of the handlers runs.
func Match[T, E, R any](input rt.Result[T, E], onOk func(T) R, onErr func(E) R) R {
	rt.MustFunc("Match", onOk)
	rt.MustFunc("Match", onErr)

	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return onErr(input.MustGetErr())
}

// Flatten collapses a nested Result.
func Flatten[T, E any](input rt.Result[rt.Result[T, E], E]) rt.Result[T, E] {
	if inner, ok := input.Get(); ok {
		return inner
	}
	return rt.Err[T](input.MustGetErr())
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rt.Result[T, error] {
	return AndValidate(rt.Ok[T, error](input), validate)
}

// AndValidate fails an Ok input whose value does not pass validate.
func AndValidate[T any](input rt.Result[T, error],
	validate func(in T) (valid bool, errMsg string)) rt.Result[T, error] {
	rt.MustFunc("AndValidate", validate)

	if v, ok := input.Get(); ok {
		if isValid, errMsg := validate(v); !isValid {
			return rt.Err[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against input. With breakOnError it stops
// at the first failure, otherwise failures are joined with errors.Join in
// validator order.
func ValidateAll[T any](
	input rt.Result[T, error],
	breakOnError bool, // exit on first error
	validators ...func(in T) error) rt.Result[T, error] {

	for _, validate := range validators {
		rt.MustFunc("ValidateAll", validate)
	}

	v, ok := input.Get()
	if !ok {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if err := validate(v); err != nil {
			if breakOnError {
				return rt.Err[T](err)
			}
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return rt.Err[T](errors.Join(errs...))
	}
	return input
}

// Try runs onTry for Ok values and turns a returned error into Err.
func Try[T, U any](input rt.Result[T, error], onTry func(T) (U, error)) rt.Result[U, error] {
	rt.MustFunc("Try", onTry)

	v, ok := input.Get()
	if !ok {
		return rt.Err[U](input.MustGetErr())
	}
	out, err := onTry(v)
	return rt.Of(out, err)
}

// FailOnError keeps the Ok value unless maybeErr reports an error for it.
func FailOnError[T any](input rt.Result[T, error], maybeErr func(in T) error) rt.Result[T, error] {
	rt.MustFunc("FailOnError", maybeErr)

	if v, ok := input.Get(); ok {
		if err := maybeErr(v); err != nil {
			return rt.Err[T](err)
		}
	}
	return input
}

// Tee calls onOk for Ok values and returns input unchanged.
func Tee[T, E any](input rt.Result[T, E], onOk func(T)) rt.Result[T, E] {
	rt.MustFunc("Tee", onOk)

	if v, ok := input.Get(); ok {
		onOk(v)
	}
	return input
}

// DoubleTee calls the handler matching the variant and returns input unchanged.
func DoubleTee[T, E any](input rt.Result[T, E], onOk func(T), onErr func(E)) rt.Result[T, E] {
	rt.MustFunc("DoubleTee", onOk)
	rt.MustFunc("DoubleTee", onErr)

	if v, ok := input.Get(); ok {
		onOk(v)
	} else {
		onErr(input.MustGetErr())
	}
	return input
}
