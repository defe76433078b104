package rt

import "fmt"

// Kind reports which variant a Result holds.
type Kind uint8

const (
	KindErr Kind = iota
	KindOk
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindErr:
		return "Err"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result is either Ok(value) or Err(err). The zero value is Err holding the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// Of converts the usual (value, error) pair. A nil err gives Ok(value).
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Unpack is the inverse of Of.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) Kind() Kind {
	if r.ok {
		return KindOk
	}
	return KindErr
}

// Get returns the success value and true, or the zero T and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the failure value and true, or the zero E and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// MustGet returns the success value. On Err it panics with *UnwrapError
// carrying the error payload.
func (r Result[T, E]) MustGet() T {
	if !r.ok {
		panic(newUnwrapError("MustGet", KindErr.String(), r.err))
	}
	return r.value
}

// MustGetErr returns the failure value. On Ok it panics with *UnwrapError
// carrying the success payload.
func (r Result[T, E]) MustGetErr() E {
	if r.ok {
		panic(newUnwrapError("MustGetErr", KindOk.String(), r.value))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(onErr func(E) T) T {
	mustFunc("UnwrapOrElse", onErr)
	if r.ok {
		return r.value
	}
	return onErr(r.err)
}

// ErrOr returns the failure value, or def when r is Ok.
func (r Result[T, E]) ErrOr(def E) E {
	if !r.ok {
		return r.err
	}
	return def
}

func (r Result[T, E]) Map(onOk func(T) T) Result[T, E] {
	mustFunc("Map", onOk)
	if !r.ok {
		return r
	}
	return Ok[T, E](onOk(r.value))
}

func (r Result[T, E]) MapErr(onErr func(E) E) Result[T, E] {
	mustFunc("MapErr", onErr)
	if r.ok {
		return r
	}
	return Err[T](onErr(r.err))
}

// AndThen returns onOk(value) for Ok and r itself for Err.
func (r Result[T, E]) AndThen(onOk func(T) Result[T, E]) Result[T, E] {
	mustFunc("AndThen", onOk)
	if !r.ok {
		return r
	}
	return onOk(r.value)
}

func (r Result[T, E]) FlatMap(onOk func(T) Result[T, E]) Result[T, E] {
	return r.AndThen(onOk)
}

// OrElse returns onErr(err) for Err and r itself for Ok.
func (r Result[T, E]) OrElse(onErr func(E) Result[T, E]) Result[T, E] {
	mustFunc("OrElse", onErr)
	if r.ok {
		return r
	}
	return onErr(r.err)
}

// OkValue drops the error payload: Ok becomes Some, Err becomes None.
func (r Result[T, E]) OkValue() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// ErrValue drops the success payload: Err becomes Some, Ok becomes None.
func (r Result[T, E]) ErrValue() Option[E] {
	if !r.ok {
		return Some(r.err)
	}
	return None[E]()
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
