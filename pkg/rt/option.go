package rt

import "fmt"

// Option is either Some(value) or None. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the value. On None it panics with *UnwrapError.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic(newUnwrapError("MustGet", "None", nil))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(onNone func() T) T {
	mustFunc("UnwrapOrElse", onNone)
	if o.some {
		return o.value
	}
	return onNone()
}

func (o Option[T]) Map(onSome func(T) T) Option[T] {
	mustFunc("Map", onSome)
	if !o.some {
		return o
	}
	return Some(onSome(o.value))
}

func (o Option[T]) AndThen(onSome func(T) Option[T]) Option[T] {
	mustFunc("AndThen", onSome)
	if !o.some {
		return o
	}
	return onSome(o.value)
}

func (o Option[T]) FlatMap(onSome func(T) Option[T]) Option[T] {
	return o.AndThen(onSome)
}

// Filter keeps the value only when keep reports true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	mustFunc("Filter", keep)
	if o.some && keep(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns o when it is Some, otherwise alternative.
func (o Option[T]) OrElse(alternative Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alternative
}

// OrElseGet is OrElse with a lazily computed alternative.
func (o Option[T]) OrElseGet(alternative func() Option[T]) Option[T] {
	mustFunc("OrElseGet", alternative)
	if o.some {
		return o
	}
	return alternative()
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
