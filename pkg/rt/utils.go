package rt

import (
	"reflect"
)

// IsNil reports whether i is nil or a typed nil of a nillable kind.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors splits an errors.Join result into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// MustFunc panics with *UsageError when f is a nil function.
func MustFunc(op string, f any) {
	mustFunc(op, f)
}

func mustFunc(op string, f any) {
	if IsNil(f) {
		panic(&UsageError{Op: op})
	}
}
