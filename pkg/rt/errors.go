package rt

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnwrap matches every *UnwrapError.
	ErrUnwrap = errors.New("rt: unwrap of wrong variant")
	// ErrNilFunc matches every *UsageError.
	ErrNilFunc = errors.New("rt: nil function")
)

// UnwrapError is the panic value of MustGet and MustGetErr when the container
// holds the other variant. Payload is whatever that variant carried (nil for None).
type UnwrapError struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Op        string
	Variant   string
	Payload   any
}

func newUnwrapError(op, variant string, payload any) *UnwrapError {
	return &UnwrapError{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Op:        op,
		Variant:   variant,
		Payload:   payload,
	}
}

func (e *UnwrapError) Error() string {
	if IsNil(e.Payload) {
		return fmt.Sprintf("rt: %s called on %s", e.Op, e.Variant)
	}
	return fmt.Sprintf("rt: %s called on %s(%v)", e.Op, e.Variant, e.Payload)
}

// Unwrap exposes ErrUnwrap and, when the payload is an error, the payload too.
func (e *UnwrapError) Unwrap() []error {
	if err, ok := e.Payload.(error); ok && !IsNil(err) {
		return []error{ErrUnwrap, err}
	}
	return []error{ErrUnwrap}
}

// UsageError is the panic value of a combinator that was handed a nil function.
type UsageError struct {
	Op string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("rt: %s: nil function", e.Op)
}

func (e *UsageError) Unwrap() error {
	return ErrNilFunc
}

// Catch runs f and returns the *UnwrapError or *UsageError it panicked with.
// Any other panic is re-raised.
func Catch(f func()) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		switch e := rec.(type) {
		case *UnwrapError:
			err = e
		case *UsageError:
			err = e
		default:
			panic(rec)
		}
	}()
	f()
	return nil
}
