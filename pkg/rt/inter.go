package rt

// ValueProvider is implemented by both Result and Option.
type ValueProvider[T any] interface {
	// Get returns the success/present value and whether there is one
	Get() (T, bool)
}

// ErrorProvider is implemented by Result.
type ErrorProvider[E any] interface {
	// GetErr returns the failure value and whether there is one
	GetErr() (E, bool)
}

// Either is the read side of Result[T, E].
type Either[T, E any] interface {
	ValueProvider[T]
	ErrorProvider[E]
	// IsOk returns true for the success variant
	IsOk() bool
	// IsErr returns true for the failure variant
	IsErr() bool
}

var (
	_ Either[int, error] = Result[int, error]{}
	_ ValueProvider[int] = Option[int]{}
)
