// Package rt provides the Result[T, E] and Option[T] containers.
//
// A Result holds either a success value (Ok) or a failure value (Err). An Option
// holds either a value (Some) or nothing (None). Both are immutable values: every
// combinator returns a new container and never mutates the receiver.
//
// Methods keep the payload types unchanged. Combinators that change a payload
// type live in package solo, since Go methods cannot declare type parameters.
//
// Expected failures travel as Err/None payloads. The only panics are defects:
// forcing the wrong variant (MustGet, MustGetErr) panics with *UnwrapError and
// passing a nil function to a combinator panics with *UsageError.
package rt
