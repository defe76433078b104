// Package chain provides a fluent wrapper around rt.Result[T, error]
// for building synchronous railway chains with solo primitives.
//
// A Chain carries a context. Each step checks it first: once the context is
// done the chain turns into Err(ctx.Err()) and the remaining steps are skipped.
//
// Key operations:
// - Start/FromValue/FromPair: begin a chain
// - Then/ThenTry/Map: same-type steps as methods
// - Switch/TryTo/MapTo: type-changing steps as functions
// - Recover: turn a failure back into a value
// - Ensure/EnsureFailure: side effects without changing the result
// - Finally: collapse the chain into a plain value
package chain
