// Package solo contains the single-value, synchronous combinators over
// rt.Result and rt.Option that change a payload type. Methods on the
// containers cover the same-type cases; everything here is a free function
// because Go methods cannot introduce new type parameters.
//
// Highlights:
// - Map/MapErr/FlatMap/OrElse: transform one branch, leave the other untouched
// - Match/MatchOption: exhaustive case analysis returning a plain value
// - Validate/AndValidate/ValidateAll: turn predicates into failures
// - Try/FailOnError: lift (U, error) and error-returning steps
// - Tee/DoubleTee: side-effect helpers
// - ToOption/OkOr/Collect/Partition: conversions between shapes
package solo
