// Package lite lifts rt.Result steps over channels for simple fan-out/fan-in
// pipelines.
//
// Common usage:
// - FromSlice/FromResults: feed a stage
// - Run: execute a step over an input channel with a number of worker lines
// - Map/Try/Validate: adapt plain functions into steps
// - Finally: reduce each Result to a plain value
// - ToSlice: drain a channel
//
// Err items flow through every stage untouched; steps only ever see Ok values.
// Output order is not preserved when more than one line runs.
package lite
