// Package result provides a Result[T] value type representing success
// (Ok) or failure (Err) of an operation, together with adapters that lift
// ordinary fallible functions into Result-returning ones.
//
// Highlights:
// - Ok/Err/Errf: construct a Result
// - IsOk/IsErr/Unwrap/UnwrapOr/Err: inspect and extract
// - Map/MapErr/Bind: transform success or error payloads
// - result.Map/result.Bind (package level): type-changing transforms
// - Safe/Wrap: adapt (value, error) style and panicking functions
// - ToOption/FromOption: convert between Result and Option
//
// The error payload is Go's error interface; Result values are immutable.
package result
