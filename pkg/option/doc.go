// Package option provides an Option[T] value type representing presence
// (Some) or absence (None) of a value, together with adapters that lift
// ordinary fallible functions into Option-returning ones.
//
// Highlights:
// - Some/None/FromValue/FromPtr: construct an Option
// - IsSome/IsNothing/Unwrap/UnwrapOr: inspect and extract
// - Map/Bind/Filter: transform the payload without leaving the type
// - option.Map/option.Bind (package level): type-changing transforms
// - Maybe/Wrap: adapt (value, error) style and panicking functions
//
// Option values are immutable; every operation returns a new value.
package option
