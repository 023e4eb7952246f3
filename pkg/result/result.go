package result

import (
	"errors"
	"fmt"

	"github.com/ib-77/enumerio/pkg/option"
)

// Result is a two-variant value: Ok carrying a payload, or Err carrying
// an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: Err with nil error")
	}
	return Result[T]{err: err}
}

// Errf constructs an Err from a format string, fmt.Errorf style.
func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success payload and panics on Err.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("result: called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Err returns the error payload, nil when the Result is Ok.
func (r Result[T]) Err() error {
	return r.err
}

// Map transforms the success payload with fn; Err passes through.
// For transforms that change the payload type use the package-level Map.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return r
}

// MapErr transforms the error payload only, leaving Ok untouched.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.err))
}

// Bind applies fn, which itself returns a Result, flattening one level.
func (r Result[T]) Bind(fn func(T) Result[T]) Result[T] {
	if r.ok {
		return fn(r.value)
	}
	return r
}

// ToOption converts to an Option, discarding the error payload.
func (r Result[T]) ToOption() option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies a type-changing transformation to the success payload.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// Bind applies a type-changing transformation that itself returns a Result.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Flatten collapses a nested Result by one level.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

// FromOption converts an Option into a Result, supplying err for None.
func FromOption[T any](o option.Option[T], err error) Result[T] {
	if o.IsSome() {
		return Ok(o.Unwrap())
	}
	return Err[T](err)
}

// Equal reports whether two Results have the same variant and equal
// payloads: Ok values compare with ==, Err values compare with errors.Is
// in either direction, falling back on message equality.
func Equal[T comparable](a, b Result[T]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return errors.Is(a.err, b.err) || errors.Is(b.err, a.err) || a.err.Error() == b.err.Error()
}
