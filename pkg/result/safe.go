package result

import "fmt"

// Safe lifts a fallible unary function into one that reports its outcome
// as a Result. A panic inside fn is recovered and becomes the Err payload,
// a non-nil error becomes Err, anything else becomes Ok. Functions wrapped
// this way never need a recover at the call site.
func Safe[In, Out any](fn func(In) (Out, error)) func(In) Result[Out] {
	return func(in In) (r Result[Out]) {
		defer func() {
			if p := recover(); p != nil {
				r = Err[Out](recoveredError(p))
			}
		}()
		return Wrap(fn(in))
	}
}

// Safe2 is Safe for binary functions.
func Safe2[In1, In2, Out any](fn func(In1, In2) (Out, error)) func(In1, In2) Result[Out] {
	return func(in1 In1, in2 In2) (r Result[Out]) {
		defer func() {
			if p := recover(); p != nil {
				r = Err[Out](recoveredError(p))
			}
		}()
		return Wrap(fn(in1, in2))
	}
}

// Wrap converts a conventional (value, error) pair into a Result.
func Wrap[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func recoveredError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}
