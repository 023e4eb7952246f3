package option

// Maybe lifts a fallible unary function into one that reports its outcome
// as an Option. A panic inside fn yields None, a non-nil error yields
// None, a nil result value yields None, anything else becomes Some.
// Functions wrapped this way never need a recover at the call site.
func Maybe[In, Out any](fn func(In) (Out, error)) func(In) Option[Out] {
	return func(in In) (o Option[Out]) {
		defer func() {
			if recover() != nil {
				o = None[Out]()
			}
		}()
		return Wrap(fn(in))
	}
}

// Maybe2 is Maybe for binary functions.
func Maybe2[In1, In2, Out any](fn func(In1, In2) (Out, error)) func(In1, In2) Option[Out] {
	return func(in1 In1, in2 In2) (o Option[Out]) {
		defer func() {
			if recover() != nil {
				o = None[Out]()
			}
		}()
		return Wrap(fn(in1, in2))
	}
}

// Wrap converts a conventional (value, error) pair into an Option,
// treating both a non-nil error and a nil value as absence.
func Wrap[T any](v T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return FromValue(v)
}
