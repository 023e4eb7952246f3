package fp

// Number covers the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies fns to value left to right. All functions must accept and
// return the same type.
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Curry converts a binary function into its curried form.
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Add returns a transform that adds n to its argument.
func Add[T Number](n T) func(T) T {
	return func(x T) T { return x + n }
}

// Sub returns a transform that subtracts n from its argument.
func Sub[T Number](n T) func(T) T {
	return func(x T) T { return x - n }
}

// Mul returns a transform that multiplies its argument by n.
func Mul[T Number](n T) func(T) T {
	return func(x T) T { return x * n }
}

// Div returns a transform that divides its argument by n, with the host
// language's division semantics for the element type.
func Div[T Number](n T) func(T) T {
	return func(x T) T { return x / n }
}
