package app

// Result holds either a computed value or the error which prevented computing it.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok creates successful result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail creates failed result.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// OrDefault returns value, or def if result is failed.
func (r Result[T]) OrDefault(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Value
}
