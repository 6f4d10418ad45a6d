package core

// Result represents the outcome of one asynchronous fetch. It is either a
// value or an error; end-of-sequence is signalled by closing the cursor
// channel, not by a Result state.
//
// An error Result aborts the traversal that produced it: the emitting stage
// stops after sending it, and terminal consumers surface the error to their
// caller unchanged.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates an error Result carrying a traversal failure.
func Err[T any](err error) Result[T] {
	var zero T
	return Result[T]{value: zero, err: err}
}

// IsValue returns true if this Result contains a successful value.
func (r Result[T]) IsValue() bool {
	return r.err == nil
}

// IsError returns true if this Result carries a traversal failure.
func (r Result[T]) IsError() bool {
	return r.err != nil
}

// Value returns the contained value, or the zero value for error Results.
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the carried error, or nil for value Results.
func (r Result[T]) Error() error {
	return r.err
}

// Unwrap returns the value and error together.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}
