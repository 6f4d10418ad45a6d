// Package fluent provides a fluent-interface wrapper around lazy sequence
// traversal. It wraps any enumerable source, synchronous or asynchronous,
// and layers chainable transformations (map, filter, flatten, zip,
// enumerate, concat, reduce, predicates) on top without materializing the
// sequence eagerly; the pipeline runs only when a terminal operation drives
// it.
//
// This package is the primary user-facing API. The fluent/seq and
// fluent/stream subpackages hold the synchronous and asynchronous wrappers;
// fluent/core holds the capability classifier and shared value types.
package fluent

import (
	"github.com/ericsuh/fluent-iter/fluent/core"
	"github.com/ericsuh/fluent-iter/fluent/seq"
	"github.com/ericsuh/fluent-iter/fluent/stream"
)

// Type aliases for the wrapper and value types. These allow users to work
// with the library without importing the subpackages directly.
type (
	// Seq is the synchronous fluent wrapper.
	Seq[T any] = seq.Seq[T]

	// Stream is the asynchronous fluent wrapper.
	Stream[T any] = stream.Stream[T]

	// Result is the outcome of one asynchronous fetch: a value or an error.
	Result[T any] = core.Result[T]

	// KeyValue is a key-value pair from a map.
	KeyValue[K comparable, V any] = core.KeyValue[K, V]

	// Pair holds one element from each of two zipped sequences.
	Pair[A, B any] = core.Pair[A, B]

	// Indexed pairs an element with its 0-based position.
	Indexed[T any] = core.Indexed[T]
)

// ErrInvalidSource is the single constructor-time error kind, returned when
// a dynamic constructor's input is neither a conforming enumerable nor a
// zero-argument supplier function.
var ErrInvalidSource = core.ErrInvalidSource

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// Err creates an error Result carrying a traversal failure.
func Err[T any](err error) Result[T] {
	return core.Err[T](err)
}

// IsEnumerable reports whether x exposes the synchronous enumeration
// capability. Absence of the capability yields false, never an error.
func IsEnumerable(x any) bool {
	return core.IsEnumerable(x)
}

// IsAsyncEnumerable reports whether x exposes the asynchronous enumeration
// capability. Absence of the capability yields false, never an error.
func IsAsyncEnumerable(x any) bool {
	return core.IsAsyncEnumerable(x)
}

// Wrap classifies an arbitrary value as a synchronous enumerable (or a
// supplier of one, invoked once) and wraps it. Fails with ErrInvalidSource
// for anything else.
func Wrap(src any) (*Seq[any], error) {
	return seq.New(src)
}

// WrapAsync classifies an arbitrary value as an asynchronous enumerable (or
// a supplier of one, invoked once) and wraps it. Fails with
// ErrInvalidSource for anything else.
func WrapAsync(src any) (*Stream[any], error) {
	return stream.New(src)
}
