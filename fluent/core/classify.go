// package core defines the capability contracts shared by the synchronous
// and asynchronous sequence wrappers: the enumerable classifier, the Result
// type carried by asynchronous traversals, and the small value types
// (pairs, indexed elements, key-value entries) produced by operators.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other fluent packages.
package core

import (
	"context"
	"errors"
	"iter"
	"reflect"
)

// ErrInvalidSource is returned by the dynamic constructors when their input
// is neither an enumerable of the expected capability nor a zero-argument
// supplier function. It is the only constructor-time error kind.
var ErrInvalidSource = errors.New("source is not an enumerable of the expected capability")

// AnyIterable is the untyped synchronous enumeration capability. The typed
// wrappers implement it so the classifier can recognize them when they appear
// as elements of another sequence, e.g. during flattening.
type AnyIterable interface {
	IterAny() iter.Seq[any]
}

// AnyEmitter is the untyped asynchronous enumeration capability. Each call
// to EmitAny starts an independent traversal; the returned channel is that
// traversal's cursor and is closed when the sequence ends.
type AnyEmitter interface {
	EmitAny(ctx context.Context) <-chan Result[any]
}

// IsEnumerable reports whether x exposes the synchronous enumeration
// capability. It never panics; nil and non-conforming values yield false.
func IsEnumerable(x any) bool {
	_, ok := SeqOf(x)
	return ok
}

// IsAsyncEnumerable reports whether x exposes the asynchronous enumeration
// capability. It never panics; nil and non-conforming values yield false.
func IsAsyncEnumerable(x any) bool {
	_, ok := EmitterOf(x)
	return ok
}

// SeqOf extracts an untyped synchronous sequence from x, if it has one.
// Recognized forms: AnyIterable implementations, iter.Seq[any] (named or raw
// function form), and slices/arrays of any element type via reflection.
//
// Strings are never enumerable. They satisfy the sequence protocol in some
// host runtimes, but treating text as a sequence of characters would make
// flattening useless; callers depend on strings being leaves.
func SeqOf(x any) (iter.Seq[any], bool) {
	if x == nil || isNilConcrete(x) {
		return nil, false
	}
	switch v := x.(type) {
	case string:
		return nil, false
	case AnyIterable:
		return v.IterAny(), true
	case iter.Seq[any]:
		return v, true
	case func(func(any) bool):
		return v, true
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// EmitterOf extracts an untyped asynchronous emitter from x, if it has one.
// Recognized forms: AnyEmitter implementations and the raw emitter function
// shape.
func EmitterOf(x any) (func(context.Context) <-chan Result[any], bool) {
	if x == nil || isNilConcrete(x) {
		return nil, false
	}
	switch v := x.(type) {
	case AnyEmitter:
		return v.EmitAny, true
	case func(context.Context) <-chan Result[any]:
		return v, true
	}
	return nil, false
}

// Supply invokes x if it is a zero-argument single-result function and
// returns its result. The dynamic constructors use it to accept supplier
// functions: the supplier runs exactly once, at construction time, and its
// result is classified in place of x.
func Supply(x any) (any, bool) {
	if x == nil {
		return nil, false
	}
	rv := reflect.ValueOf(x)
	rt := rv.Type()
	if rv.Kind() != reflect.Func || rv.IsNil() || rt.NumIn() != 0 || rt.NumOut() != 1 {
		return nil, false
	}
	return rv.Call(nil)[0].Interface(), true
}

// isNilConcrete reports whether x is a nil pointer, function, channel or map
// boxed in a non-nil interface. Such values satisfy capability interfaces
// and function shapes structurally but dereference nil when used, so the
// classifier rejects them. Nil slices are not nil in this sense: they
// enumerate as empty sequences.
func isNilConcrete(x any) bool {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Map, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
