package fluent

import (
	"maps"

	"github.com/ericsuh/fluent-iter/fluent/core"
	"github.com/ericsuh/fluent-iter/fluent/seq"
	"github.com/ericsuh/fluent-iter/fluent/stream"
)

// Of wraps the given elements.
func Of[T any](items ...T) *Seq[T] {
	return seq.FromSlice(items)
}

// OfAsync wraps the given elements as an asynchronous stream.
func OfAsync[T any](items ...T) *Stream[T] {
	return stream.FromSlice(items)
}

// Empty is a sequence that yields no elements.
func Empty[T any]() *Seq[T] {
	return seq.FromSeq(func(yield func(T) bool) {})
}

// Once is a sequence that yields a single element.
func Once[T any](value T) *Seq[T] {
	return seq.FromSeq(func(yield func(T) bool) {
		yield(value)
	})
}

// Range is a sequence of integers from start (inclusive) to end
// (exclusive). If start >= end, the sequence is empty.
func Range(start, end int) *Seq[int] {
	return seq.FromSeq(func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

// Generate is a lazily generated sequence. fn is called once per element
// and returns the next element and true, or the zero value and false to end
// the sequence. Restartability depends on fn.
func Generate[T any](fn func() (T, bool)) *Seq[T] {
	return seq.FromSeq(func(yield func(T) bool) {
		for {
			value, ok := fn()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	})
}

// Keys wraps the keys of m. Order is the map's own enumeration order, which
// in Go is unspecified.
func Keys[K comparable, V any](m map[K]V) *Seq[K] {
	return seq.FromSeq(maps.Keys(m))
}

// Values wraps the values of m, in the map's own enumeration order.
func Values[K comparable, V any](m map[K]V) *Seq[V] {
	return seq.FromSeq(maps.Values(m))
}

// Entries wraps the key-value pairs of m, in the map's own enumeration
// order.
func Entries[K comparable, V any](m map[K]V) *Seq[KeyValue[K, V]] {
	return seq.FromSeq(func(yield func(core.KeyValue[K, V]) bool) {
		for k, v := range m {
			if !yield(core.KeyValue[K, V]{Key: k, Value: v}) {
				return
			}
		}
	})
}
