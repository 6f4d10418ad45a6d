// Package seq provides the synchronous fluent sequence wrapper. A Seq wraps
// one enumerable source and layers chainable, lazily-evaluated operations on
// top of it; nothing is consumed until a terminal operation (or an external
// range loop) drives the sequence.
//
// Each transformation returns a new Seq whose source is a fresh closure over
// the parent, so pipelines compose without materializing intermediate
// results. Operations that change the element type cannot be methods (Go
// methods do not introduce type parameters) and are provided as package
// functions instead: [Map], [Zip], [Fold], [ToSet].
//
// A Seq is restartable exactly when its underlying source is; each traversal
// obtains a fresh cursor. The synchronous variant has no error channel: a
// user function that fails does so by panicking, and the panic propagates
// out of the in-progress traversal untouched.
package seq

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Iterable is the typed synchronous enumeration capability. A Seq wraps any
// Iterable and is itself one, so wrappers compose with any code expecting a
// plain enumerable.
type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

// Seq is the fluent wrapper around a synchronous sequence. The wrapped
// source is private; Unwrap exposes it read-only.
type Seq[T any] struct {
	src iter.Seq[T]
}

// FromSeq wraps a raw sequence.
func FromSeq[T any](src iter.Seq[T]) *Seq[T] {
	return &Seq[T]{src: src}
}

// From wraps any typed enumerable.
func From[T any](src Iterable[T]) *Seq[T] {
	return &Seq[T]{src: src.Iter()}
}

// FromSlice wraps a slice. The resulting Seq is restartable.
func FromSlice[T any](items []T) *Seq[T] {
	return &Seq[T]{src: slices.Values(items)}
}

// FromFunc invokes the supplier exactly once, at construction time, and
// wraps its result. This allows deferring or encapsulating generator
// creation without the caller holding the sequence itself.
func FromFunc[T any](supplier func() iter.Seq[T]) *Seq[T] {
	return FromSeq(supplier())
}

// New classifies an arbitrary value and wraps it. The input must either
// expose the synchronous enumeration capability (see core.SeqOf for the
// recognized forms) or be a zero-argument supplier whose result does.
// Classification happens once, here, not on each traversal. Any other input
// fails with core.ErrInvalidSource.
func New(src any) (*Seq[any], error) {
	if s, ok := core.SeqOf(src); ok {
		return FromSeq(s), nil
	}
	if produced, ok := core.Supply(src); ok {
		if s, ok := core.SeqOf(produced); ok {
			return FromSeq(s), nil
		}
		return nil, fmt.Errorf("seq: supplier returned %T: %w", produced, core.ErrInvalidSource)
	}
	return nil, fmt.Errorf("seq: %T: %w", src, core.ErrInvalidSource)
}

// Iter returns the composed sequence. Ranging over it drives the pipeline.
func (s *Seq[T]) Iter() iter.Seq[T] {
	return s.src
}

// IterAny adapts the sequence to untyped elements, satisfying the
// capability the classifier probes for.
func (s *Seq[T]) IterAny() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range s.src {
			if !yield(v) {
				return
			}
		}
	}
}

// Unwrap returns the raw underlying sequence.
func (s *Seq[T]) Unwrap() iter.Seq[T] {
	return s.src
}

// Filter produces only the elements satisfying pred, preserving their
// relative order.
func (s *Seq[T]) Filter(pred func(T) bool) *Seq[T] {
	src := s.src
	return FromSeq(func(yield func(T) bool) {
		for v := range src {
			if pred(v) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Where is an alias for Filter.
func (s *Seq[T]) Where(pred func(T) bool) *Seq[T] {
	return s.Filter(pred)
}

// Map produces fn(x) for each source element, in order, preserving count.
// For maps that change the element type, use the package-level [Map].
func (s *Seq[T]) Map(fn func(T) T) *Seq[T] {
	src := s.src
	return FromSeq(func(yield func(T) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// ForEach is an alias for Map. It does not special-case side-effecting
// functions: the result is still a lazy sequence of fn's (typically
// ignorable) return values, driven only when consumed.
func (s *Seq[T]) ForEach(fn func(T) T) *Seq[T] {
	return s.Map(fn)
}

// Concat produces all of this sequence's elements followed by all elements
// of the others, in order. Sequences of a different element type can be
// concatenated through AsAny.
func (s *Seq[T]) Concat(others ...*Seq[T]) *Seq[T] {
	src := s.src
	return FromSeq(func(yield func(T) bool) {
		for v := range src {
			if !yield(v) {
				return
			}
		}
		for _, other := range others {
			for v := range other.src {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Enumerate pairs each element with its index. Indices start at 0 and
// increment once per element of this sequence, independent of any filtering
// applied upstream.
func (s *Seq[T]) Enumerate() *Seq[core.Indexed[T]] {
	src := s.src
	return FromSeq(func(yield func(core.Indexed[T]) bool) {
		index := 0
		for v := range src {
			if !yield(core.Indexed[T]{Index: index, Value: v}) {
				return
			}
			index++
		}
	})
}

// AsAny re-types the sequence over untyped elements. Useful as the meeting
// point for heterogeneous Concat or as input to Flatten-heavy pipelines.
func (s *Seq[T]) AsAny() *Seq[any] {
	return FromSeq(s.IterAny())
}
