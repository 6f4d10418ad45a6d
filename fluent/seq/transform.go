package seq

import (
	"iter"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Map applies fn to each element of s, yielding a wrapper over the
// transformed elements. Count and order are preserved.
func Map[IN, OUT any](s *Seq[IN], fn func(IN) OUT) *Seq[OUT] {
	src := s.Iter()
	return FromSeq(func(yield func(OUT) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// Zip pairs elements of a and b by advancing both in lockstep. The zipped
// sequence stops as soon as either source is exhausted; any unpaired tail
// is discarded.
func Zip[A, B any](a *Seq[A], b *Seq[B]) *Seq[core.Pair[A, B]] {
	srcA, srcB := a.Iter(), b.Iter()
	return FromSeq(func(yield func(core.Pair[A, B]) bool) {
		next, stop := iter.Pull(srcB)
		defer stop()

		for va := range srcA {
			vb, ok := next()
			if !ok {
				return
			}
			if !yield(core.Pair[A, B]{A: va, B: vb}) {
				return
			}
		}
	})
}

// Fold left-folds the sequence into an accumulator of a different type,
// starting from initial. Terminal: it drives the sequence to completion and
// returns initial unchanged if the sequence is empty.
func Fold[T, R any](s *Seq[T], initial R, fn func(acc R, item T) R) R {
	acc := initial
	for v := range s.Iter() {
		acc = fn(acc, v)
	}
	return acc
}

// ToSet materializes the sequence into a set. Terminal: duplicates collapse
// under Go's == for the element type.
func ToSet[T comparable](s *Seq[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range s.Iter() {
		set[v] = struct{}{}
	}
	return set
}
