package seq

import (
	"fmt"
	"strings"
)

// Terminal operations. Each drives the lazy pipeline to completion (or to
// its short-circuit point) and returns a concrete value.

// ToSlice materializes the full sequence, in order.
func (s *Seq[T]) ToSlice() []T {
	var result []T
	for v := range s.src {
		result = append(result, v)
	}
	return result
}

// Join converts each element to its display string and concatenates them
// with sep between consecutive elements, in sequence order.
func (s *Seq[T]) Join(sep string) string {
	var sb strings.Builder
	first := true
	for v := range s.src {
		if !first {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	return sb.String()
}

// All reports whether every element satisfies pred. It short-circuits to
// false on the first failing element and is true for an empty sequence.
func (s *Seq[T]) All(pred func(T) bool) bool {
	for v := range s.src {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Every is an alias for All.
func (s *Seq[T]) Every(pred func(T) bool) bool {
	return s.All(pred)
}

// Any reports whether some element satisfies pred. It short-circuits to
// true on the first satisfying element and is false for an empty sequence.
func (s *Seq[T]) Any(pred func(T) bool) bool {
	for v := range s.src {
		if pred(v) {
			return true
		}
	}
	return false
}

// Some is an alias for Any.
func (s *Seq[T]) Some(pred func(T) bool) bool {
	return s.Any(pred)
}

// Reduce left-folds the sequence, applying fn(acc, element) in order,
// starting from initial. Returns initial unchanged for an empty sequence.
// For an accumulator of a different type, use the package-level [Fold].
func (s *Seq[T]) Reduce(initial T, fn func(acc, item T) T) T {
	acc := initial
	for v := range s.src {
		acc = fn(acc, v)
	}
	return acc
}

// Count returns the number of elements.
func (s *Seq[T]) Count() int {
	count := 0
	for range s.src {
		count++
	}
	return count
}
