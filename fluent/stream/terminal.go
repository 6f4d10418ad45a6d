package stream

import (
	"context"
	"fmt"
	"strings"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Terminal operations. Each obtains a fresh cursor, drives the pipeline to
// completion (or to its short-circuit point) and returns a concrete value.
// A traversal error is returned unchanged; there is no retry or recovery
// layer. Each terminal wraps the caller's context with a cancel so that the
// producer chain is released on short circuit or error.

// ToSlice materializes the full stream, in order.
func (s *Stream[T]) ToSlice(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result []T
	for res := range s.src(ctx) {
		if res.IsError() {
			return nil, res.Error()
		}
		result = append(result, res.Value())
	}
	return result, ctx.Err()
}

// Join converts each element to its display string and concatenates them
// with sep between consecutive elements, in sequence order.
func (s *Stream[T]) Join(ctx context.Context, sep string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sb strings.Builder
	first := true
	for res := range s.src(ctx) {
		if res.IsError() {
			return "", res.Error()
		}
		if !first {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, res.Value())
		first = false
	}
	return sb.String(), ctx.Err()
}

// All reports whether every element satisfies pred. It short-circuits to
// false on the first failing element and is true for an empty stream.
func (s *Stream[T]) All(ctx context.Context, pred func(T) bool) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for res := range s.src(ctx) {
		if res.IsError() {
			return false, res.Error()
		}
		if !pred(res.Value()) {
			return false, nil
		}
	}
	return true, ctx.Err()
}

// Every is an alias for All.
func (s *Stream[T]) Every(ctx context.Context, pred func(T) bool) (bool, error) {
	return s.All(ctx, pred)
}

// Any reports whether some element satisfies pred. It short-circuits to
// true on the first satisfying element and is false for an empty stream.
func (s *Stream[T]) Any(ctx context.Context, pred func(T) bool) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for res := range s.src(ctx) {
		if res.IsError() {
			return false, res.Error()
		}
		if pred(res.Value()) {
			return true, nil
		}
	}
	return false, ctx.Err()
}

// Some is an alias for Any.
func (s *Stream[T]) Some(ctx context.Context, pred func(T) bool) (bool, error) {
	return s.Any(ctx, pred)
}

// Reduce left-folds the stream, applying fn(acc, element) in order,
// starting from initial. Returns initial unchanged for an empty stream.
// For an accumulator of a different type, use the package-level [Fold].
func (s *Stream[T]) Reduce(ctx context.Context, initial T, fn func(acc, item T) T) (T, error) {
	return Fold(ctx, s, initial, fn)
}

// Count returns the number of elements.
func (s *Stream[T]) Count(ctx context.Context) (int, error) {
	return Fold(ctx, s, 0, func(acc int, _ T) int { return acc + 1 })
}

// Collect gathers every Result, including errors, without aborting. It is
// mostly useful in tests and diagnostics; the other terminals stop at the
// first error.
func (s *Stream[T]) Collect(ctx context.Context) []core.Result[T] {
	var results []core.Result[T]
	for res := range s.src(ctx) {
		results = append(results, res)
	}
	return results
}

// Fold left-folds the stream into an accumulator of a different type,
// starting from initial.
func Fold[T, R any](ctx context.Context, s *Stream[T], initial R, fn func(acc R, item T) R) (R, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	acc := initial
	for res := range s.src(ctx) {
		if res.IsError() {
			return acc, res.Error()
		}
		acc = fn(acc, res.Value())
	}
	return acc, ctx.Err()
}

// ToSet materializes the stream into a set; duplicates collapse under Go's
// == for the element type.
func ToSet[T comparable](ctx context.Context, s *Stream[T]) (map[T]struct{}, error) {
	return Fold(ctx, s, make(map[T]struct{}), func(set map[T]struct{}, item T) map[T]struct{} {
		set[item] = struct{}{}
		return set
	})
}
