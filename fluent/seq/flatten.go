package seq

import (
	"iter"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Flatten unwraps arbitrarily nested synchronous enumerables into a single
// flat sequence of non-enumerable leaf values. An enumerable nested at any
// depth is always descended into, never emitted as a unit; strings are
// leaves (see core.SeqOf).
//
// The descent uses an explicit stack of cursors rather than call recursion:
// nesting depth is caller-controlled, so it must bound heap growth, not
// goroutine stack growth.
//
// Asynchronous enumerables nested inside a synchronous sequence are NOT
// descended into; a synchronous traversal cannot suspend. They come out as
// leaves. The asynchronous wrapper supports the mixed case.
func (s *Seq[T]) Flatten() *Seq[any] {
	return FromSeq(flatten(s.IterAny()))
}

type cursor struct {
	next func() (any, bool)
	stop func()
}

func flatten(src iter.Seq[any]) iter.Seq[any] {
	return func(yield func(any) bool) {
		push := func(stack []cursor, s iter.Seq[any]) []cursor {
			next, stop := iter.Pull(s)
			return append(stack, cursor{next: next, stop: stop})
		}

		stack := push(nil, src)
		defer func() {
			// release cursors still open after an abandoned traversal
			for _, c := range stack {
				c.stop()
			}
		}()

		for len(stack) > 0 {
			v, ok := stack[len(stack)-1].next()
			if !ok {
				stack[len(stack)-1].stop()
				stack = stack[:len(stack)-1]
				continue
			}
			if nested, isSeq := core.SeqOf(v); isSeq {
				stack = push(stack, nested)
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
