package stream

import (
	"context"
	"iter"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Flatten unwraps arbitrarily nested enumerables into a single flat stream
// of non-enumerable leaf values. Both capabilities are descended into: an
// asynchronous enumerable nested at any depth, and a synchronous enumerable
// nested inside the asynchronous traversal (slices, wrappers, raw
// sequences). Strings are leaves (see core.SeqOf).
//
// The descent keeps an explicit stack of cursors, never call recursion;
// each stack level is either a channel cursor (awaited) or a synchronous
// pull cursor (advanced without suspending). An error Result at any depth
// aborts the traversal.
func (s *Stream[T]) Flatten() *Stream[any] {
	src := s.EmitAny
	return FromEmitter(func(ctx context.Context) <-chan core.Result[any] {
		out := make(chan core.Result[any])
		go func() {
			defer close(out)

			// exactly one of ch/next is set per level
			type cursor struct {
				ch   <-chan core.Result[any]
				next func() (any, bool)
				stop func()
			}
			var stack []cursor
			defer func() {
				for _, c := range stack {
					if c.stop != nil {
						c.stop()
					}
				}
			}()

			stack = append(stack, cursor{ch: src(ctx)})
			for len(stack) > 0 {
				top := stack[len(stack)-1]

				var v any
				if top.ch != nil {
					res, open := <-top.ch
					if !open {
						stack = stack[:len(stack)-1]
						continue
					}
					if res.IsError() {
						select {
						case <-ctx.Done():
						case out <- core.Err[any](res.Error()):
						}
						return
					}
					v = res.Value()
				} else {
					leaf, more := top.next()
					if !more {
						top.stop()
						stack = stack[:len(stack)-1]
						continue
					}
					v = leaf
				}

				if em, isAsync := core.EmitterOf(v); isAsync {
					stack = append(stack, cursor{ch: em(ctx)})
					continue
				}
				if nested, isSeq := core.SeqOf(v); isSeq {
					next, stop := iter.Pull(nested)
					stack = append(stack, cursor{next: next, stop: stop})
					continue
				}

				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(v):
				}
			}
		}()
		return out
	})
}
