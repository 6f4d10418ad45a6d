// Package observe provides typed, context-attached observation hooks for
// asynchronous pipelines. Hooks are invoked synchronously by a pass-through
// stage, so they should be fast; they see every element the stage forwards
// and cannot modify the sequence.
package observe

import (
	"context"

	"github.com/ericsuh/fluent-iter/fluent/core"
	"github.com/ericsuh/fluent-iter/fluent/stream"
)

// Hooks holds observation callbacks for a stream of T. All fields are
// optional; nil means no observation for that event.
type Hooks[T any] struct {
	OnValue    func(T)     // successful element forwarded
	OnError    func(error) // traversal failure forwarded
	OnComplete func()      // traversal finished, including cancellation
}

type hooksKey[T any] struct{}

type hooksContainer[T any] struct {
	hookSets []Hooks[T]
}

// WithHooks attaches hooks to the context. Multiple calls compose in FIFO
// order: hooks from earlier calls are invoked before later ones.
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	existing, _ := ctx.Value(hooksKey[T]{}).(*hooksContainer[T])
	container := &hooksContainer[T]{}
	if existing != nil {
		container.hookSets = append(container.hookSets, existing.hookSets...)
	}
	container.hookSets = append(container.hookSets, hooks)
	return context.WithValue(ctx, hooksKey[T]{}, container)
}

// WithValueHook attaches a value-only hook to the context.
func WithValueHook[T any](ctx context.Context, fn func(T)) context.Context {
	return WithHooks(ctx, Hooks[T]{OnValue: fn})
}

// WithErrorHook attaches an error-only hook to the context.
func WithErrorHook[T any](ctx context.Context, fn func(error)) context.Context {
	return WithHooks(ctx, Hooks[T]{OnError: fn})
}

// WithCompleteHook attaches a completion-only hook to the context.
func WithCompleteHook[T any](ctx context.Context, fn func()) context.Context {
	return WithHooks(ctx, Hooks[T]{OnComplete: fn})
}

// Observe wraps s in a pass-through stage that invokes any hooks attached
// to the traversal context. Elements, ordering and error semantics are
// unchanged.
func Observe[T any](s *stream.Stream[T]) *stream.Stream[T] {
	src := s.Unwrap()
	return stream.FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			container, _ := ctx.Value(hooksKey[T]{}).(*hooksContainer[T])
			defer invokeComplete(container)

			for res := range src(ctx) {
				if res.IsError() {
					invokeError(container, res.Error())
				} else {
					invokeValue(container, res.Value())
				}
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
				if res.IsError() {
					return
				}
			}
		}()
		return out
	})
}

func invokeValue[T any](c *hooksContainer[T], value T) {
	if c == nil {
		return
	}
	for _, hooks := range c.hookSets {
		if hooks.OnValue != nil {
			hooks.OnValue(value)
		}
	}
}

func invokeError[T any](c *hooksContainer[T], err error) {
	if c == nil {
		return
	}
	for _, hooks := range c.hookSets {
		if hooks.OnError != nil {
			hooks.OnError(err)
		}
	}
}

func invokeComplete[T any](c *hooksContainer[T]) {
	if c == nil {
		return
	}
	for _, hooks := range c.hookSets {
		if hooks.OnComplete != nil {
			hooks.OnComplete()
		}
	}
}
