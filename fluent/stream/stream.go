// Package stream provides the asynchronous fluent sequence wrapper. It
// mirrors the operation set of the synchronous seq package; the difference
// is the suspension model. An asynchronous cursor is a channel obtained
// from one Emit call, and every receive from it is a suspension point: the
// consumer yields control until the producer resolves the next element.
//
// Scheduling is cooperative pulls on channels; the package starts no
// parallel workers beyond the one producer goroutine per pipeline stage.
// User functions return errors rather than panicking; an error aborts the
// in-progress traversal, propagates downstream unchanged, and surfaces at
// the terminal consumer.
package stream

import (
	"context"
	"fmt"
	"iter"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Emitter is the raw asynchronous source shape: each call starts an
// independent traversal and returns its cursor channel. The channel is
// closed when the sequence ends.
type Emitter[T any] func(context.Context) <-chan core.Result[T]

// Source is the typed asynchronous enumeration capability. A Stream wraps
// any Source and is itself one.
type Source[T any] interface {
	Emit(ctx context.Context) <-chan core.Result[T]
}

// Stream is the fluent wrapper around an asynchronous sequence. The wrapped
// source is private; Unwrap exposes it read-only.
type Stream[T any] struct {
	src Emitter[T]
}

// FromEmitter wraps a raw emitter function.
func FromEmitter[T any](src Emitter[T]) *Stream[T] {
	return &Stream[T]{src: src}
}

// From wraps any typed asynchronous enumerable.
func From[T any](src Source[T]) *Stream[T] {
	return &Stream[T]{src: src.Emit}
}

// FromFunc invokes the supplier exactly once, at construction time, and
// wraps its result.
func FromFunc[T any](supplier func() Emitter[T]) *Stream[T] {
	return FromEmitter(supplier())
}

// FromSlice wraps a slice. The resulting Stream is restartable.
func FromSlice[T any](items []T) *Stream[T] {
	return FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for _, item := range items {
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(item):
				}
			}
		}()
		return out
	})
}

// FromChannel wraps a channel of plain values. The sequence ends when the
// channel is closed; the caller owns closing it. A channel is consumed by a
// single pass, so the resulting Stream is not restartable.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-ch:
					if !ok {
						return
					}
					select {
					case <-ctx.Done():
						return
					case out <- core.Ok(item):
					}
				}
			}
		}()
		return out
	})
}

// FromSeq lifts a synchronous sequence into the asynchronous world. The
// reverse lift does not exist: synchronous traversal cannot suspend.
func FromSeq[T any](src iter.Seq[T]) *Stream[T] {
	return FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for item := range src {
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(item):
				}
			}
		}()
		return out
	})
}

// New classifies an arbitrary value and wraps it. The input must either
// expose the asynchronous enumeration capability (see core.EmitterOf) or be
// a zero-argument supplier whose result does. Classification happens once,
// here, not on each traversal. Any other input fails with
// core.ErrInvalidSource.
func New(src any) (*Stream[any], error) {
	if em, ok := core.EmitterOf(src); ok {
		return FromEmitter(Emitter[any](em)), nil
	}
	if produced, ok := core.Supply(src); ok {
		if em, ok := core.EmitterOf(produced); ok {
			return FromEmitter(Emitter[any](em)), nil
		}
		return nil, fmt.Errorf("stream: supplier returned %T: %w", produced, core.ErrInvalidSource)
	}
	return nil, fmt.Errorf("stream: %T: %w", src, core.ErrInvalidSource)
}

// Emit starts a fresh traversal and returns its cursor channel. The cursor
// is exclusively owned by the caller; driving the same channel from two
// consumers is undefined.
func (s *Stream[T]) Emit(ctx context.Context) <-chan core.Result[T] {
	return s.src(ctx)
}

// EmitAny adapts the stream to untyped elements, satisfying the capability
// the classifier probes for.
func (s *Stream[T]) EmitAny(ctx context.Context) <-chan core.Result[any] {
	out := make(chan core.Result[any])
	go func() {
		defer close(out)
		for res := range s.src(ctx) {
			var conv core.Result[any]
			if res.IsError() {
				conv = core.Err[any](res.Error())
			} else {
				conv = core.Ok[any](res.Value())
			}
			select {
			case <-ctx.Done():
				return
			case out <- conv:
			}
		}
	}()
	return out
}

// Unwrap returns the raw underlying emitter.
func (s *Stream[T]) Unwrap() Emitter[T] {
	return s.src
}

// AsAny re-types the stream over untyped elements.
func (s *Stream[T]) AsAny() *Stream[any] {
	return FromEmitter(s.EmitAny)
}
