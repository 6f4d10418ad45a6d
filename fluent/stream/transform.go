package stream

import (
	"context"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

// Filter produces only the elements satisfying pred, preserving their
// relative order. An upstream error is forwarded and ends the stage.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	src := s.src
	return FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for res := range src(ctx) {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- res:
					}
					return
				}
				if !pred(res.Value()) {
					continue
				}
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}()
		return out
	})
}

// Where is an alias for Filter.
func (s *Stream[T]) Where(pred func(T) bool) *Stream[T] {
	return s.Filter(pred)
}

// Map produces fn(x) for each source element, in order, preserving count.
// An error from fn aborts the traversal: the stage emits it and stops. For
// maps that change the element type, use the package-level [Map].
func (s *Stream[T]) Map(fn func(T) (T, error)) *Stream[T] {
	return Map(s, fn)
}

// ForEach is an alias for Map. The result is still a lazy sequence of fn's
// return values, driven only when consumed.
func (s *Stream[T]) ForEach(fn func(T) (T, error)) *Stream[T] {
	return Map(s, fn)
}

// Concat produces all of this stream's elements followed by all elements of
// the others, one source at a time.
func (s *Stream[T]) Concat(others ...*Stream[T]) *Stream[T] {
	src := s.src
	return FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			sources := make([]Emitter[T], 0, len(others)+1)
			sources = append(sources, src)
			for _, other := range others {
				sources = append(sources, other.src)
			}
			for _, source := range sources {
				for res := range source(ctx) {
					select {
					case <-ctx.Done():
						return
					case out <- res:
					}
					if res.IsError() {
						return
					}
				}
			}
		}()
		return out
	})
}

// Enumerate pairs each element with its index. Indices start at 0 and
// increment once per element of this stream, independent of any filtering
// applied upstream.
func (s *Stream[T]) Enumerate() *Stream[core.Indexed[T]] {
	src := s.src
	return FromEmitter(func(ctx context.Context) <-chan core.Result[core.Indexed[T]] {
		out := make(chan core.Result[core.Indexed[T]])
		go func() {
			defer close(out)
			index := 0
			for res := range src(ctx) {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[core.Indexed[T]](res.Error()):
					}
					return
				}
				indexed := core.Indexed[T]{Index: index, Value: res.Value()}
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(indexed):
				}
				index++
			}
		}()
		return out
	})
}

// Map applies fn to each element of s, yielding a wrapper over the
// transformed elements. An error from fn aborts the traversal.
func Map[IN, OUT any](s *Stream[IN], fn func(IN) (OUT, error)) *Stream[OUT] {
	src := s.src
	return FromEmitter(func(ctx context.Context) <-chan core.Result[OUT] {
		out := make(chan core.Result[OUT])
		go func() {
			defer close(out)
			for res := range src(ctx) {
				if res.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[OUT](res.Error()):
					}
					return
				}
				mapped, err := fn(res.Value())
				if err != nil {
					select {
					case <-ctx.Done():
					case out <- core.Err[OUT](err):
					}
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(mapped):
				}
			}
		}()
		return out
	})
}

// Zip pairs elements of a and b by advancing both in lockstep. Both
// cursors are obtained before either element is awaited, so the two fetches
// of each round overlap rather than serialize; this changes latency only,
// never pairing order. The zipped stream stops as soon as either source is
// exhausted, discarding any unpaired tail, and cancels the longer source's
// traversal.
func Zip[A, B any](a *Stream[A], b *Stream[B]) *Stream[core.Pair[A, B]] {
	srcA, srcB := a.src, b.src
	return FromEmitter(func(ctx context.Context) <-chan core.Result[core.Pair[A, B]] {
		out := make(chan core.Result[core.Pair[A, B]])
		go func() {
			defer close(out)
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			chA := srcA(ctx)
			chB := srcB(ctx)
			for {
				resA, okA := <-chA
				resB, okB := <-chB
				if !okA || !okB {
					return
				}
				if resA.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[core.Pair[A, B]](resA.Error()):
					}
					return
				}
				if resB.IsError() {
					select {
					case <-ctx.Done():
					case out <- core.Err[core.Pair[A, B]](resB.Error()):
					}
					return
				}
				pair := core.Pair[A, B]{A: resA.Value(), B: resB.Value()}
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(pair):
				}
			}
		}()
		return out
	})
}
