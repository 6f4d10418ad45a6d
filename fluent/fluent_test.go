package fluent_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"testing"

	"github.com/ericsuh/fluent-iter/fluent"
)

func TestWrapClassifiesSources(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    []any
		wantErr bool
	}{
		{"slice", []int{1, 2, 7}, []any{1, 2, 7}, false},
		{"generator func via supplier", func() any {
			return func(yield func(any) bool) {
				for _, v := range []any{1, 2, 7} {
					if !yield(v) {
						return
					}
				}
			}
		}, []any{1, 2, 7}, false},
		{"wrapper", fluent.Of(1, 2), []any{1, 2}, false},
		{"int", 42, nil, true},
		{"string", "abc", nil, true},
		{"nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := fluent.Wrap(tt.src)
			if tt.wantErr {
				if !errors.Is(err, fluent.ErrInvalidSource) {
					t.Fatalf("Wrap(%T) error = %v, want ErrInvalidSource", tt.src, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Wrap(%T) unexpected error: %v", tt.src, err)
			}
			if got := s.ToSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("ToSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapAsync(t *testing.T) {
	s, err := fluent.WrapAsync(fluent.OfAsync(1, 2, 7))
	if err != nil {
		t.Fatalf("WrapAsync() error: %v", err)
	}
	got, err := s.ToSlice(context.Background())
	if err != nil {
		t.Fatalf("ToSlice() error: %v", err)
	}
	want := []any{1, 2, 7}
	if !slices.Equal(got, want) {
		t.Errorf("ToSlice() = %v, want %v", got, want)
	}

	if _, err := fluent.WrapAsync([]int{1}); !errors.Is(err, fluent.ErrInvalidSource) {
		t.Errorf("WrapAsync(sync slice) error = %v, want ErrInvalidSource", err)
	}
}

func TestClassifierPredicates(t *testing.T) {
	if !fluent.IsEnumerable([]int{1}) {
		t.Error("IsEnumerable(slice) = false, want true")
	}
	if fluent.IsEnumerable("text") {
		t.Error("IsEnumerable(string) = true, want false")
	}
	if !fluent.IsAsyncEnumerable(fluent.OfAsync(1)) {
		t.Error("IsAsyncEnumerable(stream) = false, want true")
	}
	if fluent.IsAsyncEnumerable(fluent.Of(1)) {
		t.Error("IsAsyncEnumerable(sync wrapper) = true, want false")
	}
}

func TestMapConstructors(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	keys := fluent.Keys(m).ToSlice()
	sort.Strings(keys)
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}

	values := fluent.Values(m).ToSlice()
	sort.Ints(values)
	if !slices.Equal(values, []int{1, 2}) {
		t.Errorf("Values() = %v, want [1 2]", values)
	}

	entries := fluent.Entries(m).ToSlice()
	if len(entries) != 2 {
		t.Fatalf("Entries() has %d entries, want 2", len(entries))
	}
	seen := map[string]int{}
	for _, e := range entries {
		seen[e.Key] = e.Value
	}
	if seen["a"] != 1 || seen["b"] != 2 {
		t.Errorf("Entries() = %v, want a:1 b:2", seen)
	}
}

func TestSources(t *testing.T) {
	if got := fluent.Range(2, 6).ToSlice(); !slices.Equal(got, []int{2, 3, 4, 5}) {
		t.Errorf("Range(2, 6) = %v, want [2 3 4 5]", got)
	}
	if got := fluent.Range(3, 3).ToSlice(); got != nil {
		t.Errorf("Range(3, 3) = %v, want empty", got)
	}
	if got := fluent.Empty[int]().ToSlice(); got != nil {
		t.Errorf("Empty() = %v, want empty", got)
	}
	if got := fluent.Once(7).ToSlice(); !slices.Equal(got, []int{7}) {
		t.Errorf("Once(7) = %v, want [7]", got)
	}

	n := 0
	gen := fluent.Generate(func() (int, bool) {
		n++
		return n, n <= 3
	})
	if got := gen.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Generate() = %v, want [1 2 3]", got)
	}
}

func TestPipelineComposition(t *testing.T) {
	got := fluent.Range(1, 11).
		Filter(func(v int) bool { return v%2 == 0 }).
		Map(func(v int) int { return v * v }).
		Reduce(0, func(acc, v int) int { return acc + v })
	// 4 + 16 + 36 + 64 + 100
	if got != 220 {
		t.Errorf("pipeline = %d, want 220", got)
	}
}
