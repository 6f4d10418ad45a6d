package seq

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/ericsuh/fluent-iter/fluent/core"
)

func TestToSliceIdentity(t *testing.T) {
	tests := []struct {
		name  string
		items []int
	}{
		{"empty", nil},
		{"single", []int{7}},
		{"many", []int{1, 2, 7, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSlice(tt.items).ToSlice()
			if !slices.Equal(got, tt.items) {
				t.Errorf("ToSlice() = %v, want %v", got, tt.items)
			}
		})
	}
}

func TestFromSeqGenerator(t *testing.T) {
	s := FromSeq(func(yield func(int) bool) {
		for _, v := range []int{1, 2, 7} {
			if !yield(v) {
				return
			}
		}
	})
	if got := s.ToSlice(); !slices.Equal(got, []int{1, 2, 7}) {
		t.Errorf("ToSlice() = %v, want [1 2 7]", got)
	}
}

func TestFromFuncInvokesSupplierOnce(t *testing.T) {
	calls := 0
	s := FromFunc(func() iter.Seq[int] {
		calls++
		return slices.Values([]int{1, 2})
	})
	if calls != 1 {
		t.Fatalf("supplier called %d times at construction, want 1", calls)
	}
	s.ToSlice()
	s.ToSlice()
	if calls != 1 {
		t.Errorf("supplier called %d times after traversals, want 1", calls)
	}
}

func TestNewClassification(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    []any
		wantErr bool
	}{
		{"slice", []int{1, 2, 7}, []any{1, 2, 7}, false},
		{"supplier", func() []int { return []int{1, 2} }, []any{1, 2}, false},
		{"wrapper", FromSlice([]string{"a"}), []any{"a"}, false},
		{"int", 42, nil, true},
		{"nil", nil, nil, true},
		{"string", "abc", nil, true},
		{"supplier of non-enumerable", func() int { return 3 }, nil, true},
		{"nil supplier", (func() any)(nil), nil, true},
		{"nil wrapper pointer", (*Seq[int])(nil), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.src)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidSource) {
					t.Fatalf("New(%T) error = %v, want ErrInvalidSource", tt.src, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%T) unexpected error: %v", tt.src, err)
			}
			if got := s.ToSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("ToSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapPreservesCountAndOrder(t *testing.T) {
	got := FromSlice([]int{1, 2, 7}).Map(func(v int) int { return v * 10 }).ToSlice()
	if !slices.Equal(got, []int{10, 20, 70}) {
		t.Errorf("Map() = %v, want [10 20 70]", got)
	}
}

func TestMapTypeChanging(t *testing.T) {
	got := Map(FromSlice([]int{1, 2}), func(v int) string {
		return string(rune('a' + v))
	}).ToSlice()
	if !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Map() = %v, want [b c]", got)
	}
}

func TestMapIsLazy(t *testing.T) {
	calls := 0
	s := FromSlice([]int{1, 2, 7}).Map(func(v int) int { calls++; return v })
	if calls != 0 {
		t.Fatalf("Map consumed %d elements at construction, want 0", calls)
	}
	s.ToSlice()
	if calls != 3 {
		t.Errorf("Map applied %d times after traversal, want 3", calls)
	}
}

func TestFilterKeepsRelativeOrder(t *testing.T) {
	got := FromSlice([]int{5, 2, 8, 1, 6}).Filter(func(v int) bool { return v > 3 }).ToSlice()
	if !slices.Equal(got, []int{5, 8, 6}) {
		t.Errorf("Filter() = %v, want [5 8 6]", got)
	}
}

func TestEnumerateIndicesIgnoreUpstreamFilter(t *testing.T) {
	got := FromSlice([]int{1, 2, 3, 4, 5}).
		Filter(func(v int) bool { return v%2 == 1 }).
		Enumerate().
		ToSlice()
	want := []core.Indexed[int]{{Index: 0, Value: 1}, {Index: 1, Value: 3}, {Index: 2, Value: 5}}
	if !slices.Equal(got, want) {
		t.Errorf("Enumerate() = %v, want %v", got, want)
	}
}

func TestZipTruncatesToShorter(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []string
		want []core.Pair[int, string]
	}{
		{"equal length", []int{1, 2}, []string{"a", "b"},
			[]core.Pair[int, string]{{A: 1, B: "a"}, {A: 2, B: "b"}}},
		{"first shorter", []int{1}, []string{"a", "b", "c"},
			[]core.Pair[int, string]{{A: 1, B: "a"}}},
		{"second shorter", []int{1, 2, 3}, []string{"a"},
			[]core.Pair[int, string]{{A: 1, B: "a"}}},
		{"first empty", nil, []string{"a"}, nil},
		{"second empty", []int{1}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Zip(FromSlice(tt.a), FromSlice(tt.b)).ToSlice()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Zip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConcatOrder(t *testing.T) {
	got := FromSlice([]int{1, 2}).Concat(FromSlice([]int{7}), FromSlice([]int{3, 4})).ToSlice()
	if !slices.Equal(got, []int{1, 2, 7, 3, 4}) {
		t.Errorf("Concat() = %v, want [1 2 7 3 4]", got)
	}
}

func TestConcatHeterogeneousThroughAsAny(t *testing.T) {
	got := FromSlice([]int{1}).AsAny().Concat(FromSlice([]string{"a"}).AsAny()).ToSlice()
	if len(got) != 2 || got[0] != 1 || got[1] != "a" {
		t.Errorf("Concat() = %v, want [1 a]", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		s    *Seq[int]
		sep  string
		want string
	}{
		{"empty", FromSlice[int](nil), ",", ""},
		{"single", FromSlice([]int{7}), ",", "7"},
		{"many", FromSlice([]int{1, 2, 7}), ",", "1,2,7"},
		{"custom sep", FromSlice([]int{1, 2}), " - ", "1 - 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Join(tt.sep); got != tt.want {
				t.Errorf("Join(%q) = %q, want %q", tt.sep, got, tt.want)
			}
		})
	}
}

func TestAllAny(t *testing.T) {
	positive := func(v int) bool { return v > 0 }

	if !FromSlice[int](nil).All(positive) {
		t.Error("All() over empty sequence = false, want true")
	}
	if FromSlice[int](nil).Any(positive) {
		t.Error("Any() over empty sequence = true, want false")
	}
	if !FromSlice([]int{1, 2}).All(positive) {
		t.Error("All() = false, want true")
	}
	if FromSlice([]int{1, -2}).All(positive) {
		t.Error("All() = true, want false")
	}
	if !FromSlice([]int{-1, 2}).Any(positive) {
		t.Error("Any() = false, want true")
	}
	if FromSlice([]int{-1, -2}).Any(positive) {
		t.Error("Any() = true, want false")
	}
}

func TestAllShortCircuits(t *testing.T) {
	calls := 0
	FromSlice([]int{1, -2, 3, 4}).All(func(v int) bool {
		calls++
		return v > 0
	})
	if calls != 2 {
		t.Errorf("All() evaluated %d elements, want 2", calls)
	}
}

func TestReduce(t *testing.T) {
	add := func(acc, v int) int { return acc + v }

	if got := FromSlice([]int{1, 2, 7}).Reduce(0, add); got != 10 {
		t.Errorf("Reduce() = %d, want 10", got)
	}
	if got := FromSlice[int](nil).Reduce(42, add); got != 42 {
		t.Errorf("Reduce() over empty sequence = %d, want initial 42", got)
	}
}

func TestFold(t *testing.T) {
	got := Fold(FromSlice([]int{1, 2, 7}), "x", func(acc string, v int) string {
		return acc + string(rune('0'+v))
	})
	if got != "x127" {
		t.Errorf("Fold() = %q, want %q", got, "x127")
	}
}

func TestToSetCollapsesDuplicates(t *testing.T) {
	set := ToSet(FromSlice([]int{1, 2, 2, 7, 1}))
	if len(set) != 3 {
		t.Fatalf("ToSet() has %d elements, want 3", len(set))
	}
	for _, v := range []int{1, 2, 7} {
		if _, ok := set[v]; !ok {
			t.Errorf("ToSet() missing %d", v)
		}
	}
}

func TestForEachIsMapAlias(t *testing.T) {
	var seen []int
	s := FromSlice([]int{1, 2}).ForEach(func(v int) int {
		seen = append(seen, v)
		return v
	})
	if len(seen) != 0 {
		t.Fatal("ForEach consumed the source at construction")
	}
	got := s.ToSlice()
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("ForEach() still produces a sequence, got %v", got)
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("ForEach side effects = %v, want [1 2]", seen)
	}
}

func TestWrapperIsRestartable(t *testing.T) {
	s := FromSlice([]int{1, 2, 7}).Map(func(v int) int { return v * 2 })
	first := s.ToSlice()
	second := s.ToSlice()
	if !slices.Equal(first, second) {
		t.Errorf("second traversal = %v, want %v", second, first)
	}
}

func TestCountAfterFilter(t *testing.T) {
	got := FromSlice([]int{1, 2, 3, 4}).Filter(func(v int) bool { return v%2 == 0 }).Count()
	if got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestUnwrapReturnsSource(t *testing.T) {
	src := slices.Values([]int{1, 2})
	var got []int
	for v := range FromSeq(src).Unwrap() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Unwrap() yielded %v, want [1 2]", got)
	}
}
