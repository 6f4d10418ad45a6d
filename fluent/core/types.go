package core

// KeyValue represents a key-value pair from a map.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Pair holds one element from each of two zipped sequences.
type Pair[A, B any] struct {
	A A
	B B
}

// Indexed pairs an element with its position in the sequence that produced
// it. Indices start at 0 and increase by 1 per element, regardless of any
// filtering applied upstream.
type Indexed[T any] struct {
	Index int
	Value T
}
