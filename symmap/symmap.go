// Package symmap provides Map, an associative store keyed by unordered
// pairs of integer indices. It backs undirected per-edge data (door
// geometry attached to a room pair) without duplicating the value for
// each direction.
//
// Invariant: for every i, j the keys (i, j) and (j, i) address the same
// slot, so a value stored under one ordering is retrieved under the other.
//
// Complexity: all operations are O(1) amortized map access.
package symmap

// key is the canonical (low, high) ordering of an index pair.
type key struct {
	lo, hi int
}

// canonical orders an unordered pair so both orientations collide.
func canonical(i, j int) key {
	if i > j {
		return key{lo: j, hi: i}
	}

	return key{lo: i, hi: j}
}

// Map stores one value per unordered pair of indices.
// The zero Map is not usable; construct with New.
type Map[V any] struct {
	m map[key]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{m: make(map[key]V)}
}

// Put stores v under the unordered pair (i, j), replacing any prior value.
func (m *Map[V]) Put(i, j int, v V) {
	m.m[canonical(i, j)] = v
}

// Get returns the value stored under the unordered pair (i, j) and whether
// one exists.
func (m *Map[V]) Get(i, j int) (V, bool) {
	v, ok := m.m[canonical(i, j)]

	return v, ok
}

// Has reports whether a value is stored under the unordered pair (i, j).
func (m *Map[V]) Has(i, j int) bool {
	_, ok := m.m[canonical(i, j)]

	return ok
}

// Len returns the number of stored pairs.
func (m *Map[V]) Len() int { return len(m.m) }
