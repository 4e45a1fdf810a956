// Package spatial provides a small position-to-value store where each value is
// also addressable by a key extracted from it.
//
// Positions and values live in parallel slices scanned linearly. Per-level
// populations are small, so the scan stays in cache; a grid-bucketed store
// can replace it behind the same method set when populations grow.
package spatial

import "fmt"

// Map holds at most one value per position and at most one value per key
type Map[P comparable, K comparable, V any] struct {
	key       func(*V) K
	positions []P
	values    []V
}

// New creates an empty Map; key extracts the identity of a stored value
func New[P comparable, K comparable, V any](key func(*V) K) *Map[P, K, V] {
	if key == nil {
		panic("spatial: nil key func")
	}
	return &Map[P, K, V]{key: key}
}

// Len returns the number of entries
func (m *Map[P, K, V]) Len() int { return len(m.values) }

// Clear drops all entries, keeping capacity
func (m *Map[P, K, V]) Clear() {
	clear(m.values)
	m.positions = m.positions[:0]
	m.values = m.values[:0]
}

// Positions returns the occupied positions in insertion order
// The slice aliases internal storage until the next mutation
func (m *Map[P, K, V]) Positions() []P { return m.positions }

// Values returns the stored values in insertion order
// The slice aliases internal storage until the next mutation
func (m *Map[P, K, V]) Values() []V { return m.values }

func (m *Map[P, K, V]) indexAt(p P) int {
	for i := range m.positions {
		if m.positions[i] == p {
			return i
		}
	}
	return -1
}

func (m *Map[P, K, V]) indexOf(k K) int {
	for i := range m.values {
		if m.key(&m.values[i]) == k {
			return i
		}
	}
	return -1
}

// Insert stores v at p unless p is occupied or v's key is already stored
// Returns the stored value and true, or the conflicting entry and false
func (m *Map[P, K, V]) Insert(p P, v V) (*V, bool) {
	if i := m.indexAt(p); i >= 0 {
		return &m.values[i], false
	}
	if i := m.indexOf(m.key(&v)); i >= 0 {
		return &m.values[i], false
	}
	m.positions = append(m.positions, p)
	m.values = append(m.values, v)
	return &m.values[len(m.values)-1], true
}

// InsertOrReplace stores v at p, overwriting any occupant
// The bool reports whether an occupant was replaced. Panics if v's key is
// held by an entry at another position
func (m *Map[P, K, V]) InsertOrReplace(p P, v V) (*V, bool) {
	i := m.indexAt(p)
	if j := m.indexOf(m.key(&v)); j >= 0 && j != i {
		panic(fmt.Sprintf("spatial: key %v already stored at %v", m.key(&v), m.positions[j]))
	}
	if i >= 0 {
		m.values[i] = v
		return &m.values[i], true
	}
	m.positions = append(m.positions, p)
	m.values = append(m.values, v)
	return &m.values[len(m.values)-1], false
}

// move relocates entry i; a target held by another entry rejects the move
func (m *Map[P, K, V]) move(i int, to P) bool {
	if i < 0 {
		return false
	}
	if j := m.indexAt(to); j >= 0 && j != i {
		return false
	}
	m.positions[i] = to
	return true
}

func (m *Map[P, K, V]) moveIf(i int, fn func(v *V, p P) (P, bool)) bool {
	if i < 0 {
		return false
	}
	to, ok := fn(&m.values[i], m.positions[i])
	if !ok {
		return false
	}
	return m.move(i, to)
}

// MoveTo relocates the entry with key k to p
func (m *Map[P, K, V]) MoveTo(k K, p P) bool {
	return m.move(m.indexOf(k), p)
}

// MoveToIf asks fn for the new position of the entry with key k
// The move is skipped when fn returns false
func (m *Map[P, K, V]) MoveToIf(k K, fn func(v *V, p P) (P, bool)) bool {
	return m.moveIf(m.indexOf(k), fn)
}

// MoveAt relocates the entry at from to to
func (m *Map[P, K, V]) MoveAt(from, to P) bool {
	return m.move(m.indexAt(from), to)
}

// MoveAtIf asks fn for the new position of the entry at p
func (m *Map[P, K, V]) MoveAtIf(p P, fn func(v *V, p P) (P, bool)) bool {
	return m.moveIf(m.indexAt(p), fn)
}

func (m *Map[P, K, V]) eraseIndex(i int) (K, bool) {
	var k K
	if i < 0 {
		return k, false
	}
	k = m.key(&m.values[i])

	// Order preserving: later entries shift down
	copy(m.positions[i:], m.positions[i+1:])
	copy(m.values[i:], m.values[i+1:])
	last := len(m.values) - 1
	var zero V
	m.values[last] = zero
	m.positions = m.positions[:last]
	m.values = m.values[:last]
	return k, true
}

// Erase removes the entry at p and returns its key
func (m *Map[P, K, V]) Erase(p P) (K, bool) {
	return m.eraseIndex(m.indexAt(p))
}

// EraseKey removes the entry with key k
func (m *Map[P, K, V]) EraseKey(k K) (K, bool) {
	return m.eraseIndex(m.indexOf(k))
}

// Find returns the value at p, nil if empty
// The pointer is invalidated by the next insert or erase
func (m *Map[P, K, V]) Find(p P) *V {
	if i := m.indexAt(p); i >= 0 {
		return &m.values[i]
	}
	return nil
}

// FindKey returns the value with key k and its position
func (m *Map[P, K, V]) FindKey(k K) (*V, P, bool) {
	if i := m.indexOf(k); i >= 0 {
		return &m.values[i], m.positions[i], true
	}
	var p P
	return nil, p, false
}

// ForEach visits entries in insertion order until fn returns false
// fn must not insert or erase
func (m *Map[P, K, V]) ForEach(fn func(v *V, p P) bool) {
	for i := range m.values {
		if !fn(&m.values[i], m.positions[i]) {
			return
		}
	}
}
