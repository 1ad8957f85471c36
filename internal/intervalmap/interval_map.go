package intervalmap

import (
	"cmp"
	"fmt"
	"strings"
)

// Boundary is a stored change point: Value holds from Key up to the next
// boundary.
type Boundary[K any, V any] struct {
	Key   K
	Value V
}

// Map is a total function from K to V that is constant over intervals. Keys
// below the first boundary map to the background value.
//
// A Map is not safe for concurrent use.
type Map[K any, V comparable] struct {
	background V
	less       func(a, b K) bool
	store      store[K, V]
}

func New[K cmp.Ordered, V comparable](background V) *Map[K, V] {
	return NewFunc[K](background, cmp.Less[K])
}

// NewFunc returns a Map whose keys are ordered by less, which must be a strict
// weak order.
func NewFunc[K any, V comparable](background V, less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{
		background: background,
		less:       less,
		store:      newBtreeStore[K, V](less),
	}
}

// NewUint64 returns a Map over integer keys backed by a radix tree.
func NewUint64[V comparable](background V) *Map[uint64, V] {
	return &Map[uint64, V]{
		background: background,
		less:       func(a, b uint64) bool { return a < b },
		store:      &radixStore[V]{},
	}
}

func (m *Map[K, V]) Background() V {
	return m.background
}

// Len returns the number of stored boundaries.
func (m *Map[K, V]) Len() int {
	return m.store.len()
}

func (m *Map[K, V]) Lookup(key K) V {
	if b, ok := m.store.floor(key); ok {
		return b.Value
	}
	return m.background
}

// valueBefore returns the value holding immediately to the left of key.
func (m *Map[K, V]) valueBefore(key K) V {
	if b, ok := m.store.lower(key); ok {
		return b.Value
	}
	return m.background
}

// Assign sets the value of every key in [begin, end) to value. If
// !(begin < end), Assign does nothing.
func (m *Map[K, V]) Assign(begin, end K, value V) {
	if !m.less(begin, end) {
		return
	}

	// Both neighbours must be read before the range is cleared.
	endValue := m.Lookup(end)
	leftValue := m.valueBefore(begin)

	m.store.deleteRange(begin, end)
	if value != leftValue {
		m.store.set(begin, value)
	}
	if endValue != value {
		m.store.set(end, endValue)
	} else {
		m.store.delete(end)
	}
}

// Iterate calls iter for each boundary with a key >= start, in increasing key
// order, until iter returns false.
func (m *Map[K, V]) Iterate(start K, iter func(Boundary[K, V]) bool) {
	m.store.iterate(start, iter)
}

// Boundaries returns a copy of all stored boundaries in increasing key order.
func (m *Map[K, V]) Boundaries() []Boundary[K, V] {
	bs := make([]Boundary[K, V], 0, m.store.len())
	m.store.ascend(func(b Boundary[K, V]) bool {
		bs = append(bs, b)
		return true
	})
	return bs
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{%v |", m.background)
	m.store.ascend(func(b Boundary[K, V]) bool {
		fmt.Fprintf(&sb, " %v:%v", b.Key, b.Value)
		return true
	})
	sb.WriteString("}")
	return sb.String()
}
