package intervalmap

import (
	"github.com/google/btree"
)

const btreeDegree = 32

var _ = (store[int, int])((*btreeStore[int, int])(nil))

type btreeStore[K any, V any] struct {
	tree *btree.BTreeG[Boundary[K, V]]
	less func(a, b K) bool
}

func newBtreeStore[K any, V any](less func(a, b K) bool) *btreeStore[K, V] {
	return &btreeStore[K, V]{
		tree: btree.NewG[Boundary[K, V]](btreeDegree, func(a, b Boundary[K, V]) bool {
			return less(a.Key, b.Key)
		}),
		less: less,
	}
}

func (s *btreeStore[K, V]) pivot(key K) Boundary[K, V] {
	return Boundary[K, V]{Key: key}
}

func (s *btreeStore[K, V]) floor(key K) (b Boundary[K, V], ok bool) {
	s.tree.DescendLessOrEqual(s.pivot(key), func(item Boundary[K, V]) bool {
		b = item
		ok = true
		return false
	})
	return
}

func (s *btreeStore[K, V]) lower(key K) (b Boundary[K, V], ok bool) {
	s.tree.DescendLessOrEqual(s.pivot(key), func(item Boundary[K, V]) bool {
		if !s.less(item.Key, key) {
			// Exact match, keep descending.
			return true
		}
		b = item
		ok = true
		return false
	})
	return
}

func (s *btreeStore[K, V]) set(key K, value V) {
	s.tree.ReplaceOrInsert(Boundary[K, V]{Key: key, Value: value})
}

func (s *btreeStore[K, V]) delete(key K) {
	s.tree.Delete(s.pivot(key))
}

func (s *btreeStore[K, V]) deleteRange(begin, end K) {
	var keys []K
	s.tree.AscendRange(s.pivot(begin), s.pivot(end), func(item Boundary[K, V]) bool {
		keys = append(keys, item.Key)
		return true
	})
	for _, k := range keys {
		s.tree.Delete(s.pivot(k))
	}
}

func (s *btreeStore[K, V]) iterate(start K, iter func(Boundary[K, V]) bool) {
	s.tree.AscendGreaterOrEqual(s.pivot(start), iter)
}

func (s *btreeStore[K, V]) ascend(iter func(Boundary[K, V]) bool) {
	s.tree.Ascend(iter)
}

func (s *btreeStore[K, V]) len() int {
	return s.tree.Len()
}
