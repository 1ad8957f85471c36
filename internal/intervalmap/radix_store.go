package intervalmap

import (
	"log"

	"github.com/akmistry/go-util/radix-tree"
)

var _ = (store[uint64, int])((*radixStore[int])(nil))

type radixEntry[V any] struct {
	key   uint64
	value V
}

func (e *radixEntry[V]) Key() uint64 {
	return e.key
}

func (e *radixEntry[V]) boundary() Boundary[uint64, V] {
	return Boundary[uint64, V]{Key: e.key, Value: e.value}
}

type radixStore[V any] struct {
	tree  radix.Tree
	count int
}

func (s *radixStore[V]) floorEntry(key uint64) (e *radixEntry[V]) {
	s.tree.DescendLessOrEqualI(key, func(i radix.Item) bool {
		e = i.(*radixEntry[V])
		return false
	})
	return
}

func (s *radixStore[V]) getEntry(key uint64) *radixEntry[V] {
	e := s.floorEntry(key)
	if e == nil || e.key != key {
		return nil
	}
	return e
}

func (s *radixStore[V]) floor(key uint64) (Boundary[uint64, V], bool) {
	e := s.floorEntry(key)
	if e == nil {
		return Boundary[uint64, V]{}, false
	}
	return e.boundary(), true
}

func (s *radixStore[V]) lower(key uint64) (Boundary[uint64, V], bool) {
	if key == 0 {
		return Boundary[uint64, V]{}, false
	}
	return s.floor(key - 1)
}

func (s *radixStore[V]) set(key uint64, value V) {
	if e := s.getEntry(key); e != nil {
		e.value = value
		return
	}

	e := &radixEntry[V]{key: key, value: value}
	old := s.tree.ReplaceOrInsert(e)
	if old != nil {
		log.Panicf("unexpected old entry: %+v, adding new entry: %+v", old, e)
	}
	s.count++
}

func (s *radixStore[V]) remove(e *radixEntry[V]) {
	if s.tree.Delete(e) != e {
		log.Panicf("item not deleted: %+v", e)
	}
	s.count--
}

func (s *radixStore[V]) delete(key uint64) {
	if e := s.getEntry(key); e != nil {
		s.remove(e)
	}
}

func (s *radixStore[V]) deleteRange(begin, end uint64) {
	var items []*radixEntry[V]
	s.tree.AscendGreaterOrEqualI(begin, func(i radix.Item) bool {
		e := i.(*radixEntry[V])
		if e.key >= end {
			return false
		}
		items = append(items, e)
		return true
	})
	for _, e := range items {
		s.remove(e)
	}
}

func (s *radixStore[V]) iterate(start uint64, iter func(Boundary[uint64, V]) bool) {
	s.tree.AscendGreaterOrEqualI(start, func(i radix.Item) bool {
		return iter(i.(*radixEntry[V]).boundary())
	})
}

func (s *radixStore[V]) ascend(iter func(Boundary[uint64, V]) bool) {
	s.tree.Ascend(func(i radix.Item) bool {
		return iter(i.(*radixEntry[V]).boundary())
	})
}

func (s *radixStore[V]) len() int {
	return s.count
}
