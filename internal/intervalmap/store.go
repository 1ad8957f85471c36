package intervalmap

// store is the ordered container holding boundaries. Implementations never
// hold two entries with the same key.
type store[K any, V any] interface {
	// Entry with the greatest key <= key.
	floor(key K) (Boundary[K, V], bool)
	// Entry with the greatest key < key.
	lower(key K) (Boundary[K, V], bool)

	set(key K, value V)
	delete(key K)
	// Removes every entry with a key in [begin, end).
	deleteRange(begin, end K)

	iterate(start K, iter func(Boundary[K, V]) bool)
	ascend(iter func(Boundary[K, V]) bool)
	len() int
}
