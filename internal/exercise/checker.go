package exercise

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/akmistry/intervalmap/internal/util"
)

// checker is a dense model of the map over [min, max]. Assignments never
// reach max, so the model also pins the value from max onward.
type checker struct {
	min, max   int
	background byte
	values     []byte
}

func newChecker(min, max int, background byte) *checker {
	return &checker{
		min:        min,
		max:        max,
		background: background,
		values:     util.SliceFill(make([]byte, max-min+1), background),
	}
}

func (c *checker) assign(s Step) {
	for k := s.Begin; k < s.End; k++ {
		c.values[k-c.min] = s.Value
	}
}

func (c *checker) index(key int) uint {
	return uint(key - c.min)
}

// changePoints returns the keys where the model's value differs from the value
// immediately to the left.
func (c *checker) changePoints() *bitset.BitSet {
	bs := bitset.New(uint(len(c.values)))
	prev := c.background
	for i, v := range c.values {
		if v != prev {
			bs.Set(uint(i))
		}
		prev = v
	}
	return bs
}

func (c *checker) boundarySet(m *Map) (*bitset.BitSet, error) {
	bs := bitset.New(uint(len(c.values)))
	for _, b := range m.Boundaries() {
		if b.Key < c.min || b.Key > c.max {
			return nil, fmt.Errorf("boundary %d outside window [%d, %d]: %w", b.Key, c.min, c.max, ErrMismatch)
		}
		bs.Set(c.index(b.Key))
	}
	return bs, nil
}

func (c *checker) check(m *Map) error {
	for i, exp := range c.values {
		key := c.min + i
		if v := m.Lookup(key); v != exp {
			return fmt.Errorf("Lookup(%d) %q != %q: %w", key, v, exp, ErrMismatch)
		}
	}
	for _, key := range []int{math.MinInt, c.min - 1, c.max + 1, math.MaxInt} {
		if v := m.Lookup(key); v != c.background {
			return fmt.Errorf("Lookup(%d) %q != background %q: %w", key, v, c.background, ErrMismatch)
		}
	}

	err := CheckCanonical(m)
	if err != nil {
		return err
	}

	actual, err := c.boundarySet(m)
	if err != nil {
		return err
	}
	expected := c.changePoints()
	if !expected.Equal(actual) {
		i, _ := expected.SymmetricDifference(actual).NextSet(0)
		return fmt.Errorf("boundary at %d: expected %v, stored %v: %w",
			c.min+int(i), expected.Test(i), actual.Test(i), ErrMismatch)
	}
	return nil
}

func (c *checker) checkIdempotent(m *Map, s Step) error {
	before, err := c.boundarySet(m)
	if err != nil {
		return err
	}
	m.Assign(s.Begin, s.End, s.Value)
	after, err := c.boundarySet(m)
	if err != nil {
		return err
	}
	if !before.Equal(after) {
		return fmt.Errorf("repeated assignment moved boundaries: %w", ErrMismatch)
	}
	return c.check(m)
}
