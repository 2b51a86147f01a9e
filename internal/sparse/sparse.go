// Package sparse provides a sparse set over uint32 values.
//
// A sparse set supports O(1) insertion and membership testing while
// keeping a dense list of its elements, with no per-element hashing or
// allocation. The universe of values must be known up front, which
// fits automaton state IDs: the suffix automaton validator uses one to
// memoize which states have already been proven to reach the root
// along suffix links.
package sparse

// SparseSet is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its index in the dense array; an
// entry is a member iff that index points back at the value.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSparseSet creates a sparse set holding values in [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. A no-op if already present.
// Values at or beyond capacity are ignored.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) || value >= uint32(len(s.sparse)) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements in O(1) time.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of elements in the set.
func (s *SparseSet) Size() int {
	return int(s.size)
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}
