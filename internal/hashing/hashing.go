package hashing

// PositionSet tracks seen position keys.
type PositionSet struct {
	// seen maps a key to the number of times it was added
	seen map[uint64]int
	// maxCapacity limits distinct keys (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of repeated keys
	duplicateCount int
}

// NewPositionSet creates a set holding at most maxCapacity distinct keys.
// maxCapacity of 0 means unlimited capacity.
func NewPositionSet(maxCapacity int) *PositionSet {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PositionSet{
		seen:        make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records key and reports whether it had been seen before.
// New keys are dropped once the set is full.
func (s *PositionSet) CheckAndAdd(key uint64) bool {
	if n, ok := s.seen[key]; ok {
		s.seen[key] = n + 1
		s.duplicateCount++
		return true
	}
	if s.IsFull() {
		return false
	}
	s.seen[key] = 1
	return false
}

// DuplicateCount returns the number of repeated keys added.
func (s *PositionSet) DuplicateCount() int {
	return s.duplicateCount
}

// UniqueCount returns the number of distinct keys.
func (s *PositionSet) UniqueCount() int {
	return len(s.seen)
}

// IsFull returns true if the set has reached its capacity limit.
func (s *PositionSet) IsFull() bool {
	return s.maxCapacity > 0 && len(s.seen) >= s.maxCapacity
}
