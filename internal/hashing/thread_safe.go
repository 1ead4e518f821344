package hashing

import "sync"

// ThreadSafePositionSet wraps PositionSet with mutex protection for concurrent access.
type ThreadSafePositionSet struct {
	set *PositionSet
	mu  sync.RWMutex
}

// NewThreadSafePositionSet creates a new thread-safe set.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionSet(maxCapacity int) *ThreadSafePositionSet {
	return &ThreadSafePositionSet{
		set: NewPositionSet(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether key was seen and records it.
func (s *ThreadSafePositionSet) CheckAndAdd(key uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.CheckAndAdd(key)
}

// DuplicateCount returns the number of repeated keys added.
func (s *ThreadSafePositionSet) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.DuplicateCount()
}

// UniqueCount returns the number of distinct keys.
func (s *ThreadSafePositionSet) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.UniqueCount()
}

// IsFull returns true if the set has reached its capacity limit.
func (s *ThreadSafePositionSet) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.IsFull()
}
