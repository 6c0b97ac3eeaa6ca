package swiss

// Set is a Map[K, struct{}] with the value field dropped: the two share
// layout and probing algorithm, so Set is implemented as a thin wrapper
// rather than a separate table type.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet builds a Set configured by opts; see New for option handling.
func NewSet[K comparable](opts ...Option) *Set[K] {
	return &Set[K]{m: New[K, struct{}](opts...)}
}

// Add adds key if absent and reports whether it did.
func (s *Set[K]) Add(key K) bool {
	return s.m.Insert(key, struct{}{})
}

// Remove removes key if present and reports whether it was.
func (s *Set[K]) Remove(key K) bool {
	return s.m.Delete(key)
}

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Len returns the number of members.
func (s *Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set has no members.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Capacity returns the number of slots the set can address without a
// rehash.
func (s *Set[K]) Capacity() int { return s.m.Capacity() }

// Clear removes all members without shrinking the set.
func (s *Set[K]) Clear() { s.m.Clear() }

// Reserve grows the set, if necessary, so it can hold n members without
// triggering a rehash.
func (s *Set[K]) Reserve(n int) { s.m.Reserve(n) }

// Keys returns an iterator over the set's members, in unspecified order.
func (s *Set[K]) Keys() func(yield func(K) bool) { return s.m.Keys() }

// Clone returns an independent copy of the set.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{m: s.m.Clone()} }
