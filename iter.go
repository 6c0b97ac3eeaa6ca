package swiss

// Keys returns an iterator over the table's keys, in unspecified order.
// Mutating the table during iteration is not supported.
func (m *Map[K, V]) Keys() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		m.eachFilled(func(i int) bool {
			return yield(m.slots[i].key)
		})
	}
}

// Values returns an iterator over the table's values, in unspecified order.
func (m *Map[K, V]) Values() func(yield func(V) bool) {
	return func(yield func(V) bool) {
		m.eachFilled(func(i int) bool {
			return yield(m.slots[i].value)
		})
	}
}

// All returns an iterator over the table's key/value pairs, in unspecified
// order.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		m.eachFilled(func(i int) bool {
			return yield(m.slots[i].key, m.slots[i].value)
		})
	}
}
