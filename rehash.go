package swiss

import "math"

// rehashOrGrow is called once insert finds the table too full to guarantee
// a free slot. In-place compaction only helps when the table's fullness is
// actually DELETED slots rather than live ones: if the live count alone
// would already sit at or below the configured load factor, clearing
// tombstones frees enough room without growing; otherwise the table is
// genuinely crowded with live elements and must grow.
func (m *Map[K, V]) rehashOrGrow() {
	if float64(m.length+1) <= float64(m.capacity)*m.maxLoadFactor {
		m.rehashInPlace()
		return
	}
	target := int(math.Ceil(float64(m.capacity) * 50 / 32))
	if min := int(math.Ceil(float64(m.length+1) / m.maxLoadFactor)); min > target {
		target = min
	}
	m.grow(roundSizeUp(target))
}

// rehashInPlace clears every DELETED slot without changing capacity. Rather
// than relocating elements in place with a swap-chasing walk, it collects
// the live pairs into a temporary buffer, resets the control array, and
// reinserts them fresh — the same O(capacity) asymptotic cost as a
// control-array scan either way, traded for O(length) temporary space
// instead of O(1).
func (m *Map[K, V]) rehashInPlace() {
	type pair struct {
		key   K
		value V
	}
	live := make([]pair, 0, m.length)
	m.eachFilled(func(i int) bool {
		live = append(live, pair{m.slots[i].key, m.slots[i].value})
		return true
	})

	m.reset(m.sizeInfo)
	for _, kv := range live {
		m.insertFresh(m.hash(kv.key), kv.key, kv.value)
	}
}

// grow reallocates storage at a larger size and reinserts every live entry.
func (m *Map[K, V]) grow(newSize sizeInfo) {
	oldCapacity := m.capacity
	oldCtrl, oldSlots := m.ctrl, m.slots

	m.reset(newSize)
	for i := 1; i <= oldCapacity; i += groupSize {
		mb := loadGroup(oldCtrl[i:]).matchFilled()
		for mb.any() {
			idx := i + mb.next()
			s := oldSlots[idx]
			m.insertFresh(m.hash(s.key), s.key, s.value)
		}
	}
}
