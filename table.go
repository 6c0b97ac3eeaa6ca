// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package swiss is an open-addressing hash table using a parallel control
// byte array to drive SIMD-style group probing. It trades the chaining
// approach's pointer chasing for cache-line-sized metadata scans: a lookup
// that misses almost always terminates after reading one or two groups
// worth of control bytes, without ever touching a key or value.
//
// Map and Set share the same layout and probing algorithm; Set is a thin
// wrapper over a Map with struct{} values, which occupy no space.
//
// None of this is safe for concurrent use without external synchronization,
// and iteration order is unspecified and not stable across mutation.
package swiss

import "math"

// slot holds one key/value pair. Index 0 of every Map's slots array is
// never written to; it's the sentinel returned by find when a key is
// absent, letting callers test "i != 0" instead of carrying a separate
// bool out of every internal call.
type slot[K comparable, V any] struct {
	key   K
	value V
}

// Map is a generic hash table keyed by any comparable type. The zero value
// is not usable; construct one with New.
type Map[K comparable, V any] struct {
	hash  func(K) uint64
	equal func(K, K) bool

	ctrl  []uint8
	slots []slot[K, V]
	sizeInfo

	length            int // number of FILLED slots
	tombstones        int // number of DELETED slots
	maxDisplacement   int // largest number of groups any find/insert has had to skip
	maxLoadFactor     float64
	reclaimTombstones bool
}

// New builds a Map configured by opts. With no options it starts at the
// library's minimum capacity and grows from there.
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	o := getOpts[K](opts)
	m := &Map[K, V]{
		hash:              o.hasher.(func(K) uint64),
		equal:             o.equal.(func(K, K) bool),
		maxLoadFactor:     o.maxLoadFactor,
		reclaimTombstones: o.reclaimTombstones,
	}
	needed := int(math.Ceil(float64(o.capacity) / o.maxLoadFactor))
	m.reset(roundSizeUp(needed))
	return m
}

// NewMap is an alias for New.
func NewMap[K comparable, V any](opts ...Option) *Map[K, V] {
	return New[K, V](opts...)
}

// reset allocates fresh storage for the given size, discarding whatever was
// there before. Used by New and by the rehash paths that reuse the same
// capacity.
func (m *Map[K, V]) reset(si sizeInfo) {
	m.sizeInfo = si
	m.slots = make([]slot[K, V], si.capacity+1)
	m.ctrl = make([]uint8, si.capacity+groupSize)
	m.length = 0
	m.tombstones = 0
	m.maxDisplacement = 0
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int { return m.length }

// IsEmpty reports whether the table holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.length == 0 }

// Capacity returns the number of slots the table can address without a
// rehash; it is always a multiple of groupSize.
func (m *Map[K, V]) Capacity() int { return m.capacity }

// LoadFactor returns len/capacity.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.length) / float64(m.capacity)
}

// MaxDisplacement returns the largest number of probe groups any find or
// insert has had to walk past before terminating, since the table was last
// rehashed. It is a diagnostic only: lookups never use it to bound or
// truncate a scan, since a more-displaced entry could still be inserted by
// a later caller.
func (m *Map[K, V]) MaxDisplacement() int { return m.maxDisplacement }

// find returns the key's hash and its slot index, or index 0 if the key is
// absent. It is the only place that relies on "a group with an EMPTY byte
// terminates the scan" for correctness; insert only ever calls find first
// to establish absence, then is free to land on any not-set slot.
func (m *Map[K, V]) find(key K) (uint64, int) {
	hash := m.hash(key)
	fp := h2(hash)
	steps := 0
	for p := newProbeSeq(h1(hash), &m.sizeInfo); ; p = p.next() {
		g := loadGroup(m.ctrl[p.offset:])
		mb := g.matchByte(fp)
		for mb.any() {
			i := p.index(mb.next())
			if m.equal(m.slots[i].key, key) {
				if steps > m.maxDisplacement {
					m.maxDisplacement = steps
				}
				return hash, i
			}
		}
		if g.matchEmpty().any() {
			return hash, 0
		}
		steps++
	}
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if _, i := m.find(key); i != 0 {
		return m.slots[i].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, i := m.find(key)
	return i != 0
}

// Insert adds key/value if key is absent, and reports whether it did.
// Existing entries are left untouched.
func (m *Map[K, V]) Insert(key K, value V) bool {
	hash, i := m.find(key)
	if i != 0 {
		return false
	}
	m.insertAt(hash, key, value)
	return true
}

// InsertOrAssign inserts key/value, overwriting any existing value. It
// returns the previous value and whether one existed.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (V, bool) {
	hash, i := m.find(key)
	if i != 0 {
		prev := m.slots[i].value
		m.slots[i].value = value
		return prev, true
	}
	m.insertAt(hash, key, value)
	var zero V
	return zero, false
}

// InsertUnique inserts key/value under the precondition that key is not
// already present. Callers that can't guarantee this should use Insert
// instead: under the swissdebug build tag, a violation panics; otherwise
// it silently adds a second entry for key, and which of the two a lookup
// returns depends on where each one sits on the probe path.
func (m *Map[K, V]) InsertUnique(key K, value V) {
	if debugAssertions {
		if _, i := m.find(key); i != 0 {
			panic("swiss: InsertUnique called with a key already present")
		}
	}
	m.insertAt(m.hash(key), key, value)
}

// Delete removes key if present and reports whether it was.
func (m *Map[K, V]) Delete(key K) bool {
	_, i := m.find(key)
	if i == 0 {
		return false
	}
	m.erase(i)
	return true
}

// insertAt places key/value into the table, growing or compacting first if
// the table is too full to guarantee a free slot. hash must be m.hash(key);
// the caller is responsible for having already established key's absence.
func (m *Map[K, V]) insertAt(hash uint64, key K, value V) int {
	if m.needRehashOrGrow() {
		m.rehashOrGrow()
		hash = m.hash(key)
	}
	return m.insertFresh(hash, key, value)
}

// insertFresh is insertAt without the capacity check, for use by the
// rehash/grow paths where the destination table was already sized to hold
// every element being reinserted.
func (m *Map[K, V]) insertFresh(hash uint64, key K, value V) int {
	var i int
	steps := 0
	for p := newProbeSeq(h1(hash), &m.sizeInfo); ; p = p.next() {
		g := loadGroup(m.ctrl[p.offset:])
		var mb groupMatch
		if m.reclaimTombstones {
			mb = g.matchNotSet()
		} else {
			mb = g.matchEmpty()
		}
		if mb.any() {
			i = p.index(mb.next())
			break
		}
		steps++
	}
	if steps > m.maxDisplacement {
		m.maxDisplacement = steps
	}
	m.occupy(i, h2(hash))
	m.slots[i] = slot[K, V]{key: key, value: value}
	m.length++
	return i
}

// erase clears slot i and marks it EMPTY instead of DELETED when the run of
// non-EMPTY control bytes containing i, bounded by an EMPTY on each side
// within groupSize bytes, is shorter than groupSize: then no groupSize-wide
// probe window over i can miss an EMPTY. Otherwise i becomes DELETED.
func (m *Map[K, V]) erase(i int) {
	var zero slot[K, V]
	m.slots[i] = zero
	m.length--

	after := loadGroup(m.ctrl[i:]).matchEmpty()
	if after.any() {
		before := loadGroup(m.ctrl[subModulo(i, groupSize, m.capacity):]).matchEmpty()
		if before.any() && before.lastFromEnd()+after.first() < groupSize {
			m.setCtrl(i, ctrlEmpty)
			return
		}
	}
	m.setCtrl(i, ctrlDeleted)
	m.tombstones++
}

// setCtrl writes the control byte at index, replicating it into the
// wraparound sentinel region when index falls in [1, groupSize) so a group
// window that starts near the end of the table reads a consistent copy.
func (m *Map[K, V]) setCtrl(index int, v uint8) {
	m.ctrl[index] = v
	if index < groupSize {
		m.ctrl[index+m.capacity] = v
	}
}

// occupy writes a FILLED fingerprint byte at index, accounting for a
// DELETED byte being reclaimed.
func (m *Map[K, V]) occupy(index int, v uint8) {
	if m.ctrl[index] == ctrlDeleted {
		m.tombstones--
	}
	m.setCtrl(index, v)
}

// needRehashOrGrow reports whether the next insert could fail to find a
// free slot, either because len/capacity would exceed maxLoadFactor or
// because DELETED bookkeeping has eaten too far into the free slots that
// len/capacity alone doesn't account for.
func (m *Map[K, V]) needRehashOrGrow() bool {
	if float64(m.length+1) > float64(m.capacity)*m.maxLoadFactor {
		return true
	}
	return m.capacity-m.length-m.tombstones < groupSize
}

// eachFilled visits the index of every FILLED slot, group by group, until
// yield returns false.
func (m *Map[K, V]) eachFilled(yield func(i int) bool) {
	for i := 1; i <= m.capacity; i += groupSize {
		mb := loadGroup(m.ctrl[i:]).matchFilled()
		for mb.any() {
			if !yield(i + mb.next()) {
				return
			}
		}
	}
}

// Clear removes all entries without shrinking the table.
func (m *Map[K, V]) Clear() {
	clear(m.ctrl)
	clear(m.slots)
	m.length = 0
	m.tombstones = 0
	m.maxDisplacement = 0
}

// Reserve grows the table, if necessary, so it can hold n entries without
// triggering a rehash.
func (m *Map[K, V]) Reserve(n int) {
	if n <= m.length {
		return
	}
	needed := int(math.Ceil(float64(n) / m.maxLoadFactor))
	if needed <= m.capacity {
		return
	}
	m.grow(roundSizeUp(needed))
}

// Clone returns an independent copy of the table; mutating one does not
// affect the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		hash:              m.hash,
		equal:             m.equal,
		maxLoadFactor:     m.maxLoadFactor,
		reclaimTombstones: m.reclaimTombstones,
		sizeInfo:          m.sizeInfo,
		length:            m.length,
		tombstones:        m.tombstones,
		maxDisplacement:   m.maxDisplacement,
	}
	c.ctrl = append([]uint8(nil), m.ctrl...)
	c.slots = append([]slot[K, V](nil), m.slots...)
	return c
}
