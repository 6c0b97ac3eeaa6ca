package swiss

import (
	"math/bits"
	"unsafe"
)

// groupSize is the width, in control bytes, of one SIMD-style probe group —
// an SSE2/NEON-sized baseline, realized portably here as two 8-byte SWAR
// lanes (lane 0 covers bytes [0,8), lane 1 covers [8,16)) rather than an
// actual vector compare.
const groupSize = 16

const (
	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// lane is one 8-byte SWAR word, read from a control slice. The match tricks
// below are the classic Stanford "bithacks" haszero family, applied so that
// EMPTY (0x00) and DELETED (0x02, never 0x00 nor ever carrying the sign bit)
// are each uniquely recoverable, and FILLED is recovered via the sign bit.
type lane uint64

func loadLane(c []uint8) lane {
	_ = c[7]
	return lane(*(*uint64)(unsafe.Pointer(&c[0])))
}

// matchByte returns a lane-width bitset with the high bit of every byte
// that equals b set, and all others clear. Unlike matchZero's borrow-based
// test it has no false positives: a byte's low 7 bits plus 0x7f never carry
// into the next byte.
func (l lane) matchByte(b uint8) lane {
	x := l ^ (lane(b) * loBits)
	return ^(((x &^ hiBits) + ^lane(hiBits)) | x) & hiBits
}

// matchZero returns a bitset with the high bit of every zero byte set. Can
// yield a false positive for a 0x01 0x00-adjacent pattern; DELETED is
// chosen as 0x02 specifically so it never triggers that pattern against a
// neighboring EMPTY byte.
func (l lane) matchZero() lane {
	return (l - loBits) &^ l & hiBits
}

// matchSet returns a bitset with the high bit of every FILLED byte set.
func (l lane) matchSet() lane { return l & hiBits }

// matchNotSet returns a bitset with the high bit of every non-FILLED
// (EMPTY or DELETED) byte set.
func (l lane) matchNotSet() lane { return (l & hiBits) ^ hiBits }

// group is a groupSize-wide SWAR view over two adjacent lanes of a control
// slice, along with the accessors used to turn lane-local matches into
// whole-group bit positions.
type group struct {
	lo, hi lane
}

func loadGroup(c []uint8) group {
	return group{lo: loadLane(c[0:8]), hi: loadLane(c[8:16])}
}

// groupMatch is a lazily-consumed iterator over set bit positions [0,16)
// within a group, lowest position first.
type groupMatch struct {
	lo, hi lane
}

func (g group) matchByte(b uint8) groupMatch {
	return groupMatch{lo: g.lo.matchByte(b), hi: g.hi.matchByte(b)}
}

func (g group) matchEmpty() groupMatch {
	return groupMatch{lo: g.lo.matchZero(), hi: g.hi.matchZero()}
}

func (g group) matchNotSet() groupMatch {
	return groupMatch{lo: g.lo.matchNotSet(), hi: g.hi.matchNotSet()}
}

func (g group) matchFilled() groupMatch {
	return groupMatch{lo: g.lo.matchSet(), hi: g.hi.matchSet()}
}

func (m groupMatch) any() bool { return m.lo != 0 || m.hi != 0 }

// next returns the lowest remaining set position and clears it. Callers
// must only call next while any() is true.
func (m *groupMatch) next() int {
	if m.lo != 0 {
		n := bits.TrailingZeros64(uint64(m.lo)) >> 3
		m.lo &^= lane(0xff) << uint(n*8)
		return n
	}
	n := bits.TrailingZeros64(uint64(m.hi)) >> 3
	m.hi &^= lane(0xff) << uint(n*8)
	return n + 8
}

// first returns the lowest set position without consuming it, or -1 if
// none are set.
func (m groupMatch) first() int {
	if m.lo != 0 {
		return bits.TrailingZeros64(uint64(m.lo)) >> 3
	}
	if m.hi != 0 {
		return bits.TrailingZeros64(uint64(m.hi))>>3 + 8
	}
	return -1
}

// lastFromEnd returns the offset (counting backward from groupSize-1) of
// the highest set position, or -1 if none are set. Used by erase's
// tombstone-cleanup walk to look backward within a group.
func (m groupMatch) lastFromEnd() int {
	if m.hi != 0 {
		return bits.LeadingZeros64(uint64(m.hi)) >> 3
	}
	if m.lo != 0 {
		return bits.LeadingZeros64(uint64(m.lo))>>3 + 8
	}
	return -1
}
