package swiss

import "math"

// sizeInfo bundles a table's capacity together with the derived quadratic
// stride parameter n (see roundSizeUp), so a probeSeq can recompute its
// stride without a pointer back to the whole table.
type sizeInfo struct {
	capacity int
	n        int
}

// probeSeq walks groups of a table in quadratic (triangular-number) order:
// every group is visited exactly once before the sequence repeats, which is
// what lets an unsuccessful lookup rely solely on "an EMPTY in some group
// along the path" to terminate rather than on a literal linear stride.
//
// Algorithm (triangular-number form):
//
//	capacity = ng² · groupSize,  n = ng · groupSize
//	H = h1(hash) reduced into [1, capacity]
//	h(0) = H
//	h(i+1) = h(i) + (2·i·n + n) + groupSize
//
// dn tracks the running "2·i·n" term so each step is an O(1) update.
type probeSeq struct {
	*sizeInfo
	offset int
	dn     int
}

// newProbeSeq returns a probeSeq for the given hash's h1, seeded into a
// 1-based group offset so that slot 0 is reserved (see table.go).
func newProbeSeq(hash uint, p *sizeInfo) probeSeq {
	return probeSeq{offset: reduceRange(hash, p.capacity) + 1, sizeInfo: p}
}

// next returns the probe position for the following group.
func (p probeSeq) next() probeSeq {
	// Keep p.dn + n + groupSize <= capacity so addModulo's single
	// subtraction is enough to fold the new offset back into [1, capacity].
	inc := p.dn + p.n + groupSize
	if inc > p.capacity {
		p.dn -= p.capacity
		inc -= p.capacity
	}
	p.offset = addModulo(p.offset, inc, p.capacity)
	p.dn += p.n * 2
	return p
}

// prev returns the probe position for the preceding group; used only by
// tests to check the sequence is its own inverse.
func (p probeSeq) prev() probeSeq {
	dn := p.dn - p.n*2
	offset := subModulo(p.offset, dn+p.n+groupSize, p.capacity)
	return probeSeq{offset: offset, dn: dn, sizeInfo: p.sizeInfo}
}

// index returns the slot index i positions into the current group.
func (p probeSeq) index(i int) int {
	return addModulo(p.offset, i, p.capacity)
}

// distance returns the number of slots from the probe's current group to
// slot i, walking forward modulo capacity.
func (p probeSeq) distance(i int) int {
	d := i - p.offset
	if d < 0 {
		d += p.capacity
	}
	return d
}

// roundSizeUp returns the smallest sizeInfo whose capacity is both a
// multiple of groupSize and a perfect square of groupSize-sized blocks
// (capacity = ng² · groupSize), which is what the triangular-number probe
// sequence above needs to guarantee full coverage.
func roundSizeUp(sz int) sizeInfo {
	ng := int(math.Ceil(math.Sqrt(float64(sz) / groupSize)))
	if ng < 1 {
		ng = 1
	}
	n := ng * groupSize
	return sizeInfo{capacity: ng * n, n: n}
}

// addModulo returns ((x + y - 1) % max) + 1, keeping results in [1, max].
func addModulo(x, y, max int) int {
	x += y
	if x > max {
		x -= max
	}
	return x
}

// subModulo returns ((x - y - 1) % max) + 1, keeping results in [1, max].
func subModulo(x, y, max int) int {
	x -= y
	if x < 1 {
		x += max
	}
	return x
}
