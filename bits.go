package swiss

import "math/bits"

// reduceRange maps x uniformly into [0, n) without a modulo operation.
// See https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
// x is expected to be uniformly distributed over [0, 2^bits.UintSize).
func reduceRange(x uint, n int) int {
	h, _ := bits.Mul(x, uint(n))
	return int(h)
}
