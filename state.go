package swiss

// Control byte states. FILLED bytes always have the sign bit (0x80) set;
// EMPTY and DELETED never do. This lets a single sign-bit test recover
// "is this slot occupied" during iteration, and lets the zero-byte SWAR
// trick in group.go recognize EMPTY directly.
const (
	ctrlEmpty   uint8 = 0x00
	ctrlDeleted uint8 = 0x02
	setMask     uint8 = 0x80
)

// h1 is the probe seed for the quadratic group walk (probe.go), which maps
// it into the table with reduceRange and so is driven by the high-order bits
// of the hash. h2 is the 7-bit fingerprint stored in the control byte, taken
// from the low 7 bits of the hash; ORing in setMask forces it out of the
// EMPTY/DELETED encoding space no matter what those bits are.
func h1(hash uint64) uint { return uint(hash) }

func h2(hash uint64) uint8 { return uint8(hash) | setMask }
