package swiss

import "github.com/halfvector/swisstable/hash"

const minCapacity = groupSize

// defaultMaxLoadFactor is the 7/8 threshold used when WithMaxLoadFactor is
// not given.
const defaultMaxLoadFactor = 7.0 / 8.0

// Option configures a Map (or Set) at construction time. There is no
// runtime config surface beyond this — no file format, no env vars, no
// flags: every knob here is resolved once, in New.
type Option interface {
	set(*options)
}

type optFn func(*options)

func (f optFn) set(o *options) { f(o) }

type options struct {
	hasher            any
	equal             any
	capacity          int
	maxLoadFactor     float64
	reclaimTombstones bool
	reclaimSet        bool
}

// WithCapacity hints at the number of elements the table should hold
// without triggering a rehash.
func WithCapacity(capacity int) Option {
	return optFn(func(o *options) { o.capacity = capacity })
}

// WithHasher overrides the default hashing function for K.
func WithHasher[K comparable](hasher func(K) uint64) Option {
	return optFn(func(o *options) { o.hasher = hasher })
}

// WithEqual overrides the default key-equality function, which otherwise is
// Go's built-in == for K. eq must be consistent with the configured hasher:
// eq(a, b) implies hash(a) == hash(b).
func WithEqual[K comparable](eq func(a, b K) bool) Option {
	return optFn(func(o *options) { o.equal = eq })
}

// WithMaxLoadFactor overrides the default 7/8 load-factor threshold that
// forces a rehash. f must be in (0, 1).
func WithMaxLoadFactor(f float64) Option {
	return optFn(func(o *options) {
		if f <= 0 || f >= 1 {
			panic("swiss: max load factor must be in (0, 1)")
		}
		o.maxLoadFactor = f
	})
}

// WithTombstoneReclamation controls whether insert reuses a DELETED slot.
// When true (the default), insert preferentially reuses the first DELETED
// slot on its probe path instead of continuing on to the next EMPTY one.
func WithTombstoneReclamation(allow bool) Option {
	return optFn(func(o *options) {
		o.reclaimTombstones = allow
		o.reclaimSet = true
	})
}

func getOpts[K comparable](opts []Option) options {
	o := options{maxLoadFactor: defaultMaxLoadFactor}
	for _, op := range opts {
		op.set(&o)
	}
	if o.capacity < minCapacity {
		o.capacity = minCapacity
	}
	if o.hasher == nil {
		o.hasher = hash.Generic[K]()
	}
	if o.equal == nil {
		o.equal = func(a, b K) bool { return a == b }
	}
	if !o.reclaimSet {
		o.reclaimTombstones = true
	}
	return o
}
