package blosc

// Version identifies this module's release.
const Version = "1.0.0"

// FormatVersion is the core framing version written into every artifact.
// A change to the header layout, the split rule, or the flags table is a
// wire break and must bump this constant.
const FormatVersion = 2

const (
	kb = 1024
	mb = 1024 * kb
)

// L1 is the reference L1 cache size the blocksize planner targets.
const L1 = 32 * kb

// MinBufferSize is the smallest blocksize the planner will ever choose on
// the override path, and the nbytes threshold below which compression
// always falls back to memcpy framing.
const MinBufferSize = 128

// MaxTypeSize is the largest typesize the wire format can represent. A
// caller-requested typesize above this is coerced to 1 (shuffle disabled).
const MaxTypeSize = 255

// MaxSplits bounds the number of splits a single block may be divided
// into; it coincides with the typesize<=16 threshold that triggers
// per-byte splitting. Exposed as a named constant per the split-count
// policy design note, so experimenting with the threshold touches one
// place.
const MaxSplits = 16

// HeaderSize is the fixed 16-byte prefix common to every artifact,
// excluding the variable-length bstarts table.
const HeaderSize = 16

// MaxBufferSize bounds nbytes. Chosen comfortably below the int32 bstarts
// entries can address, leaving headroom for header_overhead.
const MaxBufferSize = (1 << 31) - 1 - HeaderSize

// headerOverhead returns the total fixed-plus-table size of the header
// for a buffer split into numBlocks blocks.
func headerOverhead(numBlocks int) int {
	return HeaderSize + 4*numBlocks
}

// numBlocks returns B = ceil(nbytes / blocksize) for blocksize > 0.
func numBlocks(nbytes, blocksize int) int {
	if blocksize <= 0 {
		return 0
	}
	return (nbytes + blocksize - 1) / blocksize
}
