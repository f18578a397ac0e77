package blosc

// minSplitElems is the per-split element-count threshold below which a
// block is not split at all, even when typesize would otherwise qualify.
// Numerically equal to MinBufferSize but a distinct policy constant: one
// bounds block size, the other bounds split granularity.
const minSplitElems = 128

// splitCount returns (S, M): the number of splits a block of logical
// length l is divided into, and the length of each split, for the given
// typesize. S = typesize iff typesize<=MaxSplits AND l/typesize>=128 AND
// the block is not the short trailing one; otherwise S=1. BC and BD both
// call this so the split rule can never drift between the two directions.
func splitCount(typesize, l int, leftoverBlock bool) (s, m int) {
	if !leftoverBlock && typesize > 0 && typesize <= MaxSplits && l/typesize >= minSplitElems {
		return typesize, l / typesize
	}
	return 1, l
}
