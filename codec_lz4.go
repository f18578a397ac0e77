package blosc

import "github.com/pierrec/lz4/v4"

// lz4Compress implements compressFunc for the LZ4 backend on top of
// github.com/pierrec/lz4/v4's block API (no frame, no checksum: the
// block's length is already tracked by the split-length prefix in the
// artifact, so a second container would be redundant).
func lz4Compress(level int, in, out []byte) int {
	n, err := lz4.CompressBlock(in, out, nil)
	if err != nil {
		return -1
	}
	if n == 0 || n > len(out) {
		return 0
	}
	return n
}

func lz4Decompress(in, out []byte) int {
	n, err := lz4.UncompressBlock(in, out)
	if err != nil {
		return -1
	}
	if n != len(out) {
		return -1
	}
	return n
}

// lz4WorstCase bounds LZ4's worst-case block expansion.
func lz4WorstCase(n int) int {
	return lz4.CompressBlockBound(n)
}

// lz4hcCompress implements compressFunc for the LZ4HC backend. LZ4HC and
// LZ4 share a decoder (lz4.UncompressBlock), which is why they share an
// on-wire backend code.
func lz4hcCompress(level int, in, out []byte) int {
	ht := make([]int, 1<<16)
	n, err := lz4.CompressBlockHC(in, out, lz4.CompressionLevel(level), ht, nil)
	if err != nil {
		return -1
	}
	if n == 0 || n > len(out) {
		return 0
	}
	return n
}

// lz4hcLevelScale maps the core's 0..9 level onto one of LZ4HC's named
// compression-effort buckets. pierrec/lz4's CompressionLevel values are
// not a dense 1..16 integer range, so the mapping buckets by threshold
// rather than computing 2k-1 directly.
func lz4hcLevelScale(level int) int {
	switch {
	case level <= 0:
		return int(lz4.Fast)
	case level <= 3:
		return int(lz4.Level1)
	case level <= 5:
		return int(lz4.Level5)
	case level <= 7:
		return int(lz4.Level7)
	default:
		return int(lz4.Level9)
	}
}
