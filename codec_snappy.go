package blosc

import "github.com/klauspost/compress/snappy"

// snappyCompress implements compressFunc for the Snappy backend.
// Snappy has no compression levels.
func snappyCompress(level int, in, out []byte) int {
	dst := snappy.Encode(make([]byte, 0, len(out)), in)
	if len(dst) == 0 || len(dst) > len(out) {
		return 0
	}
	copy(out, dst)
	return len(dst)
}

func snappyDecompress(in, out []byte) int {
	dst, err := snappy.Decode(out, in)
	if err != nil {
		return -1
	}
	if len(dst) != len(out) {
		return -1
	}
	if len(out) > 0 && &dst[0] != &out[0] {
		copy(out, dst)
	}
	return len(out)
}

// snappyWorstCase bounds Snappy's varint-length-prefixed output, which
// can exceed the input for incompressible data; this is exactly the
// motivating case in §4.7 for a per-backend worst-case override.
func snappyWorstCase(n int) int {
	return snappy.MaxEncodedLen(n)
}
