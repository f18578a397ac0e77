package blosc

import "github.com/klauspost/compress/zstd"

// zstdEncoders are persistent, one per speed bucket, initialized once and
// shared across calls and goroutines: EncodeAll is documented as
// concurrency-safe.
var zstdEncoders = func() [4]*zstd.Encoder {
	levels := [4]zstd.EncoderLevel{
		zstd.SpeedFastest,
		zstd.SpeedDefault,
		zstd.SpeedBetterCompression,
		zstd.SpeedBestCompression,
	}
	var encoders [4]*zstd.Encoder
	for i, lvl := range levels {
		e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(lvl))
		if err != nil {
			panic(err)
		}
		encoders[i] = e
	}
	return encoders
}()

// zstdDecoder is a single persistent decoder; DecodeAll is
// concurrency-safe.
var zstdDecoder = func() *zstd.Decoder {
	d, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	return d
}()

func zstdCompress(level int, in, out []byte) int {
	idx := zstdBucket(level)
	dst := zstdEncoders[idx].EncodeAll(in, make([]byte, 0, len(out)))
	if len(dst) == 0 || len(dst) > len(out) {
		return 0
	}
	copy(out, dst)
	return len(dst)
}

func zstdDecompress(in, out []byte) int {
	dst, err := zstdDecoder.DecodeAll(in, make([]byte, 0, len(out)))
	if err != nil {
		return -1
	}
	if len(dst) != len(out) {
		return -1
	}
	copy(out, dst)
	return len(dst)
}

// zstdBucket maps the core's 0..9 level onto one of the 4 persistent
// encoder speed buckets.
func zstdBucket(level int) int {
	switch {
	case level <= 2:
		return 0
	case level <= 4:
		return 1
	case level <= 6:
		return 2
	default:
		return 3
	}
}

// zstdWorstCase is a conservative bound; zstd's frame format has bounded
// expansion similar to deflate's.
func zstdWorstCase(n int) int {
	return n + (n >> 8) + 64
}

// zstdLevelScale is the identity: the bucket lookup happens inside
// zstdCompress directly from the core level.
func zstdLevelScale(level int) int { return level }
