package blosc

import (
	"bytes"
	"io"

	kzlib "github.com/klauspost/compress/zlib"
)

// zlibCompress implements compressFunc for the ZLIB backend on top of
// github.com/klauspost/compress/zlib, which is a faster drop-in for the
// standard library's compress/zlib.
func zlibCompress(level int, in, out []byte) int {
	var buf bytes.Buffer
	buf.Grow(len(out))
	w, err := kzlib.NewWriterLevel(&buf, level)
	if err != nil {
		return -1
	}
	if _, err := w.Write(in); err != nil {
		w.Close()
		return -1
	}
	if err := w.Close(); err != nil {
		return -1
	}
	if buf.Len() == 0 || buf.Len() > len(out) {
		return 0
	}
	copy(out, buf.Bytes())
	return buf.Len()
}

func zlibDecompress(in, out []byte) int {
	r, err := kzlib.NewReader(bytes.NewReader(in))
	if err != nil {
		return -1
	}
	defer r.Close()
	n, err := io.ReadFull(r, out)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return -1
	}
	if n != len(out) {
		return -1
	}
	return n
}

// deflateWorstCase is zlib's standard compressBound formula: a safe upper
// bound for deflate-family output even on incompressible input, shared by
// the ZLIB and BloscLZ (raw-deflate) backends.
func deflateWorstCase(n int) int {
	return n + (n >> 12) + (n >> 14) + (n >> 25) + 13
}

// zlibLevelScale clamps the core's 0..9 level onto zlib's 0..9 native
// range (identity; kept for contract symmetry with the other backends).
func zlibLevelScale(level int) int {
	if level < 0 {
		return 0
	}
	if level > 9 {
		return 9
	}
	return level
}
