package blosc

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// BloscLZ has no available pure-Go reimplementation anywhere in the
// ecosystem (it is a small proprietary matcher bundled with upstream
// c-blosc); this backend substitutes raw DEFLATE via
// github.com/klauspost/compress/flate, framed as a single block with no
// gzip/zlib container.
// See DESIGN.md for the justification.
func bloscLZCompress(level int, in, out []byte) int {
	var buf bytes.Buffer
	buf.Grow(len(out))
	w, err := flate.NewWriter(&buf, level)
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

func bloscLZDecompress(in, out []byte) int {
	r := flate.NewReader(bytes.NewReader(in))
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

// bloscLZLevelScale maps the core's 0..9 level onto flate's -2..9 native
// range: flate has no level below 0 in the core's range, so this is the
// identity clamped to [0,9].
func bloscLZLevelScale(level int) int {
	if level < 0 {
		return 0
	}
	if level > 9 {
		return 9
	}
	return level
}
