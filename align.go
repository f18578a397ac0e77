package blosc

import "unsafe"

// alignment is the SIMD-friendly byte alignment the shuffle and codec
// scratch buffers are allocated to.
const alignment = 16

// alignedBuffer returns a slice of length n whose backing array starts at
// an address that is a multiple of alignment. Go's allocator gives no
// alignment guarantee for byte slices, so this over-allocates and slices
// into the first aligned offset; the over-allocated head becomes
// unreachable and is collected with the rest of the backing array once
// the returned slice (and anything derived from it) is no longer
// referenced. There is no explicit free: "free" is garbage collection of
// the backing array when the call that requested the scratch buffer
// returns.
func alignedBuffer(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n+alignment-1)
	off := alignmentOffset(buf)
	return buf[off : off+n : off+n]
}

// alignmentOffset returns how many leading bytes of buf must be skipped
// so that buf[off:] starts at a 16-byte-aligned address.
func alignmentOffset(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	rem := addr % alignment
	if rem == 0 {
		return 0
	}
	return int(alignment - rem)
}

// isAligned16 reports whether b's backing address is a multiple of 16.
// BD consults this when choosing between unshuffling directly into the
// caller's destination slice and detouring through an aligned scratch
// buffer.
func isAligned16(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))%alignment == 0
}
