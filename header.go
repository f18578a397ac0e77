package blosc

import "fmt"

// Flag bits within the header's flags byte, per §3.
const (
	flagShuffle = 1 << 0
	flagMemcpy  = 1 << 1
	// bits 2..4 reserved, always zero.
	flagBackendShift = 5 // bits 5..7 hold the 3-bit backend wire code.
	flagBackendMask  = 0x7
)

// HeaderView borrows a destination byte slice for the duration of one
// call and exposes the fixed 16-byte prefix plus the variable-length
// bstarts table through methods, per the "no long-lived pointer into
// caller memory" design note. It never outlives the call that created
// it.
type HeaderView struct {
	buf []byte // the full artifact buffer, header included
}

// writeHeader lays out a fresh header (and zeroed bstarts table) at the
// start of dst, and returns a HeaderView over dst. dst must be at least
// headerOverhead(blocks) bytes long.
func writeHeader(dst []byte, backend *backendDescriptor, clevel int, shuffleOn bool, typesize, nbytes, blocksize, blocks int) HeaderView {
	h := HeaderView{buf: dst}

	dst[0] = FormatVersion
	dst[1] = backendFormatVersionByte(backend)
	flags := byte(0)
	if clevel == 0 || nbytes < MinBufferSize {
		flags |= flagMemcpy
	}
	if shuffleOn && typesize > 1 {
		flags |= flagShuffle
	}
	flags |= (backend.wireCode & flagBackendMask) << flagBackendShift
	dst[2] = flags
	dst[3] = byte(typesize)
	storeUint32(dst[4:8], uint32(nbytes))
	storeUint32(dst[8:12], uint32(blocksize))
	storeUint32(dst[12:16], 0) // cbytes patched last, by SetCBytes

	table := dst[HeaderSize : HeaderSize+4*blocks]
	for i := range table {
		table[i] = 0
	}
	return h
}

// backendFormatVersionByte derives the backend_format_version byte from a
// descriptor's wire code (wireCode+1). The descriptor's version string is
// not consulted, so backends that share a wire code share this byte.
func backendFormatVersionByte(d *backendDescriptor) byte {
	return byte(d.wireCode) + 1
}

// readHeader parses the fixed prefix and bstarts table from src, which
// must be the full artifact (or at least its header and table). destCap
// is the caller-provided output buffer capacity for decompression; a
// declared nbytes exceeding it is ErrHeaderCorrupt, per §4.6's "readers
// MUST reject" clause. readHeader does not validate format_version
// beyond requiring the fields defined here to be present, also per §4.6.
func readHeader(src []byte, destCap int) (HeaderView, error) {
	if len(src) < HeaderSize {
		return HeaderView{}, fmt.Errorf("%w: artifact shorter than header", ErrHeaderCorrupt)
	}
	h := HeaderView{buf: src}
	nbytes := int(h.NBytes())
	if destCap >= 0 && nbytes > destCap {
		return HeaderView{}, fmt.Errorf("%w: declared nbytes %d exceeds destination capacity %d", ErrHeaderCorrupt, nbytes, destCap)
	}
	blocks := h.NumBlocks()
	if len(src) < headerOverhead(blocks) {
		return HeaderView{}, fmt.Errorf("%w: artifact shorter than header+bstarts table", ErrHeaderCorrupt)
	}
	return h, nil
}

// FormatVersion returns the core framing version byte.
func (h HeaderView) FormatVersion() byte { return h.buf[0] }

// BackendFormatVersion returns the chosen backend's framing version tag.
func (h HeaderView) BackendFormatVersion() byte { return h.buf[1] }

// Flags returns the raw flags byte.
func (h HeaderView) Flags() byte { return h.buf[2] }

// HasShuffle reports whether the shuffle flag bit is set.
func (h HeaderView) HasShuffle() bool { return h.Flags()&flagShuffle != 0 }

// IsMemcpy reports whether the memcpy flag bit is set.
func (h HeaderView) IsMemcpy() bool { return h.Flags()&flagMemcpy != 0 }

// BackendWireCode returns the 3-bit backend code from flags bits 5..7.
func (h HeaderView) BackendWireCode() uint8 { return (h.Flags() >> flagBackendShift) & flagBackendMask }

// TypeSize returns the element size used for shuffle.
func (h HeaderView) TypeSize() byte { return h.buf[3] }

// NBytes returns the declared uncompressed payload length.
func (h HeaderView) NBytes() uint32 { return loadUint32(h.buf[4:8]) }

// BlockSize returns the declared per-block length.
func (h HeaderView) BlockSize() uint32 { return loadUint32(h.buf[8:12]) }

// CBytes returns the declared total artifact length.
func (h HeaderView) CBytes() uint32 { return loadUint32(h.buf[12:16]) }

// SetCBytes patches the cbytes field after the scheduler reports the
// final artifact size; per §4.6 this is always written last.
func (h HeaderView) SetCBytes(v uint32) { storeUint32(h.buf[12:16], v) }

// NumBlocks returns B = ceil(nbytes/blocksize), or 0 if blocksize is 0
// (only possible for a corrupt header, since a valid blocksize is always
// positive).
func (h HeaderView) NumBlocks() int {
	return numBlocks(int(h.NBytes()), int(h.BlockSize()))
}

// Leftover returns nbytes mod blocksize; 0 means the last block is full.
func (h HeaderView) Leftover() int {
	bs := int(h.BlockSize())
	if bs == 0 {
		return 0
	}
	return int(h.NBytes()) % bs
}

// BStarts returns the i-th block's byte offset, counted from the start of
// the payload region (the first byte after the bstarts table), not from
// the start of the artifact.
func (h HeaderView) BStarts(i int) int32 {
	off := HeaderSize + 4*i
	return loadInt32(h.buf[off : off+4])
}

// SetBStarts writes the i-th block's byte offset.
func (h HeaderView) SetBStarts(i int, v int32) {
	off := HeaderSize + 4*i
	storeInt32(h.buf[off:off+4], v)
}

// Payload returns the artifact's block-payload region, i.e. everything
// after the fixed prefix and the bstarts table.
func (h HeaderView) Payload() []byte {
	return h.buf[headerOverhead(h.NumBlocks()):]
}
