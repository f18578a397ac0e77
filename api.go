package blosc

// Compress shuffles, splits, and compresses src using the ambient
// backend, returning a freshly allocated artifact. level is clamped to
// 0..9; shuffle requests the byte-transpose (a no-op when typesize == 1);
// typesize above MaxTypeSize is coerced to 1. The ambient process lock is
// held for the entire call, per §4.11.
func Compress(src []byte, level int, shuffle bool, typesize int) ([]byte, error) {
	return withAmbient(func(ctx Context) ([]byte, error) {
		return CompressCtx(ctx, src, level, shuffle, typesize)
	})
}

// CompressCtx is Compress with an explicit Context (backend, blocksize
// override, thread count) and touches no process-wide state.
func CompressCtx(ctx Context, src []byte, level int, shuffle bool, typesize int) ([]byte, error) {
	backend, err := ctx.resolveBackend()
	if err != nil {
		return nil, err
	}
	clevel := normalizeLevel(level)
	ts := normalizeTypeSize(typesize)

	dest := make([]byte, maxCompressedLen(backend, clevel, ts, len(src), ctx.BlockSize))
	n, err := compressInto(clevel, shuffle, ts, src, dest, ctx)
	if err != nil {
		return nil, err
	}
	return dest[:n], nil
}

// Decompress reconstructs the original buffer from a compressed artifact
// produced by Compress/CompressCtx, using the ambient thread count.
func Decompress(src []byte) ([]byte, error) {
	return withAmbient(func(ctx Context) ([]byte, error) {
		return DecompressCtx(ctx, src)
	})
}

// DecompressCtx is Decompress with an explicit thread count (Backend and
// BlockSize in ctx are ignored: both are read back from the artifact's
// header).
func DecompressCtx(ctx Context, src []byte) ([]byte, error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return nil, err
	}
	dest := make([]byte, header.NBytes())
	n, err := decompressInto(src, dest, ctx.threads())
	if err != nil {
		return nil, err
	}
	return dest[:n], nil
}

// GetItem decodes the element range [start, start+nitems) of the logical
// buffer encoded in src, without decompressing the whole artifact.
func GetItem(src []byte, start, nitems int) ([]byte, error) {
	return withAmbient(func(ctx Context) ([]byte, error) {
		return GetItemCtx(ctx, src, start, nitems)
	})
}

// GetItemCtx is GetItem with an explicit Context; ctx's fields are
// currently unused (getitem is single-threaded by design, per §4.10) but
// it is accepted for symmetry with CompressCtx/DecompressCtx and to leave
// room for a future parallel range decode.
func GetItemCtx(ctx Context, src []byte, start, nitems int) ([]byte, error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return nil, err
	}
	typesize := int(header.TypeSize())
	if typesize == 0 {
		typesize = 1
	}
	numElems := int(header.NBytes()) / typesize
	if start < 0 || nitems < 0 || start > numElems || nitems > numElems-start {
		return nil, wrapf(ErrBadArg, "range start %d, nitems %d out of bounds for %d elements", start, nitems, numElems)
	}
	dest := make([]byte, nitems*typesize)
	n, err := getItemInto(src, start, nitems, dest)
	if err != nil {
		return nil, err
	}
	return dest[:n], nil
}

// maxCompressedLen bounds the artifact size CompressCtx must allocate for
// nbytes input bytes under the given backend/level/typesize/override: the
// header-plus-table overhead for the planner's own blocksize, plus nbytes
// itself. This is deliberately the same sizing convention the low-level
// contract documents for callers ("destsize >= nbytes + overhead"): it is
// exactly enough for the memcpy fallback, and no more, so a block that
// cannot shrink below its raw share of the budget is correctly detected
// as incompressible rather than silently absorbed by slack headroom.
func maxCompressedLen(backend *backendDescriptor, clevel, typesize, nbytes, blocksizeOverride int) int {
	blocksize := computeBlocksize(backend.code, clevel, typesize, nbytes, blocksizeOverride)
	blocks := numBlocks(nbytes, blocksize)
	return headerOverhead(blocks) + nbytes
}

// CBufferSizes returns an artifact's declared uncompressed length,
// compressed length, and blocksize, without decompressing it.
func CBufferSizes(src []byte) (nbytes, cbytes, blocksize int, err error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(header.NBytes()), int(header.CBytes()), int(header.BlockSize()), nil
}

// CBufferMetainfo returns an artifact's typesize and raw flags byte.
func CBufferMetainfo(src []byte) (typesize int, flags byte, err error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return 0, 0, err
	}
	return int(header.TypeSize()), header.Flags(), nil
}

// CBufferVersions returns an artifact's core and backend framing version
// bytes.
func CBufferVersions(src []byte) (formatVersion, backendFormatVersion byte, err error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return 0, 0, err
	}
	return header.FormatVersion(), header.BackendFormatVersion(), nil
}

// CBufferComplib returns the name of the backend an artifact was
// compressed with.
func CBufferComplib(src []byte) (string, error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return "", err
	}
	backend, ok := backendByWireCode(header.BackendWireCode())
	if !ok {
		return "", wrapf(ErrUnsupportedBackend, "wire backend code %d", header.BackendWireCode())
	}
	return backend.name, nil
}

// ListCompressors returns the comma-separated names of every backend
// available in this build, in a fixed order.
func ListCompressors() string {
	return listCompressors()
}

// CompcodeToCompname translates a public Codec to its registered name.
func CompcodeToCompname(c Codec) (string, error) {
	name, ok := compcodeToCompname(c)
	if !ok {
		return "", wrapf(ErrUnsupportedBackend, "codec %d", c)
	}
	return name, nil
}

// CompnameToCompcode translates a registered backend name to its public
// Codec.
func CompnameToCompcode(name string) (Codec, error) {
	c, ok := compnameToCompcode(name)
	if !ok {
		return 0, wrapf(ErrUnsupportedBackend, "backend %q", name)
	}
	return c, nil
}
