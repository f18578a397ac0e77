package blosc

// normalizeLevel clamps level into the core's 0..9 range, per the BadArg
// contract ("level out of range" is the caller's mistake, but the
// convenience entry points clamp rather than error, matching upstream's
// forgiving CompressWithOptions behavior).
func normalizeLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 9 {
		return 9
	}
	return level
}

// normalizeTypeSize coerces an out-of-range typesize to 1, per §3's
// invariant ("typesize > MAX_TYPESIZE is coerced to 1").
func normalizeTypeSize(typesize int) int {
	if typesize < 1 || typesize > MaxTypeSize {
		return 1
	}
	return typesize
}

// compressInto is the engine behind CompressCtx/Compress: it runs the
// full C4-C9 pipeline and writes a complete artifact into dest. Returns
// the number of bytes written, or an error. A destination too small to
// hold even the memcpy fallback yields ErrBufferTooSmall.
func compressInto(level int, shuffleOn bool, typesize int, src, dest []byte, ctx Context) (int, error) {
	backend, err := ctx.resolveBackend()
	if err != nil {
		return 0, err
	}
	clevel := normalizeLevel(level)
	typesize = normalizeTypeSize(typesize)
	nbytes := len(src)
	if nbytes > MaxBufferSize {
		return 0, wrapf(ErrBadArg, "nbytes %d exceeds MaxBufferSize %d", nbytes, MaxBufferSize)
	}

	blocksize := computeBlocksize(backend.code, clevel, typesize, nbytes, ctx.BlockSize)
	blocks := numBlocks(nbytes, blocksize)
	overhead := headerOverhead(blocks)

	if overhead > len(dest) {
		return 0, wrapf(ErrBufferTooSmall, "destination cannot even hold the %d-byte header", overhead)
	}

	header := writeHeader(dest, backend, clevel, shuffleOn, typesize, nbytes, blocksize, blocks)

	if header.IsMemcpy() {
		return finishMemcpy(header, src, dest)
	}

	plan := blockPlan{
		backend:   backend,
		clevel:    clevel,
		shuffleOn: shuffleOn,
		typesize:  typesize,
		blocksize: blocksize,
		leftover:  nbytes % blocksize,
		blocks:    blocks,
	}

	written, ok, err := runCompressScheduler(plan, src, header, ctx.threads())
	if err != nil {
		return 0, err
	}
	if !ok {
		// Incompressible at this budget: the driver's one constructive
		// recovery, per §7, is to retry as memcpy if there's room.
		if overhead+nbytes <= len(dest) {
			header = writeHeaderForcingMemcpy(dest, backend, typesize, nbytes, blocksize, blocks)
			return finishMemcpy(header, src, dest)
		}
		return 0, wrapf(ErrBufferTooSmall, "block did not fit and memcpy fallback needs %d bytes", overhead+nbytes)
	}

	cbytes := overhead + written
	header.SetCBytes(uint32(cbytes))
	return cbytes, nil
}

// finishMemcpy copies src verbatim into header's payload region, patches
// cbytes, and returns the total artifact size. bstarts entries are left
// zeroed, per §3 ("start-table entries are unused but present and
// zero").
func finishMemcpy(header HeaderView, src, dest []byte) (int, error) {
	payload := header.Payload()
	if len(payload) < len(src) {
		return 0, wrapf(ErrBufferTooSmall, "destination cannot hold the raw payload")
	}
	copy(payload, src)
	cbytes := headerOverhead(header.NumBlocks()) + len(src)
	header.SetCBytes(uint32(cbytes))
	return cbytes, nil
}

// writeHeaderForcingMemcpy rewrites the header with the memcpy flag
// forced on, for the incompressible-retry path. Shuffle is meaningless
// once memcpy is forced (there is no codec pass to benefit from it), so
// the shuffle flag is cleared too.
func writeHeaderForcingMemcpy(dest []byte, backend *backendDescriptor, typesize, nbytes, blocksize, blocks int) HeaderView {
	return writeHeader(dest, backend, 0, false, typesize, nbytes, blocksize, blocks)
}

// decompressInto is the engine behind DecompressCtx/Decompress.
func decompressInto(src, dest []byte, threads int) (int, error) {
	header, err := readHeader(src, len(dest))
	if err != nil {
		return 0, err
	}
	nbytes := int(header.NBytes())
	if nbytes == 0 {
		return 0, nil
	}

	if header.IsMemcpy() {
		payload := header.Payload()
		if len(payload) < nbytes || len(dest) < nbytes {
			return 0, wrapf(ErrHeaderCorrupt, "memcpy payload shorter than declared nbytes")
		}
		copy(dest[:nbytes], payload[:nbytes])
		return nbytes, nil
	}

	backend, ok := backendByWireCode(header.BackendWireCode())
	if !ok {
		return 0, wrapf(ErrUnsupportedBackend, "wire backend code %d", header.BackendWireCode())
	}

	n, err := runDecompressScheduler(backend, header, dest, threads)
	if err != nil {
		return 0, err
	}
	if n != nbytes {
		return 0, wrapf(ErrHeaderCorrupt, "decompressed %d bytes, header declares %d", n, nbytes)
	}
	return n, nil
}
