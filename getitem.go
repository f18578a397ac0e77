package blosc

// getItemInto implements C10: decode the byte range
// [start*typesize, (start+nitems)*typesize) of the logical buffer encoded
// in src, into dest. Single-threaded by design -- per §4.10, the
// parallelism overhead would dwarf small-range latency. Returns the
// number of bytes written.
func getItemInto(src []byte, start, nitems int, dest []byte) (int, error) {
	header, err := readHeader(src, -1)
	if err != nil {
		return 0, err
	}
	typesize := int(header.TypeSize())
	if typesize == 0 {
		typesize = 1
	}
	nbytes := int(header.NBytes())
	numElems := nbytes / typesize

	if start < 0 || nitems < 0 || start+nitems > numElems {
		return 0, wrapf(ErrBadArg, "range [%d,%d) out of bounds for %d elements", start, start+nitems, numElems)
	}

	rangeStart := start * typesize
	rangeStop := (start + nitems) * typesize
	if rangeStop-rangeStart > len(dest) {
		return 0, wrapf(ErrBufferTooSmall, "destination cannot hold %d requested bytes", rangeStop-rangeStart)
	}
	if rangeStop == rangeStart {
		return 0, nil
	}

	blocksize := int(header.BlockSize())
	leftover := header.Leftover()
	blocks := header.NumBlocks()
	memcpy := header.IsMemcpy()
	payload := header.Payload()

	var backend *backendDescriptor
	if !memcpy {
		var ok bool
		backend, ok = backendByWireCode(header.BackendWireCode())
		if !ok {
			return 0, wrapf(ErrUnsupportedBackend, "wire backend code %d", header.BackendWireCode())
		}
	}

	tmp := make([]byte, blocksize)
	tmp2 := alignedBuffer(blocksize + typesize*4)

	written := 0
	for i := 0; i < blocks; i++ {
		blockStart := i * blocksize
		l := blocksize
		leftoverBlock := false
		if i == blocks-1 && leftover > 0 {
			l = leftover
			leftoverBlock = true
		}
		blockStop := blockStart + l

		lo := max(rangeStart, blockStart)
		hi := min(rangeStop, blockStop)
		if lo >= hi {
			continue
		}

		if memcpy {
			if hi > len(payload) {
				return 0, wrapf(ErrHeaderCorrupt, "memcpy payload shorter than declared nbytes")
			}
			n := copy(dest[written:], payload[lo:hi])
			written += n
			continue
		}

		spanStart, spanEnd, err := blockSpan(header, i, len(payload))
		if err != nil {
			return 0, err
		}
		decoded := tmp2[:l]
		if _, err := blockDecompress(backend, header.HasShuffle(), typesize, payload[spanStart:spanEnd], l, leftoverBlock, decoded, tmp, tmp2); err != nil {
			return 0, err
		}
		n := copy(dest[written:], decoded[lo-blockStart:hi-blockStart])
		written += n
	}
	return written, nil
}
