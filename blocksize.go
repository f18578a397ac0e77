package blosc

// computeBlocksize implements the C4 planner: choose blocksize from
// (backend, clevel, typesize, nbytes, override). Returns a positive
// multiple of typesize, except the degenerate nbytes<typesize case which
// returns 1, and an override path result that is not above typesize
// (e.g. override 128 with typesize 200), which is returned unrounded.
func computeBlocksize(backend Codec, clevel, typesize, nbytes, override int) int {
	if nbytes < typesize {
		return 1
	}

	blocksize := nbytes

	switch {
	case override > 0:
		blocksize = override
		if blocksize < MinBufferSize {
			blocksize = MinBufferSize
		}

	case nbytes >= 4*L1:
		blocksize = 4 * L1
		switch backend {
		case ZLIB, LZ4HC:
			blocksize *= 8
		}
		switch {
		case clevel == 0:
			blocksize /= 16
		case clevel >= 1 && clevel <= 3:
			blocksize /= 8
		case clevel >= 4 && clevel <= 5:
			blocksize /= 4
		case clevel == 6:
			blocksize /= 2
		case clevel >= 7 && clevel <= 8:
			// x1, no-op
		default: // clevel >= 9
			blocksize *= 2
		}

	case nbytes > 256:
		switch typesize {
		case 2, 4, 8, 16:
			blocksize -= blocksize % (16 * typesize)
		}
	}

	if blocksize > nbytes {
		blocksize = nbytes
	}
	if blocksize > typesize {
		blocksize = blocksize / typesize * typesize
	}
	if backend == BloscLZ && typesize > 0 && blocksize/typesize > 64*kb {
		blocksize = 64 * kb * typesize
	}
	if blocksize <= 0 {
		blocksize = typesize
	}
	return blocksize
}
