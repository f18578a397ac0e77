package blosc

// blockCompress implements BC (§4.7): shuffle, split, and
// backend-compress one block into dst. in is the block's raw bytes
// (length L = blocksize or leftover). shuffleScratch must have at least
// len(in) bytes and is only touched when shuffle is active; its contents
// are undefined on return.
//
// Returns (n, nil) with n>0 on success: n bytes were written to dst[:n].
// Returns (0, nil) if the block did not fit in dst at all (the caller may
// retry as memcpy). Returns (0, err) on a hard backend error or protocol
// violation.
func blockCompress(d *backendDescriptor, clevel int, shuffleOn bool, typesize int, in []byte, leftoverBlock bool, dst, shuffleScratch []byte) (int, error) {
	work := in
	if shuffleOn && typesize > 1 {
		shuffle(typesize, in, shuffleScratch[:len(in)])
		work = shuffleScratch[:len(in)]
	}

	s, m := splitCount(typesize, len(in), leftoverBlock)
	scaledLevel := d.scaledLevel(clevel)

	cursor := 0
	budget := len(dst)
	for i := 0; i < s; i++ {
		if budget < 4 {
			return 0, nil
		}
		rem := budget - 4
		if rem <= 0 {
			return 0, nil
		}

		maxout := d.maxout(m)
		if maxout > rem {
			maxout = rem
		}

		split := work[i*m : (i+1)*m]
		out := dst[cursor+4 : cursor+4+maxout]
		c := d.compress(scaledLevel, split, out)

		switch {
		case c < 0:
			return 0, wrapf(ErrBackendError, "backend %q compress failed", d.name)
		case c > maxout:
			return 0, wrapf(ErrBackendError, "backend %q wrote %d bytes beyond its %d-byte budget", d.name, c, maxout)
		case c == 0 || c == m:
			if rem < m {
				return 0, nil
			}
			copy(dst[cursor+4:cursor+4+m], split)
			c = m
		}

		storeInt32(dst[cursor:cursor+4], int32(c))
		cursor += 4 + c
		budget -= 4 + c
	}
	return cursor, nil
}
