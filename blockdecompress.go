package blosc

// blockDecompress implements BD (§4.8). payload is exactly this block's
// slice of the artifact (the scheduler locates it via bstarts before
// calling in). l is the expected uncompressed length for this block. tmp
// must have at least l bytes; tmp2 must be 16-byte aligned and have at
// least l bytes, used only when shuffle is active and out is not
// 16-byte aligned.
//
// Returns (l, nil) on success, or (0, err) on any corruption or backend
// failure -- every mismatch here is a hard error per §4.8.
func blockDecompress(d *backendDescriptor, shuffleOn bool, typesize int, payload []byte, l int, leftoverBlock bool, out, tmp, tmp2 []byte) (int, error) {
	shuffleActive := shuffleOn && typesize > 1

	decodeDest := out[:l]
	if shuffleActive {
		decodeDest = tmp[:l]
	}

	s, m := splitCount(typesize, l, leftoverBlock)

	cursor := 0
	for i := 0; i < s; i++ {
		if cursor+4 > len(payload) {
			return 0, wrapf(ErrHeaderCorrupt, "split length prefix runs past block payload")
		}
		clen := int(loadInt32(payload[cursor : cursor+4]))
		cursor += 4
		if clen < 0 || cursor+clen > len(payload) {
			return 0, wrapf(ErrHeaderCorrupt, "split length %d out of range", clen)
		}

		dstSplit := decodeDest[i*m : (i+1)*m]
		if clen == m {
			copy(dstSplit, payload[cursor:cursor+clen])
		} else {
			n := d.decompress(payload[cursor:cursor+clen], dstSplit)
			if n != m {
				return 0, wrapf(ErrBackendError, "backend %q decompressed %d bytes, want %d", d.name, n, m)
			}
		}
		cursor += clen
	}

	if shuffleActive {
		if isAligned16(out[:l]) {
			unshuffle(typesize, tmp[:l], out[:l])
		} else {
			unshuffle(typesize, tmp[:l], tmp2[:l])
			copy(out[:l], tmp2[:l])
		}
	}
	return l, nil
}
