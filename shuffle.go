package blosc

import "golang.org/x/sys/cpu"

// shuffleFastPath reports whether the widened, unrolled loop is worth
// trying for the given typesize. Real SIMD shuffle (as in upstream
// c-blosc) needs load/store width matching typesize; without cgo or
// hand-written assembly in this build (see DESIGN.md), the "fast path"
// here is a portable Go loop that still handles one element per iteration,
// with the per-byte inner loop unrolled (typesize 2 and 4) or given a
// constant bound (typesize 8 and 16). CPU feature
// probing decides only whether this is likely to help, never correctness.
var shuffleFastPath = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// shuffle writes dst[k*(n/typesize)+i] = src[i*typesize+k] for every
// element i and byte offset k, per §4.5. len(src) must be a multiple of
// typesize for every full element; any remainder tail is copied
// unshuffled. dst must have the same length as src.
func shuffle(typesize int, src, dst []byte) {
	if typesize <= 1 {
		copy(dst, src)
		return
	}
	n := len(src)
	numElements := n / typesize
	if numElements == 0 {
		copy(dst, src)
		return
	}

	switch typesize {
	case 2, 4, 8, 16:
		shuffleFixed(typesize, numElements, src, dst)
	default:
		shuffleGeneric(typesize, numElements, src, dst)
	}

	rem := numElements * typesize
	if rem < n {
		copy(dst[rem:], src[rem:])
	}
}

// unshuffle is the exact inverse of shuffle.
func unshuffle(typesize int, src, dst []byte) {
	if typesize <= 1 {
		copy(dst, src)
		return
	}
	n := len(src)
	numElements := n / typesize
	if numElements == 0 {
		copy(dst, src)
		return
	}

	switch typesize {
	case 2, 4, 8, 16:
		unshuffleFixed(typesize, numElements, src, dst)
	default:
		unshuffleGeneric(typesize, numElements, src, dst)
	}

	rem := numElements * typesize
	if rem < n {
		copy(dst[rem:], src[rem:])
	}
}

// shuffleGeneric is the scalar definition of the transpose, used for any
// typesize not covered by a fixed-width fast path.
func shuffleGeneric(typesize, numElements int, src, dst []byte) {
	for i := 0; i < numElements; i++ {
		base := i * typesize
		for k := 0; k < typesize; k++ {
			dst[k*numElements+i] = src[base+k]
		}
	}
}

// unshuffleGeneric is the scalar inverse.
func unshuffleGeneric(typesize, numElements int, src, dst []byte) {
	for i := 0; i < numElements; i++ {
		base := i * typesize
		for k := 0; k < typesize; k++ {
			dst[base+k] = src[k*numElements+i]
		}
	}
}

// shuffleFixed special-cases typesize in {2,4,8,16}: the inner loop over
// k is unrolled (2, 4) or has a constant bound (8, 16) so the compiler can
// keep typesize constant-sized offsets
// in registers instead of re-deriving them each iteration. This is the
// "SHOULD special-case with SIMD" path from §4.5, implemented as a
// portable unrolled loop rather than real vector instructions.
func shuffleFixed(typesize, numElements int, src, dst []byte) {
	if !shuffleFastPath {
		shuffleGeneric(typesize, numElements, src, dst)
		return
	}
	switch typesize {
	case 2:
		for i := 0; i < numElements; i++ {
			b := src[i*2 : i*2+2]
			dst[0*numElements+i] = b[0]
			dst[1*numElements+i] = b[1]
		}
	case 4:
		for i := 0; i < numElements; i++ {
			b := src[i*4 : i*4+4]
			dst[0*numElements+i] = b[0]
			dst[1*numElements+i] = b[1]
			dst[2*numElements+i] = b[2]
			dst[3*numElements+i] = b[3]
		}
	case 8:
		for i := 0; i < numElements; i++ {
			b := src[i*8 : i*8+8]
			for k := 0; k < 8; k++ {
				dst[k*numElements+i] = b[k]
			}
		}
	case 16:
		for i := 0; i < numElements; i++ {
			b := src[i*16 : i*16+16]
			for k := 0; k < 16; k++ {
				dst[k*numElements+i] = b[k]
			}
		}
	}
}

// unshuffleFixed is the inverse of shuffleFixed.
func unshuffleFixed(typesize, numElements int, src, dst []byte) {
	if !shuffleFastPath {
		unshuffleGeneric(typesize, numElements, src, dst)
		return
	}
	switch typesize {
	case 2:
		for i := 0; i < numElements; i++ {
			o := dst[i*2 : i*2+2]
			o[0] = src[0*numElements+i]
			o[1] = src[1*numElements+i]
		}
	case 4:
		for i := 0; i < numElements; i++ {
			o := dst[i*4 : i*4+4]
			o[0] = src[0*numElements+i]
			o[1] = src[1*numElements+i]
			o[2] = src[2*numElements+i]
			o[3] = src[3*numElements+i]
		}
	case 8:
		for i := 0; i < numElements; i++ {
			o := dst[i*8 : i*8+8]
			for k := 0; k < 8; k++ {
				o[k] = src[k*numElements+i]
			}
		}
	case 16:
		for i := 0; i < numElements; i++ {
			o := dst[i*16 : i*16+16]
			for k := 0; k < 16; k++ {
				o[k] = src[k*numElements+i]
			}
		}
	}
}
