package blosc

import "encoding/binary"

// loadInt32 reads a little-endian 32-bit integer at an arbitrary byte
// offset, regardless of host endianness. Used for nbytes, blocksize,
// cbytes, bstarts entries and split length prefixes.
func loadInt32(p []byte) int32 {
	return int32(binary.LittleEndian.Uint32(p))
}

// storeInt32 writes v as a little-endian 32-bit integer at an arbitrary
// byte offset.
func storeInt32(p []byte, v int32) {
	binary.LittleEndian.PutUint32(p, uint32(v))
}

// loadUint32 is the unsigned counterpart of loadInt32, used for nbytes,
// blocksize and cbytes which are never negative.
func loadUint32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

// storeUint32 is the unsigned counterpart of storeInt32.
func storeUint32(p []byte, v uint32) {
	binary.LittleEndian.PutUint32(p, v)
}
