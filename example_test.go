package blosc

import (
	"encoding/binary"
	"fmt"
)

// Example demonstrates compressing a buffer of float64s and decoding a
// small slice of it without decompressing the whole thing.
func Example() {
	n := 1000
	data := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(data[i*8:], uint64(i*i))
	}

	compressed, err := CompressCtx(Context{Backend: "zstd"}, data, 5, true, 8)
	if err != nil {
		panic(err)
	}

	nbytes, cbytes, _, err := CBufferSizes(compressed)
	if err != nil {
		panic(err)
	}
	fmt.Printf("compressed %d bytes into %d bytes\n", nbytes, cbytes)

	// Output: compressed 8000 bytes into 1386 bytes
}
