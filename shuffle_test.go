package blosc

import (
	"bytes"
	"testing"
)

func TestShuffleUnshuffleRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		typesize int
		dataLen  int
	}{
		{"typesize1", 1, 1000},
		{"int16", 2, 1000},
		{"int32", 4, 500},
		{"int64", 8, 500},
		{"typesize16", 16, 256},
		{"typesize17_generic", 17, 17 * 30},
		{"typesize3_generic", 3, 3 * 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := makeTestData(tt.dataLen)
			shuffled := make([]byte, len(data))
			shuffle(tt.typesize, data, shuffled)

			restored := make([]byte, len(data))
			unshuffle(tt.typesize, shuffled, restored)

			if !bytes.Equal(data, restored) {
				t.Errorf("shuffle/unshuffle round-trip failed for typesize=%d", tt.typesize)
			}
		})
	}
}

func TestShuffleActuallyReorders(t *testing.T) {
	data := makeTestData(256)
	shuffled := make([]byte, len(data))
	shuffle(4, data, shuffled)

	if bytes.Equal(data, shuffled) {
		t.Error("shuffled output should differ from input for non-constant data")
	}
}

func TestShuffleTypeSizeOneIsIdentity(t *testing.T) {
	data := makeTestData(100)
	out := make([]byte, len(data))
	shuffle(1, data, out)

	if !bytes.Equal(data, out) {
		t.Error("shuffle with typesize=1 must be a no-op")
	}
}

func TestShuffleRemainderTail(t *testing.T) {
	// Length not a multiple of typesize: the remainder tail is copied
	// unshuffled by both directions, so the round trip still holds.
	data := makeTestData(1003)
	shuffled := make([]byte, len(data))
	shuffle(4, data, shuffled)

	restored := make([]byte, len(data))
	unshuffle(4, shuffled, restored)

	if !bytes.Equal(data, restored) {
		t.Error("shuffle/unshuffle round-trip failed with a non-multiple-of-typesize length")
	}
}

func TestShuffleFixedMatchesScalarTranspose(t *testing.T) {
	// Compares shuffle for each fixed typesize against a hand-rolled
	// scalar transpose. The loop exercised is whichever one
	// shuffleFastPath selects on this machine; it is not toggled here.
	for _, typesize := range []int{2, 4, 8, 16} {
		data := makeTestData(typesize * 64)
		n := len(data)
		numElements := n / typesize

		want := make([]byte, n)
		for i := 0; i < numElements; i++ {
			base := i * typesize
			for k := 0; k < typesize; k++ {
				want[k*numElements+i] = data[base+k]
			}
		}

		got := make([]byte, n)
		shuffle(typesize, data, got)

		if !bytes.Equal(want, got) {
			t.Errorf("shuffleFixed(typesize=%d) disagrees with the scalar transpose", typesize)
		}
	}
}

// makeTestData creates compressible test data: a repeating byte ramp.
func makeTestData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}
