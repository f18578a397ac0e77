package blosc

import (
	"bytes"
	cryptorand "crypto/rand"
	"testing"
)

func TestBackendCompressDecompressRoundTrip(t *testing.T) {
	for _, name := range []string{"blosclz", "lz4", "lz4hc", "snappy", "zlib", "zstd"} {
		t.Run(name, func(t *testing.T) {
			d, ok := backendByName(name)
			if !ok {
				t.Fatalf("backend %q not registered", name)
			}
			in := makeTestData(8192)
			out := make([]byte, d.maxout(len(in)))

			c := d.compress(d.scaledLevel(5), in, out)
			if c <= 0 {
				t.Fatalf("compress returned %d", c)
			}

			restored := make([]byte, len(in))
			n := d.decompress(out[:c], restored)
			if n != len(in) {
				t.Fatalf("decompress returned %d, want %d", n, len(in))
			}
			if !bytes.Equal(in, restored) {
				t.Error("round trip mismatch")
			}
		})
	}
}

func TestBackendCompressRandomDataFitsWorstCase(t *testing.T) {
	// Every backend's worstCase bound must actually bound its output, even
	// on incompressible input -- this is the exact assumption BC's split
	// budgeting relies on.
	in := make([]byte, 4096)
	if _, err := cryptorand.Read(in); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"blosclz", "lz4", "lz4hc", "snappy", "zlib", "zstd"} {
		t.Run(name, func(t *testing.T) {
			d, _ := backendByName(name)
			maxout := d.maxout(len(in))
			out := make([]byte, maxout)
			c := d.compress(d.scaledLevel(9), in, out)
			if c > maxout {
				t.Errorf("compress wrote %d bytes, exceeding worstCase bound %d", c, maxout)
			}
		})
	}
}

func TestLZ4HCLevelScaleMonotonic(t *testing.T) {
	prev := lz4hcLevelScale(0)
	for level := 1; level <= 9; level++ {
		got := lz4hcLevelScale(level)
		if got < prev {
			t.Errorf("lz4hcLevelScale(%d) = %d is lower than lz4hcLevelScale(%d) = %d", level, got, level-1, prev)
		}
		prev = got
	}
}

func TestDeflateWorstCaseIsPositiveAndGrows(t *testing.T) {
	a := deflateWorstCase(100)
	b := deflateWorstCase(10000)
	if a <= 0 || b <= 0 {
		t.Fatal("deflateWorstCase must be positive")
	}
	if b <= a {
		t.Error("deflateWorstCase should grow with input size")
	}
}
