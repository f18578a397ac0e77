package blosc

import (
	"bytes"
	"testing"
)

func TestCompressDeterministicAcrossThreadCounts(t *testing.T) {
	data := makeTestData(4 * mb)

	var outputs [][]byte
	for _, threads := range []int{1, 2, 4, 8} {
		ctx := Context{Backend: "lz4", NThreads: threads, BlockSize: 64 * kb}
		out, err := CompressCtx(ctx, data, 5, true, 4)
		if err != nil {
			t.Fatalf("CompressCtx(threads=%d): %v", threads, err)
		}
		outputs = append(outputs, out)
	}

	for i := 1; i < len(outputs); i++ {
		if !bytes.Equal(outputs[0], outputs[i]) {
			t.Errorf("compressed output differs between thread counts: len(T1)=%d len(Ti)=%d", len(outputs[0]), len(outputs[i]))
		}
	}
}

func TestDecompressAgreesAcrossThreadCounts(t *testing.T) {
	data := makeTestData(2 * mb)
	ctx := Context{Backend: "zlib", NThreads: 4, BlockSize: 32 * kb}
	compressed, err := CompressCtx(ctx, data, 5, true, 8)
	if err != nil {
		t.Fatalf("CompressCtx: %v", err)
	}

	for _, threads := range []int{1, 2, 8} {
		out, err := DecompressCtx(Context{NThreads: threads}, compressed)
		if err != nil {
			t.Fatalf("DecompressCtx(threads=%d): %v", threads, err)
		}
		if !bytes.Equal(data, out) {
			t.Errorf("decompress mismatch at threads=%d", threads)
		}
	}
}

func TestBlockSpanRejectsOutOfRangeOffsets(t *testing.T) {
	backend, _ := backendByName("lz4")
	dst := make([]byte, headerOverhead(2)+100)
	h := writeHeader(dst, backend, 5, false, 1, 100, 50, 2)
	h.SetBStarts(0, 0)
	h.SetBStarts(1, int32(len(h.Payload())+5)) // out of range

	// Block 0's end bound is bstarts[1], so its span is rejected as well.
	if _, _, err := blockSpan(h, 0, len(h.Payload())); err == nil {
		t.Error("expected an error for block 0, whose end bound bstarts[1] is out of range")
	}
	if _, _, err := blockSpan(h, 1, len(h.Payload())); err == nil {
		t.Error("expected an error for an out-of-range bstarts entry")
	}
}

func TestTurnstileAdmitsStrictlyInOrder(t *testing.T) {
	ts := newTurnstile()
	n := 16
	order := make([]int, 0, n)
	done := make(chan struct{})

	for i := n - 1; i >= 0; i-- {
		i := i
		go func() {
			ts.admit(i, func() { order = append(order, i) })
			if i == n-1 {
				close(done)
			}
		}()
	}
	<-done

	for i, v := range order {
		if v != i {
			t.Fatalf("turnstile admitted out of order: position %d got index %d", i, v)
		}
	}
}

func TestGiveupIsSticky(t *testing.T) {
	g := &giveup{}
	g.trigger(ErrBackendError)
	g.trigger(nil) // must not overwrite the first trigger

	triggered, err := g.state()
	if !triggered {
		t.Fatal("expected giveup to be triggered")
	}
	if err != ErrBackendError {
		t.Errorf("giveup error = %v, want %v (first trigger wins)", err, ErrBackendError)
	}
}
