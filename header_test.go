package blosc

import "testing"

func TestWriteReadHeaderRoundTrip(t *testing.T) {
	backend, _ := backendByName("lz4")
	blocks := 3
	blocksize := 128
	nbytes := 300

	dst := make([]byte, headerOverhead(blocks)+nbytes)
	h := writeHeader(dst, backend, 5, true, 4, nbytes, blocksize, blocks)
	h.SetBStarts(0, 0)
	h.SetBStarts(1, 50)
	h.SetBStarts(2, 90)
	h.SetCBytes(uint32(len(dst)))

	parsed, err := readHeader(dst, nbytes)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if parsed.FormatVersion() != FormatVersion {
		t.Errorf("FormatVersion = %d, want %d", parsed.FormatVersion(), FormatVersion)
	}
	if !parsed.HasShuffle() {
		t.Error("expected shuffle flag set")
	}
	if parsed.IsMemcpy() {
		t.Error("did not expect memcpy flag")
	}
	if parsed.TypeSize() != 4 {
		t.Errorf("TypeSize = %d, want 4", parsed.TypeSize())
	}
	if int(parsed.NBytes()) != nbytes {
		t.Errorf("NBytes = %d, want %d", parsed.NBytes(), nbytes)
	}
	if int(parsed.BlockSize()) != blocksize {
		t.Errorf("BlockSize = %d, want %d", parsed.BlockSize(), blocksize)
	}
	if parsed.NumBlocks() != blocks {
		t.Errorf("NumBlocks = %d, want %d", parsed.NumBlocks(), blocks)
	}
	if parsed.BStarts(1) != 50 {
		t.Errorf("BStarts(1) = %d, want 50", parsed.BStarts(1))
	}
	if parsed.BackendWireCode() != backend.wireCode {
		t.Errorf("BackendWireCode = %d, want %d", parsed.BackendWireCode(), backend.wireCode)
	}
}

func TestWriteHeaderSetsMemcpyForLevelZero(t *testing.T) {
	backend, _ := backendByName("lz4")
	dst := make([]byte, headerOverhead(1)+128)
	h := writeHeader(dst, backend, 0, false, 1, 128, 128, 1)
	if !h.IsMemcpy() {
		t.Error("level 0 must force the memcpy flag")
	}
}

func TestWriteHeaderSetsMemcpyBelowMinBufferSize(t *testing.T) {
	backend, _ := backendByName("lz4")
	nbytes := MinBufferSize - 1
	dst := make([]byte, headerOverhead(1)+nbytes)
	h := writeHeader(dst, backend, 5, false, 1, nbytes, nbytes, 1)
	if !h.IsMemcpy() {
		t.Error("nbytes below MinBufferSize must force the memcpy flag")
	}
}

func TestReadHeaderRejectsShortArtifact(t *testing.T) {
	_, err := readHeader([]byte{1, 2, 3}, -1)
	if err == nil {
		t.Error("expected an error for an artifact shorter than the fixed header")
	}
}

func TestReadHeaderRejectsOversizedNBytes(t *testing.T) {
	backend, _ := backendByName("lz4")
	dst := make([]byte, headerOverhead(1)+128)
	writeHeader(dst, backend, 5, false, 1, 128, 128, 1)

	_, err := readHeader(dst, 64)
	if err == nil {
		t.Error("expected an error when declared nbytes exceeds destCap")
	}
}

func TestReadHeaderSkipsCapacityCheckWithNegativeOneSentinel(t *testing.T) {
	backend, _ := backendByName("lz4")
	dst := make([]byte, headerOverhead(1)+128)
	writeHeader(dst, backend, 5, false, 1, 128, 128, 1)

	if _, err := readHeader(dst, -1); err != nil {
		t.Errorf("destCap=-1 should skip the capacity check, got: %v", err)
	}
}

func TestHeaderPayloadExcludesBStartsTable(t *testing.T) {
	backend, _ := backendByName("lz4")
	blocks := 4
	dst := make([]byte, headerOverhead(blocks)+40)
	h := writeHeader(dst, backend, 5, false, 1, 40, 10, blocks)

	if len(h.Payload()) != 40 {
		t.Errorf("Payload() length = %d, want 40", len(h.Payload()))
	}
}
