package blosc

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	data := makeTestData(10000)
	compressed, err := CompressCtx(Context{Backend: "lz4"}, data, 5, true, 4)
	if err != nil {
		t.Fatalf("CompressCtx: %v", err)
	}

	a, err := Fingerprint(compressed)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	b, err := Fingerprint(compressed)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if a != b {
		t.Error("Fingerprint is not deterministic for identical input")
	}
}

func TestFingerprintDiffersForDifferentArtifacts(t *testing.T) {
	a, err := CompressCtx(Context{Backend: "lz4"}, makeTestData(1000), 5, true, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CompressCtx(Context{Backend: "lz4"}, makeTestData(2000), 5, true, 4)
	if err != nil {
		t.Fatal(err)
	}

	fa, err := Fingerprint(a)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := Fingerprint(b)
	if err != nil {
		t.Fatal(err)
	}
	if fa == fb {
		t.Error("expected different fingerprints for different artifacts")
	}
}

func TestFingerprintRejectsTooShort(t *testing.T) {
	if _, err := Fingerprint([]byte{1, 2, 3}); err == nil {
		t.Error("expected an error for an artifact shorter than the header")
	}
}
