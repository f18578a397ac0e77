package blosc

// negSentinel is a negative code for an unknown or unavailable backend
// identifier. The lookup functions in this file do not return it: they
// report such identifiers with ok == false, and the exported wrappers
// with ErrUnsupportedBackend.
const negSentinel = -1

// registry maps every built-in Codec to its backendDescriptor. Indexing
// by Codec keeps the core free of any switch on backend identity outside
// this file: BC/BD/the planner all go through a *backendDescriptor.
var registry = map[Codec]*backendDescriptor{
	BloscLZ: {
		code:       BloscLZ,
		wireCode:   0,
		name:       "blosclz",
		version:    "1.0 (flate-backed)",
		available:  true,
		compress:   bloscLZCompress,
		decompress: bloscLZDecompress,
		worstCase:  deflateWorstCase,
		levelScale: bloscLZLevelScale,
	},
	LZ4: {
		code:       LZ4,
		wireCode:   1,
		name:       "lz4",
		version:    "4.1",
		available:  true,
		compress:   lz4Compress,
		decompress: lz4Decompress,
		worstCase:  lz4WorstCase,
	},
	LZ4HC: {
		code: LZ4HC,
		// LZ4HC shares LZ4's wire code: both are decoded by
		// lz4.UncompressBlock, so a reader cannot (and need not)
		// distinguish which encoder produced a given split.
		wireCode:   1,
		name:       "lz4hc",
		version:    "4.1",
		available:  true,
		compress:   lz4hcCompress,
		decompress: lz4Decompress,
		worstCase:  lz4WorstCase,
		levelScale: lz4hcLevelScale,
	},
	Snappy: {
		code:       Snappy,
		wireCode:   2,
		name:       "snappy",
		version:    "klauspost/compress",
		available:  true,
		compress:   snappyCompress,
		decompress: snappyDecompress,
		worstCase:  snappyWorstCase,
	},
	ZLIB: {
		code:       ZLIB,
		wireCode:   3,
		name:       "zlib",
		version:    "klauspost/compress",
		available:  true,
		compress:   zlibCompress,
		decompress: zlibDecompress,
		worstCase:  deflateWorstCase,
		levelScale: zlibLevelScale,
	},
	ZSTD: {
		code:       ZSTD,
		wireCode:   4,
		name:       "zstd",
		version:    "klauspost/compress",
		available:  true,
		compress:   zstdCompress,
		decompress: zstdDecompress,
		worstCase:  zstdWorstCase,
		levelScale: zstdLevelScale,
	},
}

// backendOrder fixes an iteration order for listCompressors so output is
// deterministic across calls, matching the spirit of upstream's static
// strcat-built list.
var backendOrder = []Codec{BloscLZ, LZ4, LZ4HC, Snappy, ZLIB, ZSTD}

// backendByCode returns the descriptor for a registered, available
// backend, or (nil, false).
func backendByCode(c Codec) (*backendDescriptor, bool) {
	d, ok := registry[c]
	if !ok || !d.available {
		return nil, false
	}
	return d, true
}

// backendByName is the name->code lookup; returns (nil, false) for an
// unregistered or unavailable name.
func backendByName(name string) (*backendDescriptor, bool) {
	for _, c := range backendOrder {
		d := registry[c]
		if d.available && d.name == name {
			return d, true
		}
	}
	return nil, false
}

// backendByWireCode resolves the 3-bit flags.backend field back to a
// descriptor. Because LZ4HC shares LZ4's wire code, a decoder always
// recovers LZ4 here; this is correct because both decompress identically.
func backendByWireCode(wire uint8) (*backendDescriptor, bool) {
	for _, c := range backendOrder {
		d := registry[c]
		if d.available && d.wireCode == wire {
			return d, true
		}
	}
	return nil, false
}

// compcodeToCompname translates a public Codec to its registered name.
func compcodeToCompname(c Codec) (string, bool) {
	d, ok := backendByCode(c)
	if !ok {
		return "", false
	}
	return d.name, true
}

// compnameToCompcode translates a registered name to its public Codec,
// or (0, false) for an unknown/unavailable name -- callers needing an
// error value should use CompnameToCompcode, which wraps
// ErrUnsupportedBackend.
func compnameToCompcode(name string) (Codec, bool) {
	d, ok := backendByName(name)
	if !ok {
		return 0, false
	}
	return d.code, true
}

// listCompressors returns the comma-separated names of every backend
// available in this build, in a fixed order.
func listCompressors() string {
	out := ""
	for _, c := range backendOrder {
		d := registry[c]
		if !d.available {
			continue
		}
		if out != "" {
			out += ","
		}
		out += d.name
	}
	return out
}
