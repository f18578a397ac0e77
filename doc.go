// Package blosc provides a pure Go implementation of a blocked, shuffled,
// multi-threaded compression codec for homogeneous typed buffers.
//
// Given a contiguous byte buffer logically composed of fixed-size elements
// (the "type size"), Compress produces a self-describing compressed
// artifact, and Decompress inversely reconstructs the original buffer (or,
// via GetItem, an arbitrary element-range slice of it).
//
// Three mechanisms interact to make this useful for typed numeric data:
//
//   - A byte-transpose ("shuffle") applied per block that groups the k-th
//     byte of every element together, improving downstream entropy-coder
//     ratios.
//   - A block/split pipeline that slices the input into cache-friendly
//     blocks, optionally splits each block along the shuffle axis, and
//     drives an interchangeable compression backend per split.
//   - A parallel block scheduler that compresses/decompresses blocks
//     concurrently while preserving a deterministic, appendable on-wire
//     layout: the compressed artifact is byte-identical no matter how many
//     goroutines drove its production.
//
// # Basic usage
//
//	blosc.SetCompressor("lz4")
//	compressed, err := blosc.Compress(data, 5, true, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	decompressed, err := blosc.Decompress(compressed)
//
// # Backends
//
// Six backends are registered: BloscLZ, LZ4, LZ4HC, Snappy, ZLIB and ZSTD.
// Each is a thin adapter over a real third-party codec library; see the
// package README-equivalent (DESIGN.md in the source tree) for exactly
// which one.
//
// # Context-explicit entry points
//
// CompressCtx and DecompressCtx take an explicit Context value (backend,
// block size, thread count) and touch no process-wide state. The plain
// Compress/Decompress/GetItem functions are a convenience layer over a
// single guarded ambient Context, configurable via SetCompressor,
// SetBlockSize and SetNThreads.
//
// # Thread safety
//
// All exported functions are safe for concurrent use. The context-explicit
// functions never block on shared state; the ambient functions serialize
// against concurrent SetCompressor/SetBlockSize/SetNThreads calls.
package blosc
