package blosc

import (
	"runtime"
	"sync"
)

// Context carries the explicit (backend, blocksize override, thread
// count) triple the *_ctx entry points take per §6, instead of touching
// process-wide state. Context is the primary interface; the ambient
// Compress/Decompress/GetItem wrap a single guarded Context behind the
// package-level Set* functions, per the "ambient context" design note.
type Context struct {
	// Backend selects the compression backend by name (e.g. "lz4",
	// "zstd"). Empty means LZ4, the same default upstream uses.
	Backend string

	// BlockSize, if positive, overrides the planner's heuristic (still
	// clamped to MinBufferSize). Zero lets the planner choose.
	BlockSize int

	// NThreads bounds how many goroutines the scheduler may run
	// concurrently. Values <= 1 force the serial path.
	NThreads int
}

// resolveBackend returns the backend descriptor this Context selects, or
// ErrUnsupportedBackend if Backend names something unregistered or
// unavailable.
func (c Context) resolveBackend() (*backendDescriptor, error) {
	name := c.Backend
	if name == "" {
		name = "lz4"
	}
	d, ok := backendByName(name)
	if !ok {
		return nil, wrapf(ErrUnsupportedBackend, "backend %q", name)
	}
	return d, nil
}

// threads returns the effective thread count: NThreads if positive, else
// GOMAXPROCS(0).
func (c Context) threads() int {
	if c.NThreads > 0 {
		return c.NThreads
	}
	return runtime.GOMAXPROCS(0)
}

// ambient holds the single process-wide configuration record behind the
// "stateless" public API, guarded by ambientMu. Entry points that mutate
// it (SetNThreads, SetCompressor, SetBlockSize) take the lock only for
// the mutation; the non-ctx Compress/Decompress/GetItem take it for the
// entire duration of one call, so a concurrent reconfiguration can never
// interleave with an in-flight call.
var (
	ambientMu  sync.Mutex
	ambient    = Context{Backend: "lz4", NThreads: runtime.GOMAXPROCS(0)}
)

// SetCompressor sets the ambient backend by name; it returns
// ErrUnsupportedBackend if name is not registered or not available in
// this build. Held under the process lock for the duration of the
// mutation only.
func SetCompressor(name string) error {
	if _, ok := backendByName(name); !ok {
		return wrapf(ErrUnsupportedBackend, "backend %q", name)
	}
	ambientMu.Lock()
	ambient.Backend = name
	ambientMu.Unlock()
	return nil
}

// SetNThreads sets the ambient thread count and returns the previous
// value, mirroring upstream's "returns old nthreads" convention.
func SetNThreads(n int) int {
	if n < 1 {
		n = 1
	}
	ambientMu.Lock()
	old := ambient.NThreads
	ambient.NThreads = n
	ambientMu.Unlock()
	return old
}

// SetBlockSize forces the ambient blocksize; 0 restores automatic
// planning.
func SetBlockSize(n int) {
	ambientMu.Lock()
	ambient.BlockSize = n
	ambientMu.Unlock()
}

// withAmbient runs fn with the ambient Context, holding ambientMu for
// fn's entire duration. Per §5, the lock must be held for the whole of
// one compress/decompress/getitem call so that a concurrent
// SetNThreads/SetCompressor/SetBlockSize can never interleave with an
// in-flight ambient call; this is the price of the "stateless" ambient
// API's convenience, and is exactly why CompressCtx/DecompressCtx/
// GetItemCtx exist as the concurrency-friendly primary interface.
func withAmbient[T any](fn func(ctx Context) (T, error)) (T, error) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	return fn(ambient)
}
