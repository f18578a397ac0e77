package blosc

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind in the design. Wrap with wrapf
// (fmt.Errorf("%w: ...", ErrX, ...)) at the detection site so callers can
// branch with errors.Is.
var (
	// ErrBadArg covers out-of-range levels, malformed shuffle flags, and
	// out-of-range getitem ranges.
	ErrBadArg = errors.New("blosc: bad argument")

	// ErrUnsupportedBackend indicates a backend name or wire code that is
	// not registered or not available in this build.
	ErrUnsupportedBackend = errors.New("blosc: unsupported backend")

	// ErrBufferTooSmall indicates the destination cannot hold the
	// required output.
	ErrBufferTooSmall = errors.New("blosc: destination buffer too small")

	// ErrBackendError indicates a backend returned a negative code, or
	// decoded a split to a length other than expected.
	ErrBackendError = errors.New("blosc: backend codec error")

	// ErrHeaderCorrupt indicates a malformed or untrustworthy header:
	// declared nbytes exceeding the caller's capacity, or a bstarts entry
	// outside the artifact.
	ErrHeaderCorrupt = errors.New("blosc: corrupt header")
)

// wrapf wraps a sentinel error with a formatted message, preserving
// errors.Is compatibility.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
