package ccittfax

import "errors"

// Sentinel errors returned by this package. All are fatal to the strip
// currently being encoded; the codec does not retry or recover from any
// of them internally.
var (
	// ErrUnsupportedOption is returned when Params.Scheme is neither
	// SchemeT4 nor SchemeT6. Params has no field through which Group 3 2-D
	// or uncompressed mode could be requested.
	ErrUnsupportedOption = errors.New("ccittfax: unsupported option")

	// ErrInvalidDimension is returned when Columns or a strip's row count
	// is zero.
	ErrInvalidDimension = errors.New("ccittfax: invalid dimension")

	// ErrSinkWrite wraps a short write or failure reported by the output
	// byte sink.
	ErrSinkWrite = errors.New("ccittfax: sink write failed")

	// ErrInternalInvariant is raised only when a table lookup fails for a
	// legal (color, length) pair. It indicates a bug in this package, not
	// a data-driven fault, and should never occur in normal operation.
	ErrInternalInvariant = errors.New("ccittfax: internal invariant violated")
)
