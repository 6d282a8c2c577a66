package lossy

import "github.com/pkg/errors"

// Sentinel errors returned by the public decode entry point. Callers may
// compare against these with the standard library's errors.Is; wrapped
// context (offsets, field names) is added with errors.Wrapf at the point
// each is raised, and pkg/errors' Unwrap support keeps the chain visible to
// errors.Is/errors.As without an extra import in the caller.
var (
	// ErrUnsupportedProfile is returned for a reserved or not-yet-handled
	// profile/version field in the frame tag.
	ErrUnsupportedProfile = errors.New("lossy: unsupported profile")

	// ErrInvalidHeader covers any structurally malformed header: a bad
	// start code, a zero picture dimension, or an out-of-range partition
	// count.
	ErrInvalidHeader = errors.New("lossy: invalid frame header")

	// ErrTruncatedBitstream is returned when a boolean-decoder partition
	// runs out of input before the macroblock grid finishes decoding.
	ErrTruncatedBitstream = errors.New("lossy: truncated bitstream")

	// ErrOutOfMemory is returned when a requested frame exceeds the
	// decoder's sanity limit on macroblock-grid size.
	ErrOutOfMemory = errors.New("lossy: frame dimensions exceed memory limit")

	// ErrInternalInvariantViolated guards state this package's own logic
	// should make unreachable; seeing it means a bug in this decoder, not
	// a malformed input.
	ErrInternalInvariantViolated = errors.New("lossy: internal invariant violated")
)

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
