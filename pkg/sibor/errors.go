package sibor

import "github.com/pkg/errors"

// Decode failure modes. Encoding is total over valid in-memory values and
// fails only when the underlying io.Writer does. Callers test for these
// with errors.Is; the codec wraps them with positional context.
var (
	// ErrTruncated means the input ran out before a primitive's encoding
	// completed.
	ErrTruncated = errors.New("sibor: unexpected end of input")

	// ErrOverflow means a variable-length integer took more than ten bytes
	// or did not fit the 64-bit range, or a decoded value did not fit the
	// target type.
	ErrOverflow = errors.New("sibor: value out of range")

	// ErrInvalidEncoding means the bytes were readable but malformed: a
	// boolean byte other than 0 or 1, text that is not valid UTF-8, or a
	// declared length outside the permitted bounds.
	ErrInvalidEncoding = errors.New("sibor: invalid encoding")

	// ErrUnsupportedType is returned by the reflect layer for Go types the
	// format cannot express, such as maps, pointers and channels.
	ErrUnsupportedType = errors.New("sibor: unsupported type")
)
