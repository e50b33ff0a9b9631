package sibor

import (
	"math"
	"unicode/utf8"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
)

// Reader decodes primitives from a borrowed byte slice, advancing through
// it as they are consumed. The slice is never modified. A Reader serves a
// single decode operation; after any error its position is unspecified
// and it must not be reused.
type Reader struct {
	b []byte
}

func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Len reports the number of bytes left to consume.
func (r *Reader) Len() int {
	return len(r.b)
}

// Byte consumes a single raw byte.
func (r *Reader) Byte() (byte, error) {
	if len(r.b) < 1 {
		return 0, errors.Wrap(ErrTruncated, "reading byte")
	}
	out := r.b[0]
	r.b = r.b[1:]
	return out, nil
}

// Uint64 consumes a variable-length unsigned integer. Any terminating
// encoding of up to ten bytes is accepted, minimal or not, as long as the
// accumulated value fits in 64 bits.
func (r *Reader) Uint64() (uint64, error) {
	var v uint64
	for i := 0; i < maxVarintLen; i++ {
		if len(r.b) < 1 {
			return 0, errors.Wrap(ErrTruncated, "reading uvarint")
		}
		b := r.b[0]
		r.b = r.b[1:]
		if i == maxVarintLen-1 && b > 1 {
			// Nine bytes carry 63 payload bits; the tenth may only hold
			// bit 63, and must terminate.
			return 0, errors.Wrap(ErrOverflow, "reading uvarint")
		}
		v |= uint64(b&0x7f) << (i * 7)
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, errors.Wrap(ErrOverflow, "reading uvarint")
}

// Int64 consumes a zigzag-mapped variable-length signed integer.
func (r *Reader) Int64() (int64, error) {
	u, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	return UnZigZag(u), nil
}

// Float64 consumes a varint and reinterprets it as IEEE-754 bits. NaN
// payloads come back untouched.
func (r *Reader) Float64() (float64, error) {
	u, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// Bool consumes one byte that must be exactly 0 or 1.
func (r *Reader) Bool() (bool, error) {
	b, err := r.Byte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidEncoding, "boolean byte 0x%02x", b)
	}
}

// Bytes consumes a varint length followed by that many raw bytes. The
// returned slice aliases the Reader's input; callers that retain it past
// the input's lifetime must copy.
func (r *Reader) Bytes() ([]byte, error) {
	return r.BytesInRange(0, math.MaxInt)
}

// BytesInRange is Bytes with explicit bounds on the declared length,
// inclusive on both ends. A length outside the bounds fails with
// ErrInvalidEncoding before any bytes are consumed past the prefix.
func (r *Reader) BytesInRange(minLen, maxLen int) ([]byte, error) {
	l64, err := r.Uint64()
	if err != nil {
		return nil, err
	}
	l, err := safecast.ToInt(l64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "byte string length %d", l64)
	}
	if l < minLen || l > maxLen {
		return nil, errors.Wrapf(ErrInvalidEncoding, "byte string length %d outside [%d, %d]", l, minLen, maxLen)
	}
	if l > len(r.b) {
		return nil, errors.Wrapf(ErrTruncated, "byte string of %d bytes, %d left", l, len(r.b))
	}
	out := r.b[:l]
	r.b = r.b[l:]
	return out, nil
}

// String consumes a length-prefixed byte string and validates it as
// UTF-8 text.
func (r *Reader) String() (string, error) {
	return r.StringInRange(0, math.MaxInt)
}

// StringInRange is String with explicit bounds on the declared byte
// length, inclusive on both ends.
func (r *Reader) StringInRange(minLen, maxLen int) (string, error) {
	b, err := r.BytesInRange(minLen, maxLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(ErrInvalidEncoding, "text is not valid utf-8")
	}
	return string(b), nil
}

// BeginSequence consumes a sequence's declared element count. The count
// alone is no guarantee the elements are all present; the caller learns
// that by decoding them.
func (r *Reader) BeginSequence() (int, error) {
	l64, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	l, err := safecast.ToInt(l64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidEncoding, "sequence length %d", l64)
	}
	return l, nil
}

// BeginAggregate starts a fixed-arity value. Nothing is on the wire for
// it; the method exists so traversals can mirror the encode side.
func (r *Reader) BeginAggregate() error {
	return nil
}

// Tag consumes a union discriminant.
func (r *Reader) Tag() (uint64, error) {
	return r.Uint64()
}
