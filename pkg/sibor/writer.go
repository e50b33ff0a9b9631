package sibor

import (
	"io"
	"math"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
)

// Writer encodes primitives to an underlying io.Writer, counting the bytes
// it has produced. A Writer serves a single encode operation and must not
// be shared between goroutines; independent Writers over independent
// destinations are safe to use concurrently.
type Writer struct {
	w io.Writer
	n int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// N returns the total number of bytes written so far.
func (w *Writer) N() int64 {
	return int64(w.n)
}

func (w *Writer) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	w.n += n
	return n, err
}

// Byte writes a single raw byte with no length prefix.
func (w *Writer) Byte(b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// Uint64 writes v in the variable-length encoding: seven payload bits per
// byte, least significant group first, high bit set on every byte except
// the last. The emitted form is always the minimal one for v.
func (w *Writer) Uint64(v uint64) error {
	buf := [maxVarintLen]byte{}
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	_, err := w.Write(buf[:i+1])
	return err
}

// Int64 writes v as the variable-length encoding of its zigzag mapping.
func (w *Writer) Int64(v int64) error {
	return w.Uint64(ZigZag(v))
}

// Float64 writes the IEEE-754 bit pattern of v as an unsigned varint.
// Mantissa bits are high-entropy for most values, so this usually costs
// 9 or 10 bytes on the wire.
func (w *Writer) Float64(v float64) error {
	return w.Uint64(math.Float64bits(v))
}

// Bool writes a single byte, 1 for true and 0 for false.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.Byte(1)
	}
	return w.Byte(0)
}

// Bytes writes the length of b as an unsigned varint followed by the raw
// bytes.
func (w *Writer) Bytes(b []byte) error {
	l, err := safecast.ToUint64(len(b))
	if err != nil {
		return errors.Wrap(err, "byte string length")
	}
	if err := w.Uint64(l); err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// String writes s as a length-prefixed byte string. Go strings hold
// arbitrary bytes, but decoders reject text that is not valid UTF-8, so
// the caller is responsible for s being well-formed.
func (w *Writer) String(s string) error {
	l, err := safecast.ToUint64(len(s))
	if err != nil {
		return errors.Wrap(err, "string length")
	}
	if err := w.Uint64(l); err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// BeginSequence writes the element count for a sequence. The caller must
// follow with exactly n element encodings.
func (w *Writer) BeginSequence(n int) error {
	l, err := safecast.ToUint64(n)
	if err != nil {
		return errors.Wrap(err, "sequence length")
	}
	return w.Uint64(l)
}

// BeginAggregate starts a fixed-arity value. Aggregates carry no count and
// no field tags on the wire, so nothing is written; both sides must agree
// on the field order in advance.
func (w *Writer) BeginAggregate() error {
	return nil
}

// Tag writes a union discriminant as an unsigned varint. The payload of
// the selected variant follows with no further framing.
func (w *Writer) Tag(v uint64) error {
	return w.Uint64(v)
}
