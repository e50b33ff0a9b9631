package sibor

// Encoder is the surface a value traversal drives while serializing: one
// method per primitive kind plus the hooks that open composite values.
// *Writer is the canonical implementation; the interface exists so
// traversal code, generated or reflective, does not care where the bytes
// go.
type Encoder interface {
	Uint64(v uint64) error
	Int64(v int64) error
	Float64(v float64) error
	Bool(v bool) error
	Bytes(b []byte) error
	String(s string) error
	BeginSequence(n int) error
	BeginAggregate() error
	Tag(v uint64) error
}

// Decoder mirrors Encoder on the decode side. BeginSequence returns the
// declared element count; the traversal must then decode exactly that
// many elements.
type Decoder interface {
	Uint64() (uint64, error)
	Int64() (int64, error)
	Float64() (float64, error)
	Bool() (bool, error)
	Bytes() ([]byte, error)
	String() (string, error)
	BeginSequence() (int, error)
	BeginAggregate() error
	Tag() (uint64, error)
}

var (
	_ Encoder = (*Writer)(nil)
	_ Decoder = (*Reader)(nil)
)

// Marshaler is implemented by types that encode themselves. Marshal and
// EncodedSize hand such types the operation's Writer instead of walking
// them reflectively.
type Marshaler interface {
	MarshalSibor(w *Writer) error
}

// Unmarshaler is the decode-side counterpart of Marshaler.
type Unmarshaler interface {
	UnmarshalSibor(r *Reader) error
}
