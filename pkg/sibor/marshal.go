package sibor

import (
	"io"
	"reflect"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// maxDepth bounds value nesting during decode. The wire carries no
// structure of its own, but a recursive Go type lets the input dictate
// how deep the traversal goes; failing cleanly beats exhausting the call
// stack.
const maxDepth = 1000

var (
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// Marshal encodes v and returns the wire bytes.
//
// Structs encode as the concatenation of their exported fields in declared
// order, arrays as the concatenation of their elements, slices as a count
// followed by the elements, with []byte as a length-prefixed byte string.
// Integers of any width travel as 64-bit values, float32 widens to
// float64. Types implementing Marshaler encode themselves. Maps, pointers,
// interfaces, channels and functions have no representation in the format
// and fail with ErrUnsupportedType.
func Marshal(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	w := NewWriter(buf)
	if err := encodeValue(w, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

// EncodedSize reports how many bytes Marshal would produce for v without
// materializing the encoding.
func EncodedSize(v any) (int, error) {
	w := NewWriter(io.Discard)
	if err := encodeValue(w, reflect.ValueOf(v)); err != nil {
		return 0, err
	}
	return int(w.N()), nil
}

// Unmarshal decodes data into the value pointed to by v, which must be a
// non-nil pointer to a type Marshal could have produced the data from.
// Input past the end of the value is left unread. On error the target may
// be partially written and must not be used.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Wrap(ErrUnsupportedType, "target must be a non-nil pointer")
	}
	return decodeValue(NewReader(data), rv.Elem(), 0)
}

func encodeValue(w *Writer, v reflect.Value) error {
	if !v.IsValid() {
		return errors.Wrap(ErrUnsupportedType, "untyped nil")
	}
	if v.Type().Implements(marshalerType) {
		return v.Interface().(Marshaler).MarshalSibor(w)
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(marshalerType) {
		return v.Addr().Interface().(Marshaler).MarshalSibor(w)
	}
	switch v.Kind() {
	case reflect.Bool:
		return w.Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.Int64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return w.Uint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return w.Float64(v.Float())
	case reflect.String:
		return w.String(v.String())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return w.Bytes(v.Bytes())
		}
		if err := w.BeginSequence(v.Len()); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := encodeValue(w, v.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil
	case reflect.Array:
		if err := w.BeginAggregate(); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := encodeValue(w, v.Index(i)); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil
	case reflect.Struct:
		if err := w.BeginAggregate(); err != nil {
			return err
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if err := encodeValue(w, v.Field(i)); err != nil {
				return errors.Wrapf(err, "field %s", f.Name)
			}
		}
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedType, "%s", v.Kind())
	}
}

func decodeValue(r *Reader, v reflect.Value, depth int) error {
	if depth > maxDepth {
		return errors.Wrapf(ErrInvalidEncoding, "nesting deeper than %d", maxDepth)
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(unmarshalerType) {
		return v.Addr().Interface().(Unmarshaler).UnmarshalSibor(r)
	}
	switch v.Kind() {
	case reflect.Bool:
		b, err := r.Bool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := r.Int64()
		if err != nil {
			return err
		}
		if v.OverflowInt(n) {
			return errors.Wrapf(ErrOverflow, "%d does not fit %s", n, v.Type())
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := r.Uint64()
		if err != nil {
			return err
		}
		if v.OverflowUint(n) {
			return errors.Wrapf(ErrOverflow, "%d does not fit %s", n, v.Type())
		}
		v.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := r.Float64()
		if err != nil {
			return err
		}
		if v.OverflowFloat(f) {
			return errors.Wrapf(ErrOverflow, "%g does not fit %s", f, v.Type())
		}
		v.SetFloat(f)
		return nil
	case reflect.String:
		s, err := r.String()
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := r.Bytes()
			if err != nil {
				return err
			}
			// Bytes aliases the input; the decoded value must own its
			// storage.
			v.SetBytes(append([]byte(nil), b...))
			return nil
		}
		n, err := r.BeginSequence()
		if err != nil {
			return err
		}
		// The declared count is untrusted; start from a capacity the
		// remaining input could actually justify and let append grow the
		// slice as elements arrive.
		c := n
		if c > r.Len() {
			c = r.Len()
		}
		s := reflect.MakeSlice(v.Type(), 0, c)
		for i := 0; i < n; i++ {
			e := reflect.New(v.Type().Elem()).Elem()
			if err := decodeValue(r, e, depth+1); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
			s = reflect.Append(s, e)
		}
		v.Set(s)
		return nil
	case reflect.Array:
		if err := r.BeginAggregate(); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := decodeValue(r, v.Index(i), depth+1); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil
	case reflect.Struct:
		if err := r.BeginAggregate(); err != nil {
			return err
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if err := decodeValue(r, v.Field(i), depth+1); err != nil {
				return errors.Wrapf(err, "field %s", f.Name)
			}
		}
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedType, "%s", v.Kind())
	}
}
