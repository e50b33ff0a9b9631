/*
Package sibor implements the SIBOR binary serialization format.

SIBOR is a non-self-describing wire format for values of a schema known in
advance to both sides. It is designed to be trivial to implement, fast to
encode and decode, and reasonably compact, which keeps the feature set
deliberately small:

  - There are no type tags, field tags, headers or version markers on the
    wire. Producer and consumer must agree on the schema out of band; a
    mismatch is undetectable.
  - There are no optional values. Every field is always present.
  - Maps are not a wire-level construct. Callers encode them as sequences
    of key-value pairs.
  - All signed integers, unsigned integers and floats travel as 64-bit
    values.
  - Unsigned integers use a variable-length encoding: seven payload bits
    per byte, least significant group first, high bit set on every byte
    except the last. Encoders always emit the minimal form; decoders accept
    any terminating form of up to ten bytes that fits in 64 bits.
  - Signed integers are zigzag-mapped onto the unsigned domain first, so
    small magnitudes of either sign stay short on the wire.
  - Floats are encoded as the variable-length form of their IEEE-754 bit
    pattern. Round-trips are bit-exact, including negative zero, infinities
    and NaN payloads.
  - Byte strings and text are a variable-length count followed by the raw
    bytes; text must be valid UTF-8. Sequences are a count followed by the
    elements. Fixed-arity values (structs, arrays) are the plain
    concatenation of their fields in declared order.

Two low-level types carry the codec: Writer appends primitives to an
io.Writer, Reader consumes them from a byte slice. On top of them, Marshal
and Unmarshal map Go values onto the format via reflection, and types can
take over their own encoding through the Marshaler and Unmarshaler
interfaces.

Declared lengths are not trusted: a byte string or element count that the
remaining input cannot possibly satisfy fails decoding before any large
allocation happens. All decode failures are reported through the sentinel
errors ErrTruncated, ErrOverflow and ErrInvalidEncoding.
*/
package sibor
