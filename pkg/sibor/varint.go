package sibor

// maxVarintLen is the longest wire representation of a 64-bit value,
// ceil(64/7) bytes. A decoder that has consumed this many bytes without
// seeing a terminator is looking at garbage.
const maxVarintLen = 10

// ZigZag maps a signed value onto the unsigned domain by interleaving
// positive and negative magnitudes: 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3.
// Small magnitudes of either sign produce small results, which keeps the
// subsequent variable-length encoding short. The mapping is a bijection
// over the full 64-bit domain.
func ZigZag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// UnZigZag is the inverse of ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// UvarintSize returns the number of bytes the canonical variable-length
// encoding of v occupies: 1 for values below 0x80, up to 10 for the full
// 64-bit range.
func UvarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		n++
		v >>= 7
	}
	return n
}

// VarintSize returns the encoded size of a signed value, zigzag included.
func VarintSize(v int64) int {
	return UvarintSize(ZigZag(v))
}
