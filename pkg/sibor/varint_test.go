package sibor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZag(t *testing.T) {
	for _, tc := range []struct {
		signed   int64
		unsigned uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	} {
		require.Equal(t, tc.unsigned, ZigZag(tc.signed))
		require.Equal(t, tc.signed, UnZigZag(tc.unsigned))
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 64, -65, math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1} {
		require.Equal(t, v, UnZigZag(ZigZag(v)))
	}
}

func TestUvarintSize(t *testing.T) {
	for _, tc := range []struct {
		v    uint64
		size int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{300, 2},
		{16383, 2},
		{16384, 3},
		{math.MaxUint64, 10},
	} {
		require.Equal(t, tc.size, UvarintSize(tc.v), "value %d", tc.v)
	}
}

func TestUvarintSizeByBitLength(t *testing.T) {
	// A value with i+1 significant bits takes ceil((i+1)/7) bytes.
	for i := 0; i < 64; i++ {
		v := uint64(1) << i
		require.Equal(t, (i+7)/7, UvarintSize(v), "bit %d", i)
	}
}

func TestVarintSize(t *testing.T) {
	require.Equal(t, 1, VarintSize(0))
	require.Equal(t, 1, VarintSize(-1))
	require.Equal(t, 1, VarintSize(63))
	require.Equal(t, 2, VarintSize(64))
	require.Equal(t, 10, VarintSize(math.MinInt64))
}
