package montmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Exponents chosen to land on window seams: runs of zero windows, a lone top
// bit, and values straddling the twoPowLimited/rTimesTwoPowLimited split.
func TestTwoPowWindowSeams(t *testing.T) {
	exponents := []uint64{
		1 << 63, 1<<63 + 1, 1 << 32, 1<<32 - 1,
		0x8000000000000001, 0x8100000000000000, 0xffffffffffffffff,
		64, 65, 127, 128, 129, 448, 449,
	}
	moduli := []uint64{3, 65537, 4294967291, 18446744073709551557}
	for _, n := range moduli {
		f := NewForm(n)
		bn := bigU(n)
		for _, e := range exponents {
			want := new(big.Int).Exp(big.NewInt(2), bigU(e), bn)
			require.Equal(t, want.Uint64(), f.ConvertOut(f.TwoPow(e)), "2^%d mod %d", e, n)
		}
	}
}

func TestTwoPowMatchesPow(t *testing.T) {
	for _, n := range []uint64{5, 1009, 4611686018427387847} {
		f := NewQuarterForm(n)
		two := f.ConvertIn(2)
		for _, e := range []uint64{0, 1, 63, 64, 65, 4096, 1<<50 + 7} {
			require.Equal(t, f.ConvertOut(f.Pow(two, e)), f.ConvertOut(f.TwoPow(e)), "exp=%d n=%d", e, n)
		}
	}
}

func TestTwoPowNarrowWidths(t *testing.T) {
	f8 := NewForm[uint8](251)
	f16 := NewHalfForm[uint16](32749)
	for e := uint64(0); e < 300; e++ {
		want8 := new(big.Int).Exp(big.NewInt(2), bigU(e), bigU(251))
		require.EqualValues(t, want8.Uint64(), f8.ConvertOut(f8.TwoPow(e)), "2^%d mod 251", e)
		want16 := new(big.Int).Exp(big.NewInt(2), bigU(e), bigU(32749))
		require.EqualValues(t, want16.Uint64(), f16.ConvertOut(f16.TwoPow(e)), "2^%d mod 32749", e)
	}
}

func TestTwoPowArrayMixedMagnitudes(t *testing.T) {
	f := NewForm[uint32](4294967293)
	exps := []uint64{0, 1, 5, 31, 32, 33, 1000, 1 << 40, ^uint64(0)}
	got := f.TwoPowArray(exps)
	for i, e := range exps {
		require.Equal(t, f.ConvertOut(f.TwoPow(e)), f.ConvertOut(got[i]), "lane %d exp=%d", i, e)
	}
}
