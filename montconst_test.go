package montmath

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConstantsForWidth[T Uint](t *testing.T, samples []T) {
	w := bitsOf[T]()
	r := new(big.Int).Lsh(big.NewInt(1), uint(w))
	for _, n := range samples {
		n |= 1
		if n == 1 {
			continue
		}
		inv := inverseModR(n)
		require.EqualValues(t, 1, n*inv, "n=%d: n*inv must wrap to 1", n)

		bn := bigU(uint64(n))
		wantR := new(big.Int).Mod(r, bn)
		rmod := rModN(n)
		require.Equal(t, wantR.Uint64(), uint64(rmod), "R mod %d", n)

		wantR2 := new(big.Int).Mul(r, r)
		wantR2.Mod(wantR2, bn)
		require.Equal(t, wantR2.Uint64(), uint64(rSquaredModN(rmod, n)), "R^2 mod %d", n)
	}
}

func TestMontgomeryConstants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	odds8 := make([]uint8, 0, 128)
	for v := 3; v < 256; v += 2 {
		odds8 = append(odds8, uint8(v))
	}
	testConstantsForWidth(t, odds8)

	var s16 []uint16
	var s32 []uint32
	var s64 []uint64
	for i := 0; i < 3000; i++ {
		v := rng.Uint64()
		s16 = append(s16, uint16(v))
		s32 = append(s32, uint32(v))
		s64 = append(s64, v)
	}
	s16 = append(s16, 3, 65533, 65535)
	s32 = append(s32, 3, 4294967293, 4294967295)
	s64 = append(s64, 3, 18446744073709551557, 18446744073709551615)
	testConstantsForWidth(t, s16)
	testConstantsForWidth(t, s32)
	testConstantsForWidth(t, s64)
}

// A modulus of the shape R - k has R mod n = k, which pins the constant down
// without an oracle.
func TestRModNLiteral(t *testing.T) {
	require.EqualValues(t, 3, rModN(uint32(4294967293)))
	require.EqualValues(t, 59, rModN(uint64(18446744073709551557)))
	require.EqualValues(t, 1, rModN(uint8(255)))
}

func TestMagicConstantR3(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	r := new(big.Int).Lsh(big.NewInt(1), 64)
	r3 := new(big.Int).Mul(r, r)
	r3.Mul(r3, r)
	for i := 0; i < 500; i++ {
		n := rng.Uint64() | 1
		if n == 1 {
			continue
		}
		f := NewForm(n)
		want := new(big.Int).Mod(r3, bigU(n))
		require.Equal(t, want.Uint64(), f.magicValue().v, "R^3 mod %d", n)
	}
}
