package montmath

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// redcRef reduces u = uHi*R + uLo to u*R^-1 mod n with math/big.
func redcRef(uHi, uLo, n uint64, w uint) uint64 {
	r := new(big.Int).Lsh(big.NewInt(1), w)
	bn := bigU(n)
	u := new(big.Int).Lsh(bigU(uHi), w)
	u.Or(u, bigU(uLo))
	rinv := new(big.Int).ModInverse(r, bn)
	u.Mul(u, rinv)
	return u.Mod(u, bn).Uint64()
}

func testREDCForWidth[T Uint](t *testing.T, moduli []T, rounds int) {
	rng := rand.New(rand.NewSource(7))
	w := uint(bitsOf[T]())
	for _, n := range moduli {
		inv := inverseModR(n)
		for i := 0; i < rounds; i++ {
			uHi := T(rng.Uint64()) % n
			uLo := T(rng.Uint64())
			want := redcRef(uint64(uHi), uint64(uLo), uint64(n), w)

			got := redcStandard(uHi, uLo, n, inv)
			require.Equal(t, want, uint64(got), "redcStandard width %d n=%d uHi=%d uLo=%d", w, n, uHi, uLo)
			require.Equal(t, got, redcStandardLowUops(uHi, uLo, n, inv))

			// The incomplete form plus its deferred correction must agree.
			tHi, borrow := redcIncomplete(uHi, uLo, n, inv)
			require.Equal(t, got, condSelect(borrow, tHi+n, tHi))
		}
	}
}

func TestREDCStandard(t *testing.T) {
	testREDCForWidth(t, []uint8{3, 251, 255}, 2000)
	testREDCForWidth(t, []uint16{3, 65533, 65535}, 2000)
	testREDCForWidth(t, []uint32{3, 2147483659, 4294967293}, 5000)
	testREDCForWidth(t, []uint64{3, 9223372036854775837, 18446744073709551557}, 5000)
}

func TestREDCQuarterRange(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	moduli := []uint64{3, 1009, 4611686018427387847}
	for _, n := range moduli {
		inv := inverseModR(n)
		for i := 0; i < 5000; i++ {
			// inputs below 2n keep the product under n*R
			a := rng.Uint64() % (2 * n)
			b := rng.Uint64() % (2 * n)
			hi, lo := multiplyWide(a, b)
			got := redcQuarter(hi, lo, n, inv)
			require.Greater(t, got, uint64(0), "n=%d", n)
			require.Less(t, got, 2*n, "n=%d", n)
			want := redcRef(hi, lo, n, 64)
			require.Equal(t, want, got%n, "n=%d a=%d b=%d", n, a, b)
		}
	}
}

// REDC of R itself strips the factor exactly once.
func TestREDCIdentities(t *testing.T) {
	n := uint32(4294967293)
	inv := inverseModR(n)
	require.EqualValues(t, 1, redcStandard(1, 0, n, inv))
	require.EqualValues(t, 0, redcStandard(0, 0, n, inv))
	// REDC(r2) = R mod n = 3 for this modulus
	r2 := rSquaredModN(rModN(n), n)
	require.EqualValues(t, 3, redcStandard(0, r2, n, inv))
}
