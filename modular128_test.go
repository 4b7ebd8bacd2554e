package montmath

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMod256By128(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		hi, lo := randUint128(rng), randUint128(rng)
		n := randUint128(rng)
		if n.IsZero() {
			n = Uint128{0, 7}
		}
		u := new(big.Int).Lsh(hi.big(), 128)
		u.Or(u, lo.big())
		want := u.Mod(u, n.big())
		require.Equal(t, fromBig(t, want), mod256by128(hi, lo, n), "hi=%v lo=%v n=%v", hi, lo, n)
	}
}

func TestModular128Ops(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	moduli := []Uint128{
		{0, 3},
		{0, 18446744073709551557},
		{1, 1},
		{^uint64(0) >> 1, ^uint64(0)}, // 2^127 - 1
		{^uint64(0), ^uint64(0)},
	}
	for _, n := range moduli {
		bn := n.big()
		for i := 0; i < 500; i++ {
			a := randUint128(rng).Mod(n)
			b := randUint128(rng).Mod(n)
			ba, bb := a.big(), b.big()

			sum := new(big.Int).Add(ba, bb)
			sum.Mod(sum, bn)
			require.Equal(t, fromBig(t, sum), modularAdd128(a, b, n))
			require.Equal(t, fromBig(t, sum), modularAddLowUops128(a, b, n))

			dif := new(big.Int).Sub(ba, bb)
			dif.Mod(dif, bn)
			require.Equal(t, fromBig(t, dif), modularSub128(a, b, n))
			require.Equal(t, fromBig(t, dif), modularSubLowUops128(a, b, n))

			want := new(big.Int).Sub(ba, bb)
			want.Abs(want)
			require.Equal(t, fromBig(t, want), absDiff128(a, b))

			prod := new(big.Int).Mul(ba, bb)
			prod.Mod(prod, bn)
			require.Equal(t, fromBig(t, prod), modularMul128(a, b, n))

			inv := modularInverse128(a, n)
			if new(big.Int).GCD(nil, nil, ba, bn).Cmp(big.NewInt(1)) == 0 {
				require.Equal(t, Uint128{0, 1}, modularMul128(a, inv, n), "a=%v n=%v", a, n)
			} else {
				require.True(t, inv.IsZero(), "a=%v n=%v", a, n)
			}
		}
	}
}

func TestInverseModR128(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 2000; i++ {
		n := randUint128(rng)
		n.Lo |= 1
		inv := inverseModR128(n)
		require.Equal(t, Uint128{0, 1}, n.Mul(inv), "n=%v", n)
	}
}

func TestRConstants128(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for i := 0; i < 300; i++ {
		n := randUint128(rng)
		n.Lo |= 1
		if n.Hi == 0 && n.Lo == 1 {
			continue
		}
		bn := n.big()

		wantR := new(big.Int).Mod(two128, bn)
		rmod := rModN128(n)
		require.Equal(t, fromBig(t, wantR), rmod, "R mod %v", n)

		wantR2 := new(big.Int).Mul(two128, two128)
		wantR2.Mod(wantR2, bn)
		inv := inverseModR128(n)
		require.Equal(t, fromBig(t, wantR2), rSquaredModN128(rmod, n, inv), "R^2 mod %v", n)
	}
}

func TestREDC128(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	moduli := []Uint128{
		{0, 3},
		{0, 18446744073709551557},
		{^uint64(0) >> 1, ^uint64(0)},
		{^uint64(0), ^uint64(0)},
	}
	for _, n := range moduli {
		bn := n.big()
		inv := inverseModR128(n)
		rinv := new(big.Int).ModInverse(two128, bn)
		for i := 0; i < 500; i++ {
			uHi := randUint128(rng).Mod(n)
			uLo := randUint128(rng)

			u := new(big.Int).Lsh(uHi.big(), 128)
			u.Or(u, uLo.big())
			u.Mul(u, rinv)
			want := fromBig(t, u.Mod(u, bn))

			got := redcStandard128(uHi, uLo, n, inv)
			require.Equal(t, want, got, "n=%v uHi=%v uLo=%v", n, uHi, uLo)
			require.Equal(t, got, redcStandardLowUops128(uHi, uLo, n, inv))

			tHi, borrow := redcIncomplete128(uHi, uLo, n, inv)
			require.Equal(t, got, condSelect128(borrow, tHi.Add(n), tHi))
		}
	}
}
