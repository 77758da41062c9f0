package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcNIsModularInverse(t *testing.T) {
	for _, m0 := range []word{1, 3, 5, 0xFFFFFFFF, 0x80000001} {
		np := calcN(m0)
		// m0 * np == -1 (mod 2^32)
		require.Equal(t, word(0xFFFFFFFF), m0*np)
	}
}

func TestMontgomeryRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		m := oddRandBig(r, 8+r.Intn(300))
		ctx := newMontgomeryCtx(FromBig(m).abs)

		x := new(big.Int).Mod(randBig(r, m.BitLen()+8), m)
		xn := FromBig(x).abs

		mont := ctx.toMontgomery(xn)
		back := ctx.fromMontgomery(mont)
		require.Equal(t, x, (&Int{abs: back}).Big(), "round trip mismatch for m=%v x=%v", m, x)
	}
}

func TestMonProMatchesPlainMultiplication(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for i := 0; i < 50; i++ {
		m := oddRandBig(r, 8+r.Intn(300))
		ctx := newMontgomeryCtx(FromBig(m).abs)

		a := new(big.Int).Mod(randBig(r, m.BitLen()+8), m)
		b := new(big.Int).Mod(randBig(r, m.BitLen()+8), m)

		am := ctx.toMontgomery(FromBig(a).abs)
		bm := ctx.toMontgomery(FromBig(b).abs)

		prodM := ctx.monPro(am, bm)
		got := ctx.fromMontgomery(prodM)

		want := new(big.Int).Mod(new(big.Int).Mul(a, b), m)
		require.Equal(t, want, (&Int{abs: got}).Big())
	}
}

func TestMonSquareMatchesMonPro(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	m := oddRandBig(r, 600)
	ctx := newMontgomeryCtx(FromBig(m).abs)

	a := new(big.Int).Mod(randBig(r, m.BitLen()+8), m)
	am := ctx.toMontgomery(FromBig(a).abs)

	require.Equal(t, ctx.monPro(am, am), ctx.monSquare(am))
}

func oddRandBig(r *rand.Rand, bits int) *big.Int {
	m := randBig(r, bits)
	m.SetBit(m, 0, 1)
	if m.Sign() == 0 || m.Cmp(big.NewInt(1)) == 0 {
		m.SetInt64(3)
	}
	return m
}
