package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivideByZero(t *testing.T) {
	_, err := Divide(NewInt(10), Zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivideKnuthBaseCase(t *testing.T) {
	a := FromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	b := FromBig(new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)))
	qr, err := Divide(a, b)
	require.NoError(t, err)

	wantQ, wantR := new(big.Int).QuoRem(a.Big(), b.Big(), new(big.Int))
	require.Equal(t, wantQ, qr.Quo.Big())
	require.Equal(t, wantR.String(), qr.Rem.Big().String())
}

func TestDivideTruncationAndSigns(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2}, {0, 5},
	}
	for _, c := range cases {
		qr, err := Divide(NewInt(c.a), NewInt(c.b))
		require.NoError(t, err)
		wantQ := c.a / c.b
		wantR := c.a % c.b
		require.Equal(t, wantQ, qr.Quo.Big().Int64(), "quo for %v/%v", c.a, c.b)
		require.Equal(t, wantR, qr.Rem.Big().Int64(), "rem for %v/%v", c.a, c.b)
	}
}

func TestDivideAgainstBigRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		abits := 16 + r.Intn(600)
		bbits := 8 + r.Intn(300)
		a := randBig(r, abits)
		b := randBig(r, bbits)
		if b.Sign() == 0 {
			continue
		}
		if r.Intn(2) == 0 {
			a.Neg(a)
		}
		if r.Intn(2) == 0 {
			b.Neg(b)
		}

		qr, err := Divide(FromBig(a), FromBig(b))
		require.NoError(t, err)

		wantQ, wantR := new(big.Int).QuoRem(a, b, new(big.Int))
		require.Equal(t, wantQ, qr.Quo.Big(), "quo mismatch for a=%v b=%v", a, b)
		require.Equal(t, wantR, qr.Rem.Big(), "rem mismatch for a=%v b=%v", a, b)
	}
}

func TestDivideByInt32(t *testing.T) {
	qr, err := DivideByInt32(NewInt(100), 7)
	require.NoError(t, err)
	require.Equal(t, int64(14), qr.Quo.Big().Int64())
	require.Equal(t, int64(2), qr.Rem.Big().Int64())

	require.Equal(t, int32(2), Remainder(NewInt(100), 7))
	require.Equal(t, int32(-2), Remainder(NewInt(-100), 7))
}

func TestModNonNegative(t *testing.T) {
	m, err := Mod(NewInt(-7), NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(2), m.Big().Int64())
}

func bigFromString(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test literal: " + s)
	}
	return z
}

func randBig(r *rand.Rand, bits int) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return new(big.Int).Rand(r, max)
}
