package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1 << 40, -(1 << 40), 1<<63 - 1} {
		z := NewInt(v)
		require.Equal(t, big.NewInt(v), z.Big())
	}
}

func TestFromBigAndBack(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		bits := 8 + r.Intn(2000)
		b := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		b = b.Rand(r, b)
		if r.Intn(2) == 0 {
			b.Neg(b)
		}
		z := FromBig(b)
		require.Equal(t, b, z.Big(), "round trip mismatch for %v", b)
	}
}

func TestIntCmpAndSign(t *testing.T) {
	require.Equal(t, -1, NewInt(-5).Cmp(NewInt(3)))
	require.Equal(t, 1, NewInt(5).Cmp(NewInt(3)))
	require.Equal(t, 0, NewInt(5).Cmp(NewInt(5)))
	require.Equal(t, -1, NewInt(-5).Sign())
	require.Equal(t, 0, NewInt(0).Sign())
	require.Equal(t, 1, NewInt(5).Sign())
}

func TestAddSubMulAgainstBig(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := big.NewInt(r.Int63())
		b := big.NewInt(r.Int63())
		if r.Intn(2) == 0 {
			a.Neg(a)
		}
		if r.Intn(2) == 0 {
			b.Neg(b)
		}

		za, zb := FromBig(a), FromBig(b)

		require.Equal(t, new(big.Int).Add(a, b), Add(za, zb).Big())
		require.Equal(t, new(big.Int).Sub(a, b), Sub(za, zb).Big())
		require.Equal(t, new(big.Int).Mul(a, b), Mul(za, zb).Big())
	}
}

func TestLshRshAndBitLen(t *testing.T) {
	z := NewInt(1)
	shifted := Lsh(z, 100)
	require.Equal(t, 101, shifted.BitLen())
	require.Equal(t, uint(1), shifted.TestBit(100))
	require.Equal(t, uint(0), shifted.TestBit(99))

	back := Rsh(shifted, 100)
	require.True(t, back.IsOne())
}

func TestGetLowestSetBit(t *testing.T) {
	require.Equal(t, -1, Zero.GetLowestSetBit())
	require.Equal(t, 0, NewInt(1).GetLowestSetBit())
	require.Equal(t, 3, NewInt(8).GetLowestSetBit())
	require.Equal(t, 40, PowerOfTwo(40).GetLowestSetBit())
}
