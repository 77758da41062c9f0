package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNatNorm(t *testing.T) {
	z := nat{1, 2, 0, 0}
	require.Equal(t, nat{1, 2}, z.norm())
	require.Equal(t, nat{}, nat{0, 0, 0}.norm())
}

func TestNatAddSub(t *testing.T) {
	x := nat{_M, _M}
	y := nat{1}
	sum := nat(nil).add(x, y)
	require.Equal(t, nat{0, 0, 1}, sum)

	back := nat(nil).sub(sum, y)
	require.Equal(t, x, back)
}

func TestNatCmp(t *testing.T) {
	require.Equal(t, 0, nat{1, 2}.cmp(nat{1, 2}))
	require.Equal(t, -1, nat{1}.cmp(nat{1, 2}))
	require.Equal(t, 1, nat{5}.cmp(nat{4}))
}

func TestNatMulBasicAndKaratsuba(t *testing.T) {
	x := make(nat, 10)
	y := make(nat, 10)
	for i := range x {
		x[i] = word(i + 1)
		y[i] = word(2*i + 1)
	}
	x = x.norm()
	y = y.norm()

	saved := karatsubaThreshold
	defer func() { karatsubaThreshold = saved }()

	karatsubaThreshold = 4096 // force basicMul
	viaBasic := nat(nil).mul(x, y)

	karatsubaThreshold = 2 // force karatsuba to engage
	viaKaratsuba := nat(nil).mul(x, y)

	require.Equal(t, viaBasic, viaKaratsuba)
}

func TestNatShiftsAndBits(t *testing.T) {
	x := nat{1}
	shifted := nat(nil).shl(x, 33)
	require.Equal(t, uint(33), shifted.trailingZeroBits())
	require.Equal(t, uint(1), shifted.bit(33))
	require.Equal(t, uint(0), shifted.bit(32))

	back := nat(nil).shr(shifted, 33)
	require.Equal(t, x, back)
}

func TestPowerOfTwoAndBlocks(t *testing.T) {
	p := powerOfTwo(40)
	require.Equal(t, 41, p.bitLen())

	x := nat{1, 2, 3, 4, 5}
	require.Equal(t, nat{3, 4}, getBlock(x, 1, 2))
	require.Equal(t, nat{1, 2}, getLower(x, 2))

	o := ones(2)
	require.Equal(t, nat{_M, _M}, o)
}
