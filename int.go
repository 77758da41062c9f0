package bignum

import (
	"math/big"
	"math/bits"
)

// bigWordLimbs is the number of 32-bit limbs held by one big.Word.
const bigWordLimbs = bits.UintSize / _W

// Int is the signed arbitrary-precision integer value (spec §3 data
// model): a sign and a little-endian limb magnitude. Decimal/hex parsing
// and formatting, and bitwise logical operations are out of this
// package's scope (spec §1) — this type carries only the primitive
// collaborators (§6 "inputs consumed") the division/modular-arithmetic
// core in the rest of the package needs, plus the core operations
// themselves (§6 "outputs exposed").
//
// Int values are never mutated after being returned to a caller; every
// method here returns a fresh value.
type Int struct {
	neg bool
	abs nat
}

// Zero and One are the canonical zero and one values. They must not be
// mutated.
var (
	Zero = &Int{}
	One  = &Int{abs: nat{1}}
)

// NewInt returns a new Int with the value of x.
func NewInt(x int64) *Int {
	z := &Int{}
	if x < 0 {
		z.neg = true
		x = -x
	}
	if x != 0 {
		z.abs = nat{word(x), word(uint64(x) >> 32)}.norm()
	}
	return z
}

// FromBig converts a *big.Int into an Int, copying its limbs.
func FromBig(x *big.Int) *Int {
	xw := x.Bits()
	abs := make(nat, len(xw)*bigWordLimbs)
	for i, d := range xw {
		for j := 0; j < bigWordLimbs; j++ {
			abs[i*bigWordLimbs+j] = word(uint64(d) >> (uint(j) * _W))
		}
	}
	abs = abs.norm()
	return &Int{neg: x.Sign() < 0 && len(abs) > 0, abs: abs}
}

// Big converts z to a *big.Int.
func (z *Int) Big() *big.Int {
	if len(z.abs) == 0 {
		return new(big.Int)
	}
	zw := make([]big.Word, (len(z.abs)+bigWordLimbs-1)/bigWordLimbs)
	for i, d := range z.abs {
		zw[i/bigWordLimbs] |= big.Word(d) << (uint(i%bigWordLimbs) * _W)
	}
	r := new(big.Int).SetBits(zw)
	if z.neg {
		r.Neg(r)
	}
	return r
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *Int) Sign() int {
	if len(z.abs) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsOne reports whether z == 1.
func (z *Int) IsOne() bool {
	return !z.neg && len(z.abs) == 1 && z.abs[0] == 1
}

// BitLen returns the number of bits required to represent |z|.
func (z *Int) BitLen() int {
	return z.abs.bitLen()
}

// TestBit returns the value (0 or 1) of bit i of |z|.
func (z *Int) TestBit(i uint) uint {
	return z.abs.bit(i)
}

// Neg returns -z.
func (z *Int) Neg() *Int {
	if len(z.abs) == 0 {
		return &Int{}
	}
	return &Int{neg: !z.neg, abs: nat(nil).set(z.abs)}
}

// Abs returns |z|.
func (z *Int) Abs() *Int {
	return &Int{abs: nat(nil).set(z.abs)}
}

// Cmp compares z and y, returning -1, 0, +1 per the usual convention.
func (z *Int) Cmp(y *Int) int {
	switch {
	case z.neg == y.neg:
		r := z.abs.cmp(y.abs)
		if z.neg {
			return -r
		}
		return r
	case z.neg:
		return -1
	default:
		return 1
	}
}

// CmpAbs compares |z| and |y|.
func (z *Int) CmpAbs(y *Int) int {
	return z.abs.cmp(y.abs)
}

// Add returns x + y.
func Add(x, y *Int) *Int {
	if x.neg == y.neg {
		return &Int{neg: x.neg, abs: nat(nil).add(x.abs, y.abs)}
	}
	if x.abs.cmp(y.abs) >= 0 {
		r := nat(nil).sub(x.abs, y.abs)
		return &Int{neg: x.neg && len(r) > 0, abs: r}
	}
	r := nat(nil).sub(y.abs, x.abs)
	return &Int{neg: y.neg && len(r) > 0, abs: r}
}

// Sub returns x - y.
func Sub(x, y *Int) *Int {
	return Add(x, y.Neg())
}

// Mul returns x * y.
func Mul(x, y *Int) *Int {
	r := nat(nil).mul(x.abs, y.abs)
	return &Int{neg: (x.neg != y.neg) && len(r) > 0, abs: r}
}

// Lsh returns x << s.
func Lsh(x *Int, s uint) *Int {
	return &Int{neg: x.neg, abs: nat(nil).shl(x.abs, s)}
}

// Rsh returns x >> s (arithmetic on the magnitude; truncates toward zero
// for negative x, matching Division's truncation convention elsewhere in
// this package).
func Rsh(x *Int, s uint) *Int {
	r := nat(nil).shr(x.abs, s)
	return &Int{neg: x.neg && len(r) > 0, abs: r}
}

// PowerOfTwo returns 2^j.
func PowerOfTwo(j int) *Int {
	return &Int{abs: powerOfTwo(j)}
}

// GetLowestSetBit returns the index of the lowest set bit of |z|, or -1 if
// z is zero.
func (z *Int) GetLowestSetBit() int {
	if len(z.abs) == 0 {
		return -1
	}
	return int(z.abs.trailingZeroBits())
}
