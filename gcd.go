package bignum

// GCD computes the greatest common divisor of |a| and |b| using the
// binary (Stein's) algorithm (spec §4.D): repeatedly strip common powers
// of two, then reduce by subtracting the smaller from the larger.
func GCD(a, b *Int) *Int {
	x := nat(nil).set(a.abs)
	y := nat(nil).set(b.abs)
	if len(x) == 0 {
		return &Int{abs: y}
	}
	if len(y) == 0 {
		return &Int{abs: x}
	}

	shift := uint(0)
	for x.bit(0) == 0 && y.bit(0) == 0 {
		x = nat(nil).shr(x, 1)
		y = nat(nil).shr(y, 1)
		shift++
	}
	for x.bit(0) == 0 {
		x = nat(nil).shr(x, 1)
	}
	for len(y) > 0 {
		for y.bit(0) == 0 {
			y = nat(nil).shr(y, 1)
		}
		if x.cmp(y) > 0 {
			x, y = y, x
		}
		y = nat(nil).sub(y, x)
	}
	return &Int{abs: nat(nil).shl(x, shift)}
}

// gcdBinary is the native-word specialization of the binary GCD algorithm
// (spec §6), for operands that already fit in a Go int.
func gcdBinary(a, b int) int {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	shift := 0
	for a&1 == 0 && b&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}
	for a&1 == 0 {
		a >>= 1
	}
	for b != 0 {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

// ExtGCD returns (g, x, y) such that a*x + b*y == g == gcd(a, b), via the
// standard iterative extended Euclidean algorithm (spec §4.D supplement):
// exposing the Bezout coefficients for callers that want them directly,
// and serving as modInverseLorencz's implementation for an even modulus.
func ExtGCD(a, b *Int) (g, x, y *Int) {
	if a.Sign() == 0 {
		return b.Abs(), Zero, signOf(b)
	}
	if b.Sign() == 0 {
		return a.Abs(), signOf(a), Zero
	}

	// old/new state for the standard iterative extended Euclidean
	// algorithm; schoolbook division (Divide) drives each step rather
	// than binary shifts, since this needs actual quotients, not just
	// the gcd value.
	oldR, r := a.Abs(), b.Abs()
	oldS, s := One, Zero
	oldT, t := Zero, One

	for r.Sign() != 0 {
		qr, _ := Divide(oldR, r)
		quo := qr.Quo
		oldR, r = r, Sub(oldR, Mul(quo, r))
		oldS, s = s, Sub(oldS, Mul(quo, s))
		oldT, t = t, Sub(oldT, Mul(quo, t))
	}

	g = oldR
	x = oldS
	y = oldT
	if a.Sign() < 0 {
		x = x.Neg()
	}
	if b.Sign() < 0 {
		y = y.Neg()
	}
	return g, x, y
}

func signOf(z *Int) *Int {
	if z.Sign() < 0 {
		return NewInt(-1)
	}
	return One
}
