// This file implements the limb-slice building block ("nat") shared by
// every algorithm in the package: an unsigned integer
//
//	x = x[n-1]*2^(32*(n-1)) + ... + x[1]*2^32 + x[0]
//
// stored little-endian in a slice of word. A nat is normalized if it has no
// leading zero limb; the normalized zero is the empty slice.
package bignum

// nat is the unsigned magnitude: a little-endian limb slice (spec §3).
type nat []word

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm drops leading zero limbs, restoring invariant N1.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// make returns a nat of length n, reusing z's storage if it is large enough.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(nat, 1)
	}
	const e = 4 // extra capacity, same rationale as the teacher: reuse on growth
	return make(nat, n, n+e)
}

func (z nat) setWord(x word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// cmp compares magnitudes; both x and y must be normalized.
func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		panic("bignum: underflow")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bignum: underflow")
	}
	return z.norm()
}

func (z nat) mulAddWW(x nat, y, r word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// basicMul multiplies x and y into z[0 : len(x)+len(y)] (not normalized).
func basicMul(z, x, y nat) {
	z[0 : len(x)+len(y)].clear()
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsubaThreshold is the length, in limbs, below which basicMul is used
// instead of karatsuba. Compile-time tunable, same role as the teacher's
// own karatsubaThreshold.
var karatsubaThreshold = 40

// karatsuba multiplies x and y (same length n) into z[0 : 2n]. It
// recurses while n is even and at least karatsubaThreshold, and uses
// basicMul otherwise. len(z) must be >= 6*n.
func karatsuba(z, x, y nat) {
	n := len(y)
	if n&1 != 0 || n < karatsubaThreshold || n < 2 {
		basicMul(z, x, y)
		return
	}
	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	karatsuba(z, x0, y0)
	karatsuba(z[n:], x1, y1)

	s := 1 // sign of xd*yd
	xd := z[2*n : 2*n+n2]
	if subVV(xd, x1, x0) != 0 {
		s = -s
		subVV(xd, x0, x1)
	}
	yd := z[2*n+n2 : 3*n]
	if subVV(yd, y0, y1) != 0 {
		s = -s
		subVV(yd, y1, y0)
	}

	p := z[n*3:]
	karatsuba(p, xd, yd)

	r := z[n*4:]
	copy(r, z[:n*2])

	karatsubaAdd(z[n2:], r, n)
	karatsubaAdd(z[n2:], r[n:], n)
	if s > 0 {
		karatsubaAdd(z[n2:], p, n)
	} else {
		karatsubaSub(z[n2:], p, n)
	}
}

func karatsubaAdd(z, x nat, n int) {
	if c := addVV(z[0:n], z, x); c != 0 {
		addVW(z[n:n+n>>1], z[n:], c)
	}
}

func karatsubaSub(z, x nat, n int) {
	if c := subVV(z[0:n], z, x); c != 0 {
		subVW(z[n:n+n>>1], z[n:], c)
	}
}

// karatsubaLen returns k = p<<i <= n, where i is the smallest shift with
// p = n>>i <= threshold (n with its low i bits cleared).
func karatsubaLen(n, threshold int) int {
	i := uint(0)
	for n > threshold {
		n >>= 1
		i++
	}
	return n << i
}

// alias reports whether x and y share the same backing array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// addAt implements z += x<<(32*i) in place; z must be long enough.
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// mul multiplies x and y, dispatching to Karatsuba for large operands.
func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	if n < karatsubaThreshold {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}
	k := karatsubaLen(n, karatsubaThreshold)
	x0 := x[0:k]
	y0 := y[0:k]
	z = z.make(maxInt(6*k, m+n))
	karatsuba(z, x0, y0)
	z = z[0 : m+n]
	z[2*k:].clear()

	if k < n || m != n {
		var t nat
		x0 := x0.norm()
		y1 := y[k:]
		t = t.mul(x0, y1)
		addAt(z, t, k)

		y0 := y0.norm()
		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xi = xi.norm()
			t = t.mul(xi, y0)
			addAt(z, t, i)
			t = t.mul(xi, y1)
			addAt(z, t, i+k)
		}
	}
	return z.norm()
}

// bitLen returns the length of x in bits. x need not be normalized.
func (x nat) bitLen() int {
	for i := len(x) - 1; i >= 0; i-- {
		if xi := x[i]; xi != 0 {
			return i*_W + (_W - int(nlz(xi)))
		}
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least-significant
// zero bits of x. x must be non-zero.
func (x nat) trailingZeroBits() uint {
	if len(x) == 0 {
		return 0
	}
	var i uint
	for x[i] == 0 {
		i++
	}
	lo := x[i]
	var tz uint
	for lo&1 == 0 {
		lo >>= 1
		tz++
	}
	return i*_W + tz
}

// bit returns the value of the i'th bit, lsb == bit 0.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// setBit returns a copy of x with bit i set to b (0 or 1).
func (z nat) setBit(x nat, i uint, b uint) nat {
	j := int(i / _W)
	m := word(1) << (i % _W)
	n := len(x)
	switch b {
	case 0:
		z = z.make(n)
		copy(z, x)
		if j >= n {
			return z
		}
		z[j] &^= m
		return z.norm()
	case 1:
		if j >= n {
			z = z.make(j + 1)
			z[n:].clear()
		} else {
			z = z.make(n)
		}
		copy(z, x)
		z[j] |= m
		return z
	}
	panic("bignum: setBit bit value not 0 or 1")
}

// shl sets z = x << s.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	z[0 : n-m].clear()
	return z.norm()
}

// shr sets z = x >> s.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)
	return z.norm()
}

// powerOfTwo returns 2^j as a nat (§4.A getPowerOfTwo).
func powerOfTwo(j int) nat {
	z := make(nat, j/_W+1)
	z[j/_W] = 1 << (uint(j) % _W)
	return z.norm()
}

// getBlock returns the i'th block of t n-limb blocks of x (limbs
// [i*n : (i+1)*n)), used by Burnikel-Ziegler (spec §4.A).
func getBlock(x nat, i, n int) nat {
	lo := i * n
	hi := lo + n
	if lo >= len(x) {
		return nat{}
	}
	if hi > len(x) {
		hi = len(x)
	}
	return x[lo:hi]
}

// getLower returns the low n limbs of x.
func getLower(x nat, n int) nat {
	if n > len(x) {
		n = len(x)
	}
	return x[:n].norm()
}

// ones fills n limbs with all-ones, representing 2^(32n) - 1.
func ones(n int) nat {
	z := make(nat, n)
	for i := range z {
		z[i] = _M
	}
	return z.norm()
}
