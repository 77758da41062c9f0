package bignum

// Montgomery multiplication (spec §4.E): represents residues mod an odd
// modulus m in the Montgomery domain x*R mod m (R = β^n, n = len(m) in
// limbs), where multiplication reduces to monPro without any division.

// montgomeryCtx holds the fixed per-modulus state: the modulus itself,
// its limb width, and n' = -m^-1 mod β (calcN).
type montgomeryCtx struct {
	m  nat
	n  int
	np word // n' such that m*n' == -1 (mod beta)
}

// newMontgomeryCtx builds the context for an odd modulus m.
func newMontgomeryCtx(m nat) *montgomeryCtx {
	m = m.norm()
	return &montgomeryCtx{m: m, n: len(m), np: calcN(m[0])}
}

// calcN computes n' = -m0^-1 mod beta bit by bit (spec §4.E), the
// Montgomery constant derived from only the low limb of the modulus.
func calcN(m0 word) word {
	m064 := uint64(m0)
	var y uint64 = 1
	for i := 2; i <= _W; i++ {
		pow := uint64(1) << uint(i)
		half := uint64(1) << uint(i-1)
		if (m064*y)%pow >= half {
			y += half
		}
	}
	return word(-y)
}

// toMontgomery converts x (any x >= 0) into the Montgomery domain: x*R mod m.
func (c *montgomeryCtx) toMontgomery(x nat) nat {
	shifted := nat(nil).shl(x, uint(c.n)*_W)
	_, r := natDivide(shifted, c.m)
	return r
}

// fromMontgomery converts a residue back out of the Montgomery domain via
// monPro(x, 1).
func (c *montgomeryCtx) fromMontgomery(x nat) nat {
	return c.monPro(x, nat{1})
}

// monPro computes the Montgomery product a*b*R^-1 mod m (spec §4.E).
func (c *montgomeryCtx) monPro(a, b nat) nat {
	n := c.n
	t := nat(nil).mul(a, b)
	t = t.make2(2*n + 1)

	for i := 0; i < n; i++ {
		ui := t[i] * c.np
		if ui != 0 {
			carry := addMulVVWAt(t, c.m, ui, i)
			propagateCarry(t, i+len(c.m), carry)
		}
	}

	r := append(nat(nil), t[n:2*n+1]...).norm()
	return c.finalSubtraction(r)
}

// monSquare computes the Montgomery product a*a*R^-1 mod m. Kept as its
// own entry point rather than a thin monPro(a,a) wrapper, since spec §4.E
// calls out squaring as its own operation.
func (c *montgomeryCtx) monSquare(a nat) nat {
	n := c.n
	t := nat(nil).mul(a, a)
	t = t.make2(2*n + 1)

	for i := 0; i < n; i++ {
		ui := t[i] * c.np
		if ui != 0 {
			carry := addMulVVWAt(t, c.m, ui, i)
			propagateCarry(t, i+len(c.m), carry)
		}
	}

	r := append(nat(nil), t[n:2*n+1]...).norm()
	return c.finalSubtraction(r)
}

// finalSubtraction subtracts m once if r >= m (the final conditional
// subtraction every Montgomery reduction needs, since the raw result is
// only guaranteed to be < 2m).
func (c *montgomeryCtx) finalSubtraction(r nat) nat {
	if r.cmp(c.m) >= 0 {
		return nat(nil).sub(r, c.m)
	}
	return r
}

// make2 zero-extends z to exactly n limbs (growing, never truncating).
func (z nat) make2(n int) nat {
	if len(z) >= n {
		return z
	}
	out := make(nat, n)
	copy(out, z)
	return out
}

// addMulVVWAt adds x*y into z starting at limb offset off, returning the
// carry out of the top touched limb.
func addMulVVWAt(z, x nat, y word, off int) word {
	if off >= len(z) || len(x) == 0 {
		return 0
	}
	span := z[off:]
	if len(x) > len(span) {
		x = x[:len(span)]
	}
	return addMulVVW(span[:len(x)], x, y)
}

// propagateCarry adds c into z starting at limb index i, rippling as far
// as needed.
func propagateCarry(z nat, i int, c word) {
	for c != 0 && i < len(z) {
		sum := uint64(z[i]) + uint64(c)
		z[i] = word(sum)
		c = word(sum >> _W)
		i++
	}
}
