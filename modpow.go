package bignum

import "fmt"

// Modular exponentiation (spec §4.F). ModPow dispatches on the modulus's
// parity: an odd modulus goes through Montgomery multiplication with a
// sliding window; an even modulus is split via CRT into its largest
// power-of-two factor (handled by direct square-and-multiply mod 2^k) and
// its odd remainder (handled the same way as the odd-modulus path), then
// recombined with Garner's formula.

// ModPow returns base^exp mod m.
func ModPow(base, exp, m *Int) (*Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNegativeModulus
	}
	if m.IsOne() {
		return Zero, nil
	}
	if exp.Sign() < 0 {
		inv, err := ModInverse(base, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNegativeExponent, err)
		}
		return ModPow(inv, exp.Neg(), m)
	}

	b, err := Mod(base, m)
	if err != nil {
		return nil, err
	}

	if m.abs.bit(0) == 1 {
		r := oddModPow(b.abs, exp.abs, m.abs)
		return &Int{abs: r.norm()}, nil
	}
	r := evenModPow(b.abs, exp.abs, m.abs)
	return &Int{abs: r.norm()}, nil
}

// SquareAndMultiply returns base^exp mod m using plain left-to-right
// binary exponentiation, without Montgomery reduction or windowing — the
// textbook algorithm sliding-window exponentiation is an optimization of.
func SquareAndMultiply(base, exp, m *Int) (*Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNegativeModulus
	}
	if m.IsOne() {
		return Zero, nil
	}
	if exp.Sign() < 0 {
		inv, err := ModInverse(base, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNegativeExponent, err)
		}
		return SquareAndMultiply(inv, exp.Neg(), m)
	}
	b, err := Mod(base, m)
	if err != nil {
		return nil, err
	}
	result := One
	e := exp.abs
	for i := e.bitLen() - 1; i >= 0; i-- {
		result, err = Mod(Mul(result, result), m)
		if err != nil {
			return nil, err
		}
		if e.bit(uint(i)) == 1 {
			result, err = Mod(Mul(result, b), m)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// windowSize returns the sliding-window width for an exponent of the
// given bit length (spec §4.F threshold table).
func windowSize(bitLen int) int {
	switch {
	case bitLen <= 7:
		return 2
	case bitLen <= 36:
		return 3
	case bitLen <= 140:
		return 4
	case bitLen <= 450:
		return 5
	case bitLen <= 1303:
		return 6
	case bitLen <= 3529:
		return 7
	default:
		return 8
	}
}

// oddModPow returns base^exp mod m for odd m via Montgomery
// multiplication and a sliding window over exp's bits. base need not be
// below m: toMontgomery reduces it.
func oddModPow(base, exp, m nat) nat {
	if len(m) == 1 && m[0] == 1 {
		return nat{}
	}
	ctx := newMontgomeryCtx(m)
	baseM := ctx.toMontgomery(base)

	bitLen := exp.bitLen()
	if bitLen == 0 {
		return ctx.fromMontgomery(ctx.toMontgomery(nat{1}))
	}

	w := windowSize(bitLen)
	pows := oddPowerTable(ctx, baseM, w)
	resultM := slidingWindowScan(ctx, pows, w, exp)
	return ctx.fromMontgomery(resultM)
}

// oddPowerTable precomputes baseM^1, baseM^3, ..., baseM^(2^w - 1) in the
// Montgomery domain, indexed pows[i] == baseM^(2i+1).
func oddPowerTable(ctx *montgomeryCtx, baseM nat, w int) []nat {
	numOdd := 1 << uint(w-1)
	pows := make([]nat, numOdd)
	pows[0] = baseM
	if numOdd > 1 {
		baseSq := ctx.monSquare(baseM)
		for i := 1; i < numOdd; i++ {
			pows[i] = ctx.monPro(pows[i-1], baseSq)
		}
	}
	return pows
}

// slidingWindowScan runs the left-to-right sliding-window exponentiation
// loop over exp's bits, using a precomputed odd-power table of window
// width w, entirely in the Montgomery domain.
func slidingWindowScan(ctx *montgomeryCtx, pows []nat, w int, exp nat) nat {
	resultM := ctx.toMontgomery(nat{1})
	bitLen := exp.bitLen()
	i := bitLen - 1
	for i >= 0 {
		if exp.bit(uint(i)) == 0 {
			resultM = ctx.monSquare(resultM)
			i--
			continue
		}
		l := w
		if i+1 < l {
			l = i + 1
		}
		for exp.bit(uint(i-l+1)) == 0 {
			l--
		}
		val := 0
		for j := i; j >= i-l+1; j-- {
			val = val<<1 | int(exp.bit(uint(j)))
		}
		for k := 0; k < l; k++ {
			resultM = ctx.monSquare(resultM)
		}
		resultM = ctx.monPro(resultM, pows[(val-1)/2])
		i -= l
	}
	return resultM
}

// evenModPow returns base^exp mod m for even m, splitting m = 2^k * odd
// via CRT (spec §4.F "even modulus").
func evenModPow(base, exp, m nat) nat {
	k := int(m.trailingZeroBits())
	oddPart := nat(nil).shr(m, uint(k))

	r2 := oddModPow(base, exp, oddPart)
	r1 := pow2ModPow(base, exp, k)

	oddInv := modPow2Inverse(oddPart, k)
	diff := modPow2Sub(r1, modPow2(r2, k), k)
	h := modPow2(nat(nil).mul(diff, oddInv), k)

	return nat(nil).add(r2, nat(nil).mul(oddPart, h))
}

// pow2ModPow returns base^exp mod 2^k via right-to-left square-and-multiply,
// masking to k bits after every multiplication.
func pow2ModPow(base, exp nat, k int) nat {
	if k == 0 {
		return nat{}
	}
	b := modPow2(base, k)
	result := modPow2(nat{1}, k)
	for i := 0; i < exp.bitLen(); i++ {
		if exp.bit(uint(i)) == 1 {
			result = modPow2(nat(nil).mul(result, b), k)
		}
		b = modPow2(nat(nil).mul(b, b), k)
	}
	return result
}

// modPow2Inverse returns a^-1 mod 2^k for odd a, via Hensel lifting
// (Newton's iteration x <- x*(2 - a*x), doubling the valid precision each
// round).
func modPow2Inverse(a nat, k int) nat {
	x := nat{1}
	prec := 1
	for prec < k {
		newPrec := prec * 2
		if newPrec > k {
			newPrec = k
		}
		ax := modPow2(nat(nil).mul(a, x), newPrec)
		twoMinusAx := modPow2Sub(nat{2}, ax, newPrec)
		x = modPow2(nat(nil).mul(x, twoMinusAx), newPrec)
		prec = newPrec
	}
	return modPow2(x, k)
}

// modPow2 returns x mod 2^k, by masking off everything above bit k-1.
func modPow2(x nat, k int) nat {
	if k == 0 {
		return nat{}
	}
	nWords := (k + _W - 1) / _W
	z := make(nat, nWords)
	n := nWords
	if len(x) < n {
		n = len(x)
	}
	copy(z[:n], x[:n])
	if rem := k % _W; rem != 0 {
		z[nWords-1] &= word(1)<<uint(rem) - 1
	}
	return z.norm()
}

// modPow2Sub returns (a - b) mod 2^k, wrapping when b > a.
func modPow2Sub(a, b nat, k int) nat {
	if a.cmp(b) >= 0 {
		return modPow2(nat(nil).sub(a, b), k)
	}
	pow := powerOfTwo(k)
	sum := nat(nil).add(a, nat(nil).sub(pow, b))
	return modPow2(sum, k)
}
