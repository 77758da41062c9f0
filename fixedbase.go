package bignum

// FixedBase precomputes a window of odd powers of a base so that
// repeated ModPow calls against the same (base, modulus) pair, varying
// only the exponent, skip rebuilding the Montgomery power table every
// time. Adapted from the teacher's precomputed power-table mechanism for
// a fixed window width rather than a fixed exponent.
type FixedBase struct {
	m    *Int
	odd  bool
	base *Int // reduced base, used by the even-modulus fallback path
	ctx  *montgomeryCtx
	pows []nat
	w    int
}

// fixedBaseWindow is the window width used for FixedBase's precomputed
// table; wide enough that slidingWindowScan never needs a larger window
// regardless of exponent size (windowSize never exceeds 8).
const fixedBaseWindow = 8

// NewFixedBase builds a precomputed-power context for base mod m.
func NewFixedBase(base, m *Int) (*FixedBase, error) {
	if m.Sign() <= 0 {
		return nil, ErrNegativeModulus
	}
	b, err := Mod(base, m)
	if err != nil {
		return nil, err
	}
	fb := &FixedBase{m: m, base: b}
	if m.abs.bit(0) == 1 {
		fb.odd = true
		fb.w = fixedBaseWindow
		fb.ctx = newMontgomeryCtx(m.abs)
		baseM := fb.ctx.toMontgomery(b.abs)
		fb.pows = oddPowerTable(fb.ctx, baseM, fb.w)
	}
	return fb, nil
}

// Pow returns base^exp mod m using the precomputed table when the
// modulus is odd, falling back to the ordinary ModPow path otherwise
// (an even modulus needs the CRT split ModPow already performs, which
// gains nothing from a fixed-base table on its odd factor alone).
func (fb *FixedBase) Pow(exp *Int) (*Int, error) {
	if exp.Sign() < 0 {
		return ModPow(fb.base, exp, fb.m)
	}
	if !fb.odd {
		return ModPow(fb.base, exp, fb.m)
	}
	if exp.Sign() == 0 {
		if fb.m.IsOne() {
			return Zero, nil
		}
		return One, nil
	}
	resultM := slidingWindowScan(fb.ctx, fb.pows, fb.w, exp.abs)
	return &Int{abs: fb.ctx.fromMontgomery(resultM).norm()}, nil
}
