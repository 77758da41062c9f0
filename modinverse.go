package bignum

// Modular inverse (spec §4.G). ModInverse dispatches to the Savaş-Koç
// "almost inverse" binary algorithm for an odd modulus, which in turn
// falls back to the general Lorencz path for an even one.

// ModInverse returns x such that a*x ≡ 1 (mod m), or ErrNotInvertible if
// gcd(a, m) != 1.
func ModInverse(a, m *Int) (*Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNegativeModulus
	}
	aMod, err := Mod(a, m)
	if err != nil {
		return nil, err
	}
	r, err := modInverseMontgomery(aMod.abs, m.abs)
	if err != nil {
		return nil, err
	}
	return &Int{abs: r.norm()}, nil
}

// modInverseMontgomery computes a^-1 mod m for odd m via Kaliski's binary
// almost-inverse algorithm: phase I produces r = a^-1 * 2^k mod m for
// some k, phase II halves r down k times to remove the 2^k factor. Falls
// back to modInverseLorencz when m is even, since phase II's (r+m)/2
// step relies on m being odd.
func modInverseMontgomery(a, m nat) (nat, error) {
	if len(m) == 0 || m.bit(0) == 0 {
		return modInverseLorencz(a, m)
	}

	u := append(nat(nil), m...)
	v := append(nat(nil), a...)
	r := nat{}
	s := nat{1}
	k := 0

	for len(v) > 0 {
		switch {
		case u.bit(0) == 0:
			u = nat(nil).shr(u, 1)
			s = nat(nil).shl(s, 1)
		case v.bit(0) == 0:
			v = nat(nil).shr(v, 1)
			r = nat(nil).shl(r, 1)
		case u.cmp(v) > 0:
			u = nat(nil).shr(nat(nil).sub(u, v), 1)
			r = nat(nil).add(r, s)
			s = nat(nil).shl(s, 1)
		default:
			v = nat(nil).shr(nat(nil).sub(v, u), 1)
			s = nat(nil).add(s, r)
			r = nat(nil).shl(r, 1)
		}
		k++
	}

	if !(len(u) == 1 && u[0] == 1) {
		return nil, ErrNotInvertible
	}

	if r.cmp(m) >= 0 {
		r = nat(nil).sub(r, m)
	}
	r = nat(nil).sub(m, r)

	for i := 0; i < k; i++ {
		if r.bit(0) == 0 {
			r = nat(nil).shr(r, 1)
		} else {
			r = nat(nil).shr(nat(nil).add(r, m), 1)
		}
	}
	return r, nil
}

// modInverseLorencz computes a^-1 mod m for any modulus via the extended
// Euclidean algorithm, used directly when m is even and delegated to by
// modInverseMontgomery.
func modInverseLorencz(a, m nat) (nat, error) {
	A := &Int{abs: a.norm()}
	M := &Int{abs: m.norm()}
	g, x, _ := ExtGCD(A, M)
	if !g.IsOne() {
		return nil, ErrNotInvertible
	}
	r, err := Mod(x, M)
	if err != nil {
		return nil, err
	}
	return r.abs, nil
}
