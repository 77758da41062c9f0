package bignum

import "sync"

// getNat and putNat hand out pooled scratch nat buffers. Their one user
// is divideKnuth, which takes the normalised divisor and the q-hat*v
// product buffer from the pool. Grounded on the teacher's own
// natPool/getNat/putNat in nat.go.
var natPool sync.Pool

// getNat returns a *nat of length n; its contents are not zeroed.
func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
	}
	*z = z.make(n)
	return z
}

func putNat(x *nat) {
	natPool.Put(x)
}
