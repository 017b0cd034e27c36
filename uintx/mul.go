package uintx

import "math/bits"

// mulTrunc computes p = x * y mod 2^(64*len(p)) by the schoolbook method,
// skipping every column at or above len(p). The boundary column is folded
// into the top word so the full low bits are preserved. x, y, and p must all
// have the same length.
func mulTrunc(p, x, y []uint64) {
	n := len(x)
	for i := range p {
		p[i] = 0
	}
	for j := 0; j < n; j++ {
		var k uint64
		for i := 0; i < n-j-1; i++ {
			hi, lo := bits.Mul64(x[i], y[j])
			lo, c := bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, k, 0)
			hi += c
			p[i+j] = lo
			k = hi
		}
		p[n-1] += x[n-j-1]*y[j] + k
	}
}

// umulLoop computes the full double-width product p = x * y by the
// schoolbook method. len(p) must be len(x) + len(y); x and y must have the
// same length.
func umulLoop(p, x, y []uint64) {
	n := len(x)
	for i := range p {
		p[i] = 0
	}
	for j := 0; j < n; j++ {
		var k uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(x[i], y[j])
			lo, c := bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, k, 0)
			hi += c
			p[i+j] = lo
			k = hi
		}
		p[j+n] = k
	}
}

// Mul returns x * y mod 2^256.
func (x Uint256) Mul(y Uint256) Uint256 {
	var p Uint256
	mulTrunc(p[:], x[:], y[:])
	return p
}

// Mul returns x * y mod 2^512.
func (x Uint512) Mul(y Uint512) Uint512 {
	var p Uint512
	mulTrunc(p[:], x[:], y[:])
	return p
}

// MulFull returns the full 512-bit product x * y.
//
// This is the recursive half-decomposition formulation: the four 128x128
// cross products are combined through the partial sums u1 = t1 + hi(t0) and
// u2 = t2 + lo(u1), neither of which can overflow 256 bits. The schoolbook
// loop formulation (mulFullLoop) produces bit-identical results and is kept
// as the cross-check.
func (x Uint256) MulFull(y Uint256) Uint512 {
	t0 := x.Lo().MulFull(y.Lo())
	t1 := x.Hi().MulFull(y.Lo())
	t2 := x.Lo().MulFull(y.Hi())
	t3 := x.Hi().MulFull(y.Hi())

	u1 := t1.Add(U256FromHalves(Uint128{}, t0.Hi()))
	u2 := t2.Add(U256FromHalves(Uint128{}, u1.Lo()))

	low := U256FromHalves(u2.Lo(), t0.Lo())
	high := t3.
		Add(U256FromHalves(Uint128{}, u2.Hi())).
		Add(U256FromHalves(Uint128{}, u1.Hi()))

	return U512FromHalves(high, low)
}

// mulFullLoop is the schoolbook-loop formulation of the full 512-bit product.
func mulFullLoop(x, y Uint256) Uint512 {
	var p [numWords256 * 2]uint64
	umulLoop(p[:], x[:], y[:])
	return Uint512(p)
}

// MulFull returns the full 1024-bit product x * y as a high and low
// Uint512 pair, in the manner of bits.Mul64.
func (x Uint512) MulFull(y Uint512) (hi, lo Uint512) {
	var p [numWords512 * 2]uint64
	umulLoop(p[:], x[:], y[:])
	copy(lo[:], p[:numWords512])
	copy(hi[:], p[numWords512:])
	return hi, lo
}

// Sqr returns x * x mod 2^256 using the truncated-square identity:
// the high half is ((lo * hi) << 1) + hi(lo * lo full), the low half is the
// low half of the full square of the low half.
func (x Uint256) Sqr() Uint256 {
	t := x.Lo().MulFull(x.Lo())
	h := x.Lo().Mul(x.Hi()).Lsh(1).Add(t.Hi())
	return U256FromHalves(h, t.Lo())
}

// Sqr returns x * x mod 2^512 using the truncated-square identity on the
// 256-bit halves.
func (x Uint512) Sqr() Uint512 {
	t := x.Lo().MulFull(x.Lo())
	h := x.Lo().Mul(x.Hi()).Lsh(1).Add(t.Hi())
	return U512FromHalves(h, t.Lo())
}

// Exp returns base**exponent mod 2^256 by binary square-and-multiply.
// Exp of anything to the zero power is 1. A base of exactly 2 reduces to a
// single shift.
func (x Uint256) Exp(exponent Uint256) Uint256 {
	result := U256From64(1)
	if x == U256From64(2) {
		return result.LshBy(exponent)
	}
	base := x
	for !exponent.IsZero() {
		if exponent[0]&1 != 0 {
			result = result.Mul(base)
		}
		base = base.Sqr()
		exponent = exponent.Rsh(1)
	}
	return result
}

// Exp returns base**exponent mod 2^512 by binary square-and-multiply.
func (x Uint512) Exp(exponent Uint512) Uint512 {
	result := U512From64(1)
	if x == U512From64(2) {
		return result.LshBy(exponent)
	}
	base := x
	for !exponent.IsZero() {
		if exponent[0]&1 != 0 {
			result = result.Mul(base)
		}
		base = base.Sqr()
		exponent = exponent.Rsh(1)
	}
	return result
}
