package uintx

import "math/bits"

// Möller-Granlund reciprocal division primitives ("Improved division by
// invariant integers", IEEE Transactions on Computers, 2011). A divisor is
// normalized when its most significant bit is set; the reciprocal then turns
// each wide-by-narrow division step into a handful of multiplications and
// conditional corrections.

// reciprocal2by1 computes the reciprocal v = floor((2^128 - 1) / d) - 2^64
// for a normalized divisor d (top bit set).
func reciprocal2by1(d uint64) uint64 {
	v, _ := bits.Div64(^d, ^uint64(0), d)
	return v
}

// udivrem2by1 divides the 128-bit value uhi:ulo by the normalized divisor d
// using the precomputed reciprocal v, returning quotient and remainder.
// Requires uhi < d so the quotient fits in a single word.
func udivrem2by1(uhi, ulo, d, v uint64) (q, r uint64) {
	qhi, qlo := bits.Mul64(v, uhi)
	var carry uint64
	qlo, carry = bits.Add64(qlo, ulo, 0)
	qhi, _ = bits.Add64(qhi, uhi, carry)
	qhi++

	r = ulo - qhi*d

	if r > qlo {
		qhi--
		r += d
	}
	if r >= d {
		qhi++
		r -= d
	}
	return qhi, r
}

// reciprocal3by2 computes the reciprocal for a normalized 128-bit divisor
// (top bit of d.Hi set), used to produce one quotient word per 3-by-2 step.
func reciprocal3by2(d Uint128) uint64 {
	v := reciprocal2by1(d.Hi)
	p := d.Hi * v
	p += d.Lo
	if p < d.Lo {
		v--
		if p >= d.Hi {
			v--
			p -= d.Hi
		}
		p -= d.Hi
	}

	thi, tlo := bits.Mul64(v, d.Lo)

	p += thi
	if p < thi {
		v--
		if p > d.Hi || (p == d.Hi && tlo >= d.Lo) {
			v--
		}
	}
	return v
}

// udivrem3by2 divides the 192-bit value u2:u1:u0 by the normalized 128-bit
// divisor d using the precomputed reciprocal v. Returns the single quotient
// word and the 128-bit remainder. Requires u2:u1 < d.
func udivrem3by2(u2, u1, u0 uint64, d Uint128, v uint64) (uint64, Uint128) {
	qhi, qlo := bits.Mul64(v, u2)
	var carry uint64
	qlo, carry = bits.Add64(qlo, u1, 0)
	qhi, _ = bits.Add64(qhi, u2, carry)

	r1 := u1 - qhi*d.Hi

	thi, tlo := bits.Mul64(d.Lo, qhi)

	// r = (r1:u0) - t - d over 128 bits.
	rlo, borrow := bits.Sub64(u0, tlo, 0)
	rhi, _ := bits.Sub64(r1, thi, borrow)
	rlo, borrow = bits.Sub64(rlo, d.Lo, 0)
	rhi, _ = bits.Sub64(rhi, d.Hi, borrow)
	r := Uint128{Lo: rlo, Hi: rhi}

	qhi++

	if r.Hi >= qlo {
		qhi--
		r = r.Add(d)
	}
	if r.Gte(d) {
		qhi++
		r = r.Sub(d)
	}
	return qhi, r
}
