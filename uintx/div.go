package uintx

import "math/bits"

// maxDivWords bounds the significant word counts the division kernels accept.
// The widest numerator in this package is the 16-word full product used by
// the modular layer; the normalization buffer carries one extra word.
const maxDivWords = 16

// addWords computes s = x + y over equal-length word slices, returning the
// final carry. s may alias x.
func addWords(s, x, y []uint64) uint64 {
	var carry uint64
	for i := 0; i < len(x); i++ {
		s[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// submul computes r = x - multiplier*y over equal-length word slices,
// returning the final borrow. r may alias x. This is the inner primitive of
// the Knuth division loop.
func submul(r, x, y []uint64, multiplier uint64) uint64 {
	var borrow uint64
	for i := 0; i < len(x); i++ {
		s, sc := bits.Sub64(x[i], borrow, 0)
		phi, plo := bits.Mul64(y[i], multiplier)
		t, tc := bits.Sub64(s, plo, 0)
		r[i] = t
		borrow = phi + sc + tc
	}
	return borrow
}

// udivremBy1 divides the normalized numerator u by the normalized single-word
// divisor d. The quotient replaces the numerator words and the (still
// normalized) remainder is returned. len(u) must be at least 2.
func udivremBy1(u []uint64, d uint64) uint64 {
	rec := reciprocal2by1(d)

	rem := u[len(u)-1]
	u[len(u)-1] = 0
	for i := len(u) - 2; i >= 0; i-- {
		u[i], rem = udivrem2by1(rem, u[i], d, rec)
	}
	return rem
}

// udivremBy2 divides the normalized numerator u by the normalized two-word
// divisor d. The quotient replaces the numerator words and the (still
// normalized) remainder is returned. len(u) must be at least 3.
func udivremBy2(u []uint64, d Uint128) Uint128 {
	rec := reciprocal3by2(d)

	rem := Uint128{Lo: u[len(u)-2], Hi: u[len(u)-1]}
	u[len(u)-1] = 0
	u[len(u)-2] = 0
	for i := len(u) - 3; i >= 0; i-- {
		var qw uint64
		qw, rem = udivrem3by2(rem.Hi, rem.Lo, u[i], d, rec)
		u[i] = qw
	}
	return rem
}

// udivremKnuth runs Knuth Algorithm D with 3-by-2 reciprocal trial digits
// over the normalized numerator u and divisor d. Quotient digits are written
// to q; the remainder is left in the low len(d) words of u. len(d) must be
// at least 3 and len(u) greater than len(d).
func udivremKnuth(q, u, d []uint64) {
	dlen := len(d)
	divisor := Uint128{Lo: d[dlen-2], Hi: d[dlen-1]}
	rec := reciprocal3by2(divisor)

	for j := len(u) - dlen - 1; j >= 0; j-- {
		u2 := u[j+dlen]
		u1 := u[j+dlen-1]
		u0 := u[j+dlen-2]

		var qhat uint64
		if (Uint128{Lo: u1, Hi: u2}) == divisor {
			// The top numerator words equal the divisor top: a 3-by-2 step
			// would overflow its quotient word, and the true digit is all
			// ones. Apply it directly.
			qhat = ^uint64(0)
			u[j+dlen] = u2 - submul(u[j:j+dlen], u[j:j+dlen], d, qhat)
		} else {
			var rhat Uint128
			qhat, rhat = udivrem3by2(u2, u1, u0, divisor, rec)

			var borrow uint64
			overflow := submul(u[j:j+dlen-2], u[j:j+dlen-2], d[:dlen-2], qhat)
			u[j+dlen-2], borrow = bits.Sub64(rhat.Lo, overflow, 0)
			u[j+dlen-1], borrow = bits.Sub64(rhat.Hi, borrow, 0)

			if borrow != 0 {
				// The trial digit was one too large (probability about
				// 2^-64): decrement and add the divisor back.
				qhat--
				u[j+dlen-1] += divisor.Hi + addWords(u[j:j+dlen-1], u[j:j+dlen-1], d[:dlen-1])
			}
		}

		q[j] = qhat
	}
}

// udivrem computes q = u / v and r = u % v over little-endian word slices.
// q and r are fully overwritten; len(q) must be at least len(u) and len(r)
// at least len(v). A zero divisor yields zero quotient and remainder.
//
// The numerator and divisor are normalized by the leading-zero count of the
// top divisor word so the reciprocal primitives apply; the numerator gains
// one extra high word for the bits shifted out. Single- and two-word
// divisors take the fast reciprocal walks; everything wider runs Knuth
// Algorithm D.
func udivrem(q, r, u, v []uint64) {
	for i := range q {
		q[i] = 0
	}
	for i := range r {
		r[i] = 0
	}

	n := sigWords(v)
	if n == 0 {
		return
	}
	mSig := sigWords(u)
	if mSig == 0 {
		return
	}

	shift := uint(bits.LeadingZeros64(v[n-1]))

	var dnStorage [maxDivWords]uint64
	var unStorage [maxDivWords + 1]uint64
	dn := dnStorage[:n]
	un := unStorage[:mSig+1]

	if shift != 0 {
		for i := n - 1; i > 0; i-- {
			dn[i] = v[i]<<shift | v[i-1]>>(64-shift)
		}
		dn[0] = v[0] << shift

		un[mSig] = u[mSig-1] >> (64 - shift)
		for i := mSig - 1; i > 0; i-- {
			un[i] = u[i]<<shift | u[i-1]>>(64-shift)
		}
		un[0] = u[0] << shift
	} else {
		copy(dn, v[:n])
		copy(un[:mSig], u[:mSig])
		un[mSig] = 0
	}

	// Include the extension word when it is significant, or when the top
	// numerator word would not be smaller than the top divisor word: each
	// quotient digit must fit in a single word.
	m := mSig
	if un[m] != 0 || un[m-1] >= dn[n-1] {
		m++
	}

	if m <= n {
		copy(r[:mSig], u[:mSig])
		return
	}

	switch n {
	case 1:
		rem := udivremBy1(un[:m], dn[0])
		copy(q, un[:m])
		r[0] = rem >> shift
	case 2:
		rem := udivremBy2(un[:m], Uint128{Lo: dn[0], Hi: dn[1]})
		copy(q, un[:m])
		rem = rem.Rsh(shift)
		r[0], r[1] = rem.Lo, rem.Hi
	default:
		udivremKnuth(q, un[:m], dn)

		for i := 0; i < n-1; i++ {
			r[i] = un[i] >> shift
			if shift != 0 {
				r[i] |= un[i+1] << (64 - shift)
			}
		}
		r[n-1] = un[n-1] >> shift
	}
}

// DivRem returns the quotient and remainder of x / y.
//
// A zero divisor is a caller error; it yields (0, 0) rather than panicking.
func (x Uint256) DivRem(y Uint256) (q, r Uint256) {
	udivrem(q[:], r[:], x[:], y[:])
	return q, r
}

// Div returns x / y. A zero divisor yields 0.
func (x Uint256) Div(y Uint256) Uint256 {
	q, _ := x.DivRem(y)
	return q
}

// Mod returns x % y. A zero divisor yields 0.
func (x Uint256) Mod(y Uint256) Uint256 {
	_, r := x.DivRem(y)
	return r
}

// DivRem returns the quotient and remainder of x / y.
//
// A zero divisor is a caller error; it yields (0, 0) rather than panicking.
func (x Uint512) DivRem(y Uint512) (q, r Uint512) {
	udivrem(q[:], r[:], x[:], y[:])
	return q, r
}

// Div returns x / y. A zero divisor yields 0.
func (x Uint512) Div(y Uint512) Uint512 {
	q, _ := x.DivRem(y)
	return q
}

// Mod returns x % y. A zero divisor yields 0.
func (x Uint512) Mod(y Uint512) Uint512 {
	_, r := x.DivRem(y)
	return r
}

// SDivRem interprets x and y as two's-complement signed values and returns
// the signed quotient and remainder. The quotient is negative when the
// operand signs differ; the remainder takes the sign of the dividend.
func (x Uint256) SDivRem(y Uint256) (q, r Uint256) {
	xNeg := x[numWords256-1]>>63 != 0
	yNeg := y[numWords256-1]>>63 != 0

	xAbs, yAbs := x, y
	if xNeg {
		xAbs = x.Neg()
	}
	if yNeg {
		yAbs = y.Neg()
	}

	q, r = xAbs.DivRem(yAbs)
	if xNeg != yNeg {
		q = q.Neg()
	}
	if xNeg {
		r = r.Neg()
	}
	return q, r
}

// SDivRem interprets x and y as two's-complement signed values and returns
// the signed quotient and remainder.
func (x Uint512) SDivRem(y Uint512) (q, r Uint512) {
	xNeg := x[numWords512-1]>>63 != 0
	yNeg := y[numWords512-1]>>63 != 0

	xAbs, yAbs := x, y
	if xNeg {
		xAbs = x.Neg()
	}
	if yNeg {
		yAbs = y.Neg()
	}

	q, r = xAbs.DivRem(yAbs)
	if xNeg != yNeg {
		q = q.Neg()
	}
	if xNeg {
		r = r.Neg()
	}
	return q, r
}
