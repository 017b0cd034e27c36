package uintx

import "math/bits"

// Uint128 is an unsigned 128-bit integer represented as two 64-bit words.
// It is the base case of the recursive half decomposition: a Uint256 is a
// pair of Uint128 halves, a Uint512 a pair of Uint256 halves.
type Uint128 struct {
	Lo, Hi uint64
}

// U128From64 returns v zero-extended to 128 bits.
func U128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether x == 0.
func (x Uint128) IsZero() bool {
	return x.Lo|x.Hi == 0
}

// AddCarry returns x + y + carry and the outgoing carry bit.
// The incoming carry must be 0 or 1.
func (x Uint128) AddCarry(y Uint128, carry uint64) (Uint128, uint64) {
	var z Uint128
	z.Lo, carry = bits.Add64(x.Lo, y.Lo, carry)
	z.Hi, carry = bits.Add64(x.Hi, y.Hi, carry)
	return z, carry
}

// SubBorrow returns x - y - borrow and the outgoing borrow bit.
// The incoming borrow must be 0 or 1.
func (x Uint128) SubBorrow(y Uint128, borrow uint64) (Uint128, uint64) {
	var z Uint128
	z.Lo, borrow = bits.Sub64(x.Lo, y.Lo, borrow)
	z.Hi, borrow = bits.Sub64(x.Hi, y.Hi, borrow)
	return z, borrow
}

// Add returns x + y mod 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	z, _ := x.AddCarry(y, 0)
	return z
}

// Sub returns x - y mod 2^128.
func (x Uint128) Sub(y Uint128) Uint128 {
	z, _ := x.SubBorrow(y, 0)
	return z
}

// Lt reports whether x < y, derived from the subtraction borrow.
func (x Uint128) Lt(y Uint128) bool {
	_, borrow := x.SubBorrow(y, 0)
	return borrow != 0
}

// Gte reports whether x >= y.
func (x Uint128) Gte(y Uint128) bool {
	_, borrow := x.SubBorrow(y, 0)
	return borrow == 0
}

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo | y.Lo, Hi: x.Hi | y.Hi}
}

// Lsh returns x << n. Shift distances of 128 or more yield zero.
// Go defines word-level shifts by the full word width (or more) as zero, so
// the n == 0 and n == 64 edges need no special casing here.
func (x Uint128) Lsh(n uint) Uint128 {
	switch {
	case n < 64:
		return Uint128{Lo: x.Lo << n, Hi: x.Hi<<n | x.Lo>>(64-n)}
	case n < 128:
		return Uint128{Hi: x.Lo << (n - 64)}
	default:
		return Uint128{}
	}
}

// Rsh returns x >> n. Shift distances of 128 or more yield zero.
func (x Uint128) Rsh(n uint) Uint128 {
	switch {
	case n < 64:
		return Uint128{Lo: x.Lo>>n | x.Hi<<(64-n), Hi: x.Hi >> n}
	case n < 128:
		return Uint128{Lo: x.Hi >> (n - 64)}
	default:
		return Uint128{}
	}
}

// Mul returns x * y mod 2^128.
func (x Uint128) Mul(y Uint128) Uint128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi
	return Uint128{Lo: lo, Hi: hi}
}

// MulFull returns the full 256-bit product x * y. This is the base case of
// the recursive full multiplication: the four cross products of the 64-bit
// halves are combined with the partial sums u1 = t1 + hi(t0) and
// u2 = t2 + lo(u1), neither of which can overflow 128 bits.
func (x Uint128) MulFull(y Uint128) Uint256 {
	t0hi, t0lo := bits.Mul64(x.Lo, y.Lo)
	t1hi, t1lo := bits.Mul64(x.Hi, y.Lo)
	t2hi, t2lo := bits.Mul64(x.Lo, y.Hi)
	t3hi, t3lo := bits.Mul64(x.Hi, y.Hi)

	u1lo, c := bits.Add64(t1lo, t0hi, 0)
	u1hi := t1hi + c

	u2lo, c := bits.Add64(t2lo, u1lo, 0)
	u2hi := t2hi + c

	hlo, c := bits.Add64(t3lo, u2hi, 0)
	hhi := t3hi + c
	hlo, c = bits.Add64(hlo, u1hi, 0)
	hhi += c

	return Uint256{t0lo, u2lo, hlo, hhi}
}

// LeadingZeros returns the number of leading zero bits in x; 128 for x == 0.
func (x Uint128) LeadingZeros() int {
	if x.Hi == 0 {
		return 64 + bits.LeadingZeros64(x.Lo)
	}
	return bits.LeadingZeros64(x.Hi)
}
