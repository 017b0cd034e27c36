package uintx

import "math/bits"

// AddCarry returns x + y + carry and the outgoing carry bit. The incoming
// carry must be 0 or 1. The carry ripples through each word in turn.
func (x Uint256) AddCarry(y Uint256, carry uint64) (Uint256, uint64) {
	var z Uint256
	z[0], carry = bits.Add64(x[0], y[0], carry)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	return z, carry
}

// SubBorrow returns x - y - borrow and the outgoing borrow bit. The incoming
// borrow must be 0 or 1. The final borrow is the primitive behind the
// ordered comparisons.
func (x Uint256) SubBorrow(y Uint256, borrow uint64) (Uint256, uint64) {
	var z Uint256
	z[0], borrow = bits.Sub64(x[0], y[0], borrow)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	return z, borrow
}

// Add returns x + y mod 2^256.
func (x Uint256) Add(y Uint256) Uint256 {
	z, _ := x.AddCarry(y, 0)
	return z
}

// Sub returns x - y mod 2^256.
func (x Uint256) Sub(y Uint256) Uint256 {
	z, _ := x.SubBorrow(y, 0)
	return z
}

// Neg returns the two's complement -x = ^x + 1.
func (x Uint256) Neg() Uint256 {
	return x.Not().Add(U256From64(1))
}

// AddCarry returns x + y + carry and the outgoing carry bit.
func (x Uint512) AddCarry(y Uint512, carry uint64) (Uint512, uint64) {
	var z Uint512
	for i := range z {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return z, carry
}

// SubBorrow returns x - y - borrow and the outgoing borrow bit.
func (x Uint512) SubBorrow(y Uint512, borrow uint64) (Uint512, uint64) {
	var z Uint512
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return z, borrow
}

// Add returns x + y mod 2^512.
func (x Uint512) Add(y Uint512) Uint512 {
	z, _ := x.AddCarry(y, 0)
	return z
}

// Sub returns x - y mod 2^512.
func (x Uint512) Sub(y Uint512) Uint512 {
	z, _ := x.SubBorrow(y, 0)
	return z
}

// Neg returns the two's complement -x = ^x + 1.
func (x Uint512) Neg() Uint512 {
	return x.Not().Add(U512From64(1))
}

// Lt reports whether x < y.
func (x Uint256) Lt(y Uint256) bool {
	_, borrow := x.SubBorrow(y, 0)
	return borrow != 0
}

// Gt reports whether x > y.
func (x Uint256) Gt(y Uint256) bool {
	_, borrow := y.SubBorrow(x, 0)
	return borrow != 0
}

// Lte reports whether x <= y.
func (x Uint256) Lte(y Uint256) bool {
	_, borrow := y.SubBorrow(x, 0)
	return borrow == 0
}

// Gte reports whether x >= y.
func (x Uint256) Gte(y Uint256) bool {
	_, borrow := x.SubBorrow(y, 0)
	return borrow == 0
}

// Cmp returns -1, 0, or 1 depending on whether x < y, x == y, or x > y.
func (x Uint256) Cmp(y Uint256) int {
	if x == y {
		return 0
	}
	if x.Lt(y) {
		return -1
	}
	return 1
}

// Lt reports whether x < y.
func (x Uint512) Lt(y Uint512) bool {
	_, borrow := x.SubBorrow(y, 0)
	return borrow != 0
}

// Gt reports whether x > y.
func (x Uint512) Gt(y Uint512) bool {
	_, borrow := y.SubBorrow(x, 0)
	return borrow != 0
}

// Lte reports whether x <= y.
func (x Uint512) Lte(y Uint512) bool {
	_, borrow := y.SubBorrow(x, 0)
	return borrow == 0
}

// Gte reports whether x >= y.
func (x Uint512) Gte(y Uint512) bool {
	_, borrow := x.SubBorrow(y, 0)
	return borrow == 0
}

// Cmp returns -1, 0, or 1 depending on whether x < y, x == y, or x > y.
func (x Uint512) Cmp(y Uint512) int {
	if x == y {
		return 0
	}
	if x.Lt(y) {
		return -1
	}
	return 1
}
