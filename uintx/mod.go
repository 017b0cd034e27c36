package uintx

// AddMod returns (x + y) % m, where the sum is taken over the full 257-bit
// range before reduction. A zero modulus yields 0.
//
// When m occupies its top word and x and y are no larger than m in that
// word (always the case for operands already reduced modulo m), a single
// conditional-subtraction pass replaces the full 320-by-256 division. The
// two paths return identical results for all inputs admitted by the guard.
func (x Uint256) AddMod(y, m Uint256) Uint256 {
	if m[3] != 0 && x[3] <= m[3] && y[3] <= m[3] {
		s, sb := x.SubBorrow(m, 0)
		if sb != 0 {
			s = x
		}
		t, tb := y.SubBorrow(m, 0)
		if tb != 0 {
			t = y
		}

		sum, carry := s.AddCarry(t, 0)
		red, rb := sum.SubBorrow(m, 0)
		if carry != 0 || rb == 0 {
			return red
		}
		return sum
	}
	return addMod(x, y, m)
}

// addMod is the generic path: the 320-bit sum (carry word on top) reduced
// modulo m by the general division routine.
func addMod(x, y, m Uint256) Uint256 {
	s, carry := x.AddCarry(y, 0)
	u := [numWords256 + 1]uint64{s[0], s[1], s[2], s[3], carry}

	var q [numWords256 + 1]uint64
	var r Uint256
	udivrem(q[:], r[:], u[:], m[:])
	return r
}

// MulMod returns (x * y) % m over the full 512-bit product. A zero modulus
// yields 0.
func (x Uint256) MulMod(y, m Uint256) Uint256 {
	p := x.MulFull(y)

	var q Uint512
	var r Uint256
	udivrem(q[:], r[:], p[:], m[:])
	return r
}
