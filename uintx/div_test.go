package uintx

import (
	"math/big"
	"math/rand"
	"testing"
)

// TestDivRemBoundary checks that an all-ones numerator
// divided by 2^128 splits exactly into equal quotient and remainder halves.
func TestDivRemBoundary(t *testing.T) {
	a := MustU256("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	b := MustU256("0x100000000000000000000000000000000")

	q, r := a.DivRem(b)
	wantQ := MustU256("0xffffffffffffffffffffffffffffffff")
	wantR := MustU256("0xffffffffffffffffffffffffffffffff")
	if q != wantQ {
		t.Errorf("q = %v, want %v", q.Hex(), wantQ.Hex())
	}
	if r != wantR {
		t.Errorf("r = %v, want %v", r.Hex(), wantR.Hex())
	}
}

// TestDivRemOverflowBranch exercises the case where the top numerator
// words equal the divisor top, forcing the all-ones trial digit shortcut.
// The first pair (the S2 vectors) normalizes by one bit and does not meet
// the shortcut; the second pair, with an already normalized divisor, meets
// it on the last quotient digit after a corrected first digit.
func TestDivRemOverflowBranch(t *testing.T) {
	a := Uint256{0, 0, 1, 0x7fff800000000000}
	b := Uint256{1, 0, 0x7fff800000000000, 0}

	q, r := a.DivRem(b)

	if !r.Lt(b) {
		t.Fatalf("r = %v is not below b = %v", r.Hex(), b.Hex())
	}
	// q*b + r must reconstruct a, checked at full width.
	sum, carry := q.MulFull(b).AddCarry(U512From256(r), 0)
	if carry != 0 || sum != U512From256(a) {
		t.Fatalf("q*b + r = %v, want %v", sum.Hex(), a.Hex())
	}

	a2 := Uint256{7, 0, 1, 1 << 63}
	b2 := Uint256{5, 1, 1 << 63, 0}

	q2, r2 := a2.DivRem(b2)

	if !r2.Lt(b2) {
		t.Fatalf("r = %v is not below b = %v", r2.Hex(), b2.Hex())
	}
	sum2, carry2 := q2.MulFull(b2).AddCarry(U512From256(r2), 0)
	if carry2 != 0 || sum2 != U512From256(a2) {
		t.Fatalf("q*b + r = %v, want %v", sum2.Hex(), a2.Hex())
	}
}

// TestDivRemFastPathTransitions exercises the divisor widths around the
// 1-word and 2-word fast paths: exactly 64, 65, 128, and 129 significant
// divisor bits, plus both sides of each boundary.
func TestDivRemFastPathTransitions(t *testing.T) {
	divisors := []Uint256{
		U256From64(1),
		U256From64(3),
		MustU256("0xffffffffffffffff"),                  // n = 1, fully saturated word
		MustU256("0x10000000000000000"),                 // n = 2, exactly 65 bits
		MustU256("0x10000000000000001"),                 // n = 2
		MustU256("0xffffffffffffffffffffffffffffffff"),  // n = 2, 128 bits
		MustU256("0x100000000000000000000000000000000"), // n = 3, 129 bits
		MustU256("0x100000000000000000000000000000003"), // n = 3
		MustU256("0xffffffffffffffffffffffffffffffffffffffffffffffff"), // n = 3, 192 bits
		MustU256("0x1000000000000000000000000000000000000000000000000"), // n = 4
	}

	rng := rand.New(rand.NewSource(30))
	for _, b := range divisors {
		bb := toBig256(b)
		for i := 0; i < 300; i++ {
			a := randU256(rng)

			q, r := a.DivRem(b)
			wantQ, wantR := new(big.Int).QuoRem(toBig256(a), bb, new(big.Int))
			if got := toBig256(q); got.Cmp(wantQ) != 0 {
				t.Fatalf("(%v / %v) q = %v, want %v", a.Hex(), b.Hex(), got, wantQ)
			}
			if got := toBig256(r); got.Cmp(wantR) != 0 {
				t.Fatalf("(%v %% %v) r = %v, want %v", a.Hex(), b.Hex(), got, wantR)
			}
		}
	}
}

// TestDivRemIdentity checks the division identity over random operands:
// q*b + r == a at full width, r < b, and agreement with math/big.
func TestDivRemIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 3000; i++ {
		a, b := randU256(rng), randU256(rng)
		if b.IsZero() {
			continue
		}

		q, r := a.DivRem(b)

		if !r.Lt(b) {
			t.Fatalf("r = %v not below b = %v", r.Hex(), b.Hex())
		}
		// Truncated identity: low 256 bits of q*b equal a - r.
		if got, want := q.Mul(b).Add(r), a; got != want {
			t.Fatalf("q*b + r = %v, want %v (truncated)", got.Hex(), want.Hex())
		}
		// Full-width identity: umul(q, b) + r equals the zero-extension of a.
		full, carry := q.MulFull(b).AddCarry(U512From256(r), 0)
		if carry != 0 || full != U512From256(a) {
			t.Fatalf("umul(q,b) + r = %v (carry %d), want %v", full.Hex(), carry, a.Hex())
		}
	}
}

// TestDivRemSmallOverLarge confirms the m < n early exit: dividing by a
// larger divisor returns a zero quotient and the numerator unchanged.
func TestDivRemSmallOverLarge(t *testing.T) {
	a := MustU256("0x1234567890abcdef")
	b := MustU256("0x100000000000000000000000000000000000000000000")

	q, r := a.DivRem(b)
	if !q.IsZero() {
		t.Errorf("q = %v, want 0", q.Hex())
	}
	if r != a {
		t.Errorf("r = %v, want %v", r.Hex(), a.Hex())
	}
}

// TestDivByZero pins the defined fallback: both results zero, no panic.
func TestDivByZero(t *testing.T) {
	a := MustU256("0xdeadbeef")
	q, r := a.DivRem(Uint256{})
	if !q.IsZero() || !r.IsZero() {
		t.Fatalf("x / 0 = (%v, %v), want (0, 0)", q.Hex(), r.Hex())
	}
}

// TestUint512DivRem cross-checks the 512-bit division against math/big,
// covering every divisor width class.
func TestUint512DivRem(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	for i := 0; i < 1500; i++ {
		a, b := randU512(rng), randU512(rng)
		if b.IsZero() {
			continue
		}

		q, r := a.DivRem(b)
		wantQ, wantR := new(big.Int).QuoRem(toBig512(a), toBig512(b), new(big.Int))
		if got := toBig512(q); got.Cmp(wantQ) != 0 {
			t.Fatalf("512 q mismatch for %v / %v", a.Hex(), b.Hex())
		}
		if got := toBig512(r); got.Cmp(wantR) != 0 {
			t.Fatalf("512 r mismatch for %v / %v", a.Hex(), b.Hex())
		}
	}
}

// TestSDivRem verifies the two's-complement wrapper: the identity
// q*v + r == u holds modulo 2^256 and the remainder carries the sign of
// the dividend.
func TestSDivRem(t *testing.T) {
	tests := []struct {
		name string
		u, v Uint256
	}{
		{name: "positive by positive", u: U256From64(7), v: U256From64(2)},
		{name: "negative by positive", u: U256From64(7).Neg(), v: U256From64(2)},
		{name: "positive by negative", u: U256From64(7), v: U256From64(2).Neg()},
		{name: "negative by negative", u: U256From64(7).Neg(), v: U256From64(2).Neg()},
		{name: "exact division", u: U256From64(100).Neg(), v: U256From64(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r := tt.u.SDivRem(tt.v)
			if got := q.Mul(tt.v).Add(r); got != tt.u {
				t.Fatalf("q*v + r = %v, want %v", got.Hex(), tt.u.Hex())
			}
			uNeg := tt.u[3]>>63 != 0
			rNeg := r[3]>>63 != 0
			if !r.IsZero() && rNeg != uNeg {
				t.Fatalf("remainder sign %v does not match dividend sign %v", rNeg, uNeg)
			}
		})
	}

	rng := rand.New(rand.NewSource(33))
	for i := 0; i < 1000; i++ {
		u, v := randU256(rng), randU256(rng)
		if v.IsZero() {
			continue
		}
		q, r := u.SDivRem(v)
		if got := q.Mul(v).Add(r); got != u {
			t.Fatalf("signed identity failed for %v / %v", u.Hex(), v.Hex())
		}
	}
}
