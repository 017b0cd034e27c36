package uintx

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based tests for the universal algebraic invariants. Values are
// generated word by word so every bit pattern is reachable.

// genU256 yields arbitrary Uint256 values.
func genU256() gopter.Gen {
	return gopter.CombineGens(gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64()).
		Map(func(vs []interface{}) Uint256 {
			return Uint256{vs[0].(uint64), vs[1].(uint64), vs[2].(uint64), vs[3].(uint64)}
		})
}

func newProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// TestAdditiveGroup_PropertyBased verifies the additive group laws:
// associativity, the zero identity, inverses, and subtraction as addition
// of the negation.
func TestAdditiveGroup_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("(a + b) + c == a + (b + c)", prop.ForAll(
		func(a, b, c Uint256) bool {
			return a.Add(b).Add(c) == a.Add(b.Add(c))
		},
		genU256(), genU256(), genU256(),
	))

	properties.Property("a + 0 == a", prop.ForAll(
		func(a Uint256) bool { return a.Add(Uint256{}) == a },
		genU256(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Uint256) bool { return a.Add(a.Neg()).IsZero() },
		genU256(),
	))

	properties.Property("a - b == a + (-b)", prop.ForAll(
		func(a, b Uint256) bool { return a.Sub(b) == a.Add(b.Neg()) },
		genU256(), genU256(),
	))

	properties.TestingRun(t)
}

// TestMultiplicativeLaws_PropertyBased verifies the ring laws modulo 2^256:
// the unit and zero elements, associativity, and distributivity.
func TestMultiplicativeLaws_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("a * 1 == a", prop.ForAll(
		func(a Uint256) bool { return a.Mul(U256From64(1)) == a },
		genU256(),
	))

	properties.Property("a * 0 == 0", prop.ForAll(
		func(a Uint256) bool { return a.Mul(Uint256{}).IsZero() },
		genU256(),
	))

	properties.Property("(a * b) * c == a * (b * c)", prop.ForAll(
		func(a, b, c Uint256) bool {
			return a.Mul(b).Mul(c) == a.Mul(b.Mul(c))
		},
		genU256(), genU256(), genU256(),
	))

	properties.Property("a * (b + c) == a*b + a*c", prop.ForAll(
		func(a, b, c Uint256) bool {
			return a.Mul(b.Add(c)) == a.Mul(b).Add(a.Mul(c))
		},
		genU256(), genU256(), genU256(),
	))

	properties.Property("low half of full product equals truncated product", prop.ForAll(
		func(a, b Uint256) bool {
			return a.MulFull(b).Lo() == a.Mul(b)
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t)
}

// TestDivisionIdentity_PropertyBased verifies the division identity at both
// truncated and full width, and that the remainder is below the divisor.
func TestDivisionIdentity_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("q*b + r == a with r < b", prop.ForAll(
		func(a, b Uint256) bool {
			if b.IsZero() {
				return true
			}
			q, r := a.DivRem(b)
			if !r.Lt(b) {
				return false
			}
			if q.Mul(b).Add(r) != a {
				return false
			}
			full, carry := q.MulFull(b).AddCarry(U512From256(r), 0)
			return carry == 0 && full == U512From256(a)
		},
		genU256(), genU256(),
	))

	properties.Property("signed identity q*v + r == u", prop.ForAll(
		func(u, v Uint256) bool {
			if v.IsZero() {
				return true
			}
			q, r := u.SDivRem(v)
			return q.Mul(v).Add(r) == u
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t)
}

// TestShiftLaws_PropertyBased verifies the shift identities and the
// at-least-width rule.
func TestShiftLaws_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("x << s >> s clears the top s bits", prop.ForAll(
		func(x Uint256, s uint8) bool {
			sh := uint(s) // uint8 distances are always in range
			mask := Uint256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}.Rsh(sh)
			return x.Lsh(sh).Rsh(sh) == x.And(mask)
		},
		genU256(), gen.UInt8(),
	))

	properties.Property("x >> s << s clears the bottom s bits", prop.ForAll(
		func(x Uint256, s uint8) bool {
			sh := uint(s)
			mask := Uint256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}.Lsh(sh)
			return x.Rsh(sh).Lsh(sh) == x.And(mask)
		},
		genU256(), gen.UInt8(),
	))

	properties.Property("shifts of at least the width yield 0", prop.ForAll(
		func(x Uint256, extra uint16) bool {
			sh := 256 + uint(extra)
			return x.Lsh(sh).IsZero() && x.Rsh(sh).IsZero()
		},
		genU256(), gen.UInt16(),
	))

	properties.TestingRun(t)
}

// TestOrdering_PropertyBased verifies the total order: exactly one of
// <, ==, > holds, and the order is consistent with addition.
func TestOrdering_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("exactly one of <, ==, > holds", prop.ForAll(
		func(a, b Uint256) bool {
			holds := 0
			if a.Lt(b) {
				holds++
			}
			if a == b {
				holds++
			}
			if a.Gt(b) {
				holds++
			}
			return holds == 1
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t)
}

// TestSerialization_PropertyBased verifies the round-trip laws for both
// endiannesses and the byte swap involution.
func TestSerialization_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("LE and BE round trips are the identity", prop.ForAll(
		func(x Uint256) bool {
			if U256FromBytesLE(x.BytesLE()) != x {
				return false
			}
			be := x.BytesBE()
			got, ok := U256FromBytesBE(be[:])
			return ok && got == x
		},
		genU256(),
	))

	properties.Property("bswap(bswap(x)) == x", prop.ForAll(
		func(x Uint256) bool { return x.Bswap().Bswap() == x },
		genU256(),
	))

	properties.TestingRun(t)
}

// TestExponentiation_PropertyBased verifies the exponent laws, using
// word-sized exponents so the m+n sum cannot wrap.
func TestExponentiation_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("exp(2, k) == 1 << k for k < 256", prop.ForAll(
		func(k uint8) bool {
			return U256From64(2).Exp(U256From64(uint64(k))) == U256From64(1).Lsh(uint(k))
		},
		gen.UInt8(),
	))

	properties.Property("exp(a, m+n) == exp(a, m) * exp(a, n)", prop.ForAll(
		func(a Uint256, m, n uint16) bool {
			em := U256From64(uint64(m))
			en := U256From64(uint64(n))
			lhs := a.Exp(em.Add(en))
			rhs := a.Exp(em).Mul(a.Exp(en))
			return lhs == rhs
		},
		genU256(), gen.UInt16(), gen.UInt16(),
	))

	properties.TestingRun(t)
}

// TestModular_PropertyBased verifies the modular layer against combinations
// of the already verified primitives.
func TestModular_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("addmod fast and generic paths agree", prop.ForAll(
		func(x, y, m Uint256) bool {
			return x.AddMod(y, m) == addMod(x, y, m)
		},
		genU256(), genU256(), genU256(),
	))

	properties.Property("mulmod result is below the modulus", prop.ForAll(
		func(x, y, m Uint256) bool {
			if m.IsZero() {
				return true
			}
			return x.MulMod(y, m).Lt(m)
		},
		genU256(), genU256(), genU256(),
	))

	properties.TestingRun(t)
}
