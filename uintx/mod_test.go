package uintx

import (
	"math/big"
	"math/rand"
	"testing"
)

// TestAddModWrap checks the fully wrapped sum
// (2^256-1) + (2^256-1) reduced by 2^255, on both reduction paths.
func TestAddModWrap(t *testing.T) {
	x := MustU256("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	m := U256From64(1).Lsh(255)
	want := m.Sub(U256From64(2)) // 2^255 - 2

	if got := x.AddMod(x, m); got != want {
		t.Errorf("AddMod fast path = %v, want %v", got.Hex(), want.Hex())
	}
	if got := addMod(x, x, m); got != want {
		t.Errorf("addMod generic = %v, want %v", got.Hex(), want.Hex())
	}
}

// TestAddModPathsAgree verifies that the single-subtraction fast path and
// the generic 320-by-256 remainder path return identical results, with the
// operands pushed right up to the fast-path guard boundary.
func TestAddModPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	for i := 0; i < 3000; i++ {
		m := randU256(rng)
		m[3] |= 1 << 63 // keep the top word populated so the guard admits
		x, y := randU256(rng), randU256(rng)

		// Half the time, clamp the operand top words to the modulus top
		// word so the guard's x[3] <= m[3] edge is exercised from inside.
		if i%2 == 0 {
			if x[3] > m[3] {
				x[3] = m[3]
			}
			if y[3] > m[3] {
				y[3] = m[3]
			}
		}

		fast := x.AddMod(y, m)
		slow := addMod(x, y, m)
		if fast != slow {
			t.Fatalf("AddMod paths disagree for x=%v y=%v m=%v: fast %v, slow %v",
				x.Hex(), y.Hex(), m.Hex(), fast.Hex(), slow.Hex())
		}
	}
}

// TestAddModAgainstBig checks the mathematical statement (x + y) mod m over
// the integers, with no wrap before the reduction.
func TestAddModAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for i := 0; i < 2000; i++ {
		x, y, m := randU256(rng), randU256(rng), randU256(rng)
		if m.IsZero() {
			continue
		}

		want := new(big.Int).Add(toBig256(x), toBig256(y))
		want.Mod(want, toBig256(m))
		if got := toBig256(x.AddMod(y, m)); got.Cmp(want) != 0 {
			t.Fatalf("AddMod(%v, %v, %v) = %v, want %v", x.Hex(), y.Hex(), m.Hex(), got, want)
		}
	}
}

// TestAddModGuardBoundary walks the exact word boundary of the fast-path
// guard: operands slightly above the modulus still admitted by
// x[3] <= m[3], per the documented precondition.
func TestAddModGuardBoundary(t *testing.T) {
	m := MustU256("0x8000000000000000000000000000000000000000000000000000000000000001")

	cases := []Uint256{
		m,                                // x == m
		m.Add(U256From64(1)),             // x == m+1, same top word
		m.Sub(U256From64(1)),             // x == m-1
		{^uint64(0), ^uint64(0), ^uint64(0), m[3]}, // max value with top word == m[3]
	}
	for _, x := range cases {
		for _, y := range cases {
			fast := x.AddMod(y, m)
			slow := addMod(x, y, m)
			if fast != slow {
				t.Errorf("guard boundary: AddMod(%v, %v, %v): fast %v != slow %v",
					x.Hex(), y.Hex(), m.Hex(), fast.Hex(), slow.Hex())
			}
		}
	}
}

// TestMulMod checks (x*y) mod m over the full 512-bit product against
// math/big.
func TestMulMod(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		x, y, m := randU256(rng), randU256(rng), randU256(rng)
		if m.IsZero() {
			continue
		}

		want := new(big.Int).Mul(toBig256(x), toBig256(y))
		want.Mod(want, toBig256(m))
		if got := toBig256(x.MulMod(y, m)); got.Cmp(want) != 0 {
			t.Fatalf("MulMod(%v, %v, %v) = %v, want %v", x.Hex(), y.Hex(), m.Hex(), got, want)
		}
	}
}

// TestModZeroModulus pins the defined fallback for a zero modulus.
func TestModZeroModulus(t *testing.T) {
	x := MustU256("0x1234")
	if got := x.AddMod(x, Uint256{}); !got.IsZero() {
		t.Errorf("AddMod with zero modulus = %v, want 0", got.Hex())
	}
	if got := x.MulMod(x, Uint256{}); !got.IsZero() {
		t.Errorf("MulMod with zero modulus = %v, want 0", got.Hex())
	}
}
