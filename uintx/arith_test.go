package uintx

import (
	"math/big"
	"math/rand"
	"testing"
)

// TestAddCarry verifies ripple-carry addition against math/big, including
// carry-in propagation and the carry-out bit.
func TestAddCarry(t *testing.T) {
	maxWord := ^uint64(0)
	tests := []struct {
		name      string
		x, y      Uint256
		carryIn   uint64
		wantCarry uint64
	}{
		{name: "zero plus zero", x: Uint256{}, y: Uint256{}, wantCarry: 0},
		{name: "carry through every word", x: Uint256{maxWord, maxWord, maxWord, maxWord}, y: U256From64(1), wantCarry: 1},
		{name: "carry in ripples", x: Uint256{maxWord, maxWord, 0, 0}, y: Uint256{}, carryIn: 1, wantCarry: 0},
		{name: "word boundary", x: Uint256{maxWord, 0, 0, 0}, y: U256From64(1), wantCarry: 0},
		{name: "top word overflow", x: Uint256{0, 0, 0, maxWord}, y: Uint256{0, 0, 0, 1}, wantCarry: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, carry := tt.x.AddCarry(tt.y, tt.carryIn)
			if carry != tt.wantCarry {
				t.Fatalf("AddCarry carry = %d, want %d", carry, tt.wantCarry)
			}

			want := new(big.Int).Add(toBig256(tt.x), toBig256(tt.y))
			want.Add(want, new(big.Int).SetUint64(tt.carryIn))
			want.Mod(want, two256)
			if got := toBig256(sum); got.Cmp(want) != 0 {
				t.Fatalf("AddCarry sum = %v, want %v", got, want)
			}
		})
	}
}

// TestAddSubRandom cross-checks addition and subtraction against math/big
// over random operands.
func TestAddSubRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x, y := randU256(rng), randU256(rng)

		wantAdd := new(big.Int).Add(toBig256(x), toBig256(y))
		wantAdd.Mod(wantAdd, two256)
		if got := toBig256(x.Add(y)); got.Cmp(wantAdd) != 0 {
			t.Fatalf("Add(%v, %v) = %v, want %v", x.Hex(), y.Hex(), got, wantAdd)
		}

		wantSub := new(big.Int).Sub(toBig256(x), toBig256(y))
		wantSub.Mod(wantSub, two256)
		if got := toBig256(x.Sub(y)); got.Cmp(wantSub) != 0 {
			t.Fatalf("Sub(%v, %v) = %v, want %v", x.Hex(), y.Hex(), got, wantSub)
		}
	}
}

// TestNeg verifies the two's complement identity x + (-x) == 0.
func TestNeg(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		x := randU256(rng)
		if got := x.Add(x.Neg()); !got.IsZero() {
			t.Fatalf("x + (-x) = %v, want 0", got.Hex())
		}
	}
	if got := (Uint256{}).Neg(); !got.IsZero() {
		t.Fatalf("-0 = %v, want 0", got.Hex())
	}
}

// TestComparisons verifies that the borrow-derived comparisons agree with
// math/big and that exactly one of <, ==, > holds for any pair.
func TestComparisons(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		x, y := randU256(rng), randU256(rng)
		if i%5 == 0 {
			y = x // exercise the equality edge
		}

		want := toBig256(x).Cmp(toBig256(y))
		if got := x.Cmp(y); got != want {
			t.Fatalf("Cmp(%v, %v) = %d, want %d", x.Hex(), y.Hex(), got, want)
		}

		lt, eq, gt := x.Lt(y), x == y, x.Gt(y)
		holds := 0
		for _, b := range []bool{lt, eq, gt} {
			if b {
				holds++
			}
		}
		if holds != 1 {
			t.Fatalf("trichotomy violated for (%v, %v): lt=%v eq=%v gt=%v", x.Hex(), y.Hex(), lt, eq, gt)
		}
		if x.Lte(y) != (lt || eq) || x.Gte(y) != (gt || eq) {
			t.Fatalf("Lte/Gte inconsistent for (%v, %v)", x.Hex(), y.Hex())
		}
	}
}

// TestUint512AddSub cross-checks the 512-bit additive layer.
func TestUint512AddSub(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		x, y := randU512(rng), randU512(rng)

		wantAdd := new(big.Int).Add(toBig512(x), toBig512(y))
		wantAdd.Mod(wantAdd, two512)
		if got := toBig512(x.Add(y)); got.Cmp(wantAdd) != 0 {
			t.Fatalf("Add = %v, want %v", got, wantAdd)
		}

		wantSub := new(big.Int).Sub(toBig512(x), toBig512(y))
		wantSub.Mod(wantSub, two512)
		if got := toBig512(x.Sub(y)); got.Cmp(wantSub) != 0 {
			t.Fatalf("Sub = %v, want %v", got, wantSub)
		}

		if got := x.Add(x.Neg()); !got.IsZero() {
			t.Fatalf("x + (-x) = %v, want 0", got.Hex())
		}
	}
}

// TestLeadingZeros checks the half-recursive leading-zero count at the
// word boundaries.
func TestLeadingZeros(t *testing.T) {
	tests := []struct {
		x    Uint256
		want int
	}{
		{Uint256{}, 256},
		{U256From64(1), 255},
		{Uint256{0, 1, 0, 0}, 191},
		{Uint256{0, 0, 1, 0}, 127},
		{Uint256{0, 0, 0, 1}, 63},
		{Uint256{0, 0, 0, 1 << 63}, 0},
	}
	for _, tt := range tests {
		if got := tt.x.LeadingZeros(); got != tt.want {
			t.Errorf("LeadingZeros(%v) = %d, want %d", tt.x.Hex(), got, tt.want)
		}
		if got := tt.x.BitLen(); got != 256-tt.want {
			t.Errorf("BitLen(%v) = %d, want %d", tt.x.Hex(), got, 256-tt.want)
		}
	}
}
