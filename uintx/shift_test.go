package uintx

import (
	"math/big"
	"math/rand"
	"testing"
)

// TestLshAcrossWordBoundary covers the single-bit walk across a word
// boundary scenario: shifting the lowest bit by 193 places it exactly at
// bit 193, and the round trip recovers the original value.
func TestLshAcrossWordBoundary(t *testing.T) {
	x := U256From64(1)

	shifted := x.Lsh(193)
	want := Uint256{0, 0, 0, 2} // bit 193 = word 3, bit 1
	if shifted != want {
		t.Fatalf("1 << 193 = %v, want %v", shifted.Hex(), want.Hex())
	}
	if got := shifted.Rsh(193); got != x {
		t.Fatalf("(1 << 193) >> 193 = %v, want %v", got.Hex(), x.Hex())
	}
}

// TestShiftIdentities verifies that x << s >> s clears the top s bits and
// x >> s << s clears the bottom s bits, for every distance.
func TestShiftIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 200; i++ {
		x := randU256(rng)
		for s := uint(0); s < 256; s++ {
			bx := toBig256(x)

			wantHi := new(big.Int).Lsh(bx, s)
			wantHi.Mod(wantHi, two256)
			wantHi.Rsh(wantHi, s)
			if got := toBig256(x.Lsh(s).Rsh(s)); got.Cmp(wantHi) != 0 {
				t.Fatalf("x<<%d>>%d mismatch for %v", s, s, x.Hex())
			}

			wantLo := new(big.Int).Rsh(bx, s)
			wantLo.Lsh(wantLo, s)
			wantLo.Mod(wantLo, two256)
			if got := toBig256(x.Rsh(s).Lsh(s)); got.Cmp(wantLo) != 0 {
				t.Fatalf("x>>%d<<%d mismatch for %v", s, s, x.Hex())
			}
		}
	}
}

// TestShiftAtLeastWidth verifies that shift distances of N or more yield 0,
// including distances that only the Uint256-valued forms can express.
func TestShiftAtLeastWidth(t *testing.T) {
	x := MustU256("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	for _, s := range []uint{256, 257, 300, 512, 1 << 20} {
		if got := x.Lsh(s); !got.IsZero() {
			t.Errorf("x << %d = %v, want 0", s, got.Hex())
		}
		if got := x.Rsh(s); !got.IsZero() {
			t.Errorf("x >> %d = %v, want 0", s, got.Hex())
		}
	}

	huge := Uint256{0, 1, 0, 0} // 2^64: far beyond any in-range distance
	if got := x.LshBy(huge); !got.IsZero() {
		t.Errorf("x << 2^64 = %v, want 0", got.Hex())
	}
	if got := x.RshBy(huge); !got.IsZero() {
		t.Errorf("x >> 2^64 = %v, want 0", got.Hex())
	}
	if got := x.LshBy(U256From64(3)); got != x.Lsh(3) {
		t.Errorf("LshBy(3) disagrees with Lsh(3)")
	}
}

// TestLshLoopEquivalence checks the word-loop shift formulation against the
// half-decomposition form on random values and every distance.
func TestLshLoopEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		x := randU256(rng)
		for s := uint(0); s <= 300; s++ {
			var z Uint256
			lshLoop(z[:], x[:], s)
			if want := x.Lsh(s); z != want {
				t.Fatalf("lshLoop(%v, %d) = %v, want %v", x.Hex(), s, z.Hex(), want.Hex())
			}
		}
	}
}

// TestUint512Shifts cross-checks the 512-bit shifts against math/big.
func TestUint512Shifts(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 50; i++ {
		x := randU512(rng)
		for s := uint(0); s < 512; s += 7 {
			bx := toBig512(x)

			wantL := new(big.Int).Lsh(bx, s)
			wantL.Mod(wantL, two512)
			if got := toBig512(x.Lsh(s)); got.Cmp(wantL) != 0 {
				t.Fatalf("512 Lsh(%d) mismatch", s)
			}

			wantR := new(big.Int).Rsh(bx, s)
			if got := toBig512(x.Rsh(s)); got.Cmp(wantR) != 0 {
				t.Fatalf("512 Rsh(%d) mismatch", s)
			}
		}
		if got := x.Lsh(512); !got.IsZero() {
			t.Fatalf("512-bit x << 512 = %v, want 0", got.Hex())
		}
	}
}

// TestBitwiseOps cross-checks the word-wise operators against math/big.
func TestBitwiseOps(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 500; i++ {
		x, y := randU256(rng), randU256(rng)
		bx, by := toBig256(x), toBig256(y)

		if got := toBig256(x.And(y)); got.Cmp(new(big.Int).And(bx, by)) != 0 {
			t.Fatalf("And mismatch")
		}
		if got := toBig256(x.Or(y)); got.Cmp(new(big.Int).Or(bx, by)) != 0 {
			t.Fatalf("Or mismatch")
		}
		if got := toBig256(x.Xor(y)); got.Cmp(new(big.Int).Xor(bx, by)) != 0 {
			t.Fatalf("Xor mismatch")
		}
		if got := x.Not().Not(); got != x {
			t.Fatalf("double Not mismatch")
		}
	}
}
