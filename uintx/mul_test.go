package uintx

import (
	"math/big"
	"math/rand"
	"testing"
)

// TestMulFullPowersOfTwo checks that the full product of 2^128 with
// itself is exactly 2^256: zero low half, one in the high half.
func TestMulFullPowersOfTwo(t *testing.T) {
	x := U256From64(1).Lsh(128)

	p := x.MulFull(x)
	if !p.Lo().IsZero() {
		t.Fatalf("low 256 bits of 2^128 * 2^128 = %v, want 0", p.Lo().Hex())
	}
	if p.Hi() != U256From64(1) {
		t.Fatalf("high 256 bits of 2^128 * 2^128 = %v, want 1", p.Hi().Hex())
	}
}

// TestMulFullFormulations asserts that the recursive half-decomposition and
// the schoolbook-loop formulations of the full product are bit-identical.
func TestMulFullFormulations(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 2000; i++ {
		x, y := randU256(rng), randU256(rng)
		recursive := x.MulFull(y)
		loop := mulFullLoop(x, y)
		if recursive != loop {
			t.Fatalf("MulFull(%v, %v): recursive %v != loop %v",
				x.Hex(), y.Hex(), recursive.Hex(), loop.Hex())
		}
	}
}

// TestMulFullAgainstBig cross-checks the full product against math/big.
func TestMulFullAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 1000; i++ {
		x, y := randU256(rng), randU256(rng)
		want := new(big.Int).Mul(toBig256(x), toBig256(y))
		if got := toBig512(x.MulFull(y)); got.Cmp(want) != 0 {
			t.Fatalf("MulFull(%v, %v) = %v, want %v", x.Hex(), y.Hex(), got, want)
		}
	}
}

// TestMulTruncated verifies that the truncated product equals the low half
// of the full product, and matches math/big modulo 2^256.
func TestMulTruncated(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for i := 0; i < 1000; i++ {
		x, y := randU256(rng), randU256(rng)

		if got, want := x.Mul(y), x.MulFull(y).Lo(); got != want {
			t.Fatalf("Mul(%v, %v) = %v, want low of full %v", x.Hex(), y.Hex(), got.Hex(), want.Hex())
		}

		want := new(big.Int).Mul(toBig256(x), toBig256(y))
		want.Mod(want, two256)
		if got := toBig256(x.Mul(y)); got.Cmp(want) != 0 {
			t.Fatalf("Mul mod 2^256 mismatch")
		}
	}
}

// TestSqr verifies the truncated-square identity against plain Mul.
func TestSqr(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 1000; i++ {
		x := randU256(rng)
		if got, want := x.Sqr(), x.Mul(x); got != want {
			t.Fatalf("Sqr(%v) = %v, want %v", x.Hex(), got.Hex(), want.Hex())
		}
	}
	for i := 0; i < 500; i++ {
		x := randU512(rng)
		if got, want := x.Sqr(), x.Mul(x); got != want {
			t.Fatalf("512 Sqr(%v) = %v, want %v", x.Hex(), got.Hex(), want.Hex())
		}
	}
}

// TestUint512Mul cross-checks the 512-bit truncated and full products.
func TestUint512Mul(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	for i := 0; i < 500; i++ {
		x, y := randU512(rng), randU512(rng)

		want := new(big.Int).Mul(toBig512(x), toBig512(y))
		wantLo := new(big.Int).Mod(want, two512)
		if got := toBig512(x.Mul(y)); got.Cmp(wantLo) != 0 {
			t.Fatalf("512 Mul mismatch")
		}

		hi, lo := x.MulFull(y)
		got := new(big.Int).Lsh(toBig512(hi), 512)
		got.Add(got, toBig512(lo))
		if got.Cmp(want) != 0 {
			t.Fatalf("512 MulFull mismatch")
		}
	}
}

// TestExp covers the base-2 fast path, the zero and unit exponents, and
// random cases against math/big.
func TestExp(t *testing.T) {
	t.Run("base two is a shift", func(t *testing.T) {
		for k := uint64(0); k < 256; k++ {
			if got, want := U256From64(2).Exp(U256From64(k)), U256From64(1).Lsh(uint(k)); got != want {
				t.Fatalf("2**%d = %v, want %v", k, got.Hex(), want.Hex())
			}
		}
		// Exponents of 256 or more overflow to zero, like the shift.
		if got := U256From64(2).Exp(U256From64(256)); !got.IsZero() {
			t.Fatalf("2**256 = %v, want 0", got.Hex())
		}
	})

	t.Run("zero and unit exponents", func(t *testing.T) {
		rng := rand.New(rand.NewSource(25))
		for i := 0; i < 200; i++ {
			a := randU256(rng)
			if got := a.Exp(Uint256{}); got != U256From64(1) {
				t.Fatalf("a**0 = %v, want 1", got.Hex())
			}
			if got := a.Exp(U256From64(1)); got != a {
				t.Fatalf("a**1 = %v, want %v", got.Hex(), a.Hex())
			}
		}
	})

	t.Run("against math/big", func(t *testing.T) {
		rng := rand.New(rand.NewSource(26))
		for i := 0; i < 200; i++ {
			a := randU256(rng)
			e := rng.Uint64() % 1000
			want := new(big.Int).Exp(toBig256(a), new(big.Int).SetUint64(e), two256)
			if got := toBig256(a.Exp(U256From64(e))); got.Cmp(want) != 0 {
				t.Fatalf("%v ** %d mismatch", a.Hex(), e)
			}
		}
	})
}
