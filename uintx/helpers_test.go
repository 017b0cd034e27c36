package uintx

import (
	"math/big"
	"math/rand"
)

// Test helpers shared across the package tests. math/big serves as the
// reference implementation: values convert through the big-endian byte
// image, which both sides define identically.

var (
	two256 = new(big.Int).Lsh(big.NewInt(1), 256)
	two512 = new(big.Int).Lsh(big.NewInt(1), 512)
)

// toBig256 converts x to a math/big integer.
func toBig256(x Uint256) *big.Int {
	b := x.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

// toBig512 converts x to a math/big integer.
func toBig512(x Uint512) *big.Int {
	b := x.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

// fromBig256 converts v mod 2^256 to a Uint256.
func fromBig256(v *big.Int) Uint256 {
	m := new(big.Int).Mod(v, two256)
	x, ok := U256FromBytesBE(m.Bytes())
	if !ok {
		panic("fromBig256: value does not fit")
	}
	return x
}

// fromBig512 converts v mod 2^512 to a Uint512.
func fromBig512(v *big.Int) Uint512 {
	m := new(big.Int).Mod(v, two512)
	x, ok := U512FromBytesBE(m.Bytes())
	if !ok {
		panic("fromBig512: value does not fit")
	}
	return x
}

// randU256 returns a random value with a randomized significant width, so
// small and sparse values show up as often as dense ones.
func randU256(rng *rand.Rand) Uint256 {
	var x Uint256
	words := rng.Intn(numWords256 + 1)
	for i := 0; i < words; i++ {
		x[i] = rng.Uint64()
	}
	return x
}

// randU512 returns a random value with a randomized significant width.
func randU512(rng *rand.Rand) Uint512 {
	var x Uint512
	words := rng.Intn(numWords512 + 1)
	for i := 0; i < words; i++ {
		x[i] = rng.Uint64()
	}
	return x
}
