package uintx

import (
	"encoding/binary"
	"math/bits"
)

// Serialization. The little-endian forms mirror the in-memory word layout
// directly; the big-endian forms are the byte reversal of the whole value.
// The fixed-size array forms carry their size contract in the type; the
// slice forms named *Unchecked leave bounds to the caller in exchange for
// working against arbitrary buffers.

// Bswap returns x with the byte order of the entire 256-bit value reversed:
// the word order is reversed and each word is byte-swapped.
func (x Uint256) Bswap() Uint256 {
	return Uint256{
		bits.ReverseBytes64(x[3]),
		bits.ReverseBytes64(x[2]),
		bits.ReverseBytes64(x[1]),
		bits.ReverseBytes64(x[0]),
	}
}

// Bswap returns x with the byte order of the entire 512-bit value reversed.
func (x Uint512) Bswap() Uint512 {
	var z Uint512
	for i := range z {
		z[i] = bits.ReverseBytes64(x[numWords512-1-i])
	}
	return z
}

// U256FromBytesLE loads a Uint256 from its 32-byte little-endian image.
func U256FromBytesLE(b [32]byte) Uint256 {
	var x Uint256
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return x
}

// BytesLE returns the 32-byte little-endian image of x.
func (x Uint256) BytesLE() [32]byte {
	var b [32]byte
	for i := range x {
		binary.LittleEndian.PutUint64(b[i*8:], x[i])
	}
	return b
}

// U256FromBytesBE loads a Uint256 from big-endian bytes. Inputs shorter than
// 32 bytes are zero-extended at the high end. Inputs longer than 32 bytes
// are a caller error and yield false.
func U256FromBytesBE(b []byte) (Uint256, bool) {
	if len(b) > 32 {
		return Uint256{}, false
	}
	var img [32]byte
	copy(img[32-len(b):], b)
	return U256FromBytesLE(img).Bswap(), true
}

// BytesBE returns the 32-byte big-endian image of x.
func (x Uint256) BytesBE() [32]byte {
	return x.Bswap().BytesLE()
}

// TruncBE writes the least significant len(dst) bytes of the big-endian
// image of x into dst. len(dst) must be smaller than 32.
func (x Uint256) TruncBE(dst []byte) {
	img := x.BytesBE()
	copy(dst, img[32-len(dst):])
}

// U256FromBytesBEUnchecked loads a Uint256 from exactly 32 big-endian bytes
// starting at b[0]. The caller must guarantee len(b) >= 32.
func U256FromBytesBEUnchecked(b []byte) Uint256 {
	var x Uint256
	for i := range x {
		x[i] = binary.BigEndian.Uint64(b[(numWords256-1-i)*8:])
	}
	return x
}

// PutBytesBEUnchecked writes the 32-byte big-endian image of x starting at
// dst[0]. The caller must guarantee len(dst) >= 32.
func (x Uint256) PutBytesBEUnchecked(dst []byte) {
	for i := range x {
		binary.BigEndian.PutUint64(dst[(numWords256-1-i)*8:], x[i])
	}
}

// U512FromBytesLE loads a Uint512 from its 64-byte little-endian image.
func U512FromBytesLE(b [64]byte) Uint512 {
	var x Uint512
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return x
}

// BytesLE returns the 64-byte little-endian image of x.
func (x Uint512) BytesLE() [64]byte {
	var b [64]byte
	for i := range x {
		binary.LittleEndian.PutUint64(b[i*8:], x[i])
	}
	return b
}

// U512FromBytesBE loads a Uint512 from big-endian bytes. Inputs shorter than
// 64 bytes are zero-extended at the high end. Inputs longer than 64 bytes
// are a caller error and yield false.
func U512FromBytesBE(b []byte) (Uint512, bool) {
	if len(b) > 64 {
		return Uint512{}, false
	}
	var img [64]byte
	copy(img[64-len(b):], b)
	return U512FromBytesLE(img).Bswap(), true
}

// BytesBE returns the 64-byte big-endian image of x.
func (x Uint512) BytesBE() [64]byte {
	return x.Bswap().BytesLE()
}

// TruncBE writes the least significant len(dst) bytes of the big-endian
// image of x into dst. len(dst) must be smaller than 64.
func (x Uint512) TruncBE(dst []byte) {
	img := x.BytesBE()
	copy(dst, img[64-len(dst):])
}

// U512FromBytesBEUnchecked loads a Uint512 from exactly 64 big-endian bytes
// starting at b[0]. The caller must guarantee len(b) >= 64.
func U512FromBytesBEUnchecked(b []byte) Uint512 {
	var x Uint512
	for i := range x {
		x[i] = binary.BigEndian.Uint64(b[(numWords512-1-i)*8:])
	}
	return x
}

// PutBytesBEUnchecked writes the 64-byte big-endian image of x starting at
// dst[0]. The caller must guarantee len(dst) >= 64.
func (x Uint512) PutBytesBEUnchecked(dst []byte) {
	for i := range x {
		binary.BigEndian.PutUint64(dst[(numWords512-1-i)*8:], x[i])
	}
}
