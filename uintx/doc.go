// Package uintx implements fixed-precision unsigned integer arithmetic at
// 256 and 512 bits, built from arrays of 64-bit words.
//
// All values are plain, cheaply copyable value types with no heap allocation
// and no shared state. Every operation is performed modulo 2^N, so callers
// may rely on wrap-around semantics. The word order is little-endian: word 0
// is the least significant, and reinterpreting the words as a flat byte
// sequence yields the little-endian byte image of the integer.
//
// The package provides the full operator surface an application expects from
// a built-in unsigned integer type: bitwise operations, shifts by arbitrary
// distances, addition and subtraction with carry, truncated and full-width
// multiplication, squaring, exponentiation, long division (Knuth Algorithm D
// with reciprocal-based trial quotients), modular addition and
// multiplication, and deterministic little- and big-endian serialization.
//
// Division by zero is a caller error: the division routines return zero
// results rather than panicking, and callers that need a diagnosis should
// check the divisor first.
package uintx
