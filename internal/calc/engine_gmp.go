package calc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ncw/gmp"

	apperrors "github.com/agbru/uintcalc/internal/errors"
)

// GMPEngine evaluates expressions with the GMP-backed gmp.Int type,
// reducing every intermediate result modulo 2^width. It serves as the
// independent oracle for the comparison mode: GMP shares no code with
// either the uintx or the math/big evaluation path.
//
// The gmp package covers the arithmetic surface of math/big but not the
// bitwise operators, so those are computed on the big-endian byte images,
// which the fixed width makes exact.
type GMPEngine struct{}

// Name returns the engine identifier.
func (*GMPEngine) Name() string { return "gmp" }

// Evaluate computes the expression over GMP integers with explicit
// reduction at each step.
func (e *GMPEngine) Evaluate(ctx context.Context, report ProgressFunc, node Node, opts Options) (*big.Int, error) {
	if !opts.Width.Valid() {
		return nil, apperrors.NewConfigError("unsupported width %d", opts.Width)
	}

	mod := new(gmp.Int).Lsh(gmp.NewInt(1), uint(opts.Width))
	total := CountNodes(node)
	done := 0
	tick := func() {
		done++
		report(float64(done) / float64(total))
	}

	v, err := e.eval(ctx, node, mod, uint(opts.Width), tick)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(v.Bytes()), nil
}

// parseGMPLiteral parses a decimal or 0x-hexadecimal literal as a gmp.Int,
// rejecting values that do not fit the width.
func parseGMPLiteral(lit string, width uint) (*gmp.Int, error) {
	digits, base := lit, 10
	if len(lit) > 2 && (lit[:2] == "0x" || lit[:2] == "0X") {
		digits, base = lit[2:], 16
	}
	v, ok := new(gmp.Int).SetString(digits, base)
	if !ok {
		return nil, apperrors.EvalError{Cause: fmt.Errorf("malformed literal %q", lit)}
	}
	if v.BitLen() > int(width) {
		return nil, apperrors.EvalError{Cause: fmt.Errorf("literal %q exceeds %d bits", lit, width)}
	}
	return v, nil
}

// gmpShiftDistance extracts a shift distance, reporting whether it is below
// the width. The BitLen guard keeps the Int64 conversion exact.
func gmpShiftDistance(v *gmp.Int, width uint) (uint, bool) {
	if v.BitLen() > 32 || uint(v.Int64()) >= width {
		return 0, false
	}
	return uint(v.Int64()), true
}

// byteImage renders v as a fixed-size big-endian byte image.
func byteImage(v *gmp.Int, size int) []byte {
	img := make([]byte, size)
	b := v.Bytes()
	copy(img[size-len(b):], b)
	return img
}

// byteWiseOp applies op to the fixed-width byte images of x and y.
func byteWiseOp(x, y *gmp.Int, width uint, op func(a, b byte) byte) *gmp.Int {
	size := int(width) / 8
	xb := byteImage(x, size)
	yb := byteImage(y, size)
	out := make([]byte, size)
	for i := range out {
		out[i] = op(xb[i], yb[i])
	}
	return new(gmp.Int).SetBytes(out)
}

func (e *GMPEngine) eval(ctx context.Context, node Node, mod *gmp.Int, width uint, tick func()) (*gmp.Int, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *NumberNode:
		v, err := parseGMPLiteral(n.Literal, width)
		if err != nil {
			return nil, err
		}
		tick()
		return v, nil

	case *UnaryNode:
		x, err := e.eval(ctx, n.X, mod, width, tick)
		if err != nil {
			return nil, err
		}
		tick()
		out := new(gmp.Int)
		if n.Op == tkTilde {
			return byteWiseOp(x, x, width, func(a, _ byte) byte { return ^a }), nil
		}
		return out.Sub(mod, x).Mod(out, mod), nil

	case *BinaryNode:
		x, err := e.eval(ctx, n.X, mod, width, tick)
		if err != nil {
			return nil, err
		}
		y, err := e.eval(ctx, n.Y, mod, width, tick)
		if err != nil {
			return nil, err
		}
		tick()

		out := new(gmp.Int)
		switch n.Op {
		case tkPlus:
			return out.Add(x, y).Mod(out, mod), nil
		case tkMinus:
			return out.Sub(x, y).Mod(out, mod), nil
		case tkStar:
			return out.Mul(x, y).Mod(out, mod), nil
		case tkSlash:
			if y.Sign() == 0 {
				return nil, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return out.Div(x, y), nil
		case tkPercent:
			if y.Sign() == 0 {
				return nil, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return out.Mod(x, y), nil
		case tkStarStar:
			return out.Exp(x, y, mod), nil
		case tkAmp:
			return byteWiseOp(x, y, width, func(a, b byte) byte { return a & b }), nil
		case tkPipe:
			return byteWiseOp(x, y, width, func(a, b byte) byte { return a | b }), nil
		case tkCaret:
			return byteWiseOp(x, y, width, func(a, b byte) byte { return a ^ b }), nil
		case tkShl:
			s, inRange := gmpShiftDistance(y, width)
			if !inRange {
				return out, nil
			}
			return out.Lsh(x, s).Mod(out, mod), nil
		case tkShr:
			s, inRange := gmpShiftDistance(y, width)
			if !inRange {
				return out, nil
			}
			return out.Rsh(x, s), nil
		}
	}
	return nil, apperrors.EvalError{Cause: fmt.Errorf("unhandled node at offset %d", node.Offset())}
}
