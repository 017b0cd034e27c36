package calc

import (
	"context"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/uintcalc/internal/errors"
)

// BigIntEngine evaluates expressions with math/big, reducing every
// intermediate result modulo 2^width so it reproduces the fixed-width
// wrap-around semantics exactly.
type BigIntEngine struct{}

// Name returns the engine identifier.
func (*BigIntEngine) Name() string { return "bigint" }

// Evaluate computes the expression over arbitrary-precision integers with
// explicit reduction at each step.
func (e *BigIntEngine) Evaluate(ctx context.Context, report ProgressFunc, node Node, opts Options) (*big.Int, error) {
	if !opts.Width.Valid() {
		return nil, apperrors.NewConfigError("unsupported width %d", opts.Width)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(opts.Width))
	total := CountNodes(node)
	done := 0
	tick := func() {
		done++
		report(float64(done) / float64(total))
	}

	return e.eval(ctx, node, mod, uint(opts.Width), tick)
}

// parseLiteral parses a decimal or 0x-hexadecimal literal, rejecting values
// that do not fit the width. The base is chosen explicitly so that leading
// zeros never trigger octal interpretation.
func parseLiteral(lit string, width uint) (*big.Int, error) {
	digits, base := lit, 10
	if len(lit) > 2 && (lit[:2] == "0x" || lit[:2] == "0X") {
		digits, base = lit[2:], 16
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, apperrors.EvalError{Cause: fmt.Errorf("malformed literal %q", lit)}
	}
	if v.BitLen() > int(width) {
		return nil, apperrors.EvalError{Cause: fmt.Errorf("literal %q exceeds %d bits", lit, width)}
	}
	return v, nil
}

// shiftDistance extracts a shift distance, reporting whether it is below
// the width (a distance at or beyond the width shifts to zero by definition).
func shiftDistance(v *big.Int, width uint) (uint, bool) {
	if !v.IsUint64() || v.Uint64() >= uint64(width) {
		return 0, false
	}
	return uint(v.Uint64()), true
}

func (e *BigIntEngine) eval(ctx context.Context, node Node, mod *big.Int, width uint, tick func()) (*big.Int, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *NumberNode:
		v, err := parseLiteral(n.Literal, width)
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
		out := new(big.Int)
		if n.Op == tkTilde {
			mask := new(big.Int).Sub(mod, big.NewInt(1))
			return out.Xor(x, mask), nil
		}
		return out.Neg(x).Mod(out, mod), nil

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

		out := new(big.Int)
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
			return out.Quo(x, y), nil
		case tkPercent:
			if y.Sign() == 0 {
				return nil, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return out.Rem(x, y), nil
		case tkStarStar:
			return out.Exp(x, y, mod), nil
		case tkAmp:
			return out.And(x, y), nil
		case tkPipe:
			return out.Or(x, y), nil
		case tkCaret:
			return out.Xor(x, y), nil
		case tkShl:
			s, inRange := shiftDistance(y, width)
			if !inRange {
				return out, nil
			}
			return out.Lsh(x, s).Mod(out, mod), nil
		case tkShr:
			s, inRange := shiftDistance(y, width)
			if !inRange {
				return out, nil
			}
			return out.Rsh(x, s), nil
		}
	}
	return nil, apperrors.EvalError{Cause: fmt.Errorf("unhandled node at offset %d", node.Offset())}
}
