package calc

import (
	"context"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/uintcalc/internal/errors"
	"github.com/agbru/uintcalc/uintx"
)

// UintxEngine evaluates expressions with the uintx fixed-precision library.
// This is the engine the application exists to exercise; the other engines
// are references it is checked against.
type UintxEngine struct{}

// Name returns the engine identifier.
func (*UintxEngine) Name() string { return "uintx" }

// Evaluate computes the expression over Uint256 or Uint512 values.
func (e *UintxEngine) Evaluate(ctx context.Context, report ProgressFunc, node Node, opts Options) (*big.Int, error) {
	if !opts.Width.Valid() {
		return nil, apperrors.NewConfigError("unsupported width %d", opts.Width)
	}

	total := CountNodes(node)
	done := 0
	tick := func() {
		done++
		report(float64(done) / float64(total))
	}

	switch opts.Width {
	case Width512:
		v, err := e.eval512(ctx, node, tick)
		if err != nil {
			return nil, err
		}
		img := v.BytesBE()
		return new(big.Int).SetBytes(img[:]), nil
	default:
		v, err := e.eval256(ctx, node, tick)
		if err != nil {
			return nil, err
		}
		img := v.BytesBE()
		return new(big.Int).SetBytes(img[:]), nil
	}
}

// eval256 walks the tree over Uint256 values.
func (e *UintxEngine) eval256(ctx context.Context, node Node, tick func()) (uintx.Uint256, error) {
	var zero uintx.Uint256
	if err := checkContext(ctx); err != nil {
		return zero, err
	}

	switch n := node.(type) {
	case *NumberNode:
		v, err := uintx.U256FromString(n.Literal)
		if err != nil {
			return zero, apperrors.EvalError{Cause: fmt.Errorf("literal %q: %w", n.Literal, err)}
		}
		tick()
		return v, nil

	case *UnaryNode:
		x, err := e.eval256(ctx, n.X, tick)
		if err != nil {
			return zero, err
		}
		tick()
		if n.Op == tkTilde {
			return x.Not(), nil
		}
		return x.Neg(), nil

	case *BinaryNode:
		x, err := e.eval256(ctx, n.X, tick)
		if err != nil {
			return zero, err
		}
		y, err := e.eval256(ctx, n.Y, tick)
		if err != nil {
			return zero, err
		}
		tick()

		switch n.Op {
		case tkPlus:
			return x.Add(y), nil
		case tkMinus:
			return x.Sub(y), nil
		case tkStar:
			return x.Mul(y), nil
		case tkSlash:
			if y.IsZero() {
				return zero, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return x.Div(y), nil
		case tkPercent:
			if y.IsZero() {
				return zero, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return x.Mod(y), nil
		case tkStarStar:
			return x.Exp(y), nil
		case tkAmp:
			return x.And(y), nil
		case tkPipe:
			return x.Or(y), nil
		case tkCaret:
			return x.Xor(y), nil
		case tkShl:
			return x.LshBy(y), nil
		case tkShr:
			return x.RshBy(y), nil
		}
	}
	return zero, apperrors.EvalError{Cause: fmt.Errorf("unhandled node at offset %d", node.Offset())}
}

// eval512 walks the tree over Uint512 values.
func (e *UintxEngine) eval512(ctx context.Context, node Node, tick func()) (uintx.Uint512, error) {
	var zero uintx.Uint512
	if err := checkContext(ctx); err != nil {
		return zero, err
	}

	switch n := node.(type) {
	case *NumberNode:
		v, err := uintx.U512FromString(n.Literal)
		if err != nil {
			return zero, apperrors.EvalError{Cause: fmt.Errorf("literal %q: %w", n.Literal, err)}
		}
		tick()
		return v, nil

	case *UnaryNode:
		x, err := e.eval512(ctx, n.X, tick)
		if err != nil {
			return zero, err
		}
		tick()
		if n.Op == tkTilde {
			return x.Not(), nil
		}
		return x.Neg(), nil

	case *BinaryNode:
		x, err := e.eval512(ctx, n.X, tick)
		if err != nil {
			return zero, err
		}
		y, err := e.eval512(ctx, n.Y, tick)
		if err != nil {
			return zero, err
		}
		tick()

		switch n.Op {
		case tkPlus:
			return x.Add(y), nil
		case tkMinus:
			return x.Sub(y), nil
		case tkStar:
			return x.Mul(y), nil
		case tkSlash:
			if y.IsZero() {
				return zero, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return x.Div(y), nil
		case tkPercent:
			if y.IsZero() {
				return zero, apperrors.EvalError{Cause: apperrors.ErrDivisionByZero}
			}
			return x.Mod(y), nil
		case tkStarStar:
			return x.Exp(y), nil
		case tkAmp:
			return x.And(y), nil
		case tkPipe:
			return x.Or(y), nil
		case tkCaret:
			return x.Xor(y), nil
		case tkShl:
			return x.LshBy(y), nil
		case tkShr:
			return x.RshBy(y), nil
		}
	}
	return zero, apperrors.EvalError{Cause: fmt.Errorf("unhandled node at offset %d", node.Offset())}
}
