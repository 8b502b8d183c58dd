package expr

import (
	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
)

// Eval evaluates e against a single row of bound column values.
// Comparisons follow three-valued logic: any NULL operand yields NULL,
// and NULL propagates through and/or the SQL way.
func Eval(e Expr, row map[string]Value) (Value, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Value, nil
	case *Column:
		v, ok := row[e.Name]
		if !ok {
			return Value{}, errors.Wrapf(cerrors.ErrColumnNotBound, "column %s", e.Name)
		}
		return v, nil
	case *UnaryExpr:
		v, err := Eval(e.Operand, row)
		if err != nil {
			return Value{}, err
		}
		switch e.Op {
		case OpNeg:
			return v.Neg()
		default:
			return Value{}, errors.Wrapf(cerrors.ErrTypeMismatch, "unknown unary operator %s", e.Op)
		}
	case *BinaryExpr:
		return evalBinary(e, row)
	case *ScalarFunc:
		return evalFunc(e, row)
	default:
		return Value{}, errors.Wrap(cerrors.ErrTypeMismatch, "unknown expression node")
	}
}

func evalBinary(e *BinaryExpr, row map[string]Value) (Value, error) {
	l, err := Eval(e.Left, row)
	if err != nil {
		return Value{}, err
	}
	r, err := Eval(e.Right, row)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case OpAnd, OpOr:
		return evalLogical(e.Op, l, r)
	default:
		return evalComparison(e.Op, l, r)
	}
}

func evalLogical(op BinaryOp, l, r Value) (Value, error) {
	lv, lnull, err := truth(l)
	if err != nil {
		return Value{}, err
	}
	rv, rnull, err := truth(r)
	if err != nil {
		return Value{}, err
	}
	if op == OpAnd {
		if (!lnull && !lv) || (!rnull && !rv) {
			return NewBool(false), nil
		}
		if lnull || rnull {
			return Null(), nil
		}
		return NewBool(true), nil
	}
	if (!lnull && lv) || (!rnull && rv) {
		return NewBool(true), nil
	}
	if lnull || rnull {
		return Null(), nil
	}
	return NewBool(false), nil
}

func evalComparison(op BinaryOp, l, r Value) (Value, error) {
	if !op.IsComparison() {
		return Value{}, errors.Wrapf(cerrors.ErrTypeMismatch, "unknown binary operator %s", op)
	}
	if l.IsNull() || r.IsNull() {
		return Null(), nil
	}
	c, err := Compare(l, r)
	if err != nil {
		return Value{}, err
	}
	switch op {
	case OpEq:
		return NewBool(c == 0), nil
	case OpNotEq:
		return NewBool(c != 0), nil
	case OpLt:
		return NewBool(c < 0), nil
	case OpLtEq:
		return NewBool(c <= 0), nil
	case OpGt:
		return NewBool(c > 0), nil
	default:
		return NewBool(c >= 0), nil
	}
}

func evalFunc(e *ScalarFunc, row map[string]Value) (Value, error) {
	switch e.Name {
	case FuncIsNull, FuncIsNotNull:
		if len(e.Args) != 1 {
			return Value{}, errors.Wrapf(cerrors.ErrTypeMismatch, "%s expects 1 argument, got %d", e.Name, len(e.Args))
		}
		v, err := Eval(e.Args[0], row)
		if err != nil {
			return Value{}, err
		}
		if e.Name == FuncIsNull {
			return NewBool(v.IsNull()), nil
		}
		return NewBool(!v.IsNull()), nil
	default:
		return Value{}, errors.Wrapf(cerrors.ErrTypeMismatch, "unsupported scalar function %s", e.Name)
	}
}

func truth(v Value) (value bool, isNull bool, err error) {
	if v.IsNull() {
		return false, true, nil
	}
	if v.Kind() != KindBool {
		return false, false, errors.Wrapf(cerrors.ErrTypeMismatch, "expected boolean, got %s", v.Kind())
	}
	return v.BoolVal(), false, nil
}
