package index

import (
	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
	"github.com/blockstore-io/blockstore/go/expr"
	"github.com/blockstore-io/blockstore/go/schema"
)

// BuildVerifiableExpr rewrites a predicate into an expression over
// synthetic statistic columns (min_x, max_x, nulls_x) and literals,
// evaluable from block statistics alone. The rewrite is conservative:
// it may keep a block the predicate cannot match, but a block it
// rejects provably contains no matching row. Shapes it cannot reason
// about degrade to the constant true. The returned StatColumns lists
// every statistic the expression references.
//
// The input tree is never mutated.
func BuildVerifiableExpr(e expr.Expr, sc *schema.Schema) (expr.Expr, StatColumns, error) {
	if sc == nil {
		return nil, nil, cerrors.ErrSchemaIsNil
	}
	b := &builder{schema: sc, stats: newStatTracker()}
	ve, err := b.build(e)
	if err != nil {
		return nil, nil, err
	}
	return ve, b.stats.columns(), nil
}

type builder struct {
	schema *schema.Schema
	stats  *statTracker
}

func litBool(v bool) *expr.Literal {
	return expr.Lit(expr.NewBool(v))
}

func (b *builder) build(e expr.Expr) (expr.Expr, error) {
	switch e := e.(type) {
	case *expr.Literal:
		// A null predicate selects no row under three-valued WHERE
		// semantics, so the block is always skippable.
		if e.Value.IsNull() {
			return litBool(false), nil
		}
		if e.Value.Kind() == expr.KindBool {
			return e, nil
		}
		return litBool(true), nil
	case *expr.BinaryExpr:
		switch e.Op {
		case expr.OpAnd, expr.OpOr:
			left, err := b.build(e.Left)
			if err != nil {
				return nil, err
			}
			right, err := b.build(e.Right)
			if err != nil {
				return nil, err
			}
			return expr.NewBinary(e.Op, left, right), nil
		default:
			if e.Op.IsComparison() {
				return b.buildComparison(e)
			}
			return litBool(true), nil
		}
	case *expr.ScalarFunc:
		return b.buildFunc(e)
	default:
		return litBool(true), nil
	}
}

// bound carries the statistically derivable lower or upper bound of a
// column, or of a monotonic transform of one, together with the
// statistic columns the bound expression reads.
type bound struct {
	e    expr.Expr
	cols []StatColumn
}

// bounds derives the (lower, upper) bound pair of e. For a bare column
// that is (min_c, max_c); unary minus is monotonic decreasing, so its
// bounds are the negated bounds of the operand, swapped. Any other
// shape is not derivable.
func (b *builder) bounds(e expr.Expr) (lower, upper bound, ok bool, err error) {
	switch e := e.(type) {
	case *expr.Column:
		idx, found := b.schema.FieldIndex(e.Name)
		if !found {
			return bound{}, bound{}, false, errors.Wrapf(cerrors.ErrColumnNotExist, "column %s", e.Name)
		}
		minCol := StatColumn{FieldIndex: idx, FieldName: e.Name, Stat: StatMin}
		maxCol := StatColumn{FieldIndex: idx, FieldName: e.Name, Stat: StatMax}
		lower = bound{e: expr.Col(minCol.ColumnName()), cols: []StatColumn{minCol}}
		upper = bound{e: expr.Col(maxCol.ColumnName()), cols: []StatColumn{maxCol}}
		return lower, upper, true, nil
	case *expr.UnaryExpr:
		if e.Op != expr.OpNeg {
			return bound{}, bound{}, false, nil
		}
		l, u, ok, err := b.bounds(e.Operand)
		if !ok || err != nil {
			return bound{}, bound{}, ok, err
		}
		lower = bound{e: expr.Neg(u.e), cols: u.cols}
		upper = bound{e: expr.Neg(l.e), cols: l.cols}
		return lower, upper, true, nil
	default:
		return bound{}, bound{}, false, nil
	}
}

func (b *builder) buildComparison(e *expr.BinaryExpr) (expr.Expr, error) {
	op := e.Op
	target, other := e.Left, e.Right
	if isLiteral(e.Left) && !isLiteral(e.Right) {
		op = op.Mirror()
		target, other = e.Right, e.Left
	}
	lit, ok := other.(*expr.Literal)
	if !ok {
		return litBool(true), nil
	}
	lower, upper, ok, err := b.bounds(target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return litBool(true), nil
	}

	use := func(bd bound) expr.Expr {
		b.stats.add(bd.cols...)
		return bd.e
	}
	switch op {
	case expr.OpLt:
		// some row < v requires min < v
		return expr.NewBinary(expr.OpLt, use(lower), lit), nil
	case expr.OpLtEq:
		return expr.NewBinary(expr.OpLtEq, use(lower), lit), nil
	case expr.OpGt:
		// some row > v requires max > v
		return expr.NewBinary(expr.OpGt, use(upper), lit), nil
	case expr.OpGtEq:
		return expr.NewBinary(expr.OpGtEq, use(upper), lit), nil
	case expr.OpEq:
		// v must fall inside [min, max]
		return expr.And(
			expr.NewBinary(expr.OpLtEq, use(lower), lit),
			expr.NewBinary(expr.OpGtEq, use(upper), lit),
		), nil
	case expr.OpNotEq:
		// some value in [min, max] differs from v
		return expr.Or(
			expr.NewBinary(expr.OpNotEq, use(lower), lit),
			expr.NewBinary(expr.OpNotEq, use(upper), lit),
		), nil
	default:
		return litBool(true), nil
	}
}

func (b *builder) buildFunc(e *expr.ScalarFunc) (expr.Expr, error) {
	switch e.Name {
	case expr.FuncIsNull, expr.FuncIsNotNull:
		if len(e.Args) != 1 {
			return litBool(true), nil
		}
		col, ok := e.Args[0].(*expr.Column)
		if !ok {
			return litBool(true), nil
		}
		idx, found := b.schema.FieldIndex(col.Name)
		if !found {
			return nil, errors.Wrapf(cerrors.ErrColumnNotExist, "column %s", col.Name)
		}
		if e.Name == expr.FuncIsNull {
			// the block may hold a null only if some were observed
			nulls := StatColumn{FieldIndex: idx, FieldName: col.Name, Stat: StatNullCount}
			b.stats.add(nulls)
			return expr.NewBinary(expr.OpGt, expr.Col(nulls.ColumnName()), expr.Lit(expr.NewInt64(0))), nil
		}
		// a recorded minimum implies at least one non-null value
		min := StatColumn{FieldIndex: idx, FieldName: col.Name, Stat: StatMin}
		b.stats.add(min)
		return expr.Func(expr.FuncIsNotNull, expr.Col(min.ColumnName())), nil
	default:
		return litBool(true), nil
	}
}

func isLiteral(e expr.Expr) bool {
	_, ok := e.(*expr.Literal)
	return ok
}
