package index

import (
	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
	"github.com/blockstore-io/blockstore/go/expr"
	"github.com/blockstore-io/blockstore/go/schema"
	"github.com/blockstore-io/blockstore/go/stats"
)

// RangeFilter decides from block statistics alone whether a block can
// hold rows matching a predicate. Built once per predicate, then
// evaluated once per block. Immutable after construction, so Eval is
// safe to call from concurrent scan tasks.
type RangeFilter struct {
	schema     *schema.Schema
	verifiable expr.Expr
	statCols   StatColumns
}

func NewRangeFilter(e expr.Expr, sc *schema.Schema) (*RangeFilter, error) {
	ve, cols, err := BuildVerifiableExpr(e, sc)
	if err != nil {
		return nil, err
	}
	return &RangeFilter{
		schema:     sc,
		verifiable: ve,
		statCols:   cols,
	}, nil
}

func (f *RangeFilter) VerifiableExpr() expr.Expr {
	return f.verifiable
}

func (f *RangeFilter) StatColumns() StatColumns {
	return f.statCols
}

// Eval returns true when the block may contain matching rows and must
// be scanned, false when it provably contains none. Uncertainty never
// skips: missing statistics and indeterminate (null) verdicts both
// resolve to true.
func (f *RangeFilter) Eval(blockStats stats.BlockStats) (bool, error) {
	row := make(map[string]expr.Value, len(f.statCols))
	for _, c := range f.statCols {
		cs, ok := blockStats[c.FieldIndex]
		if !ok {
			return true, nil
		}
		switch c.Stat {
		case StatMin:
			row[c.ColumnName()] = cs.Min
		case StatMax:
			row[c.ColumnName()] = cs.Max
		case StatNullCount:
			row[c.ColumnName()] = expr.NewInt64(cs.NullCount)
		}
	}

	v, err := expr.Eval(f.verifiable, row)
	if err != nil {
		return true, err
	}
	if v.IsNull() {
		return true, nil
	}
	if v.Kind() != expr.KindBool {
		return true, errors.Wrapf(cerrors.ErrTypeMismatch, "verifiable expression yielded %s", v.Kind())
	}
	return v.BoolVal(), nil
}
