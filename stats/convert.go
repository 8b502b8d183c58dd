package stats

import (
	"github.com/apache/arrow/go/v12/arrow"

	"github.com/blockstore-io/blockstore/go/expr"
)

// KindOfArrowType maps an arrow field type to the value kind its block
// statistics are recorded with. Integer widths collapse to int64 and
// floats to float64, matching how aggregates are stored.
func KindOfArrowType(dt arrow.DataType) (expr.ValueKind, bool) {
	switch dt.ID() {
	case arrow.BOOL:
		return expr.KindBool, true
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32:
		return expr.KindInt64, true
	case arrow.FLOAT32, arrow.FLOAT64:
		return expr.KindFloat64, true
	case arrow.STRING, arrow.BINARY:
		return expr.KindString, true
	default:
		return expr.KindNull, false
	}
}
