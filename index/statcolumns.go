package index

// StatType identifies one per-block aggregate of a column.
type StatType int8

const (
	StatMin StatType = iota
	StatMax
	StatNullCount
)

func (t StatType) String() string {
	switch t {
	case StatMin:
		return "min"
	case StatMax:
		return "max"
	case StatNullCount:
		return "nulls"
	default:
		return "unknown"
	}
}

// StatColumn is a synthetic column standing for one statistic of a
// schema field, e.g. min_a for StatMin of field a.
type StatColumn struct {
	FieldIndex int
	FieldName  string
	Stat       StatType
}

// ColumnName is the synthetic column name the verifiable expression
// references and Eval binds statistic values to.
func (c StatColumn) ColumnName() string {
	return c.Stat.String() + "_" + c.FieldName
}

// StatColumns lists the statistics a verifiable expression needs, in
// first-use order, deduplicated. Callers fetch only these per block.
type StatColumns []StatColumn

type statTracker struct {
	cols StatColumns
	seen map[StatColumn]struct{}
}

func newStatTracker() *statTracker {
	return &statTracker{seen: make(map[StatColumn]struct{})}
}

func (t *statTracker) add(cols ...StatColumn) {
	for _, c := range cols {
		if _, ok := t.seen[c]; ok {
			continue
		}
		t.seen[c] = struct{}{}
		t.cols = append(t.cols, c)
	}
}

func (t *statTracker) columns() StatColumns {
	return t.cols
}
