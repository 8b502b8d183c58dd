package stats

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
	"github.com/blockstore-io/blockstore/go/expr"
	"github.com/blockstore-io/blockstore/go/schema"
)

// ColumnStats are the aggregates recorded for one column of one block.
// Min and Max are NULL when the block holds no non-null value for the
// column.
type ColumnStats struct {
	Min       expr.Value `json:"min"`
	Max       expr.Value `json:"max"`
	NullCount int64      `json:"null_count"`
}

// BlockStats maps field ordinals to their aggregates. An ordinal may be
// absent when statistics were not collected for that column.
type BlockStats map[int]ColumnStats

// SegmentStats is the persisted statistics metadata of one segment: the
// per-block aggregates the write path collected, versioned like the
// storage manifest.
type SegmentStats struct {
	ID      uuid.UUID    `json:"id"`
	Version int64        `json:"version"`
	Blocks  []BlockStats `json:"blocks"`
}

func NewSegmentStats() *SegmentStats {
	return &SegmentStats{ID: uuid.New()}
}

func (s *SegmentStats) SetVersion(version int64) {
	s.Version = version
}

func (s *SegmentStats) AddBlock(b BlockStats) {
	s.Blocks = append(s.Blocks, b)
}

// Validate checks the recorded aggregates against a schema: ordinals
// must resolve and min/max values must carry the field's value kind
// (or NULL for all-null blocks).
func (s *SegmentStats) Validate(sc *schema.Schema) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	for _, block := range s.Blocks {
		for ordinal, cs := range block {
			if ordinal < 0 || ordinal >= sc.NumFields() {
				return errors.Wrapf(cerrors.ErrColumnNotExist, "field ordinal %d", ordinal)
			}
			field := sc.Field(ordinal)
			kind, ok := KindOfArrowType(field.Type)
			if !ok {
				return errors.Wrapf(cerrors.ErrTypeMismatch, "field %s has unsupported type %s", field.Name, field.Type)
			}
			if !cs.Min.IsNull() && cs.Min.Kind() != kind {
				return errors.Wrapf(cerrors.ErrTypeMismatch, "field %s min is %s, want %s", field.Name, cs.Min.Kind(), kind)
			}
			if !cs.Max.IsNull() && cs.Max.Kind() != kind {
				return errors.Wrapf(cerrors.ErrTypeMismatch, "field %s max is %s, want %s", field.Name, cs.Max.Kind(), kind)
			}
			if cs.NullCount < 0 {
				return errors.Wrapf(cerrors.ErrTypeMismatch, "field %s null count %d", field.Name, cs.NullCount)
			}
		}
	}
	return nil
}
