package schema

import (
	"github.com/apache/arrow/go/v12/arrow"
	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
)

// Schema is a wrapper of arrow schema
type Schema struct {
	schema *arrow.Schema
}

func NewSchema(schema *arrow.Schema) *Schema {
	return &Schema{schema: schema}
}

func (s *Schema) Schema() *arrow.Schema {
	return s.schema
}

// Validate checks that field names are unique within the schema.
func (s *Schema) Validate() error {
	if s == nil || s.schema == nil {
		return cerrors.ErrSchemaIsNil
	}
	for _, f := range s.schema.Fields() {
		if len(s.schema.FieldIndices(f.Name)) != 1 {
			return errors.Wrapf(cerrors.ErrSchemaNotMatch, "duplicated field name %s", f.Name)
		}
	}
	return nil
}

// FieldIndex returns the ordinal of the named field. Ordinals are
// stable for the lifetime of the schema.
func (s *Schema) FieldIndex(name string) (int, bool) {
	indices := s.schema.FieldIndices(name)
	if len(indices) == 0 {
		return -1, false
	}
	return indices[0], true
}

func (s *Schema) Field(i int) arrow.Field {
	return s.schema.Field(i)
}

func (s *Schema) NumFields() int {
	return len(s.schema.Fields())
}
