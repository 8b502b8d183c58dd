package schema

import (
	"testing"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
)

func TestSchemaFieldIndex(t *testing.T) {
	fields := []arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int64, Nullable: false},
		{Name: "b", Type: arrow.PrimitiveTypes.Int32, Nullable: false},
		{Name: "c", Type: arrow.BinaryTypes.String, Nullable: true},
	}
	sc := NewSchema(arrow.NewSchema(fields, nil))
	require.NoError(t, sc.Validate())

	idx, ok := sc.FieldIndex("b")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", sc.Field(idx).Name)

	_, ok = sc.FieldIndex("missing")
	assert.False(t, ok)

	assert.Equal(t, 3, sc.NumFields())
}

func TestSchemaValidate(t *testing.T) {
	dup := []arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int64},
		{Name: "a", Type: arrow.PrimitiveTypes.Int32},
	}
	sc := NewSchema(arrow.NewSchema(dup, nil))
	assert.ErrorIs(t, sc.Validate(), cerrors.ErrSchemaNotMatch)

	var nilSchema *Schema
	assert.ErrorIs(t, nilSchema.Validate(), cerrors.ErrSchemaIsNil)
}
