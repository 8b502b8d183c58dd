package expr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
)

func TestValueCompare(t *testing.T) {
	c, err := Compare(NewInt64(1), NewInt64(2))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(NewInt64(3), NewFloat64(2.5))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = Compare(NewFloat64(2.0), NewInt64(2))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = Compare(NewString("abc"), NewString("abd"))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(NewBool(false), NewBool(true))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = Compare(NewInt64(1), NewString("1"))
	assert.ErrorIs(t, err, cerrors.ErrTypeMismatch)

	_, err = Compare(Null(), NewInt64(1))
	assert.ErrorIs(t, err, cerrors.ErrTypeMismatch)
}

func TestValueNeg(t *testing.T) {
	v, err := NewInt64(20).Neg()
	require.NoError(t, err)
	assert.Equal(t, int64(-20), v.Int64Val())

	v, err = NewFloat64(1.5).Neg()
	require.NoError(t, err)
	assert.Equal(t, -1.5, v.Float64Val())

	v, err = Null().Neg()
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = NewString("x").Neg()
	assert.ErrorIs(t, err, cerrors.ErrTypeMismatch)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NULL", Null().String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "1", NewInt64(1).String())
	assert.Equal(t, "1.5", NewFloat64(1.5).String())
	assert.Equal(t, "'%sys%'", NewString("%sys%").String())
}

func TestValueJSONRoundTrip(t *testing.T) {
	values := []Value{
		Null(),
		NewBool(true),
		NewInt64(-42),
		NewFloat64(3.25),
		NewString("hello"),
	}
	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		var got Value
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}

	var bad Value
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"decimal"}`), &bad))
}
