package expr

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
)

type ValueKind int8

const (
	KindNull ValueKind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a typed scalar. The zero value is the SQL NULL.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

func Null() Value {
	return Value{kind: KindNull}
}

func NewBool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func NewInt64(v int64) Value {
	return Value{kind: KindInt64, i: v}
}

func NewFloat64(v float64) Value {
	return Value{kind: KindFloat64, f: v}
}

func NewString(v string) Value {
	return Value{kind: KindString, s: v}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolVal and friends return the zero value when the kind does not match.
// Callers check Kind first.
func (v Value) BoolVal() bool {
	return v.b
}

func (v Value) Int64Val() int64 {
	return v.i
}

func (v Value) Float64Val() float64 {
	return v.f
}

func (v Value) StringVal() string {
	return v.s
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return "'" + v.s + "'"
	default:
		return "unknown"
	}
}

func (v Value) asFloat64() float64 {
	if v.kind == KindInt64 {
		return float64(v.i)
	}
	return v.f
}

func (v Value) isNumeric() bool {
	return v.kind == KindInt64 || v.kind == KindFloat64
}

// Compare orders two non-null values, coercing int64 against float64.
// Returns <0, 0 or >0 like bytes.Compare.
func Compare(l, r Value) (int, error) {
	if l.IsNull() || r.IsNull() {
		return 0, errors.Wrap(cerrors.ErrTypeMismatch, "compare with null value")
	}
	if l.isNumeric() && r.isNumeric() {
		if l.kind == KindInt64 && r.kind == KindInt64 {
			return compareOrdered(l.i, r.i), nil
		}
		return compareOrdered(l.asFloat64(), r.asFloat64()), nil
	}
	if l.kind != r.kind {
		return 0, errors.Wrapf(cerrors.ErrTypeMismatch, "compare %s with %s", l.kind, r.kind)
	}
	switch l.kind {
	case KindString:
		return compareOrdered(l.s, r.s), nil
	case KindBool:
		return compareOrdered(btoi(l.b), btoi(r.b)), nil
	default:
		return 0, errors.Wrapf(cerrors.ErrTypeMismatch, "compare %s with %s", l.kind, r.kind)
	}
}

func compareOrdered[T int64 | float64 | string](l, r T) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func btoi(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Neg returns the arithmetic negation. NULL stays NULL.
func (v Value) Neg() (Value, error) {
	switch v.kind {
	case KindNull:
		return v, nil
	case KindInt64:
		return NewInt64(-v.i), nil
	case KindFloat64:
		return NewFloat64(-v.f), nil
	default:
		return Value{}, errors.Wrapf(cerrors.ErrTypeMismatch, "negate %s", v.kind)
	}
}

type valueJSON struct {
	Kind  string   `json:"kind"`
	Bool  *bool    `json:"bool,omitempty"`
	Int   *int64   `json:"int,omitempty"`
	Float *float64 `json:"float,omitempty"`
	Str   *string  `json:"str,omitempty"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	w := valueJSON{Kind: v.kind.String()}
	switch v.kind {
	case KindBool:
		w.Bool = &v.b
	case KindInt64:
		w.Int = &v.i
	case KindFloat64:
		w.Float = &v.f
	case KindString:
		w.Str = &v.s
	}
	return json.Marshal(w)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var w valueJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "null":
		*v = Null()
	case "bool":
		if w.Bool == nil {
			return errors.Wrap(cerrors.ErrTypeMismatch, "bool value missing")
		}
		*v = NewBool(*w.Bool)
	case "int64":
		if w.Int == nil {
			return errors.Wrap(cerrors.ErrTypeMismatch, "int value missing")
		}
		*v = NewInt64(*w.Int)
	case "float64":
		if w.Float == nil {
			return errors.Wrap(cerrors.ErrTypeMismatch, "float value missing")
		}
		*v = NewFloat64(*w.Float)
	case "string":
		if w.Str == nil {
			return errors.Wrap(cerrors.ErrTypeMismatch, "string value missing")
		}
		*v = NewString(*w.Str)
	default:
		return errors.Wrapf(cerrors.ErrTypeMismatch, "unknown value kind %q", w.Kind)
	}
	return nil
}
