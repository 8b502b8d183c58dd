package expr

import "strings"

type BinaryOp int8

const (
	OpEq BinaryOp = iota
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNotEq:
		return "!="
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "unknown"
	}
}

func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEq, OpNotEq, OpLt, OpLtEq, OpGt, OpGtEq:
		return true
	default:
		return false
	}
}

// Mirror returns the operator with swapped operand sides,
// e.g. `v < c` holds iff `c > v`.
func (op BinaryOp) Mirror() BinaryOp {
	switch op {
	case OpLt:
		return OpGt
	case OpLtEq:
		return OpGtEq
	case OpGt:
		return OpLt
	case OpGtEq:
		return OpLtEq
	default:
		return op
	}
}

type UnaryOp int8

const (
	OpNeg UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	default:
		return "unknown"
	}
}

// Scalar function names the rewriter understands. Any other name is
// opaque and can never prove a block empty.
const (
	FuncIsNull    = "isNull"
	FuncIsNotNull = "isNotNull"
)

// Expr is an immutable predicate tree node. Trees are shared by
// reference and never mutated; rewriting always builds new trees.
type Expr interface {
	String() string
	isExpr()
}

type Column struct {
	Name string
}

type Literal struct {
	Value Value
}

type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

type ScalarFunc struct {
	Name string
	Args []Expr
}

func (*Column) isExpr()     {}
func (*Literal) isExpr()    {}
func (*UnaryExpr) isExpr()  {}
func (*BinaryExpr) isExpr() {}
func (*ScalarFunc) isExpr() {}

func (e *Column) String() string {
	return e.Name
}

func (e *Literal) String() string {
	return e.Value.String()
}

func (e *UnaryExpr) String() string {
	return "(" + e.Op.String() + " " + e.Operand.String() + ")"
}

func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

func (e *ScalarFunc) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func Col(name string) *Column {
	return &Column{Name: name}
}

func Lit(v Value) *Literal {
	return &Literal{Value: v}
}

func Neg(e Expr) *UnaryExpr {
	return &UnaryExpr{Op: OpNeg, Operand: e}
}

func NewBinary(op BinaryOp, l, r Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: l, Right: r}
}

func And(l, r Expr) *BinaryExpr {
	return NewBinary(OpAnd, l, r)
}

func Or(l, r Expr) *BinaryExpr {
	return NewBinary(OpOr, l, r)
}

func Func(name string, args ...Expr) *ScalarFunc {
	return &ScalarFunc{Name: name, Args: args}
}
