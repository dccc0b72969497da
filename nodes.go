package intexpr

import (
	"strconv"
	"strings"
)

// Expr is a node in the abstract syntax tree of an expression. A parsed tree
// is never modified.
type Expr struct {
	Kind ExprKind
	// Num is the value of an ExprNum.
	Num int32
	// Op is the operator of an ExprBinary.
	Op Operator
	// Left and Right are the operands of an ExprBinary.
	Left  *Node[Expr]
	Right *Node[Expr]
}

// ExprKind distinguishes literals from operations.
type ExprKind int8

const (
	exprNone ExprKind = iota

	ExprNum    // integer literal
	ExprBinary // Left Op Right
)

func (k ExprKind) String() string {
	switch k {
	case ExprNum:
		return "Num"
	case ExprBinary:
		return "Binary"
	default:
		return "ExprKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// num creates a literal node.
func num(n int32, s Span) *Node[Expr] {
	return &Node[Expr]{Val: Expr{Kind: ExprNum, Num: n}, Span: s}
}

// binary creates an operation node spanning both operands.
func binary(op Operator, l, r *Node[Expr]) *Node[Expr] {
	return &Node[Expr]{
		Val:  Expr{Kind: ExprBinary, Op: op, Left: l, Right: r},
		Span: l.Span.Union(r.Span),
	}
}

// String formats the tree with every operation in parentheses, so that the
// result parses to an equivalent tree.
func (e Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e Expr) fmt(b *strings.Builder) {
	switch e.Kind {
	case exprNone:
		// Invalid nodes use invalid characters.
		b.WriteString("$$")
	case ExprNum:
		b.WriteString(strconv.FormatInt(int64(e.Num), 10))
	case ExprBinary:
		b.WriteByte('(')
		e.Left.Val.fmt(b)
		b.WriteByte(' ')
		b.WriteString(e.Op.String())
		b.WriteByte(' ')
		e.Right.Val.fmt(b)
		b.WriteByte(')')
	default:
		panic("intexpr: invalid node kind " + e.Kind.String() + " after writing " + b.String())
	}
}
