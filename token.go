package intexpr

import "strconv"

// Token is a lexical unit of an expression.
type Token struct {
	Kind TokenKind
	// Num is the value of a TokenNumber.
	Num int32
	// Op is the operator of a TokenOp.
	Op   Operator
	Span Span
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenNumber:
		s = strconv.FormatInt(int64(t.Num), 10)
	case TokenOp:
		s = t.Op.String()
	}
	return t.Kind.String() + ":" + s + "@" + t.Span.String()
}

// text describes the token the way it appears in the source, for messages.
func (t Token) text() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatInt(int64(t.Num), 10)
	case TokenOp:
		return strconv.Quote(t.Op.String())
	case TokenEOF:
		return "end of input"
	default:
		return "invalid token"
	}
}

// TokenKind is the category of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is an integer literal.
	TokenNumber
	// TokenOp is an operator or parenthesis.
	TokenOp
	// TokenEOF is the end of the input.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenOp:
		return "Op"
	case TokenEOF:
		return "EOF"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operator is an arithmetic operator or a parenthesis.
type Operator int8

const (
	opNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpLParen
	OpRParen
)

// Operators contains the runes which are lexed as operators, in the same
// order as the Operator constants.
const Operators = "+-*/^()"

// operatorFor gets the operator for a rune. If r is not an operator, the
// result is opNone.
func operatorFor(r rune) Operator {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '^':
		return OpPow
	case '(':
		return OpLParen
	case ')':
		return OpRParen
	default:
		return opNone
	}
}

// Prec returns the operator's precedence. Higher is more binding.
// Parentheses have precedence 0 and are never compared.
func (op Operator) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 5
	case OpMul, OpDiv:
		return 10
	case OpPow:
		return 15
	default:
		return 0
	}
}

// RightAssoc returns whether the operator groups right to left.
func (op Operator) RightAssoc() bool {
	return op == OpPow
}

// binary returns whether op combines two operands.
func (op Operator) binary() bool {
	return OpAdd <= op && op <= OpPow
}

func (op Operator) String() string {
	if op <= opNone || int(op) > len(Operators) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}
