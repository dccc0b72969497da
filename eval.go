package intexpr

// Eval evaluates an expression tree. Addition, subtraction, multiplication,
// and exponentiation wrap around on overflow, as does dividing the smallest
// int32 by -1. The only failures are division by zero and negative
// exponents. Eval panics if n is nil or malformed; trees from Parse never
// are.
func Eval(n *Node[Expr]) (int32, error) {
	switch e := &n.Val; e.Kind {
	case ExprNum:
		return e.Num, nil
	case ExprBinary:
		l, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		r, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			if r == 0 {
				// Report the whole division rather than just the divisor.
				return 0, &Error{Span: e.Left.Span.Union(e.Right.Span), Reason: DivByZero{}}
			}
			return l / r, nil
		case OpPow:
			if r < 0 {
				return 0, &Error{Span: e.Right.Span, Reason: PowerByNegative{Exp: r}}
			}
			return pow(l, r), nil
		default:
			panic("intexpr: invalid operator " + e.Op.String() + " in AST")
		}
	default:
		panic("intexpr: invalid AST node " + e.Kind.String())
	}
}

// EvalString is a shortcut to tokenize, parse, and evaluate an expression.
func EvalString(src string) (int32, error) {
	n, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return Eval(n)
}

// pow computes x^y by squaring, wrapping on overflow. y must be non-negative.
func pow(x, y int32) int32 {
	r := int32(1)
	for y > 0 {
		if y&1 != 0 {
			r *= x
		}
		x *= x
		y >>= 1
	}
	return r
}
