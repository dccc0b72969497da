package intexpr

import "strconv"

// Expr = num | Expr op Expr | '(' Expr ')'
// op = '+' | '-' | '*' | '/' | '^'
//
// There are no unary operators. '^' groups right to left; everything else
// groups left to right.

// parser holds the state of the shunting-yard algorithm.
type parser struct {
	// vals is the operand stack.
	vals []*Node[Expr]
	// ops is the operator stack. Open parens stay on it as barriers until
	// their close paren arrives.
	ops []Node[Operator]
	// expectOp is whether the next token must be a binary operator, a close
	// paren, or the end of input. Otherwise, it must be a number or an open
	// paren.
	expectOp bool
}

// Parse builds an expression tree from a token sequence such as the one
// Tokenize returns. Tokens after the first EOF are ignored. Every node in the
// result spans exactly the source text it was parsed from, including
// enclosing parentheses.
func Parse(tokens []Token) (*Node[Expr], error) {
	var p parser
	for _, tok := range tokens {
		if tok.Kind == TokenEOF {
			break
		}
		if err := p.token(tok); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

// ParseString is a shortcut to tokenize and parse an expression.
func ParseString(src string) (*Node[Expr], error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// token handles a single non-EOF token.
func (p *parser) token(tok Token) error {
	switch tok.Kind {
	case TokenNumber:
		if p.expectOp {
			// Two values in a row.
			return &Error{Span: tok.Span, Reason: ExpectedOperator{Found: tok}}
		}
		p.vals = append(p.vals, num(tok.Num, tok.Span))
		p.expectOp = true
	case TokenOp:
		switch op := tok.Op; {
		case op == OpLParen:
			if p.expectOp {
				return &Error{Span: tok.Span, Reason: ExpectedNumber{Found: tok}}
			}
			p.ops = append(p.ops, Node[Operator]{Val: op, Span: tok.Span})
		case op == OpRParen:
			if !p.expectOp {
				return &Error{Span: tok.Span, Reason: ExpectedNumber{Found: tok}}
			}
			return p.close(tok)
		case op.binary():
			if !p.expectOp {
				// Includes a leading '-', since there is no negation.
				return &Error{Span: tok.Span, Reason: ExpectedNumber{Found: tok}}
			}
			p.drain(op)
			p.ops = append(p.ops, Node[Operator]{Val: op, Span: tok.Span})
			p.expectOp = false
		default:
			panic("intexpr: unknown operator: " + tok.String())
		}
	default:
		panic("intexpr: unknown token: " + tok.String())
	}
	return nil
}

// drain reduces operators from the stack which bind at least as tightly as
// the incoming op. It stops at an open paren.
func (p *parser) drain(op Operator) {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1].Val
		if top == OpLParen {
			return
		}
		if top.Prec() < op.Prec() || top.Prec() == op.Prec() && top.RightAssoc() {
			return
		}
		p.reduce()
	}
}

// close reduces operators down to the nearest open paren, then widens the
// group's value to include both parens.
func (p *parser) close(tok Token) error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.Val != OpLParen {
			p.reduce()
			continue
		}
		p.ops = p.ops[:len(p.ops)-1]
		v := p.vals[len(p.vals)-1]
		v.Span = top.Span.Union(tok.Span)
		return nil
	}
	// A close paren with nothing to close. We wanted an operator or the end
	// of the input, but ExpectedOperator is for values.
	return &Error{Span: tok.Span, Reason: ExpectedNumber{Found: tok}}
}

// reduce pops one operator and two operands and pushes their combination.
func (p *parser) reduce() {
	if len(p.vals) < 2 {
		panic("intexpr: inconsistent stack: " + strconv.Itoa(len(p.vals)) + " operands for " + p.ops[len(p.ops)-1].Val.String())
	}
	op := p.ops[len(p.ops)-1].Val
	p.ops = p.ops[:len(p.ops)-1]
	r := p.vals[len(p.vals)-1]
	l := p.vals[len(p.vals)-2]
	p.vals = p.vals[:len(p.vals)-2]
	p.vals = append(p.vals, binary(op, l, r))
}

// finish reduces everything left on the stacks once the input runs out.
func (p *parser) finish() (*Node[Expr], error) {
	if !p.expectOp {
		// Empty input, or a trailing operator or open paren.
		eof := Token{Kind: TokenEOF, Span: NoSpan}
		return nil, &Error{Span: NoSpan, Reason: ExpectedNumber{Found: eof}}
	}
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.Val == OpLParen {
			return nil, &Error{Span: top.Span, Reason: UnclosedParen{}}
		}
		p.reduce()
	}
	if len(p.vals) != 1 {
		panic("intexpr: inconsistent stack: " + strconv.Itoa(len(p.vals)) + " operands at end of input")
	}
	return p.vals[0], nil
}
