package intexpr

import (
	"strconv"
)

// Error is an error in lexing, parsing, or evaluating an expression. Every
// error resulting from invalid input or arithmetic failure is an *Error.
type Error struct {
	// Span is the range of source text responsible for the error. It is
	// NoSpan if the input ended too early.
	Span Span
	// Reason describes the failure. Its dynamic type is one of
	// UnexpectedChar, NumOverflow, NumUnderflow, ExpectedOperator,
	// ExpectedNumber, UnclosedParen, DivByZero, or PowerByNegative.
	Reason Reason
}

func (err *Error) Error() string {
	return errpos(err.Span, err.Reason.String())
}

// Pos returns the start of the error span, or -1 if the error occurred at the
// end of input.
func (err *Error) Pos() int {
	if !err.Span.Valid() {
		return -1
	}
	return err.Span.Start
}

// Reason is the closed set of reasons an expression can fail.
type Reason interface {
	String() string
	reason()
}

// UnexpectedChar is a Reason for a rune which is not part of the grammar.
type UnexpectedChar struct {
	Char rune
}

// NumOverflow is a Reason for an integer literal greater than the largest
// int32.
type NumOverflow struct {
	// Max is the largest allowed value, as text.
	Max string
}

// NumUnderflow is a Reason for an integer literal less than the smallest
// int32.
type NumUnderflow struct {
	// Min is the smallest allowed value, as text.
	Min string
}

// ExpectedOperator is a Reason for a value where a binary operator or the end
// of input was required, e.g. two adjacent numbers.
type ExpectedOperator struct {
	Found Token
}

// ExpectedNumber is a Reason for an operator, parenthesis, or end of input
// where a value was required.
type ExpectedNumber struct {
	Found Token
}

// UnclosedParen is a Reason for an open parenthesis with no matching close.
type UnclosedParen struct{}

// DivByZero is a Reason for a division whose divisor evaluates to zero.
type DivByZero struct{}

// PowerByNegative is a Reason for an exponentiation whose exponent evaluates
// to a negative number.
type PowerByNegative struct {
	Exp int32
}

func (r UnexpectedChar) String() string {
	return "unexpected character " + strconv.QuoteRune(r.Char)
}

func (r NumOverflow) String() string {
	return "number too large (max " + r.Max + ")"
}

func (r NumUnderflow) String() string {
	return "number too small (min " + r.Min + ")"
}

func (r ExpectedOperator) String() string {
	return "expected operator, found " + r.Found.text()
}

func (r ExpectedNumber) String() string {
	return "expected number, found " + r.Found.text()
}

func (UnclosedParen) String() string {
	return "open paren with no close paren"
}

func (DivByZero) String() string {
	return "division by zero"
}

func (r PowerByNegative) String() string {
	return "exponent " + strconv.FormatInt(int64(r.Exp), 10) + " is negative"
}

func (UnexpectedChar) reason()   {}
func (NumOverflow) reason()      {}
func (NumUnderflow) reason()     {}
func (ExpectedOperator) reason() {}
func (ExpectedNumber) reason()   {}
func (UnclosedParen) reason()    {}
func (DivByZero) reason()        {}
func (PowerByNegative) reason()  {}

// errpos is a shortcut to create an error message with a position.
func errpos(s Span, msg string) string {
	return s.String() + ": " + msg
}

var (
	_ Reason = UnexpectedChar{}
	_ Reason = NumOverflow{}
	_ Reason = NumUnderflow{}
	_ Reason = ExpectedOperator{}
	_ Reason = ExpectedNumber{}
	_ Reason = UnclosedParen{}
	_ Reason = DivByZero{}
	_ Reason = PowerByNegative{}
)
