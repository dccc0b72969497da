// Package intexpr implements a 32-bit integer calculator which reports
// exactly where things go wrong.
//
// Expressions are made of non-negative integer literals, the binary operators
// + - * / ^, and parentheses. "^" is exponentiation and groups right to left,
// so "2^3^2" is 512. There is no unary minus: "-1" and "2^-1" are syntax
// errors, but "0-1" is fine.
//
// Every token and tree node carries a Span of rune offsets into the source,
// and every failure is an *Error whose Span covers the offending text, so a
// caller can underline it.
//
package intexpr
