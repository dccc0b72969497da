package intexpr

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// pos is the number of runes read from src.
	pos int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Tokenize scans source text into tokens. The result always ends with exactly
// one TokenEOF, which has NoSpan.
func Tokenize(src string) ([]Token, error) {
	return lex(strings.NewReader(src)).all()
}

// all scans every remaining token from the input, including the final EOF.
func (l *lexer) all() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.pos++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos--
}

// next scans the next token from the input. At the end of input, the result
// is an EOF token.
func (l *lexer) next() (Token, error) {
	for {
		start := l.pos
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: TokenEOF, Span: NoSpan}, nil
			}
			return Token{}, fmt.Errorf("reading expression: %w", err)
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			return l.scanNum()
		default:
			if op := operatorFor(r); op != opNone {
				return Token{Kind: TokenOp, Op: op, Span: Span{Start: start, End: l.pos}}, nil
			}
			return Token{}, &Error{
				Span:   Span{Start: start, End: l.pos},
				Reason: UnexpectedChar{Char: r},
			}
		}
	}
}

// scanNum scans a run of ASCII digits as an int32 literal.
func (l *lexer) scanNum() (Token, error) {
	defer l.buf.Reset()
	start := l.pos
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, fmt.Errorf("reading number: %w", err)
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	span := Span{Start: start, End: l.pos}
	n, err := strconv.ParseInt(l.buf.String(), 10, 32)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			// Only digits reach here, so the syntax is always valid.
			panic("intexpr: invalid number: " + err.Error())
		}
		if n < 0 {
			return Token{}, &Error{Span: span, Reason: NumUnderflow{Min: strconv.Itoa(math.MinInt32)}}
		}
		return Token{}, &Error{Span: span, Reason: NumOverflow{Max: strconv.Itoa(math.MaxInt32)}}
	}
	return Token{Kind: TokenNumber, Num: int32(n), Span: span}, nil
}
