package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/zephyrtronium/intexpr"
)

// styles holds color formatters for diagnostics.
type styles struct {
	err   *color.Color
	hl    *color.Color
	caret *color.Color
}

// newStyles creates color formatters for diagnostics. They produce plain text
// unless enabled.
func newStyles(enabled bool) *styles {
	s := &styles{
		err:   color.New(color.Bold, color.FgHiRed),
		hl:    color.New(color.Bold, color.Underline),
		caret: color.New(color.FgHiGreen),
	}
	for _, c := range []*color.Color{s.err, s.hl, s.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled decides whether to color output written to w.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (want auto, always, or never)", mode)
	}
}

// underline renders src on one line and a row of carets under the runes
// covered by span on the next, both indented. If span is invalid, a single
// caret goes just past the end of src.
func (s *styles) underline(src string, span intexpr.Span) string {
	r := []rune(src)
	for i, c := range r {
		if unicode.IsSpace(c) {
			// Tabs and newlines would throw off the carets.
			r[i] = ' '
		}
	}
	start, end := len(r), len(r)
	if span.Valid() && span.Start < len(r) {
		start, end = span.Start, span.End
		if end > len(r) {
			end = len(r)
		}
	}

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(string(r[:start]))
	if start < end {
		b.WriteString(s.hl.Sprint(string(r[start:end])))
	}
	b.WriteString(string(r[end:]))
	b.WriteByte('\n')

	n := width(r[start:end])
	if n == 0 {
		n = 1
	}
	b.WriteString(indent)
	b.WriteString(strings.Repeat(" ", width(r[:start])))
	b.WriteString(s.caret.Sprint(strings.Repeat("^", n)))
	b.WriteByte('\n')
	return b.String()
}

const indent = "    "

// width gets the display width of runes, never less than one column per rune.
func width(rs []rune) int {
	n := 0
	for _, c := range rs {
		w := runewidth.RuneWidth(c)
		if w < 1 {
			w = 1
		}
		n += w
	}
	return n
}
