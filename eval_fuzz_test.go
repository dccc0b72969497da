package intexpr_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/intexpr"
)

func FuzzEval(f *testing.F) {
	f.Add("1 / 0")
	f.Add("2 ^ (0 - 1)")
	f.Add("2147483647 * 2147483647")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := intexpr.EvalString(s)
		if err == nil {
			return
		}
		var e *intexpr.Error
		if !errors.As(err, &e) {
			t.Fatalf("%q: non-input error %v", s, err)
		}
		if e.Span.Valid() && e.Span.End > len([]rune(s)) {
			t.Errorf("%q: error span %v out of range", s, e.Span)
		}
	})
}
