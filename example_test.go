package intexpr_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/intexpr"
)

func ExampleEvalString() {
	for _, src := range []string{"1 + 2 * 3", "2 ^ 3 ^ 2", "10 / (5 - 5)"} {
		r, err := intexpr.EvalString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 7
	// 512
	// [0,12): division by zero
}

func ExampleError() {
	src := "7 * (1 + 2"
	_, err := intexpr.EvalString(src)
	var e *intexpr.Error
	if errors.As(err, &e) {
		r := []rune(src)
		fmt.Printf("%T at %q\n", e.Reason, string(r[e.Span.Start:e.Span.End]))
	}

	// Output:
	// intexpr.UnclosedParen at "("
}

func ExampleParseString() {
	n, err := intexpr.ParseString("1 - 2 - 3 ^ 4 ^ 5")
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Val, n.Span)

	// Output:
	// ((1 - 2) - (3 ^ (4 ^ 5))) [0,17)
}
