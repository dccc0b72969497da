package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/intexpr"
)

// options holds the flags of the root command.
type options struct {
	inname string
	verb   string
	echo   bool
	color  string
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "intexpr [expression ...]",
		Short: "Evaluate 32-bit integer arithmetic expressions",
		Long: `intexpr evaluates expressions made of non-negative integers, + - * / ^,
and parentheses, using wrapping 32-bit arithmetic.

Each argument is evaluated as one expression. With no arguments, or with
--in, expressions are read one per line until the input ends or a line
says quit or exit. Errors are shown with the offending text underlined.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         o.run,
	}
	flags := cmd.Flags()
	flags.StringVar(&o.inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flags.StringVar(&o.verb, "fmt", "%d", "result formatting verb")
	flags.BoolVar(&o.echo, "echo", false, "print parse trees")
	flags.StringVar(&o.color, "color", "auto", "color diagnostics: auto, always, or never")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	enabled, err := colorEnabled(o.color, out)
	if err != nil {
		return err
	}
	ev := evaluator{
		out:    out,
		verb:   o.verb + "\n",
		echo:   o.echo,
		styles: newStyles(enabled),
	}
	for _, arg := range args {
		ev.eval(arg)
	}

	in, prompt, closer, err := o.input(cmd, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		defer closer()
		if err := ev.lines(in, prompt); err != nil {
			return err
		}
	}

	if ev.failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", ev.failed, ev.total)
	}
	return nil
}

// input opens the line-oriented input, if any. prompt reports whether the
// input is an interactive terminal.
func (o *options) input(cmd *cobra.Command, std bool) (in io.Reader, prompt bool, closer func(), err error) {
	switch {
	case o.inname != "" && o.inname != "-":
		f, err := os.Open(o.inname)
		if err != nil {
			return nil, false, nil, fmt.Errorf("opening input: %w", err)
		}
		return f, false, func() {
			if err := f.Close(); err != nil {
				log.Print(err)
			}
		}, nil
	case o.inname == "-", std:
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok {
			prompt = term.IsTerminal(int(f.Fd()))
		}
		return in, prompt, func() {}, nil
	}
	return nil, false, nil, nil
}

// evaluator evaluates expressions and prints their results or diagnostics.
type evaluator struct {
	out    io.Writer
	verb   string
	echo   bool
	styles *styles

	total  int
	failed int
}

// eval evaluates a single expression.
func (ev *evaluator) eval(src string) {
	ev.total++
	n, err := intexpr.ParseString(src)
	if err == nil {
		if ev.echo {
			fmt.Fprintf(ev.out, "%v : ", n.Val)
		}
		var r int32
		r, err = intexpr.Eval(n)
		if err == nil {
			fmt.Fprintf(ev.out, ev.verb, r)
			return
		}
		if ev.echo {
			fmt.Fprintln(ev.out)
		}
	}
	ev.failed++
	ev.report(src, err)
}

// lines evaluates each line of in as an expression.
func (ev *evaluator) lines(in io.Reader, prompt bool) error {
	scan := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(ev.out, "> ")
		}
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		ev.eval(line)
	}
	if prompt {
		fmt.Fprintln(ev.out)
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// report prints an evaluation error, underlining the source if the error has
// a position.
func (ev *evaluator) report(src string, err error) {
	var e *intexpr.Error
	if !errors.As(err, &e) {
		fmt.Fprintln(ev.out, ev.styles.err.Sprint("error:"), err)
		return
	}
	fmt.Fprintln(ev.out, ev.styles.err.Sprint("error:"), e.Reason)
	fmt.Fprint(ev.out, ev.styles.underline(src, e.Span))
}
