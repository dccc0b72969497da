package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and stdin, returning
// everything written to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunArgs(t *testing.T) {
	out, err := execute(t, "", "1 + 2 * 3", "2^3^2", "10 - 2 - 3")
	require.NoError(t, err)
	assert.Equal(t, "7\n512\n5\n", out)
}

func TestRunArgsSkipStdin(t *testing.T) {
	out, err := execute(t, "100\n", "1")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "1 + 1\n\n  (2 + 3) * 4  \nexit\n5\n")
	require.NoError(t, err)
	assert.Equal(t, "2\n20\n", out)
}

func TestRunQuit(t *testing.T) {
	out, err := execute(t, "7\nquit\n8\n", "--in", "-")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRunFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("6 * 7\n2 ^ 10\n"), 0o644))

	out, err := execute(t, "", "--in", name, "1")
	require.NoError(t, err)
	assert.Equal(t, "1\n42\n1024\n", out)
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "", "--in", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")
}

func TestRunFormat(t *testing.T) {
	out, err := execute(t, "", "--fmt", "%#x", "255", "0 - 1")
	require.NoError(t, err)
	assert.Equal(t, "0xff\n-0x1\n", out)
}

func TestRunEcho(t *testing.T) {
	out, err := execute(t, "", "--echo", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "(1 + (2 * 3)) : 7\n", out)
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "div0",
			src:  "1 / 0",
			want: "error: division by zero\n    1 / 0\n    ^^^^^\n",
		},
		{
			name: "powneg",
			src:  "2 ^ (0 - 1)",
			want: "error: exponent -1 is negative\n    2 ^ (0 - 1)\n        ^^^^^^^\n",
		},
		{
			name: "eof",
			src:  "1 +",
			want: "error: expected number, found end of input\n    1 +\n       ^\n",
		},
		{
			name: "unclosed",
			src:  "(1 + 2",
			want: "error: open paren with no close paren\n    (1 + 2\n    ^\n",
		},
		{
			name: "char",
			src:  "1 $ 2",
			want: "error: unexpected character '$'\n    1 $ 2\n      ^\n",
		},
		{
			name: "overflow",
			src:  "1 + 99999999999",
			want: "error: number too large (max 2147483647)\n    1 + 99999999999\n        ^^^^^^^^^^^\n",
		},
		{
			name: "wide",
			src:  "１",
			want: "error: unexpected character '１'\n    １\n    ^^\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := execute(t, "", "--color", "never", c.src)
			require.Error(t, err)
			assert.Equal(t, "1 of 1 expressions failed", err.Error())
			assert.Equal(t, c.want, out)
		})
	}
}

func TestRunContinuesAfterError(t *testing.T) {
	out, err := execute(t, "1 / 0\n2 + 2\n")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 expressions failed", err.Error())
	assert.True(t, strings.HasSuffix(out, "4\n"), "output %q", out)
}

func TestRunColor(t *testing.T) {
	out, err := execute(t, "", "--color", "always", "1 / 0")
	require.Error(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "division by zero")

	out, err = execute(t, "", "1 / 0")
	require.Error(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestRunBadColor(t *testing.T) {
	_, err := execute(t, "", "--color", "sometimes", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}
