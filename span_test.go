package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDropClamps(t *testing.T) {
	require.Equal(t, "bc", drop("abc", 1))
	require.Equal(t, "", drop("abc", 5))
	require.Equal(t, "", drop("", 1))
	require.Equal(t, "ab", dropLast("abc", 1))
	require.Equal(t, "", dropLast("abc", 5))
	require.Equal(t, "", dropLast("", 1))
}

func TestValidParens(t *testing.T) {
	cases := []struct {
		src string
		ok  bool
	}{
		{"", true},
		{"()", true},
		{"(())", true},
		{"(a)+(b)", true},
		{"(", false},
		{")", false},
		{"()(", false},
		{")(", false},
		{"(()", false},
	}
	for _, c := range cases {
		require.Equal(t, c.ok, validParens(c.src), "validParens(%q)", c.src)
	}
}

func TestCheckParens(t *testing.T) {
	require.Nil(t, checkParens("(())"))
	require.Equal(t, &ParenError{Col: 3}, checkParens("()("))
	require.Equal(t, &ParenError{Col: 0, Close: true}, checkParens(")("))
	require.Equal(t, &ParenError{Col: 4, Close: true}, checkParens("(()))"))
}

func TestSimplifyParens(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"", ""},
		{"   ", ""},
		{"x", "x"},
		{"(x)", "x"},
		{"((x))", "x"},
		{" ( ( x ) ) ", "x"},
		{"()", ""},
		{"(a)+(b)", "(a)+(b)"},
		{"((a)+(b))", "(a)+(b)"},
		{"( (a)+(b) )", "(a)+(b)"},
		{"(1, 2)", "1, 2"},
	}
	for _, c := range cases {
		got := simplifyParens(c.src)
		require.Equal(t, c.want, got, "simplifyParens(%q)", c.src)
		// Stripping is idempotent.
		require.Equal(t, got, simplifyParens(got), "simplifyParens(%q) twice", c.src)
	}
}

func TestValidVarName(t *testing.T) {
	for _, s := range []string{"x", "ans", "foo_bar", "_", "ABC"} {
		require.True(t, validVarName(s), "validVarName(%q)", s)
	}
	for _, s := range []string{"", "x1", "a b", "a-b", "1", "π", "x!"} {
		require.False(t, validVarName(s), "validVarName(%q)", s)
	}
}
