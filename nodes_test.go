package calc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/volsungdenichor/calc"
)

func tree(t *testing.T, src string) *calc.Expr {
	t.Helper()
	e, err := calc.Parse(src)
	require.NoError(t, err)
	require.NotNil(t, e, "no match for %q", src)
	return e
}

func TestString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string // lines
	}{
		{"literal", "2.5", []string{"2.5"}},
		{"variable", "x", []string{"x"}},
		{"precedence", "1 + 2 * 3", []string{
			"+",
			"  1",
			"  *",
			"    2",
			"    3",
		}},
		{"unary", "-(1 + 3)", []string{
			"-",
			"  +",
			"    1",
			"    3",
		}},
		{"call", "min(1, -(2))", []string{
			"min",
			"  1",
			"  -",
			"    2",
		}},
		{"assign", "x = 5", []string{
			"x",
			"  5",
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want := strings.Join(c.want, "\n") + "\n"
			require.Equal(t, want, tree(t, c.src).String())
		})
	}
}

func TestPrintLevel(t *testing.T) {
	var b strings.Builder
	require.NoError(t, tree(t, "1 + 2").Print(&b, 1))
	require.Equal(t, "  +\n    1\n    2\n", b.String())
}
