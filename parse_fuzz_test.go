package calc_test

import (
	"testing"

	"github.com/volsungdenichor/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("2 * 10 ^ 3")
	f.Add("min(2, 4, 10 - 2 * 4.5, -(7 - 10))")
	f.Add("x = 5")
	f.Add("a <= b == c")
	f.Add("()(")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := calc.Parse(s)
		if err != nil || e == nil {
			return
		}
		if e.String() == "" {
			t.Errorf("parsed %q to an empty tree", s)
		}
		_, _ = e.Eval(calc.NewContext())
	})
}
