package calc_test

import (
	"fmt"

	"github.com/volsungdenichor/calc"
)

func ExampleParser_RegisterFunction() {
	p := calc.New()
	p.RegisterFunction("avg", calc.Variadic(func(args []float64) float64 {
		r := 0.0
		for _, a := range args {
			r += a
		}
		return r / float64(len(args))
	}))
	e, err := p.Parse("avg(1, 2, 3, 4) + 1")
	if err != nil || e == nil {
		panic(err)
	}
	v, err := e.Eval(calc.NewContext())
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 3.5
}

func Example() {
	ctx := calc.NewContext()
	for _, line := range []string{"x = 5", "x + 1", "x = x + 1"} {
		e, err := calc.Parse(line)
		if err != nil || e == nil {
			panic(err)
		}
		v, err := e.Eval(ctx)
		if err != nil {
			panic(err)
		}
		fmt.Println(v)
	}
	// Output:
	// 5
	// 6
	// 6
}
