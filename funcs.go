package calc

import (
	"math"
	"slices"
	"strconv"
)

// Func is a function from an ordered list of reals to a real. A Func decides
// for itself which argument counts it accepts and returns an *ArityError for
// the rest; the Monadic and Variadic adapters cover the common cases.
type Func func(args []float64) (float64, error)

// Monadic adapts a function of exactly one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return func(args []float64) (float64, error) {
		if len(args) != 1 {
			return 0, &ArityError{Len: len(args)}
		}
		return f(args[0]), nil
	}
}

// Variadic adapts a function over one or more variables into a Func.
// Calling the result with no arguments is an arity error.
func Variadic(f func(args []float64) float64) Func {
	return func(args []float64) (float64, error) {
		if len(args) == 0 {
			return 0, &ArityError{}
		}
		return f(args), nil
	}
}

// function is a registry entry binding a name to a Func.
type function struct {
	name string
	fn   Func
}

// builtins returns the default function registry. Earlier entries shadow
// later ones of the same name, and built-ins precede registered functions,
// so hosts cannot redefine these.
func builtins() []function {
	return []function{
		{"sum", Variadic(sum)},
		{"sin", Monadic(math.Sin)},
		{"cos", Monadic(math.Cos)},
		{"max", Variadic(slices.Max)},
		{"min", Variadic(slices.Min)},
		{"sqrt", Monadic(math.Sqrt)},
	}
}

func sum(args []float64) float64 {
	r := 0.0
	for _, a := range args {
		r += a
	}
	return r
}

// ArityError is an error from calling a function with a number of arguments
// it does not accept, e.g. "sin()" or "sin(1, 2)".
type ArityError struct {
	// Func is the function name. The evaluator fills it in when the Func
	// itself does not know its registered name.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *ArityError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}
