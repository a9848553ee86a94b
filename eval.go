package calc

import (
	"errors"
	"slices"
	"strconv"
)

// Context is a set of variable bindings for evaluating expressions. It is
// owned by the caller and typically lives across a whole session; assignment
// expressions mutate it. A Context is not safe to use concurrently.
type Context struct {
	vars map[string]float64
}

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return &Context{vars: make(map[string]float64)}
}

// Set binds a variable, overwriting any previous binding. Returns ctx for
// chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	ctx.vars[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Names returns the bound variable names in sorted order.
func (ctx *Context) Names() []string {
	names := make([]string, 0, len(ctx.vars))
	for k := range ctx.vars {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Eval evaluates the expression against ctx and returns the result.
// Evaluation fails with a *NameError for an unbound variable, an
// *ArityError for a function called with an argument count it does not
// accept, and an *AssignTargetError for an assignment whose left side is not
// a variable.
func (e *Expr) Eval(ctx *Context) (float64, error) {
	return e.n.eval(ctx)
}

func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeVar:
		v, ok := ctx.vars[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeUnary:
		v, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return n.uop.fn(v), nil
	case nodeBinary:
		if n.bop.fn == nil {
			return 0, &AssignTargetError{Op: n.bop.sym}
		}
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		return n.bop.fn(l, r), nil
	case nodeCall:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval(ctx)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		v, err := n.fn.fn(args)
		if err != nil {
			var ae *ArityError
			if errors.As(err, &ae) && ae.Func == "" {
				ae.Func = n.fn.name
			}
			return 0, err
		}
		return v, nil
	case nodeAssign:
		v, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		ctx.vars[n.name] = v
		return ctx.vars[n.name], nil
	default:
		panic("calc: invalid AST node " + strconv.Itoa(int(n.kind)))
	}
}

// NameError is an error from a lookup for a variable that is missing from
// the evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// AssignTargetError is an error from evaluating an assignment whose
// left-hand side is not a variable name, e.g. "1 + 2 = 3". Such input parses
// as an ordinary binary expression and only fails here.
type AssignTargetError struct {
	// Op is the assignment operator symbol.
	Op string
}

func (err *AssignTargetError) Error() string {
	return "left operand of " + strconv.Quote(err.Op) + " is not a variable"
}
