package calc

import (
	"io"
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Exactly one
// of the payload fields is meaningful for a given kind.
type node struct {
	kind nodeKind

	val  float64   // nodeNum
	name string    // nodeVar, nodeAssign
	uop  *unaryOp  // nodeUnary
	bop  *binaryOp // nodeBinary
	fn   *function // nodeCall

	left  *node   // nodeUnary operand, nodeBinary lhs
	right *node   // nodeBinary rhs, nodeAssign value
	args  []*node // nodeCall arguments, in call order
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // literal value
	nodeVar    // variable lookup
	nodeUnary  // apply uop to left
	nodeBinary // apply bop to left and right
	nodeCall   // apply fn to args
	nodeAssign // store right under name, yield the stored value
)

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	n *node
}

// Print writes an indented textual rendering of the expression tree to w,
// starting at the given indentation level. Each node prints its label and
// its children one level deeper.
func (e *Expr) Print(w io.Writer, level int) error {
	var b strings.Builder
	e.n.fmt(&b, level)
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the expression tree with no initial indentation.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, 0)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString("  ")
	}
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
		b.WriteByte('\n')
	case nodeVar:
		b.WriteString(n.name)
		b.WriteByte('\n')
	case nodeUnary:
		b.WriteString(n.uop.sym)
		b.WriteByte('\n')
		n.left.fmt(b, level+1)
	case nodeBinary:
		b.WriteString(n.bop.sym)
		b.WriteByte('\n')
		n.left.fmt(b, level+1)
		n.right.fmt(b, level+1)
	case nodeCall:
		b.WriteString(n.fn.name)
		b.WriteByte('\n')
		for _, a := range n.args {
			a.fmt(b, level+1)
		}
	case nodeAssign:
		b.WriteString(n.name)
		b.WriteByte('\n')
		n.right.fmt(b, level+1)
	default:
		panic("calc: invalid node kind " + strconv.Itoa(int(n.kind)))
	}
}
