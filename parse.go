package calc

import (
	"math"
	"strconv"
	"strings"
)

// Expr   = num | name | Assign | Unary | Binary | Call | '(' Expr ')'
// Assign = name '=' Expr
// Unary  = ('+' | '-') Expr
// Binary = Expr binop Expr
// Call   = funcname '(' [ Expr { ',' Expr } ] ')'
//
// There is no token stream. Each production re-invokes the top-level parse
// on a narrowed substring, and the binary split point is found by scanning
// for the loosest-binding operator at paren depth zero.

// UnaryFunc is the implementation of a unary operator.
type UnaryFunc func(x float64) float64

// BinaryFunc is the implementation of a binary operator.
type BinaryFunc func(x, y float64) float64

type unaryOp struct {
	sym string
	fn  UnaryFunc
}

type binaryOp struct {
	sym   string
	prec  int
	right bool
	// fn computes the operator. A nil fn marks the assignment operator,
	// which stores rather than computes.
	fn BinaryFunc
}

// Parser parses expression text against a registry of unary operators,
// binary operators, and named functions. The registry is built once by New;
// RegisterFunction may extend it before the parser is shared. A Parser is
// safe for concurrent use once registration is done.
type Parser struct {
	unops  []unaryOp
	binops []binaryOp
	funcs  []function
}

// New creates a Parser with the built-in operators and functions.
func New() *Parser {
	return &Parser{
		unops: []unaryOp{
			{"+", pos},
			{"-", neg},
		},
		binops: []binaryOp{
			{"==", 10, false, eq},
			{"!=", 10, false, ne},
			{"<", 10, false, lt},
			{"<=", 10, false, le},
			{">", 10, false, gt},
			{">=", 10, false, ge},
			{"+", 20, false, add},
			{"-", 20, false, sub},
			{"*", 40, false, mul},
			{"/", 40, false, div},
			{"^", 30, true, math.Pow},
			{"=", 5, false, nil},
		},
		funcs: builtins(),
	}
}

// std is the shared parser behind the package-level Parse.
var std = New()

// Parse parses text using a parser with the built-in operators and
// functions.
func Parse(text string) (*Expr, error) {
	return std.Parse(text)
}

// RegisterFunction makes fn callable as name(args...) in parsed expressions.
// Built-in names cannot be overridden. RegisterFunction must not be called
// concurrently with Parse.
func (p *Parser) RegisterFunction(name string, fn Func) {
	p.funcs = append(p.funcs, function{name: name, fn: fn})
}

// Parse compiles text into an evaluable expression tree. A (nil, nil) return
// means no expression was recognized, which callers must check for. The only
// error is a *ParenError for structurally invalid parentheses; everything
// else that cannot be understood is a no-match.
func (p *Parser) Parse(text string) (*Expr, error) {
	n, err := p.parseExpr(text)
	if err != nil || n == nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// parseExpr is the top-level dispatch. It tries each sub-parser in a fixed
// order and returns the first match, or nil for no match. The order matters:
// the binary split must come before unary so "2 - 3" is a subtraction, and
// unary before call and variable so "-x" is a negation.
func (p *Parser) parseExpr(text string) (*node, error) {
	if err := checkParens(text); err != nil {
		return nil, err
	}
	text = simplifyParens(text)
	if n := parseNumber(text); n != nil {
		return n, nil
	}
	if n, err := p.parseBinary(text); n != nil || err != nil {
		return n, err
	}
	if n, err := p.parseUnary(text); n != nil || err != nil {
		return n, err
	}
	if n, err := p.parseCall(text); n != nil || err != nil {
		return n, err
	}
	if n := parseVariable(text); n != nil {
		return n, nil
	}
	return nil, nil
}

// parseNumber matches a span that is entirely a floating-point literal.
func parseNumber(text string) *node {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &node{kind: nodeNum, val: v}
}

// parseVariable matches a span that is entirely a variable name.
func parseVariable(text string) *node {
	if !validVarName(text) {
		return nil
	}
	return &node{kind: nodeVar, name: text}
}

// parseUnary matches a registered unary symbol prefixing a sub-expression.
func (p *Parser) parseUnary(text string) (*node, error) {
	for i := range p.unops {
		op := &p.unops[i]
		if !strings.HasPrefix(text, op.sym) {
			continue
		}
		sub, err := p.parseExpr(drop(text, len(op.sym)))
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return &node{kind: nodeUnary, uop: op, left: sub}, nil
		}
	}
	return nil, nil
}

// parseBinary splits the span at the loosest-binding operator and parses
// both sides. If the operator is the assignment marker and the left side is
// a variable name, the result is an assignment; otherwise both sides must
// parse as expressions. Either side failing makes the whole attempt a
// no-match so that the dispatcher can fall back, e.g. to unary for "-3".
func (p *Parser) parseBinary(text string) (*node, error) {
	i, op := p.findBinaryOper(text)
	if op == nil {
		return nil, nil
	}
	rhs, err := p.parseExpr(drop(text, i+len(op.sym)))
	if err != nil || rhs == nil {
		return nil, err
	}
	lstr := strings.TrimSpace(text[:i])
	if op.fn == nil && validVarName(lstr) {
		return &node{kind: nodeAssign, name: lstr, right: rhs}, nil
	}
	lhs, err := p.parseExpr(lstr)
	if err != nil || lhs == nil {
		return nil, err
	}
	return &node{kind: nodeBinary, bop: op, left: lhs, right: rhs}, nil
}

// parseCall matches name(args) where name is a registered function and the
// parens span the whole remainder. Arguments are split on top-level commas
// and parsed recursively; an argument that fails to parse makes the whole
// call a no-match.
func (p *Parser) parseCall(text string) (*node, error) {
	i := strings.IndexByte(text, '(')
	if i < 0 || !strings.HasSuffix(text, ")") {
		return nil, nil
	}
	fn := p.lookupFunc(strings.TrimSpace(text[:i]))
	if fn == nil {
		return nil, nil
	}
	n := &node{kind: nodeCall, fn: fn}
	rest := simplifyParens(text[i:])
	for rest != "" {
		j := topComma(rest)
		arg, err := p.parseExpr(rest[:j])
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, nil
		}
		n.args = append(n.args, arg)
		rest = simplifyParens(drop(rest, j+1))
	}
	return n, nil
}

// findBinaryOper locates the split point for a top-down parse: the position
// of the registered operator that should bind last. Only positions at paren
// depth zero and past the first byte are considered, so a leading sign stays
// unary. At each position the longest matching symbol is the only candidate
// and the scan resumes after it, so the "=" inside "<=" or "==" is never
// taken for an assignment. A left-associative candidate replaces the running
// minimum on equal precedence; a right-associative one must be strictly
// lower. That rule yields the textbook split for "2^3^4", "1-2-3", and
// mixed chains like "1 - 2^3".
func (p *Parser) findBinaryOper(text string) (int, *binaryOp) {
	pos := -1
	var best *binaryOp
	min := math.MaxInt
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth != 0 || i == 0 {
			continue
		}
		op := p.matchBinary(text[i:])
		if op == nil {
			continue
		}
		if op.prec < min || (op.prec == min && !op.right) {
			pos, best, min = i, op, op.prec
		}
		i += len(op.sym) - 1
	}
	return pos, best
}

// matchBinary returns the longest registered binary symbol prefixing text.
func (p *Parser) matchBinary(text string) *binaryOp {
	var best *binaryOp
	for i := range p.binops {
		op := &p.binops[i]
		if strings.HasPrefix(text, op.sym) && (best == nil || len(op.sym) > len(best.sym)) {
			best = op
		}
	}
	return best
}

func (p *Parser) lookupFunc(name string) *function {
	for i := range p.funcs {
		if p.funcs[i].name == name {
			return &p.funcs[i]
		}
	}
	return nil
}

// topComma returns the index of the first comma at paren depth zero, or
// len(text) if there is none.
func topComma(text string) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return len(text)
}

func pos(x float64) float64 { return x }
func neg(x float64) float64 { return -x }

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

func eq(x, y float64) float64 { return truth(x == y) }
func ne(x, y float64) float64 { return truth(x != y) }
func lt(x, y float64) float64 { return truth(x < y) }
func le(x, y float64) float64 { return truth(x <= y) }
func gt(x, y float64) float64 { return truth(x > y) }
func ge(x, y float64) float64 { return truth(x >= y) }

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
