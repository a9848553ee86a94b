// Package calc implements a small arithmetic expression language: a parser
// from strings to expression trees and a tree-walking evaluator over float64
// values.
//
// Expressions are plain arithmetic with variables, like "2 * x + 1" or
// "min(2, 4, -(7 - 10))". Assignment is an expression too: evaluating
// "x = 5" stores 5 in the evaluation context and yields 5, so a host can
// keep one Context for a whole session and let results accumulate.
//
// A Parser is safe for concurrent use once all functions are registered.
// A Context is not safe for concurrent use.
package calc
