package calc

import "strings"

// The parser works directly on substrings of the original input rather than
// on a token stream. Go string slicing already gives immutable views, so the
// helpers here only add the clamping and paren-awareness the parser needs.

// drop removes up to n bytes from the front of text.
func drop(text string, n int) string {
	if n > len(text) {
		n = len(text)
	}
	return text[n:]
}

// dropLast removes up to n bytes from the back of text.
func dropLast(text string, n int) string {
	if n > len(text) {
		n = len(text)
	}
	return text[:len(text)-n]
}

// validParens reports whether every ')' in text closes an earlier '(' and
// every '(' is eventually closed.
func validParens(text string) bool {
	counter := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			counter++
		case ')':
			counter--
			if counter < 0 {
				return false
			}
		}
	}
	return counter == 0
}

// checkParens is validParens with a useful error. It returns nil when the
// parens are balanced.
func checkParens(text string) *ParenError {
	counter := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			counter++
		case ')':
			counter--
			if counter < 0 {
				return &ParenError{Col: i, Close: true}
			}
		}
	}
	if counter != 0 {
		return &ParenError{Col: len(text)}
	}
	return nil
}

// simplifyParens trims whitespace and strips matched outer paren layers.
// A layer is stripped only if the interior is still balanced on its own, so
// "(a)+(b)" keeps its parens. Idempotent.
func simplifyParens(text string) string {
	for {
		text = strings.TrimSpace(text)
		if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
			return text
		}
		inner := strings.TrimSpace(dropLast(drop(text, 1), 1))
		if !validParens(inner) {
			return text
		}
		text = inner
	}
}

// validVarName reports whether text can name a variable: non-empty ASCII
// letters and underscores only.
func validVarName(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_') {
			return false
		}
	}
	return true
}
