package calc

import "strconv"

// ParenError is an error indicating unbalanced or misordered parentheses in
// the input. It is the only error Parse can return; every other way an input
// can fail to be understood is a no-match.
type ParenError struct {
	// Col is the byte offset of the offending ')' or, for an unclosed '(',
	// the end of the input.
	Col int
	// Close is whether the error is a ')' with no matching '('.
	Close bool
}

func (err *ParenError) Error() string {
	if err.Close {
		return errpos(err.Col, "close paren with no open paren")
	}
	return errpos(err.Col, "open paren with no close paren")
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
