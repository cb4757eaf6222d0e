package parser

import "github.com/cmmlang/cmm/token"

// Error reports a syntax failure: a token that didn't match what the
// grammar expected at that point (spec §4.4). Row/Column locate the
// offending token; a caller renders the offending source line itself
// by indexing the full source text with Row. Expected lists the kinds
// that would have been accepted there, when the parser knows them, so
// pipeline can render the spec §7 "Expected X or Y" line.
type Error struct {
	Row, Column int
	Message     string
	Expected    []token.Kind
}

func (e *Error) Error() string {
	return e.Message
}

// abort unwinds the recursive descent back to Parse the moment the
// first syntax error is recorded (spec §4.4: "Parsing halts at the
// first error"). Using panic/recover here avoids threading an error
// return through every one of the parse* methods.
type abort struct{ err *Error }
