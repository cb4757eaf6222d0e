package sema

import (
	"fmt"

	"github.com/cmmlang/cmm/token"
)

// Error reports a semantic failure (spec §4.5, enumerated in §7):
// redefined, undefined, type-mismatch, param-mismatch, index-missing,
// or no-main. Spec §7: "Semantic errors append the offending
// identifier text and its row/column to the error kind name."
type Error struct {
	Kind        string
	Name        string
	Row, Column int
}

func (e *Error) Error() string {
	if e.Name == "" {
		return e.Kind
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Name)
}

// abort unwinds the walk to Analyze the moment the first semantic
// error is found (spec §4.5: "accumulate to at most one (first) and
// abort the walk"), the same panic/recover shape parser.Parse uses.
type abort struct{ err *Error }

func locOf(tok token.Token) (int, int) {
	return tok.Location.Row, tok.Location.Column
}
