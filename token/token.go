/*
Package token defines the closed set of lexical token kinds for CMM,
the small C-like teaching language this toolchain compiles and runs.

The kind set mirrors spec §6 exactly: every punctuation mark, operator,
keyword, and literal form the grammar in spec §4.3 can produce has its
own Kind. Reserved words share the same Kind space as punctuation, so
the parser never has to special-case "is this identifier actually a
keyword" once the lexer has classified it.
*/
package token

import "fmt"

// Kind identifies the lexical category of a Token. It is a small
// integer rather than a string so that comparisons and switches stay
// cheap on the lexer's hot path.
type Kind int

// The closed set of token kinds, fixed by spec §6. Numeric values are
// private to this package; only the relative pairing (e.g. ASSIGN vs
// EQUAL) is part of the contract.
const (
	ILLEGAL Kind = iota
	EOF

	// Keywords
	IF
	ELSE
	WHILE
	INT
	REAL
	VOID
	RETURN

	// Operators
	PLUS
	MINUS
	TIMES
	DIVIDE
	ASSIGN
	LT
	GT
	EQUAL
	NEQUAL

	// Structural
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON

	// Identifiers and literals
	ID
	INT_LITERAL
	REAL_LITERAL
)

// names gives a short, debug-friendly label for every Kind. It exists
// purely for diagnostics and dumps; it is never compared against.
var names = map[Kind]string{
	ILLEGAL:      "ILLEGAL",
	EOF:          "EOF",
	IF:           "IF",
	ELSE:         "ELSE",
	WHILE:        "WHILE",
	INT:          "INT",
	REAL:         "REAL",
	VOID:         "VOID",
	RETURN:       "RETURN",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	TIMES:        "TIMES",
	DIVIDE:       "DIVIDE",
	ASSIGN:       "ASSIGN",
	LT:           "LT",
	GT:           "GT",
	EQUAL:        "EQUAL",
	NEQUAL:       "NEQUAL",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	LBRACKET:     "LBRACKET",
	RBRACKET:     "RBRACKET",
	COMMA:        "COMMA",
	SEMICOLON:    "SEMICOLON",
	ID:           "ID",
	INT_LITERAL:  "INT_LITERAL",
	REAL_LITERAL: "REAL_LITERAL",
}

// String renders a Kind using its debug label, e.g. "LBRACE". Unknown
// kinds render as a bracketed numeric fallback rather than panicking.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps every reserved word to its Kind. The lexer consults
// this after scanning a full identifier to decide whether it just read
// a keyword or a user-defined name (spec §4.1).
var Keywords = map[string]Kind{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"int":    INT,
	"real":   REAL,
	"void":   VOID,
	"return": RETURN,
}

// Lookup classifies an already-scanned identifier string: it returns
// the keyword Kind if ident is reserved, otherwise ID.
func Lookup(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return ID
}

// Position is a 1-indexed source location (row, column) used for
// error reporting throughout the toolchain.
type Position struct {
	Row    int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("row %d, column %d", p.Row, p.Column)
}

// Token is an immutable record produced by the lexer. Literal carries
// the raw source text; IntValue/RealValue carry the decoded numeric
// payload for INT_LITERAL/REAL_LITERAL tokens respectively. Location
// is stamped by the lexer when it scans the token, so that a syntax or
// semantic error raised later can still report a row/column without
// threading lexer state through every AST node.
type Token struct {
	Kind     Kind
	Literal  string
	IntValue int64
	RealValue float64
	Location Position
}

// New builds a bare token with no position information. Used for
// synthetic tokens (e.g. the implicit `return` the parser injects at
// the end of a function body per spec §4.4).
func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

// String renders a token as "literal:KIND" for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Literal, t.Kind)
}

// Is reports whether the token has the given kind. Tokens compare by
// kind only (spec §4.2); literal text is never part of the comparison.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}
