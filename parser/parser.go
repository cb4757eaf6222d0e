/*
Package parser implements CMM's recursive-descent parser (spec §4.3,
§4.4), building an ast.Tree from the token stream produced by lexer.

The parser holds an unget buffer that can hold more than the "one
token" spec §4.4 describes in the common case: several productions
need to read a short prefix before they know which production they're
actually in, and resolve that by reading the prefix and pushing every
consumed token back before re-parsing from the start. Once the first
syntax error is found, parsing halts — Parse recovers a panic carried
up from wherever in the call stack the mismatch was detected, rather
than threading an error return through every parse method.
*/
package parser

import (
	"fmt"

	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/lexer"
	"github.com/cmmlang/cmm/token"
)

// Parser builds an ast.Tree by recursive descent over a Lexer's token
// stream.
type Parser struct {
	lex  *lexer.Lexer
	tree *ast.Tree

	buf []token.Token // unget stack, most recently ungotten last
	cur token.Token
}

// New creates a Parser reading tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex, tree: ast.New()}
}

// Parse runs the parser to completion, returning the built tree or
// the first syntax error encountered.
func (p *Parser) Parse() (tree *ast.Tree, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			if a, ok := r.(abort); ok {
				err = a.err
				return
			}
			panic(r)
		}
	}()
	p.parseExterStmts()
	return p.tree, nil
}

// get returns the next token, from the unget buffer if non-empty,
// otherwise from the lexer.
func (p *Parser) get() token.Token {
	if n := len(p.buf); n > 0 {
		p.cur = p.buf[n-1]
		p.buf = p.buf[:n-1]
		return p.cur
	}
	p.cur = p.lex.NextToken()
	return p.cur
}

// unget pushes the most recently returned token back onto the buffer.
func (p *Parser) unget() {
	p.buf = append(p.buf, p.cur)
}

// ungetTok pushes an arbitrary token back onto the buffer, for
// restoring a multi-token lookahead prefix in order.
func (p *Parser) ungetTok(t token.Token) {
	p.buf = append(p.buf, t)
}

// match consumes the next token if its kind is one of kinds, returning
// true; otherwise it ungets the token and returns false.
func (p *Parser) match(kinds ...token.Kind) bool {
	t := p.get()
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	p.unget()
	return false
}

// expect consumes and returns the next token if its kind is one of
// kinds, or raises invalid-token naming kinds as the expected set.
func (p *Parser) expect(kinds ...token.Kind) token.Token {
	t := p.get()
	for _, k := range kinds {
		if t.Kind == k {
			return t
		}
	}
	p.fail(t, kinds...)
	panic("unreachable")
}

// fail records a syntax error at t's position and unwinds to Parse.
func (p *Parser) fail(t token.Token, expected ...token.Kind) {
	msg := "invalid token"
	if t.Kind == token.EOF {
		msg = "unexpected end of input"
	} else {
		msg = fmt.Sprintf("unexpected %s %q", t.Kind, t.Literal)
	}
	panic(abort{&Error{
		Row:      t.Location.Row,
		Column:   t.Location.Column,
		Message:  msg,
		Expected: expected,
	}})
}

func isDataType(k token.Kind) bool {
	return k == token.INT || k == token.REAL
}

// parseExterStmts parses the top-level exterStmts production: a
// sequence of declareStmt and funcDefStmt. Disambiguation (spec
// §4.4): after a dataType, a following ID then '(' means a function
// definition; anything else (including a following '[', the array
// marker) means a declaration. 'void' at top level always starts a
// function definition, since declareStmt never begins with 'void'.
func (p *Parser) parseExterStmts() int {
	root := p.tree.NewProgram()
	for {
		t := p.get()
		switch {
		case t.Kind == token.EOF:
			return root
		case t.Kind == token.VOID:
			p.unget()
			p.tree.Attach(root, p.parseFuncDef())
		case isDataType(t.Kind):
			dataTypeTok := t
			next := p.get()
			switch {
			case next.Kind == token.ID:
				idTok := next
				isFunc := p.match(token.LPAREN)
				if isFunc {
					p.unget()
				}
				p.ungetTok(idTok)
				p.ungetTok(dataTypeTok)
				if isFunc {
					p.tree.Attach(root, p.parseFuncDef())
				} else {
					p.tree.Attach(root, p.parseDeclare())
				}
			default:
				p.unget()
				p.ungetTok(dataTypeTok)
				p.tree.Attach(root, p.parseDeclare())
			}
		default:
			p.fail(t, token.VOID, token.INT, token.REAL)
		}
	}
}

// parseFuncDef parses funcDefStmt: returnType ID '(' funcDefParams? ')'
// '{' innerStmts '}'.
func (p *Parser) parseFuncDef() int {
	retTok := p.expect(token.VOID, token.INT, token.REAL)
	idTok := p.expect(token.ID)
	node := p.tree.NewFuncDef(idTok, idTok.Literal, retTok.Kind)

	p.expect(token.LPAREN)
	if !p.match(token.RPAREN) {
		if p.match(token.VOID) {
			p.expect(token.RPAREN)
		} else {
			for {
				paramType := p.expect(token.INT, token.REAL)
				paramID := p.expect(token.ID)
				p.tree.Attach(node, p.tree.NewParam(paramID, paramID.Literal, paramType.Kind))
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RPAREN)
		}
	}

	p.expect(token.LBRACE)
	for _, stmt := range p.parseInnerStmts() {
		p.tree.Attach(node, stmt)
	}
	p.expect(token.RBRACE)

	if !p.hasTrailingReturn(node) {
		p.tree.Attach(node, p.synthesizeReturn(idTok))
	}
	return node
}

// hasTrailingReturn reports whether node's last attached statement is
// a returnStmt.
func (p *Parser) hasTrailingReturn(node int) bool {
	children := p.tree.At(node).Children
	if len(children) == 0 {
		return false
	}
	last := children[len(children)-1]
	return p.tree.At(last).Kind == ast.KindReturn
}

// synthesizeReturn builds the implicit bare `return;` spec §4.4 calls
// for when a function body's last statement isn't already a return.
func (p *Parser) synthesizeReturn(near token.Token) int {
	synthetic := token.New(token.RETURN, "return")
	synthetic.Location = near.Location
	return p.tree.NewReturn(synthetic)
}

// parseDeclare parses declareStmt: dataType (array)? ID (',' ID)*
// ('=' (expression | arrayInit))? ';'. The array marker and the
// initializer, if present, are shared by every name in the list.
func (p *Parser) parseDeclare() int {
	dataTypeTok := p.expect(token.INT, token.REAL)
	isArray, hasSize, sizeIsIdent, sizeInt, sizeIdent := p.parseOptionalArray()

	var names []string
	first := p.expect(token.ID)
	names = append(names, first.Literal)
	for p.match(token.COMMA) {
		next := p.expect(token.ID)
		names = append(names, next.Literal)
	}

	node := p.tree.NewDeclare(dataTypeTok, names, dataTypeTok.Kind)
	n := p.tree.At(node)
	n.IsArray = isArray
	n.HasSize = hasSize
	n.SizeIsIdent = sizeIsIdent
	n.SizeInt = sizeInt
	n.SizeIdent = sizeIdent

	if p.match(token.ASSIGN) {
		p.tree.Attach(node, p.parseInitializer())
	}
	p.expect(token.SEMICOLON)
	return node
}

// parseInitializer parses the right-hand side of a declareStmt's
// optional initializer: either an arrayInit brace list or a plain
// expression.
func (p *Parser) parseInitializer() int {
	if p.match(token.LBRACE) {
		p.unget()
		return p.parseArrayInit()
	}
	return p.parseExpr()
}

// parseArrayInit parses arrayInit: '{' literal (',' literal)* '}'.
func (p *Parser) parseArrayInit() int {
	open := p.expect(token.LBRACE)
	node := p.tree.NewArrayInit(open)
	p.tree.Attach(node, p.parseLiteral())
	for p.match(token.COMMA) {
		p.tree.Attach(node, p.parseLiteral())
	}
	p.expect(token.RBRACE)
	return node
}

func (p *Parser) parseLiteral() int {
	t := p.expect(token.INT_LITERAL, token.REAL_LITERAL)
	if t.Kind == token.INT_LITERAL {
		return p.tree.NewIntLit(t)
	}
	return p.tree.NewRealLit(t)
}

// parseOptionalArray parses the shared `array ::= '[' (INT_LIT | ID)?
// ']'` production, used both as a declaration's size annotation and
// as the subscript of an assignment target or factor. The
// bracket itself is optional (isArray reports whether it was present
// at all); its contents are optional too (hasSize distinguishes a
// sized array from a bare `[]`, which sema rejects as index-missing
// at declaration sites per spec §4.5).
func (p *Parser) parseOptionalArray() (isArray, hasSize, sizeIsIdent bool, sizeInt int64, sizeIdent string) {
	if !p.match(token.LBRACKET) {
		return false, false, false, 0, ""
	}
	isArray = true
	switch {
	case p.match(token.INT_LITERAL):
		hasSize = true
		sizeInt = p.cur.IntValue
	case p.match(token.ID):
		hasSize = true
		sizeIsIdent = true
		sizeIdent = p.cur.Literal
	}
	p.expect(token.RBRACKET)
	return isArray, hasSize, sizeIsIdent, sizeInt, sizeIdent
}
