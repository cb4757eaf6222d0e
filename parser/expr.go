package parser

import "github.com/cmmlang/cmm/token"

// parseCondition parses condition: expression compOp expression.
func (p *Parser) parseCondition() int {
	left := p.parseExpr()
	opTok := p.expect(token.LT, token.GT, token.EQUAL, token.NEQUAL)
	right := p.parseExpr()

	node := p.tree.NewCompare(opTok, opTok.Kind)
	p.tree.Attach(node, left)
	p.tree.Attach(node, right)
	return node
}

// parseExpr parses expression: term (addOp term)*, folding left to
// right into a chain of binary nodes.
func (p *Parser) parseExpr() int {
	left := p.parseTerm()
	for p.match(token.PLUS, token.MINUS) {
		opTok := p.cur
		right := p.parseTerm()
		node := p.tree.NewBinary(opTok, opTok.Kind)
		p.tree.Attach(node, left)
		p.tree.Attach(node, right)
		left = node
	}
	return left
}

// parseTerm parses term: factor (mulOp factor)*, folding left to
// right into a chain of binary nodes.
func (p *Parser) parseTerm() int {
	left := p.parseFactor()
	for p.match(token.TIMES, token.DIVIDE) {
		opTok := p.cur
		right := p.parseFactor()
		node := p.tree.NewBinary(opTok, opTok.Kind)
		p.tree.Attach(node, left)
		p.tree.Attach(node, right)
		left = node
	}
	return left
}

// parseFactor parses factor: REAL_LIT | INT_LIT | ID (array)? |
// funcCallExpr | '(' expression ')'. ID lookahead decides between a
// plain (optionally subscripted) reference and a call.
func (p *Parser) parseFactor() int {
	t := p.get()
	switch {
	case t.Kind == token.REAL_LITERAL:
		return p.tree.NewRealLit(t)
	case t.Kind == token.INT_LITERAL:
		return p.tree.NewIntLit(t)
	case t.Kind == token.LPAREN:
		expr := p.parseExpr()
		p.expect(token.RPAREN)
		return expr
	case t.Kind == token.ID:
		idTok := t
		if p.match(token.LPAREN) {
			p.unget()
			p.ungetTok(idTok)
			return p.parseCallExpr()
		}
		node := p.tree.NewIdent(idTok, idTok.Literal)
		isArray, hasSize, sizeIsIdent, sizeInt, sizeIdent := p.parseOptionalArray()
		n := p.tree.At(node)
		n.IsArray, n.HasSize, n.SizeIsIdent, n.SizeInt, n.SizeIdent = isArray, hasSize, sizeIsIdent, sizeInt, sizeIdent
		return node
	default:
		p.fail(t, token.REAL_LITERAL, token.INT_LITERAL, token.ID, token.LPAREN)
		panic("unreachable")
	}
}
