package parser

import "github.com/cmmlang/cmm/token"

// parseInnerStmts parses innerStmts: a sequence of declareStmt,
// assignStmt, ifStmt, whileStmt, funcCallStmt, and returnStmt,
// stopping (without consuming) at the first token that starts none of
// them — normally the block's closing brace.
func (p *Parser) parseInnerStmts() []int {
	var stmts []int
	for {
		t := p.get()
		switch {
		case t.Kind == token.IF:
			p.unget()
			stmts = append(stmts, p.parseIf())
		case t.Kind == token.WHILE:
			p.unget()
			stmts = append(stmts, p.parseWhile())
		case isDataType(t.Kind):
			p.unget()
			stmts = append(stmts, p.parseDeclare())
		case t.Kind == token.RETURN:
			p.unget()
			stmts = append(stmts, p.parseReturn())
		case t.Kind == token.ID:
			idTok := t
			isCall := p.match(token.LPAREN)
			if isCall {
				p.unget()
			}
			p.ungetTok(idTok)
			if isCall {
				stmts = append(stmts, p.parseCallStmt())
			} else {
				stmts = append(stmts, p.parseAssign())
			}
		default:
			p.unget()
			return stmts
		}
	}
}

// parseIf parses ifStmt: 'if' '(' condition ')' '{' innerStmts '}'
// ( 'else' '{' innerStmts '}' )?. ThenCount isn't known until the
// then-block has been fully parsed, so it's filled in on the node
// after the fact rather than passed to ast.NewIf.
func (p *Parser) parseIf() int {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseCondition()
	p.expect(token.RPAREN)

	node := p.tree.NewIf(tok)
	p.tree.Attach(node, cond)

	p.expect(token.LBRACE)
	thenStmts := p.parseInnerStmts()
	p.expect(token.RBRACE)
	for _, s := range thenStmts {
		p.tree.Attach(node, s)
	}
	p.tree.At(node).ThenCount = len(thenStmts)

	if p.match(token.ELSE) {
		p.tree.At(node).HasElse = true
		p.expect(token.LBRACE)
		elseStmts := p.parseInnerStmts()
		p.expect(token.RBRACE)
		for _, s := range elseStmts {
			p.tree.Attach(node, s)
		}
	}
	return node
}

// parseWhile parses whileStmt: 'while' '(' condition ')' '{'
// innerStmts '}'.
func (p *Parser) parseWhile() int {
	tok := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseCondition()
	p.expect(token.RPAREN)

	node := p.tree.NewWhile(tok)
	p.tree.Attach(node, cond)

	p.expect(token.LBRACE)
	for _, s := range p.parseInnerStmts() {
		p.tree.Attach(node, s)
	}
	p.expect(token.RBRACE)
	return node
}

// parseReturn parses returnStmt: 'return' expression? ';'.
func (p *Parser) parseReturn() int {
	tok := p.expect(token.RETURN)
	node := p.tree.NewReturn(tok)
	if !p.match(token.SEMICOLON) {
		p.tree.Attach(node, p.parseExpr())
		p.expect(token.SEMICOLON)
	}
	return node
}

// parseCallStmt parses funcCallStmt: funcCallExpr ';'.
func (p *Parser) parseCallStmt() int {
	call := p.parseCallExpr()
	p.expect(token.SEMICOLON)
	node := p.tree.NewCallStmt(p.tree.At(call).Token)
	p.tree.Attach(node, call)
	return node
}

// parseCallExpr parses funcCallExpr: ID '(' (expression (',' expression)*
// | 'void')? ')'.
func (p *Parser) parseCallExpr() int {
	idTok := p.expect(token.ID)
	node := p.tree.NewCall(idTok, idTok.Literal)

	p.expect(token.LPAREN)
	if !p.match(token.RPAREN) {
		if p.match(token.VOID) {
			p.expect(token.RPAREN)
		} else {
			p.tree.Attach(node, p.parseExpr())
			for p.match(token.COMMA) {
				p.tree.Attach(node, p.parseExpr())
			}
			p.expect(token.RPAREN)
		}
	}
	return node
}

// parseAssign parses assignStmt: ID (array)? '=' expression ';'.
func (p *Parser) parseAssign() int {
	idTok := p.expect(token.ID)
	node := p.tree.NewAssign(idTok, idTok.Literal)

	isArray, hasSize, sizeIsIdent, sizeInt, sizeIdent := p.parseOptionalArray()
	n := p.tree.At(node)
	n.IsArray, n.HasSize, n.SizeIsIdent, n.SizeInt, n.SizeIdent = isArray, hasSize, sizeIsIdent, sizeInt, sizeIdent

	p.expect(token.ASSIGN)
	p.tree.Attach(node, p.parseExpr())
	p.expect(token.SEMICOLON)
	return node
}
