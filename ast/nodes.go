package ast

import "github.com/cmmlang/cmm/token"

// NewProgram creates the single KindProgram root of the tree. Callers
// should call this first; its index is always 0.
func (t *Tree) NewProgram() int {
	return t.add(KindProgram, "program", token.Token{})
}

// NewFuncDef creates a function definition node. name and retType are
// recorded directly on the node per spec §3 ("function-id nodes carry
// return type and parameter list reference") — the parameter list is
// simply the node's KindParam children.
func (t *Tree) NewFuncDef(tok token.Token, name string, retType token.Kind) int {
	idx := t.add(KindFuncDef, "function definition", tok)
	n := t.At(idx)
	n.Name = name
	n.DataType = retType
	return idx
}

// NewParam creates one function parameter (dataType ID).
func (t *Tree) NewParam(tok token.Token, name string, dataType token.Kind) int {
	idx := t.add(KindParam, "parameter", tok)
	n := t.At(idx)
	n.Name = name
	n.DataType = dataType
	return idx
}

// NewDeclare creates a declareStmt node for one or more declared names
// that all share a single dataType and array-ness. Arrays carry
// IsArray/HasSize/size payload; scalar declarations leave those at
// their zero values. The optional initializer (an expression or an
// arrayInit brace list) is attached as this node's only child, if
// present, and applies identically to every name in the list.
func (t *Tree) NewDeclare(tok token.Token, names []string, dataType token.Kind) int {
	idx := t.add(KindDeclare, "declaration", tok)
	n := t.At(idx)
	n.Names = names
	n.DataType = dataType
	return idx
}

// NewAssign creates an assignStmt node. The left-hand name and
// optional array subscript live on the node; the right-hand
// expression is attached as the sole child.
func (t *Tree) NewAssign(tok token.Token, name string) int {
	idx := t.add(KindAssign, "assignment", tok)
	t.At(idx).Name = name
	return idx
}

// NewIf creates an ifStmt node. Children, in order: the condition,
// then the then-block's statements, then (if HasElse) the
// else-block's statements. The parser fills in ThenCount and HasElse
// once both branches have been parsed, since the split point isn't
// known until the then-block's closing brace is seen.
func (t *Tree) NewIf(tok token.Token) int {
	return t.add(KindIf, "if statement", tok)
}

// NewWhile creates a whileStmt node. Children, in order: condition,
// then the body's statements.
func (t *Tree) NewWhile(tok token.Token) int {
	return t.add(KindWhile, "while statement", tok)
}

// NewCall creates a funcCallExpr node (used either as an expression or
// wrapped by NewCallStmt). Arguments are attached as ordered children.
func (t *Tree) NewCall(tok token.Token, name string) int {
	idx := t.add(KindCall, "call", tok)
	t.At(idx).Name = name
	return idx
}

// NewCallStmt wraps a funcCallExpr used as a bare statement.
func (t *Tree) NewCallStmt(tok token.Token) int {
	return t.add(KindCallStmt, "call statement", tok)
}

// NewReturn creates a returnStmt node. The returned expression, if
// any, is attached as the sole child.
func (t *Tree) NewReturn(tok token.Token) int {
	return t.add(KindReturn, "return statement", tok)
}

// NewBinary creates an arithmetic expression/term node for op.
// Children, in order: left operand, right operand.
func (t *Tree) NewBinary(tok token.Token, op token.Kind) int {
	idx := t.add(KindBinary, "binary expression", tok)
	t.At(idx).Op = op
	return idx
}

// NewCompare creates a condition node for a comparison operator.
// Children, in order: left operand, right operand.
func (t *Tree) NewCompare(tok token.Token, op token.Kind) int {
	idx := t.add(KindCompare, "condition", tok)
	t.At(idx).Op = op
	return idx
}

// NewIntLit creates an integer literal leaf.
func (t *Tree) NewIntLit(tok token.Token) int {
	return t.add(KindIntLit, "integer literal", tok)
}

// NewRealLit creates a real literal leaf.
func (t *Tree) NewRealLit(tok token.Token) int {
	return t.add(KindRealLit, "real literal", tok)
}

// NewArrayInit creates an arrayInit brace list. Its literal elements
// (KindIntLit/KindRealLit nodes) are attached as ordered children.
func (t *Tree) NewArrayInit(tok token.Token) int {
	return t.add(KindArrayInit, "array initializer", tok)
}

// NewIdent creates an identifier reference, optionally subscripted
// (array). The node has no children: a subscript, if present, is an
// integer literal or identifier kept in the HasSize/SizeIsIdent/
// SizeInt/SizeIdent payload; IsArray marks that a `[...]` form was used at all
// (needed even when the subscript expression itself is absent, e.g.
// bare `a[]` positions the grammar disallows at use sites — see
// index-missing in spec §4.5).
func (t *Tree) NewIdent(tok token.Token, name string) int {
	idx := t.add(KindIdent, "identifier", tok)
	t.At(idx).Name = name
	return idx
}
