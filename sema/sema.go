/*
Package sema implements CMM's semantic analyzer (spec §4.5): a
depth-first walk over an ast.Tree that builds the stable.Table scope
hierarchy as it goes and validates every construct against spec's type
rules. The walk seeds two built-ins (read, write) into the root scope
before visiting a single user node, and finishes by requiring a
top-level void-returning `main`.

Each block's own statement list is driven by an explicit LIFO stack
(spec §4.5: "walks the AST depth-first using an explicit work stack"),
pushed in reverse so popping yields the statements in source order;
descending into a nested block (an if/while branch or a function body)
opens its own child scope and recurses into a fresh stack for that
block's statements, rather than sharing one stack across scope
boundaries.
*/
package sema

import (
	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/stable"
	"github.com/cmmlang/cmm/token"
)

// Analyzer walks one ast.Tree, building its scope hierarchy in root.
type Analyzer struct {
	tree *ast.Tree
	root *stable.Table
}

// Analyze runs the semantic analyzer over tree. It returns the root of
// the resulting scope hierarchy, and the first semantic error
// encountered, if any.
func Analyze(tree *ast.Tree) (*stable.Table, *Error) {
	a := &Analyzer{tree: tree, root: stable.New()}
	a.seedBuiltins()

	var result *Error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if ab, ok := r.(abort); ok {
					result = ab.err
					return
				}
				panic(r)
			}
		}()
		a.walkBlock(tree.Root().Children, a.root, nil)
		a.checkMain()
	}()
	return a.root, result
}

// seedBuiltins installs the two functions spec §4.5/§6 requires exist
// in the root scope before the walk begins. InsertShadowing is used
// rather than Insert purely so a user program that happens to declare
// a symbol named "read"/"write" fails with the ordinary `redefined`
// check at its own declaration site instead of two built-ins racing to
// be first.
func (a *Analyzer) seedBuiltins() {
	a.root.InsertShadowing(stable.Symbol{
		Name: "read",
		Type: stable.Function(token.INT, nil),
	})
	a.root.InsertShadowing(stable.Symbol{
		Name: "write",
		Type: stable.Function(token.VOID, []stable.SType{stable.Unknown()}),
	})
}

func (a *Analyzer) fail(kind, name string, tok token.Token) {
	row, col := locOf(tok)
	panic(abort{&Error{Kind: kind, Name: name, Row: row, Column: col}})
}

// checkMain enforces spec §4.5's program-shape rule: after the walk, a
// top-level `main` must exist, be a function, and return void.
func (a *Analyzer) checkMain() {
	sym, ok := a.root.Find("main")
	if !ok || sym.Type.Kind != stable.KindFunction || sym.Type.Base != token.VOID {
		a.fail("no-main", "main", token.Token{})
	}
}

// walkBlock drives one block's statement list (top-level, a function
// body, or an if/while branch) through an explicit stack.
func (a *Analyzer) walkBlock(children []int, scope *stable.Table, fn *stable.SType) {
	stack := make([]int, len(children))
	copy(stack, children)
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a.visit(node, scope, fn)
	}
}

// visit dispatches one node popped off a block's work stack. Top-level
// nodes are either declarations or function definitions; everything
// else is an innerStmts-level construct.
func (a *Analyzer) visit(node int, scope *stable.Table, fn *stable.SType) {
	n := a.tree.At(node)
	switch n.Kind {
	case ast.KindDeclare:
		a.declare(node, scope)
	case ast.KindFuncDef:
		a.funcDef(node)
	case ast.KindAssign:
		a.assign(node, scope)
	case ast.KindIf:
		a.ifStmt(node, scope, fn)
	case ast.KindWhile:
		a.whileStmt(node, scope, fn)
	case ast.KindCallStmt:
		a.checkCall(n.Children[0], scope)
	case ast.KindReturn:
		a.returnStmt(node, scope, fn)
	}
}

// funcDef inserts the function's own symbol into scope (before
// visiting its body, so recursive calls resolve), opens a fresh body
// scope with its parameters shadowed in, and walks its statements.
func (a *Analyzer) funcDef(node int) {
	n := a.tree.At(node)

	var params []stable.SType
	var stmts []int
	for _, c := range n.Children {
		if a.tree.At(c).Kind == ast.KindParam {
			params = append(params, stable.Scalar(a.tree.At(c).DataType))
		} else {
			stmts = append(stmts, c)
		}
	}

	fnType := stable.Function(n.DataType, params)
	if !a.root.Insert(stable.Symbol{Name: n.Name, Type: fnType}) {
		a.fail("redefined", n.Name, n.Token)
	}

	bodyScope := a.root.OpenChild()
	for _, c := range n.Children {
		pn := a.tree.At(c)
		if pn.Kind == ast.KindParam {
			bodyScope.InsertShadowing(stable.Symbol{Name: pn.Name, Type: stable.Scalar(pn.DataType)})
		}
	}

	a.walkBlock(stmts, bodyScope, &fnType)
}

func (a *Analyzer) ifStmt(node int, scope *stable.Table, fn *stable.SType) {
	n := a.tree.At(node)
	a.checkCondition(n.Children[0], scope)

	thenStmts := n.Children[1 : 1+n.ThenCount]
	thenScope := scope.OpenChild()
	a.walkBlock(thenStmts, thenScope, fn)

	if n.HasElse {
		elseStmts := n.Children[1+n.ThenCount:]
		elseScope := scope.OpenChild()
		a.walkBlock(elseStmts, elseScope, fn)
	}
}

func (a *Analyzer) whileStmt(node int, scope *stable.Table, fn *stable.SType) {
	n := a.tree.At(node)
	a.checkCondition(n.Children[0], scope)

	bodyScope := scope.OpenChild()
	a.walkBlock(n.Children[1:], bodyScope, fn)
}

func (a *Analyzer) returnStmt(node int, scope *stable.Table, fn *stable.SType) {
	n := a.tree.At(node)
	if fn == nil {
		return // unreachable: the grammar never lets return escape a function body
	}
	if len(n.Children) == 0 {
		if fn.Base != token.VOID {
			a.fail("type-mismatch", "return", n.Token)
		}
		return
	}
	kind, isArray, wildcard := a.exprType(n.Children[0], scope)
	if isArray || fn.Base == token.VOID || (!wildcard && kind != fn.Base) {
		a.fail("type-mismatch", "return", n.Token)
	}
}
