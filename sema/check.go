package sema

import (
	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/stable"
	"github.com/cmmlang/cmm/token"
)

// declare checks one declareStmt (spec §4.5): every name is inserted,
// and a present initializer's computed kind must equal the declared
// kind (or, for arrays, be a brace list of matching literal kind and
// length no greater than the declared size). The array marker and the
// initializer, if any, are shared by every name in n.Names — see
// DESIGN.md's Open Question #2.
func (a *Analyzer) declare(node int, scope *stable.Table) {
	n := a.tree.At(node)

	if n.IsArray && !n.HasSize {
		a.fail("index-missing", n.Names[0], n.Token)
	}

	hasInit := len(n.Children) > 0
	if hasInit {
		initNode := n.Children[0]
		if a.tree.At(initNode).Kind == ast.KindArrayInit {
			a.checkArrayInit(node, initNode)
		} else {
			kind, isArray, wildcard := a.exprType(initNode, scope)
			if n.IsArray || isArray || (!wildcard && kind != n.DataType) {
				a.fail("type-mismatch", n.Names[0], n.Token)
			}
		}
	}

	symType := stable.Scalar(n.DataType)
	if n.IsArray {
		symType = stable.Array(n.DataType, n.SizeInt)
	}
	for _, name := range n.Names {
		if !scope.Insert(stable.Symbol{Name: name, Type: symType}) {
			a.fail("redefined", name, n.Token)
		}
	}
}

// checkArrayInit validates a declareStmt's arrayInit brace list: it
// must be an array declaration with a known size, every literal must
// share one kind equal to the declared element kind, and the list must
// not exceed the declared size.
func (a *Analyzer) checkArrayInit(declNode, initNode int) {
	decl := a.tree.At(declNode)
	if !decl.IsArray || !decl.HasSize {
		a.fail("index-missing", decl.Names[0], decl.Token)
	}

	lits := a.tree.At(initNode).Children
	var kind token.Kind
	for i, lc := range lits {
		lkind := token.INT
		if a.tree.At(lc).Kind == ast.KindRealLit {
			lkind = token.REAL
		}
		if i == 0 {
			kind = lkind
		} else if lkind != kind {
			a.fail("type-mismatch", decl.Names[0], decl.Token)
		}
	}
	if kind != decl.DataType {
		a.fail("type-mismatch", decl.Names[0], decl.Token)
	}
	if !decl.SizeIsIdent && int64(len(lits)) > decl.SizeInt {
		a.fail("type-mismatch", decl.Names[0], decl.Token)
	}
}

// assign checks one assignStmt (spec §4.5): the left symbol must
// exist, its array-ness must match the left-hand form, and its kind
// must equal the computed right-hand expression kind.
func (a *Analyzer) assign(node int, scope *stable.Table) {
	n := a.tree.At(node)

	sym, ok := scope.Find(n.Name)
	if !ok {
		a.fail("undefined", n.Name, n.Token)
	}
	if sym.Type.Kind == stable.KindFunction {
		a.fail("type-mismatch", n.Name, n.Token)
	}
	if n.IsArray != (sym.Type.Kind == stable.KindArray) {
		a.fail("type-mismatch", n.Name, n.Token)
	}
	if n.IsArray && !n.HasSize {
		a.fail("index-missing", n.Name, n.Token)
	}

	kind, isArray, wildcard := a.exprType(n.Children[0], scope)
	if isArray || (!wildcard && kind != sym.Type.Base) {
		a.fail("type-mismatch", n.Name, n.Token)
	}
}

// checkCondition enforces spec §4.5's condition rule: both operands'
// kinds must be equal, and neither may be an unresolved array form.
func (a *Analyzer) checkCondition(node int, scope *stable.Table) {
	n := a.tree.At(node)
	lk, lArr, _ := a.exprType(n.Children[0], scope)
	rk, rArr, _ := a.exprType(n.Children[1], scope)
	if lArr || rArr || lk != rk {
		a.fail("type-mismatch", "", n.Token)
	}
}

// checkCall enforces spec §4.5's call rule: the callee must exist and
// be a function, argument count must equal the declared parameter
// count, and each argument's computed kind must equal the
// corresponding parameter's kind. The built-in `write` bypasses
// argument-kind checking (its single parameter is still expected, but
// never kind-compared).
func (a *Analyzer) checkCall(node int, scope *stable.Table) token.Kind {
	n := a.tree.At(node)

	sym, ok := scope.Find(n.Name)
	if !ok {
		a.fail("undefined", n.Name, n.Token)
	}
	if sym.Type.Kind != stable.KindFunction {
		a.fail("type-mismatch", n.Name, n.Token)
	}

	if len(n.Children) != len(sym.Type.Params) {
		a.fail("param-mismatch", n.Name, n.Token)
	}

	for i, argNode := range n.Children {
		kind, isArray, wildcard := a.exprType(argNode, scope)
		if n.Name == "write" {
			continue
		}
		if isArray || (!wildcard && kind != sym.Type.Params[i].Base) {
			a.fail("param-mismatch", n.Name, n.Token)
		}
	}
	return sym.Type.Base
}

// exprType computes the (kind, isArray, wildcard) of one expression
// node, resolving every unknown-reference against scope along the way
// (spec §4.5's "type calculation over a sequence of mixed-form type
// references"). Binary chains require a uniform kind on both sides —
// CMM never promotes between int and real. wildcard is true only for
// a direct call to the built-in `read`, whose result spec §6 "treats
// as compatible with any assignment kind" — callers that are matching
// against a target kind (declare/assign/param) should skip that check
// when wildcard is set; callers that compare two computed kinds
// against each other (checkCondition, the KindBinary case below)
// leave it unused and compare read()'s actual `int` kind as normal.
func (a *Analyzer) exprType(node int, scope *stable.Table) (token.Kind, bool, bool) {
	n := a.tree.At(node)
	switch n.Kind {
	case ast.KindIntLit:
		return token.INT, false, false
	case ast.KindRealLit:
		return token.REAL, false, false
	case ast.KindIdent:
		sym, ok := scope.Find(n.Name)
		if !ok {
			a.fail("undefined", n.Name, n.Token)
		}
		if sym.Type.Kind == stable.KindFunction {
			a.fail("type-mismatch", n.Name, n.Token)
		}
		if n.IsArray != (sym.Type.Kind == stable.KindArray) {
			a.fail("type-mismatch", n.Name, n.Token)
		}
		if n.IsArray && !n.HasSize {
			a.fail("index-missing", n.Name, n.Token)
		}
		return sym.Type.Base, false, false
	case ast.KindCall:
		return a.checkCall(node, scope), false, n.Name == "read"
	case ast.KindBinary:
		lk, lArr, _ := a.exprType(n.Children[0], scope)
		rk, rArr, _ := a.exprType(n.Children[1], scope)
		if lArr || rArr || lk != rk {
			a.fail("type-mismatch", "", n.Token)
		}
		return lk, false, false
	default:
		a.fail("type-mismatch", "", n.Token)
		panic("unreachable")
	}
}
