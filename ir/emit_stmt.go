package ir

import (
	"strconv"

	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/token"
)

// emitStmtList lowers an ordered list of innerStmts-level nodes.
func (e *Emitter) emitStmtList(nodes []int) {
	for _, node := range nodes {
		e.emitStmt(node)
	}
}

func (e *Emitter) emitStmt(node int) {
	n := e.tree.At(node)
	switch n.Kind {
	case ast.KindDeclare:
		e.emitDeclare(node)
	case ast.KindAssign:
		e.emitAssign(node)
	case ast.KindIf:
		e.emitIf(node)
	case ast.KindWhile:
		e.emitWhile(node)
	case ast.KindCallStmt:
		e.evalExpr(n.Children[0])
	case ast.KindReturn:
		e.emitReturn(node)
	}
}

// typedDeclPrefix is the `_i`/`_f` marker the `=` opcode's Arg1 carries
// to signal a typed declaration (spec §4.6).
func typedDeclPrefix(kind token.Kind) string {
	if kind == token.REAL {
		return "_f"
	}
	return "_i"
}

func declareTarget(name string, isArray bool) string {
	if isArray {
		return name + "[]"
	}
	return name
}

// emitDeclare lowers a declareStmt (spec §4.6). Its shared initializer
// (see DESIGN.md Open Question #2) is evaluated once and then applied
// to every declared name, each preceded by its own typed declare op.
func (e *Emitter) emitDeclare(node int) {
	n := e.tree.At(node)

	hasInit := len(n.Children) > 0
	var scalarTemp string
	var arrayLits []int
	if hasInit {
		initNode := n.Children[0]
		if e.tree.At(initNode).Kind == ast.KindArrayInit {
			arrayLits = e.tree.At(initNode).Children
		} else {
			scalarTemp = e.evalExpr(initNode)
		}
	}

	sizeOperand := ""
	if n.IsArray {
		sizeOperand = e.subscriptOperand(n)
	}

	for _, name := range n.Names {
		e.emit(Op{Code: "=", Arg1: typedDeclPrefix(n.DataType), Arg2: sizeOperand, Target: declareTarget(name, n.IsArray)})
		if !hasInit {
			continue
		}
		if arrayLits != nil {
			for idx, litNode := range arrayLits {
				lit := e.tree.At(litNode)
				e.emit(Op{Code: "[]=", Arg1: strconv.Itoa(idx), Arg2: lit.Token.Literal, Target: name})
			}
		} else {
			e.emit(Op{Code: "=", Arg1: scalarTemp, Target: name})
		}
	}
}

// emitAssign lowers an assignStmt: evaluate the right-hand side, then
// either store into the named array slot or copy into the scalar.
func (e *Emitter) emitAssign(node int) {
	n := e.tree.At(node)
	value := e.evalExpr(n.Children[0])
	if n.IsArray {
		idx := e.subscriptOperand(n)
		e.emit(Op{Code: "[]=", Arg1: idx, Arg2: value, Target: n.Name})
	} else {
		e.emit(Op{Code: "=", Arg1: value, Target: n.Name})
	}
}

// emitIf lowers an ifStmt (spec §4.6): the condition's branch target
// becomes the else block's first line (or the line after the then
// block, if there's no else); when an else block exists, the then
// block ends with an unconditional jump past it.
func (e *Emitter) emitIf(node int) {
	n := e.tree.At(node)
	condLine := e.emitCondition(n.Children[0])

	thenStmts := n.Children[1 : 1+n.ThenCount]
	e.emitStmtList(thenStmts)

	if n.HasElse {
		skipElse := e.emit(Op{Code: "j"})
		e.patchTarget(condLine, e.line())

		elseStmts := n.Children[1+n.ThenCount:]
		e.emitStmtList(elseStmts)

		e.patchTarget(skipElse, e.line())
	} else {
		e.patchTarget(condLine, e.line())
	}
}

// emitWhile lowers a whileStmt (spec §4.6): re-evaluate and re-test
// the condition on every iteration by jumping back to its first op.
// The condition's branch targets the op after that backward jump, so
// a false condition leaves the loop.
func (e *Emitter) emitWhile(node int) {
	n := e.tree.At(node)
	condStart := e.line()
	condLine := e.emitCondition(n.Children[0])

	e.emitStmtList(n.Children[1:])

	e.emit(Op{Code: "j", Target: strconv.Itoa(condStart)})
	e.patchTarget(condLine, e.line())
}

// emitReturn lowers a returnStmt: copy the expression's value (or 0)
// into _rv, then emit the frame-popping `r` op.
func (e *Emitter) emitReturn(node int) {
	n := e.tree.At(node)
	if len(n.Children) > 0 {
		value := e.evalExpr(n.Children[0])
		e.emit(Op{Code: "=", Arg1: value, Target: "_rv"})
	} else {
		e.emit(Op{Code: "=", Arg1: "0", Target: "_rv"})
	}
	e.emit(Op{Code: "r"})
}

// emitFuncDef lowers a funcDefStmt (spec §4.6): a header naming the
// entry line, an unconditional jump over the body (so ordinary
// top-level flow skips it), the parameter receives, then the body
// itself.
func (e *Emitter) emitFuncDef(node int) {
	n := e.tree.At(node)

	var params []int
	var stmts []int
	for _, c := range n.Children {
		if e.tree.At(c).Kind == ast.KindParam {
			params = append(params, c)
		} else {
			stmts = append(stmts, c)
		}
	}

	header := e.emit(Op{Code: "f=", Target: n.Name})
	skip := e.emit(Op{Code: "j"})
	entry := e.line()
	e.ops[header].Arg1 = strconv.Itoa(entry)

	for i, paramNode := range params {
		p := e.tree.At(paramNode)
		e.emit(Op{Code: "=", Arg1: typedDeclPrefix(p.DataType), Target: p.Name})
		e.emit(Op{Code: "=p", Arg1: "_p" + strconv.Itoa(i), Target: p.Name})
	}

	e.emitStmtList(stmts)

	e.patchTarget(skip, e.line())
}
