package ir

import (
	"strconv"

	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/token"
)

var arithOp = map[token.Kind]string{
	token.PLUS:   "+",
	token.MINUS:  "-",
	token.TIMES:  "*",
	token.DIVIDE: "/",
}

var condOp = map[token.Kind]string{
	token.LT:     "j<",
	token.GT:     "j>",
	token.EQUAL:  "j==",
	token.NEQUAL: "j<>",
}

// evalExpr lowers one expression node and returns the name holding its
// value once execution reaches this point. That name is always a fresh
// temp: a literal, a plain reference, and a subscripted reference are
// each copied into one, as are arithmetic and call results.
func (e *Emitter) evalExpr(node int) string {
	n := e.tree.At(node)
	switch n.Kind {
	case ast.KindIntLit, ast.KindRealLit:
		temp := e.newTemp()
		e.emit(Op{Code: "=", Arg1: n.Token.Literal, Target: temp})
		return temp

	case ast.KindIdent:
		temp := e.newTemp()
		if n.IsArray {
			idx := e.subscriptOperand(n)
			e.emit(Op{Code: "=[]", Arg1: n.Name, Arg2: idx, Target: temp})
		} else {
			e.emit(Op{Code: "=", Arg1: n.Name, Target: temp})
		}
		return temp

	case ast.KindCall:
		return e.emitCallExpr(node)

	case ast.KindBinary:
		left := e.evalExpr(n.Children[0])
		right := e.evalExpr(n.Children[1])
		temp := e.newTemp()
		e.emit(Op{Code: arithOp[n.Op], Arg1: left, Arg2: right, Target: temp})
		return temp
	}
	panic("ir: unhandled expression kind")
}

// subscriptOperand renders a node's array subscript (shared with
// declaration sizes — spec's grammar uses one `array` production for
// both) as the literal or identifier text the interpreter resolves at
// run time.
func (e *Emitter) subscriptOperand(n *ast.Node) string {
	if n.SizeIsIdent {
		return n.SizeIdent
	}
	return strconv.FormatInt(n.SizeInt, 10)
}

// emitCondition lowers a condition node into its argument evaluation
// plus a single conditional-branch op whose Target is a placeholder;
// it returns that op's line so the caller can patch it once the
// jump's destination is known (spec §4.6: the branch fires "when the
// condition is FALSE").
func (e *Emitter) emitCondition(node int) int {
	n := e.tree.At(node)
	left := e.evalExpr(n.Children[0])
	right := e.evalExpr(n.Children[1])
	return e.emit(Op{Code: condOp[n.Op], Arg1: left, Arg2: right})
}

// emitCallExpr lowers a funcCallExpr used in expression position:
// argument evaluation, staging into _p<i>, the planned return address
// into _ra, the call itself, and a copy of _rv into a fresh temp
// (spec §4.6).
func (e *Emitter) emitCallExpr(node int) string {
	n := e.tree.At(node)

	argTemps := make([]string, len(n.Children))
	for i, arg := range n.Children {
		argTemps[i] = e.evalExpr(arg)
	}
	for i, argTemp := range argTemps {
		e.emit(Op{Code: "p=", Arg1: argTemp, Target: "_p" + strconv.Itoa(i)})
	}

	// The `=` op that sets _ra occupies the next line, the `c` op the
	// line after that, so the return address is two lines ahead.
	retAddr := e.line() + 2
	e.emit(Op{Code: "=", Arg1: strconv.Itoa(retAddr), Target: "_ra"})
	e.emit(Op{Code: "c", Target: n.Name})

	result := e.newTemp()
	e.emit(Op{Code: "=", Arg1: "_rv", Target: result})
	return result
}
