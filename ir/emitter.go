package ir

import (
	"fmt"
	"strconv"

	"github.com/cmmlang/cmm/ast"
)

// Emitter lowers one ast.Tree into a flat Op list. It owns its own
// line counter rather than relying on package-level mutable state
// (spec §9 design note on the original's "mutable Code.line
// class-level counter"): each compile gets a fresh Emitter.
type Emitter struct {
	tree *ast.Tree
	ops  []Op
}

// New creates an Emitter over tree.
func New(tree *ast.Tree) *Emitter {
	return &Emitter{tree: tree}
}

// Emit lowers the whole program and returns the finished Op list.
func (e *Emitter) Emit() []Op {
	for _, child := range e.tree.Root().Children {
		n := e.tree.At(child)
		switch n.Kind {
		case ast.KindDeclare:
			e.emitDeclare(child)
		case ast.KindFuncDef:
			e.emitFuncDef(child)
		}
	}
	return e.ops
}

// line reports the line the next emitted op will receive.
func (e *Emitter) line() int {
	return len(e.ops)
}

// emit appends op, stamping it with the current line, and returns that
// line so callers can backpatch a jump target once it's known.
func (e *Emitter) emit(op Op) int {
	op.Line = e.line()
	e.ops = append(e.ops, op)
	return op.Line
}

// patchTarget rewrites the Target field of the op at line to val,
// after both the jump and its destination have been emitted.
func (e *Emitter) patchTarget(line int, val int) {
	e.ops[line].Target = strconv.Itoa(val)
}

// newTemp names the scratch register that the *next* emitted op will
// produce, `_t<line>` (spec §4.6): the line counter doubles as the
// temp's unique suffix, so no separate counter is needed.
func (e *Emitter) newTemp() string {
	return fmt.Sprintf("_t%d", e.line())
}
