/*
Package ast defines the CMM abstract syntax tree (spec §3, §4.3).

Rather than a pointer tree with parent back-edges — which invites
reference cycles in Go and makes the tree harder to copy or print —
nodes live in a single arena (Tree.Nodes) and refer to each other by
integer index (spec §9 design note). Tree.Attach sets both the child's
Parent index and the parent's Children slice, so the structure is
always consistent and needs no manual bookkeeping at each call site.
*/
package ast

import "github.com/cmmlang/cmm/token"

// Kind tags every grammar variant the parser can produce (spec §4.3).
type Kind int

const (
	KindProgram   Kind = iota // exterStmts: the whole translation unit
	KindFuncDef               // funcDefStmt
	KindParam                 // a single funcDefParam
	KindDeclare               // declareStmt
	KindAssign                // assignStmt
	KindIf                    // ifStmt
	KindWhile                 // whileStmt
	KindCallStmt              // funcCallStmt (a bare call used as a statement)
	KindReturn                // returnStmt
	KindCall                  // funcCallExpr used in an expression position
	KindBinary                // expression/term: + - * /
	KindCompare               // condition: < > == <>
	KindIntLit                // INT_LITERAL
	KindRealLit               // REAL_LITERAL
	KindIdent                 // ID, optionally subscripted
	KindArrayInit             // arrayInit: a homogeneous brace list of literals
)

// Node is one arena slot. Every node carries its Kind, a short
// Category label for display (spec §3: "a short category label for
// display"), its Parent index (-1 for the root), and its ordered
// Children. Leaf variants additionally carry Token, the token they
// were scanned from.
//
// The remaining fields are payload, used only by the Kinds that need
// them; see the per-Kind comments on the constructor methods in
// nodes.go for which fields apply to which Kind.
type Node struct {
	Kind     Kind
	Category string
	Token    token.Token
	Parent   int
	Children []int

	// Name holds an identifier's or function's name (KindIdent,
	// KindFuncDef, KindParam, KindCall, KindAssign).
	Name string

	// Names holds the comma-separated name list of a KindDeclare node
	// ("dataType (array)? ID (',' ID)*"): one declareStmt always shares
	// a single dataType/array-ness/initializer across every name in
	// the list, so the node carries them all rather than splitting
	// into one KindDeclare per name.
	Names []string

	// DataType holds the declared/return type for KindDeclare,
	// KindParam, and KindFuncDef: one of token.INT, token.REAL, or
	// token.VOID.
	DataType token.Kind

	// IsArray marks an array-form declaration, parameter, or
	// reference (the trailing `[...]` in the grammar).
	IsArray bool

	// HasSize reports whether an array node's brackets hold a size or
	// subscript (a declaration's `[3]`, a use site's `[2]` or `[i]`), as
	// opposed to an empty `[]`. SizeIsIdent distinguishes a literal
	// (SizeInt) from an identifier (SizeIdent).
	HasSize     bool
	SizeIsIdent bool
	SizeInt     int64
	SizeIdent   string

	// Op carries the operator token.Kind for KindBinary/KindCompare
	// nodes (token.PLUS, token.LT, ...).
	Op token.Kind

	// ThenCount and HasElse partition a KindIf node's children: child 0
	// is always the condition; the next ThenCount children are the
	// then-branch; HasElse marks whether an else clause was present at
	// all (its statements, if any, are every remaining child).
	ThenCount int
	HasElse   bool

	// ResolvedType and ResolvedIsArray are the "settable symbol type"
	// spec §3 calls for on identifier-bearing nodes: the semantic
	// analyzer fills these in after resolving the node against the
	// symbol table, so the IR emitter never has to re-run lookup.
	ResolvedType    token.Kind
	ResolvedIsArray bool
}

// Tree is the arena holding every node of one compiled program. Index
// 0 is always the KindProgram root once Tree.NewProgram has been
// called.
type Tree struct {
	Nodes []Node
}

// New creates an empty arena.
func New() *Tree {
	return &Tree{}
}

// add appends a node with no parent and no children yet, returning its
// index.
func (t *Tree) add(kind Kind, category string, tok token.Token) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Kind: kind, Category: category, Token: tok, Parent: -1})
	return idx
}

// Attach records child as the next ordered child of parent, and sets
// child's Parent index. A node may only be attached once.
func (t *Tree) Attach(parent, child int) {
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, child)
	t.Nodes[child].Parent = parent
}

// At returns a pointer to the node at idx, so callers can both read
// and mutate payload fields (e.g. the semantic analyzer setting
// ResolvedType) without copying the whole Node.
func (t *Tree) At(idx int) *Node {
	return &t.Nodes[idx]
}

// Root returns the program root, index 0.
func (t *Tree) Root() *Node {
	return &t.Nodes[0]
}
