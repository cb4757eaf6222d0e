package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/lexer"
	"github.com/cmmlang/cmm/token"
)

func mustParse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree, err := New(lexer.NewFromString(src)).Parse()
	require.Nil(t, err, "unexpected parse error: %+v", err)
	return tree
}

func TestParse_HelloWorldProgram(t *testing.T) {
	tree := mustParse(t, `void main(){ write(1); }`)

	root := tree.Root()
	require.Len(t, root.Children, 1)

	fn := tree.At(root.Children[0])
	assert.Equal(t, ast.KindFuncDef, fn.Kind)
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, token.VOID, fn.DataType)
	require.Len(t, fn.Children, 2)

	call := tree.At(fn.Children[0])
	assert.Equal(t, ast.KindCallStmt, call.Kind)

	ret := tree.At(fn.Children[1])
	assert.Equal(t, ast.KindReturn, ret.Kind)
	assert.Empty(t, ret.Children, "synthesized return should be bare")
}

func TestParse_ExplicitReturnIsNotDuplicated(t *testing.T) {
	tree := mustParse(t, `int add(int a, int b) { return a + b; }`)

	fn := tree.At(tree.Root().Children[0])
	require.Len(t, fn.Children, 3) // two params + one return
	ret := tree.At(fn.Children[2])
	assert.Equal(t, ast.KindReturn, ret.Kind)
	require.Len(t, ret.Children, 1)
}

func TestParse_IfElseThenCountSplit(t *testing.T) {
	tree := mustParse(t, `
void main(){
  if (1 == 1) { write(1); write(2); } else { write(3); }
}`)

	fn := tree.At(tree.Root().Children[0])
	ifNode := tree.At(fn.Children[0])
	require.Equal(t, ast.KindIf, ifNode.Kind)
	assert.Equal(t, 2, ifNode.ThenCount)
	assert.True(t, ifNode.HasElse)
	require.Len(t, ifNode.Children, 4) // condition + 2 then + 1 else
}

func TestParse_IfWithoutElse(t *testing.T) {
	tree := mustParse(t, `void main(){ if (1 == 1) { write(1); } }`)

	fn := tree.At(tree.Root().Children[0])
	ifNode := tree.At(fn.Children[0])
	assert.Equal(t, 1, ifNode.ThenCount)
	assert.False(t, ifNode.HasElse)
	require.Len(t, ifNode.Children, 2)
}

func TestParse_WhileLoop(t *testing.T) {
	tree := mustParse(t, `void main(){ while (1 == 1) { write(1); } }`)

	fn := tree.At(tree.Root().Children[0])
	wh := tree.At(fn.Children[0])
	require.Equal(t, ast.KindWhile, wh.Kind)
	require.Len(t, wh.Children, 2)
	assert.Equal(t, ast.KindCompare, tree.At(wh.Children[0]).Kind)
}

func TestParse_DeclareMultiNameWithArrayAndInit(t *testing.T) {
	tree := mustParse(t, `void main(){ int[3] a, b = {1,2,3}; }`)

	fn := tree.At(tree.Root().Children[0])
	decl := tree.At(fn.Children[0])
	require.Equal(t, ast.KindDeclare, decl.Kind)
	assert.Equal(t, []string{"a", "b"}, decl.Names)
	assert.True(t, decl.IsArray)
	assert.True(t, decl.HasSize)
	assert.Equal(t, int64(3), decl.SizeInt)
	require.Len(t, decl.Children, 1)

	init := tree.At(decl.Children[0])
	assert.Equal(t, ast.KindArrayInit, init.Kind)
	require.Len(t, init.Children, 3)
}

func TestParse_TopLevelArrayDeclarationNotConfusedWithFuncDef(t *testing.T) {
	tree := mustParse(t, `int[5] nums;`)

	root := tree.Root()
	require.Len(t, root.Children, 1)
	decl := tree.At(root.Children[0])
	assert.Equal(t, ast.KindDeclare, decl.Kind)
	assert.True(t, decl.IsArray)
}

func TestParse_TopLevelDeclareVsFuncDefDisambiguation(t *testing.T) {
	tree := mustParse(t, `
int x;
int add(int a, int b) { return a + b; }
`)
	root := tree.Root()
	require.Len(t, root.Children, 2)
	assert.Equal(t, ast.KindDeclare, tree.At(root.Children[0]).Kind)

	fn := tree.At(root.Children[1])
	assert.Equal(t, ast.KindFuncDef, fn.Kind)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Children, 3) // two params + explicit return
	assert.Equal(t, ast.KindParam, tree.At(fn.Children[0]).Kind)
	assert.Equal(t, ast.KindParam, tree.At(fn.Children[1]).Kind)
}

func TestParse_ExpressionFoldsLeftToRightRespectingPrecedence(t *testing.T) {
	tree := mustParse(t, `void main(){ x = 1 + 2 * 3; }`)

	fn := tree.At(tree.Root().Children[0])
	assign := tree.At(fn.Children[0])
	require.Equal(t, ast.KindAssign, assign.Kind)

	expr := tree.At(assign.Children[0])
	require.Equal(t, ast.KindBinary, expr.Kind)
	assert.Equal(t, token.PLUS, expr.Op)

	left := tree.At(expr.Children[0])
	assert.Equal(t, ast.KindIntLit, left.Kind)

	right := tree.At(expr.Children[1])
	require.Equal(t, ast.KindBinary, right.Kind)
	assert.Equal(t, token.TIMES, right.Op)
}

func TestParse_CallExprNestedInsideExpression(t *testing.T) {
	tree := mustParse(t, `void main(){ y = add(1,2) + 3; }`)

	fn := tree.At(tree.Root().Children[0])
	assign := tree.At(fn.Children[0])
	expr := tree.At(assign.Children[0])
	require.Equal(t, ast.KindBinary, expr.Kind)

	call := tree.At(expr.Children[0])
	assert.Equal(t, ast.KindCall, call.Kind)
	assert.Equal(t, "add", call.Name)
	require.Len(t, call.Children, 2)
}

func TestParse_SyntaxErrorHaltsAtFirstMismatch(t *testing.T) {
	_, err := New(lexer.NewFromString(`void main(){ write(1) }`)).Parse()
	require.NotNil(t, err)
	assert.Contains(t, err.Expected, token.SEMICOLON)
	assert.Equal(t, 1, err.Row)
}

func TestParse_AssignWithArrayIndex(t *testing.T) {
	tree := mustParse(t, `void main(){ a[i] = 1; }`)

	fn := tree.At(tree.Root().Children[0])
	assign := tree.At(fn.Children[0])
	assert.True(t, assign.IsArray)
	assert.True(t, assign.HasSize)
	assert.True(t, assign.SizeIsIdent)
	assert.Equal(t, "i", assign.SizeIdent)
}
