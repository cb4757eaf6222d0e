package stable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmlang/cmm/token"
)

func TestInsertAndFind_SameScope(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "x", Type: Scalar(token.INT)}))

	sym, ok := root.Find("x")
	require.True(t, ok)
	assert.Equal(t, Scalar(token.INT), sym.Type)
}

func TestInsert_RedefinitionInSameScopeFails(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "x", Type: Scalar(token.INT)}))
	assert.False(t, root.Insert(Symbol{Name: "x", Type: Scalar(token.REAL)}))
}

func TestFind_ChildSeesParentSymbolsDeclaredBeforeItOpened(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "g", Type: Scalar(token.INT)}))

	child := root.OpenChild()
	_, ok := child.Find("g")
	assert.True(t, ok)
}

func TestFind_ChildDoesNotSeeParentSymbolsDeclaredAfterItOpened(t *testing.T) {
	root := New()
	child := root.OpenChild()
	require.True(t, root.Insert(Symbol{Name: "late", Type: Scalar(token.INT)}))

	_, ok := child.Find("late")
	assert.False(t, ok, "a sibling declared after descent must stay invisible (tie index)")
}

func TestFind_SiblingScopesAreIsolated(t *testing.T) {
	root := New()
	a := root.OpenChild()
	require.True(t, a.Insert(Symbol{Name: "local", Type: Scalar(token.INT)}))

	b := root.OpenChild()
	_, ok := b.Find("local")
	assert.False(t, ok)
}

func TestInsert_RedefinedAcrossScopeViaTieIndex(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "x", Type: Scalar(token.INT)}))
	child := root.OpenChild()
	assert.False(t, child.Insert(Symbol{Name: "x", Type: Scalar(token.REAL)}))
}

func TestInsertShadowing_BypassesRedefinitionCheck(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "x", Type: Scalar(token.INT)}))

	fnScope := root.OpenChild()
	fnScope.InsertShadowing(Symbol{Name: "x", Type: Scalar(token.REAL)})

	sym, ok := fnScope.Find("x")
	require.True(t, ok)
	assert.Equal(t, Scalar(token.REAL), sym.Type, "the shadowing parameter must win lookup in its own scope")
}

func TestFind_DeepNestingWalksToRoot(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "g", Type: Scalar(token.INT)}))
	a := root.OpenChild()
	b := a.OpenChild()
	c := b.OpenChild()

	_, ok := c.Find("g")
	assert.True(t, ok)
}

func TestFind_SymbolScopeIsItsOwningTable(t *testing.T) {
	root := New()
	child := root.OpenChild()
	require.True(t, child.Insert(Symbol{Name: "local", Type: Scalar(token.INT)}))

	sym, ok := child.Find("local")
	require.True(t, ok)
	assert.Same(t, child, sym.Scope)
}

func TestDump_RendersNestedScopesAndSymbols(t *testing.T) {
	root := New()
	require.True(t, root.Insert(Symbol{Name: "main", Type: Function(token.VOID, nil)}))
	child := root.OpenChild()
	require.True(t, child.Insert(Symbol{Name: "n", Type: Array(token.INT, 3)}))

	out := root.Dump()
	assert.Contains(t, out, "main: function() -> VOID")
	assert.Contains(t, out, "n: INT[3]")
}
