package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmlang/cmm/interp"
)

func streams(in string) (interp.InputStream, *strings.Builder, *strings.Builder) {
	var out, errs strings.Builder
	return interp.NewLineInput(strings.NewReader(in)), &out, &errs
}

func TestRun_LexerModeProducesTokenDump(t *testing.T) {
	in, out, errs := streams("")
	res := Run(`void main(){ write(1); }`, ModeLexer, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.Nil(t, res.Diag)
	assert.Contains(t, res.TokenDump, "VOID")
	assert.Nil(t, res.Tree)
}

func TestRun_ParserModeProducesASTDump(t *testing.T) {
	in, out, errs := streams("")
	res := Run(`void main(){ write(1); }`, ModeParser, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.Nil(t, res.Diag)
	require.NotNil(t, res.Tree)
	assert.NotEmpty(t, res.ASTDump)
}

func TestRun_SemanticModeReportsNoMain(t *testing.T) {
	in, out, errs := streams("")
	res := Run(`int add(int a, int b){ return a+b; }`, ModeSemantic, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.NotNil(t, res.Diag)
	assert.Contains(t, res.Diag.Heading, "no-main")
}

func TestRun_CompileModeProducesIRDump(t *testing.T) {
	in, out, errs := streams("")
	res := Run(`void main(){ write(1+2); }`, ModeCompile, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.Nil(t, res.Diag)
	assert.NotEmpty(t, res.IRDump)
}

func TestRun_ExecuteModeWritesProgramOutput(t *testing.T) {
	in, out, errs := streams("")
	res := Run(`void main(){ write(1+2); }`, ModeExecute, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.Nil(t, res.Diag)
	require.Nil(t, res.RuntimeErr)
	assert.Equal(t, "3\n", out.String())
}

func TestRun_ExecuteModeReportsRuntimeError(t *testing.T) {
	in, out, errs := streams("")
	res := Run(`void main(){ int a; int b; a=1; b=0; write(a/b); }`, ModeExecute, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.NotNil(t, res.RuntimeErr)
	assert.Equal(t, "divide-by-zero", res.RuntimeErr.Kind)
	assert.Contains(t, errs.String(), "divide-by-zero")
}

func TestRun_LexerModeReportsInvalidToken(t *testing.T) {
	in, out, errs := streams("")
	res := Run("void main(){ @ }", ModeLexer, in, interp.NewWriterOutput(out), interp.NewWriterError(errs))
	require.NotNil(t, res.Diag)
	assert.Contains(t, res.Diag.Heading, "Invalid token")
}

func TestDiagnostic_RenderHasCaretUnderColumn(t *testing.T) {
	d := Diagnostic{Heading: "Invalid token near row 1, column 5:", Row: 1, Column: 5, Source: "abcdefgh"}
	rendered := d.Render()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "    ^", lines[3])
}
