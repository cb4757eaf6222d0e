/*
Package pipeline orchestrates the lexer, parser, sema, ir, and interp
packages into the five host-visible modes spec §6 names — lexer,
parser, semantic, compile, execute — and renders the spec §7
diagnostic format shared by every stage's failure. It is the one place
that knows how to run the whole toolchain end to end; cmd/cmmc is a
thin shell over it.
*/
package pipeline

import (
	"fmt"
	"strings"

	"github.com/cmmlang/cmm/ast"
	"github.com/cmmlang/cmm/interp"
	"github.com/cmmlang/cmm/ir"
	"github.com/cmmlang/cmm/lexer"
	"github.com/cmmlang/cmm/parser"
	"github.com/cmmlang/cmm/sema"
	"github.com/cmmlang/cmm/stable"
	"github.com/cmmlang/cmm/token"
)

// Mode selects how far through the pipeline Run carries a source
// file (spec §6's "host-visible pipeline modes").
type Mode string

const (
	ModeLexer    Mode = "lexer"
	ModeParser   Mode = "parser"
	ModeSemantic Mode = "semantic"
	ModeCompile  Mode = "compile"
	ModeExecute  Mode = "execute"
)

// Diagnostic is the single error shape every stage's failure is
// normalized into, so cmd/cmmc has one rendering path regardless of
// which stage produced it.
type Diagnostic struct {
	Heading  string // e.g. "Invalid token near row 3, column 5:"
	Row      int
	Column   int
	Source   string // the offending line's full text, "" if unknown
	Expected string // optional "X or Y", "" if the stage gave none
}

// Render formats d per spec §7: a blank line, the heading, the
// offending source line, a caret line pointing at the column, and
// optionally an "Expected X or Y" line.
func (d Diagnostic) Render() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(d.Heading)
	b.WriteString("\n")
	if d.Source != "" {
		b.WriteString(d.Source)
		b.WriteString("\n")
		col := d.Column
		if col < 1 {
			col = 1
		}
		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString("^")
		b.WriteString("\n")
	}
	if d.Expected != "" {
		b.WriteString("Expected ")
		b.WriteString(d.Expected)
		b.WriteString("\n")
	}
	return b.String()
}

// Result accumulates the artifacts produced by each stage that ran
// (spec §6: "a tuple of artifacts produced by that stage and all
// earlier stages"), plus the textual dumps for whichever stages
// completed.
type Result struct {
	Tokens []token.Token
	Tree   *ast.Tree
	Scope  *stable.Table
	Ops    []ir.Op

	TokenDump string
	ASTDump   string
	ScopeDump string
	IRDump    string

	RuntimeErr *interp.RuntimeError
	Diag       *Diagnostic
}

// sourceLine returns line row (1-indexed) of src, or "" if out of range.
func sourceLine(src string, row int) string {
	lines := strings.Split(src, "\n")
	if row < 1 || row > len(lines) {
		return ""
	}
	return lines[row-1]
}

// Run compiles src through mode, feeding in/out/errs to the
// interpreter when mode is ModeExecute. It never panics: every stage
// failure is captured into Result.Diag or Result.RuntimeErr.
func Run(src string, mode Mode, in interp.InputStream, out interp.OutputStream, errs interp.ErrorStream) *Result {
	res := &Result{}

	lex := lexer.NewFromString(src)
	res.Tokens = tokenize(lex)
	res.TokenDump = dumpTokens(res.Tokens)
	if lerr := lex.Err(); lerr != nil {
		res.Diag = &Diagnostic{
			Heading: fmt.Sprintf("Invalid token near row %d, column %d:", lerr.Row, lerr.Column),
			Row:     lerr.Row,
			Column:  lerr.Column,
			Source:  sourceLine(src, lerr.Row),
		}
		return res
	}
	if mode == ModeLexer {
		return res
	}

	tree, perr := parser.New(lexer.NewFromString(src)).Parse()
	if perr != nil {
		res.Diag = &Diagnostic{
			Heading: fmt.Sprintf("Invalid token near row %d, column %d:", perr.Row, perr.Column),
			Row:     perr.Row,
			Column:  perr.Column,
			Source:  sourceLine(src, perr.Row),
		}
		if len(perr.Expected) > 0 {
			res.Diag.Expected = joinKinds(perr.Expected)
		}
		return res
	}
	res.Tree = tree
	res.ASTDump = tree.Dump()
	if mode == ModeParser {
		return res
	}

	scope, serr := sema.Analyze(tree)
	if serr != nil {
		res.Diag = &Diagnostic{
			Heading: fmt.Sprintf("%s near row %d, column %d:", serr.Error(), serr.Row, serr.Column),
			Row:     serr.Row,
			Column:  serr.Column,
			Source:  sourceLine(src, serr.Row),
		}
		return res
	}
	res.Scope = scope
	res.ScopeDump = scope.Dump()
	if mode == ModeSemantic {
		return res
	}

	ops := ir.New(tree).Emit()
	res.Ops = ops
	res.IRDump = ir.Dump(ops)
	if mode == ModeCompile {
		return res
	}

	it := interp.New(ops, in, out, errs)
	if rerr := it.Run(); rerr != nil {
		res.RuntimeErr = rerr
		errs.WriteLine(fmt.Sprintf("%s: %s", rerr.Kind, rerr.Error()))
	}
	return res
}

func joinKinds(kinds []token.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, " or ")
}

// tokenize drains lex to end of input, stopping at the first lexical
// error (the ILLEGAL token is kept; the lexer returns only EOF after
// that point).
func tokenize(lex *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF || tok.Kind == token.ILLEGAL {
			break
		}
	}
	return toks
}

// dumpTokens renders the spec §6 token listing: one line per token,
// its kind and literal text.
func dumpTokens(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		fmt.Fprintf(&b, "%-12s %q\n", t.Kind, t.Literal)
	}
	return b.String()
}
