package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/cmmlang/cmm/pipeline"
)

// Color definitions for cmmc's output (spec's EXPANSION — AMBIENT
// STACK: diagnostics in red, successful dumps in cyan, program output
// left uncolored since it belongs to the running CMM program, not the
// tool's own chrome).
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// render prints res to out/stderr according to mode: a red diagnostic
// on failure, or cyan dumps (when dump is requested) on success. It
// returns the process exit code cmmc should use.
func render(res *pipeline.Result, mode pipeline.Mode, dump bool, out, errStream io.Writer) int {
	if res.Diag != nil {
		redColor.Fprint(errStream, res.Diag.Render())
		return 1
	}

	if dump {
		switch mode {
		case pipeline.ModeLexer:
			cyanColor.Fprint(out, res.TokenDump)
		case pipeline.ModeParser:
			cyanColor.Fprint(out, res.ASTDump)
		case pipeline.ModeSemantic:
			cyanColor.Fprint(out, res.ScopeDump)
		case pipeline.ModeCompile:
			cyanColor.Fprint(out, res.IRDump)
		}
	}

	if res.RuntimeErr != nil {
		return 1
	}
	return 0
}

// readSource loads the file named by args().Get(0), exiting with a
// plain file-read error (not a pipeline.Diagnostic, since this isn't a
// compiler-stage failure) if it can't be read.
func readSource(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmmc: could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	return string(content)
}
