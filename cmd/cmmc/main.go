/*
Command cmmc is the command-line front end for the CMM toolchain. It
wraps pipeline.Run in a urfave/cli/v2 subcommand tree, one subcommand
per host-visible pipeline mode (spec §6), plus a file-watching mode and
an interactive buffer-and-run mode for exploring small programs without
a separate editor.
*/
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// VERSION is the cmmc release tag reported by --version.
var VERSION = "v0.1.0"

var dumpFlag = &cli.BoolFlag{
	Name:    "dump",
	Aliases: []string{"d"},
	Usage:   "print the stage's textual dump (tokens, AST, scope tree, or IR) alongside its result",
}

func main() {
	app := &cli.App{
		Name:    "cmmc",
		Usage:   "lex, parse, check, compile, and run CMM programs",
		Version: VERSION,
		Commands: []*cli.Command{
			modeCommand("lex", "run the lexer only and report any invalid tokens"),
			modeCommand("parse", "lex and parse, reporting the first syntax error"),
			modeCommand("check", "lex, parse, and run semantic analysis"),
			modeCommand("compile", "lex, parse, check, and emit IR"),
			runCommand(),
			watchCommand(),
			replCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
