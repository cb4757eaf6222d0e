package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cmmlang/cmm/interp"
	"github.com/cmmlang/cmm/pipeline"
)

// modeCommand builds the subcommand for one non-executing pipeline
// mode (lex/parse/check/compile): read the named file, run the
// pipeline up to mode, and render the result.
func modeCommand(name, usage string) *cli.Command {
	mode := pipeline.Mode(modeForCommand(name))
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<file.cmm>",
		Flags:     []cli.Flag{dumpFlag},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(fmt.Sprintf("cmmc %s: expected exactly one source file", name), 1)
			}
			src := readSource(c.Args().Get(0))
			in := interp.NewLineInput(os.Stdin)
			res := pipeline.Run(src, mode, in, interp.NewWriterOutput(os.Stdout), interp.NewWriterError(os.Stderr))
			if code := render(res, mode, c.Bool("dump"), os.Stdout, os.Stderr); code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

func modeForCommand(name string) string {
	switch name {
	case "lex":
		return string(pipeline.ModeLexer)
	case "parse":
		return string(pipeline.ModeParser)
	case "check":
		return string(pipeline.ModeSemantic)
	case "compile":
		return string(pipeline.ModeCompile)
	default:
		return string(pipeline.ModeExecute)
	}
}

// runCommand executes a file start to finish: the `run` subcommand
// maps onto pipeline.ModeExecute, wiring the CMM program's `read` and
// `write` calls to the process's own stdin/stdout.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "lex, parse, check, compile, and execute a CMM program",
		ArgsUsage: "<file.cmm>",
		Flags:     []cli.Flag{dumpFlag},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("cmmc run: expected exactly one source file", 1)
			}
			src := readSource(c.Args().Get(0))
			in := interp.NewLineInput(os.Stdin)
			res := pipeline.Run(src, pipeline.ModeExecute, in, interp.NewWriterOutput(os.Stdout), interp.NewWriterError(os.Stderr))
			if code := render(res, pipeline.ModeExecute, c.Bool("dump"), os.Stdout, os.Stderr); code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}
