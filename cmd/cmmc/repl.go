package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/cmmlang/cmm/interp"
	"github.com/cmmlang/cmm/pipeline"
)

const banner = `
  ____ __  __ __  __  ___
 / ___|  \/  |  \/  |/ __|
| |   | |\/| | |\/| | (__
| |___| |  | |  | |\___|
 \____|_|  |_|  |_|
`

// replCommand starts an interactive session: the user types a
// complete CMM program across one or more lines and submits it with a
// blank line, and cmmc runs it through the full execute-mode pipeline
// immediately (spec §5: the shell rerunning the pipeline on demand,
// without a persistent GUI).
func replCommand() *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"interactive"},
		Usage:   "read a CMM program interactively and run it",
		Action: func(c *cli.Context) error {
			runRepl()
			return nil
		},
	}
}

func runRepl() {
	cyanColor.Fprintln(os.Stdout, banner)
	cyanColor.Fprintln(os.Stdout, "Type a CMM program, then an empty line to run it. Type .exit to quit.")

	rl, err := readline.New("cmm> ")
	if err != nil {
		redColor.Fprintf(os.Stderr, "cmmc repl: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		prompt := "cmm> "
		if buf.Len() > 0 {
			prompt = "...> "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			cyanColor.Fprintln(os.Stdout, "Good bye!")
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == ".exit" {
			cyanColor.Fprintln(os.Stdout, "Good bye!")
			return
		}

		if trimmed == "" {
			if buf.Len() == 0 {
				continue
			}
			rl.SaveHistory(buf.String())
			runReplSource(buf.String())
			buf.Reset()
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

func runReplSource(src string) {
	in := interp.NewLineInput(os.Stdin)
	res := pipeline.Run(src, pipeline.ModeExecute, in, interp.NewWriterOutput(os.Stdout), interp.NewWriterError(os.Stderr))
	render(res, pipeline.ModeExecute, false, os.Stdout, os.Stderr)
}
