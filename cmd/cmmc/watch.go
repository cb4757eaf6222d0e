package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/cmmlang/cmm/interp"
	"github.com/cmmlang/cmm/pipeline"
)

// watchCommand stands in for the original GUI shell's edit-rerun loop
// (spec §7: "the shell re-runs the pipeline on edits") without
// reimplementing the GUI itself: it watches one file and reruns the
// full execute-mode pipeline every time the file is written.
func watchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "rerun a CMM program every time its source file changes",
		ArgsUsage: "<file.cmm>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("cmmc watch: expected exactly one source file", 1)
			}
			path := c.Args().Get(0)
			return watchFile(path)
		},
	}
}

func watchFile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cmmc watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("cmmc watch: %w", err)
	}

	cyanColor.Fprintf(os.Stdout, "watching %s, Ctrl+C to stop\n", path)
	runWatched(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runWatched(path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			redColor.Fprintf(os.Stderr, "cmmc watch: %v\n", err)
		}
	}
}

func runWatched(path string) {
	src := readSource(path)
	cyanColor.Fprintf(os.Stdout, "--- running %s ---\n", path)
	in := interp.NewLineInput(os.Stdin)
	res := pipeline.Run(src, pipeline.ModeExecute, in, interp.NewWriterOutput(os.Stdout), interp.NewWriterError(os.Stderr))
	render(res, pipeline.ModeExecute, false, os.Stdout, os.Stderr)
}
