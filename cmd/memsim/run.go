package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memsim/internal/repl"
)

var keepGoing bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>...",
		Short: "Execute allocator command scripts",
		Long: `The run command executes one or more command files against a single
session, echoing each command before its result. Blank lines and lines
starting with # are ignored. Use - to read a script from standard input.

By default the run stops at the first failing command.

Example:
  memsim run workload.txt
  memsim run --capacity 64KB --keep-going setup.txt churn.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScripts(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report failing commands and continue")
	return cmd
}

func runScripts(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	e, err := setup(out)
	if err != nil {
		return err
	}

	runErr := func() error {
		for _, path := range paths {
			printVerbose("Running script: %s\n", path)
			if err := runScript(cmd, e, path, out); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	}()

	if err := e.finish(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func runScript(cmd *cobra.Command, e *env, path string, out io.Writer) error {
	var in io.Reader
	if path == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	return repl.Run(cmd.Context(), repl.Config{
		In:          in,
		Out:         out,
		Session:     e.sess,
		Printer:     e.printer,
		Logger:      e.log,
		Echo:        !quiet,
		StopOnError: !keepGoing,
	})
}
