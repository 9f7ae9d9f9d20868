// Package repl runs the line-oriented allocator command loop against a session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/memsim/internal/command"
	"github.com/joshuapare/memsim/printer"
	"github.com/joshuapare/memsim/session"
)

const (
	// Prompt is printed before each command in interactive mode.
	Prompt = "allocator> "

	// Goodbye is printed when the X command ends the loop.
	Goodbye = "Exiting memory allocator. Goodbye!"
)

// Config wires the loop to its input, output and session.
type Config struct {
	In      io.Reader
	Out     io.Writer
	Session *session.Session
	Printer *printer.Printer // Default: text printer on Out
	Logger  *slog.Logger     // Default: discard

	// Prompt prints Prompt before reading each line.
	Prompt bool

	// Echo prints Prompt followed by each non-blank input line, so scripted
	// runs read like an interactive transcript.
	Echo bool

	// Greeting prints the initialization banner before the first command.
	Greeting bool

	// StopOnError ends the loop at the first failed command and returns its
	// error. Otherwise errors are printed and the loop continues.
	StopOnError bool
}

// Run reads commands until X, end of input, or context cancellation.
// It returns nil on X or end of input.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Printer == nil {
		cfg.Printer = printer.New(cfg.Out, printer.DefaultOptions())
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.Greeting {
		fmt.Fprintf(cfg.Out, "Memory allocator initialized with %d bytes\n", cfg.Session.Capacity())
	}

	scanner := bufio.NewScanner(cfg.In)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.Prompt {
			fmt.Fprint(cfg.Out, Prompt)
		}
		if !scanner.Scan() {
			if cfg.Prompt {
				fmt.Fprintln(cfg.Out)
			}
			return scanner.Err()
		}
		lineNo++
		line := scanner.Text()

		cmd, err := command.Parse(line)
		if cmd == nil && err == nil {
			continue
		}
		if cfg.Echo {
			fmt.Fprintf(cfg.Out, "%s%s\n", Prompt, line)
		}
		if err == nil {
			var exit bool
			exit, err = execute(cfg, cmd)
			if exit {
				fmt.Fprintln(cfg.Out, Goodbye)
				return nil
			}
		}
		if err != nil {
			cfg.Logger.Debug("command failed", "line", lineNo, "err", err)
			fmt.Fprintf(cfg.Out, "Error: %s\n", err)
			if cfg.StopOnError {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
}

// execute runs one parsed command and reports whether the loop should end.
func execute(cfg Config, cmd command.Command) (bool, error) {
	sess := cfg.Session
	switch c := cmd.(type) {
	case command.Request:
		msg, err := sess.Allocate(c.PID, c.Size, c.Strategy)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(cfg.Out, msg)
	case command.Release:
		msg, err := sess.Release(c.PID)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(cfg.Out, msg)
	case command.Compact:
		fmt.Fprintln(cfg.Out, sess.Compact())
	case command.Status:
		return false, cfg.Printer.PrintStatus(sess.Status())
	case command.Stats:
		return false, cfg.Printer.PrintStats(sess.Stats())
	case command.Help:
		fmt.Fprintln(cfg.Out, command.HelpText)
	case command.Exit:
		return true, nil
	default:
		return false, fmt.Errorf("unhandled command %T", cmd)
	}
	return false, nil
}
