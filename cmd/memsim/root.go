package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/joshuapare/memsim/internal/logger"
	"github.com/joshuapare/memsim/internal/repl"
	"github.com/joshuapare/memsim/printer"
	"github.com/joshuapare/memsim/session"
)

// defaultCapacity matches the 1 MiB address space of the classic exercise.
const defaultCapacity = datasize.MB

var (
	// Global flags
	capacity    datasize.ByteSize
	verbose     bool
	quiet       bool
	jsonOut     bool
	noColor     bool
	logFile     string
	logLevel    string
	metricsFile string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memsim",
		Short: "Simulate contiguous memory allocation",
		Long: `memsim simulates a single address space shared by named processes.
Memory is requested with first-fit, best-fit or worst-fit placement, released
per process (adjacent holes are merged), and compacted on demand.

Commands read from standard input:
  RQ <process_id> <size> <F|B|W>   request memory
  RL <process_id>                  release all memory of a process
  C                                compact memory
  STAT                             report every region
  STATS                            report usage and fragmentation
  X                                exit

Example:
  memsim --capacity 1MB
  memsim --capacity 4096 --json < commands.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	capacity = defaultCapacity
	flags := cmd.PersistentFlags()
	flags.Var(&byteSizeValue{&capacity}, "capacity", "Size of the address space (e.g. 1048576, 64KB, 1MB)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log operations to stderr at debug level")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress banners; print only command results")
	flags.BoolVar(&jsonOut, "json", false, "Print STAT and STATS output as JSON")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	flags.StringVar(&logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")
	flags.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	cmd.AddCommand(newRunCmd(), newVersionCmd())
	return cmd
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// byteSizeValue adapts datasize.ByteSize to pflag.Value.
type byteSizeValue struct{ v *datasize.ByteSize }

func (b *byteSizeValue) String() string { return b.v.String() }

func (b *byteSizeValue) Set(s string) error { return b.v.UnmarshalText([]byte(s)) }

func (b *byteSizeValue) Type() string { return "bytes" }

// env bundles what a command needs to drive a session.
type env struct {
	sess     *session.Session
	registry *prometheus.Registry
	printer  *printer.Printer
	log      *slog.Logger
}

// setup configures logging and creates the session from the global flags.
func setup(out io.Writer) (*env, error) {
	if err := initLogging(); err != nil {
		return nil, err
	}

	if capacity == 0 || capacity.Bytes() > uint64(1<<62) {
		return nil, fmt.Errorf("invalid capacity %s", capacity)
	}

	registry := prometheus.NewRegistry()
	sess, err := session.New(int64(capacity.Bytes()), session.Options{
		Logger:     logger.L,
		Registerer: registry,
	})
	if err != nil {
		return nil, err
	}

	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.Color = !noColor && isTerminal(out)

	return &env{
		sess:     sess,
		registry: registry,
		printer:  printer.New(out, opts),
		log:      logger.L,
	}, nil
}

// finish flushes metrics and closes the log.
func (e *env) finish() error {
	defer logger.Close()
	if metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(metricsFile, e.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	printVerbose("Metrics written to %s\n", metricsFile)
	return nil
}

func initLogging() error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := logger.Options{Level: level}
	switch {
	case logFile != "":
		opts.Enabled = true
		opts.Path = logFile
	case verbose:
		opts.Enabled = true
		opts.Path = logger.Stderr
		opts.Level = slog.LevelDebug
	}
	return logger.Init(opts)
}

func runInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	e, err := setup(out)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	interactive := isTerminal(in)
	printVerbose("Starting session: capacity=%d interactive=%t\n", e.sess.Capacity(), interactive)

	runErr := repl.Run(cmd.Context(), repl.Config{
		In:       in,
		Out:      out,
		Session:  e.sess,
		Printer:  e.printer,
		Logger:   e.log,
		Prompt:   interactive && !quiet,
		Greeting: !quiet,
	})
	if err := e.finish(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Helper functions for output

// printVerbose prints a verbose message to stderr if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
