package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ry/internal/diagfmt"
	"ry/internal/prof"
	"ry/internal/version"
)

var (
	// errCannotRead скрывает подробности I/O за общим сообщением.
	errCannotRead = errors.New("cannot read given file")
	errPrevious   = errors.New("cannot proceed due to previous errors")
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	settings settings
	tracing  *tracing
	profile  *prof.Session
}

// main wires SIGINT/SIGTERM into the command context and exits with 1 on
// any failure.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, settings: defaultSettings()}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if perr := a.profile.Stop(); perr != nil {
		fmt.Fprintf(stderr, "prof: %v\n", perr)
	}
	a.tracing.finish(err != nil, stderr)
	if err == nil {
		return 0
	}
	diagfmt.GlobalError(stderr, err.Error(), a.settings.colorFor(stderr))
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ry",
		Short:         "Ry language front-end: lexer, parser and formatter",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			input := "."
			if len(args) > 0 {
				input = args[0]
			}
			if err := a.resolveSettings(cmd, input); err != nil {
				return err
			}
			if err := a.setupTracing(cmd); err != nil {
				return err
			}
			return a.setupProfiling(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("diag-format", "pretty", "diagnostics format on stderr (pretty|short|json)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")
	flags.String("trace", "", "write trace events to a file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	flags.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "ring buffer capacity for ring/both modes")
	flags.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 disables)")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime execution trace to file")

	root.AddCommand(
		a.newLexCmd(),
		a.newParseCmd(),
		a.newGraphvizCmd(),
		a.newFmtCmd(),
		a.newVersionCmd(),
	)
	return root
}

func (a *app) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	cfg.CPUPath, _ = flags.GetString("cpu-profile")
	cfg.MemPath, _ = flags.GetString("mem-profile")
	cfg.TracePath, _ = flags.GetString("runtime-trace")

	session, err := prof.Start(cfg)
	if err != nil {
		return err
	}
	a.profile = session
	return nil
}
