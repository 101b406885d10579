package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ry/internal/project"
	"ry/internal/version"
)

// settings is ry.toml merged with the command line; flags win.
type settings struct {
	color          string
	diagFormat     string
	quiet          bool
	maxDiagnostics int

	traceOutput    string
	traceLevel     string
	traceFormat    string
	traceMode      string
	traceRingSize  int
	traceHeartbeat time.Duration

	manifestPath string
}

func defaultSettings() settings {
	cfg := project.Default()
	return settings{
		color:          cfg.Diagnostics.Color,
		diagFormat:     "pretty",
		maxDiagnostics: cfg.Diagnostics.Max,
		traceLevel:     cfg.Trace.Level,
		traceFormat:    cfg.Trace.Format,
		traceMode:      "stream",
	}
}

func (a *app) resolveSettings(cmd *cobra.Command, input string) error {
	manifest, found, err := project.Load(project.StartDirFor(input))
	if err != nil {
		return err
	}
	cfg := manifest.Config
	if found {
		if err := project.CheckToolchain(cfg.Toolchain.Requires, version.Version); err != nil {
			return fmt.Errorf("%s: %w", manifest.Path, err)
		}
	}

	s := settings{
		color:          cfg.Diagnostics.Color,
		maxDiagnostics: cfg.Diagnostics.Max,
		traceLevel:     cfg.Trace.Level,
		traceFormat:    cfg.Trace.Format,
		manifestPath:   manifest.Path,
	}
	if cfg.Trace.Output != "-" {
		s.traceOutput = cfg.Trace.Output
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("color") {
		s.color, _ = flags.GetString("color")
	}
	if flags.Changed("max-diagnostics") {
		s.maxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("trace") {
		s.traceOutput, _ = flags.GetString("trace")
		// --trace без уровня включает фазы
		if !flags.Changed("trace-level") && !manifest.IsDefined("trace", "level") {
			s.traceLevel = "phase"
		}
	}
	if flags.Changed("trace-level") {
		s.traceLevel, _ = flags.GetString("trace-level")
	}
	if flags.Changed("trace-format") {
		s.traceFormat, _ = flags.GetString("trace-format")
	}
	s.quiet, _ = flags.GetBool("quiet")
	s.diagFormat, _ = flags.GetString("diag-format")
	s.traceMode, _ = flags.GetString("trace-mode")
	s.traceRingSize, _ = flags.GetInt("trace-ring-size")
	s.traceHeartbeat, _ = flags.GetDuration("trace-heartbeat")

	switch s.color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("invalid --diag-format value %q (expected pretty|short|json)", s.diagFormat)
	}
	if s.maxDiagnostics < 0 {
		return fmt.Errorf("invalid --max-diagnostics value %d", s.maxDiagnostics)
	}

	a.settings = s
	color.NoColor = !s.colorFor(a.stdout)
	return nil
}

// colorFor resolves "auto" against the writer: only terminals get colour.
func (s settings) colorFor(w io.Writer) bool {
	switch s.color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
