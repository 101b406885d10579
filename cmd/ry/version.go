package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"ry/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func (a *app) newVersionCmd() *cobra.Command {
	var (
		format string
		full   bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show ry build information",
		Args:  cobra.NoArgs,
		// версия печатается даже при сломанном ry.toml
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(format) {
			case "pretty":
				renderVersionPretty(a.stdout, full)
				return nil
			case "json":
				return renderVersionJSON(a.stdout, full)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	cmd.Flags().BoolVar(&full, "full", false, "include commit hash and build date")
	return cmd
}

func currentVersion() string {
	if v := strings.TrimSpace(version.Version); v != "" {
		return v
	}
	return "dev"
}

func renderVersionPretty(out io.Writer, full bool) {
	fmt.Fprintf(out, "ry %s\n", version.Colored(currentVersion()))
	if !full {
		return
	}
	fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
	fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
	fmt.Fprintf(out, "go:     %s\n", runtime.Version())
}

func renderVersionJSON(out io.Writer, full bool) error {
	payload := versionPayload{
		Tool:      "ry",
		Version:   currentVersion(),
		GoVersion: runtime.Version(),
	}
	if full {
		payload.GitCommit = valueOrUnknown(version.GitCommit)
		payload.BuildDate = valueOrUnknown(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
