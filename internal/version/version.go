package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the ry CLI; overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI, without a leading "v".
	Version = "0.1.0-dev"

	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders v with each numeric component in its own colour.
// Хвост после patch (например "-dev") остаётся без цвета.
func Colored(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	return majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(patch) + rest
}
