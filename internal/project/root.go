package project

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestName is the project configuration file looked up by the CLI.
const ManifestName = "ry.toml"

// FindManifest looks for ry.toml in startDir and then in each parent.
// ok is false when the search reaches the filesystem root.
func FindManifest(startDir string) (path string, ok bool, err error) {
	dir, err := filepath.Abs(cmp.Or(startDir, "."))
	if err != nil {
		return "", false, fmt.Errorf("resolve %q: %w", startDir, err)
	}
	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		candidate := filepath.Join(dir, ManifestName)
		_, statErr := os.Stat(candidate)
		switch {
		case statErr == nil:
			return candidate, true, nil
		case !errors.Is(statErr, fs.ErrNotExist):
			return "", false, fmt.Errorf("stat %q: %w", candidate, statErr)
		}
	}
	return "", false, nil
}

// StartDirFor returns the directory the manifest search starts from for an
// input path: the path itself for directories, its parent for files.
func StartDirFor(input string) string {
	if input == "" {
		return "."
	}
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return input
	}
	return filepath.Dir(input)
}
