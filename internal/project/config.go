package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	semver "github.com/Masterminds/semver/v3"
)

// Config mirrors ry.toml.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Trace       TraceConfig       `toml:"trace"`
	Toolchain   ToolchainConfig   `toml:"toolchain"`
}

type DiagnosticsConfig struct {
	Color string `toml:"color"` // auto|on|off
	Max   int    `toml:"max"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

type ToolchainConfig struct {
	// Requires is a semver constraint such as ">= 0.1.0, < 0.3".
	Requires string `toml:"requires"`
}

// Default returns the configuration used when no ry.toml is found.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Color: "auto", Max: 100},
		Trace:       TraceConfig{Level: "off", Format: "auto", Output: "-"},
	}
}

// Manifest is a decoded ry.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	meta   toml.MetaData
}

// IsDefined reports whether the key was present in the file, so that the
// CLI can tell an explicit value from a default one.
func (m *Manifest) IsDefined(key ...string) bool {
	if m == nil {
		return false
	}
	return m.meta.IsDefined(key...)
}

// Load finds ry.toml above startDir and decodes it. ok is false when
// there is no manifest; Config then holds defaults.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return &Manifest{Config: Default()}, ok, err
	}
	m, err = LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile decodes the manifest at path on top of Default().
func LoadFile(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}, nil
}

// Validate checks enumerated values and the toolchain constraint syntax.
func (c Config) Validate() error {
	switch c.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("diagnostics.color: invalid value %q (expected: auto|on|off)", c.Diagnostics.Color)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("diagnostics.max: must not be negative, got %d", c.Diagnostics.Max)
	}
	if c.Toolchain.Requires != "" {
		if _, err := semver.NewConstraint(c.Toolchain.Requires); err != nil {
			return fmt.Errorf("toolchain.requires: %w", err)
		}
	}
	return nil
}

// CheckToolchain verifies that version satisfies the requires constraint.
// An empty constraint accepts everything.
func CheckToolchain(requires, version string) error {
	if strings.TrimSpace(requires) == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("toolchain.requires: %w", err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("toolchain version %q: %w", version, err)
	}
	// dev-сборка 0.2.0-dev проверяется как 0.2.0
	if v.Prerelease() != "" {
		core, err := v.SetPrerelease("")
		if err != nil {
			return fmt.Errorf("toolchain version %q: %w", version, err)
		}
		v = &core
	}
	if ok, errs := constraint.Validate(v); !ok {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("ry %s does not satisfy %q: %s", v, requires, strings.Join(msgs, "; "))
	}
	return nil
}
