package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ry/internal/diagfmt"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestLexCommand(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.ry", "a + 1")
	code, out, errOut := runCLI(t, "lex", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if want := "0: [identifier a]@0..1\n1: [+]@2..3\n2: [integer 1]@4..5\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestLexReportsButSucceedsOnInvalidTokens(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.ry", "0x")
	code, out, errOut := runCLI(t, "lex", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "invalid") || !strings.Contains(errOut, "LEX") {
		t.Fatalf("stdout %q, stderr %q", out, errOut)
	}
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ry")
	for _, cmd := range []string{"lex", "parse", "graphviz"} {
		t.Run(cmd, func(t *testing.T) {
			code, out, errOut := runCLI(t, cmd, missing)
			if code != 1 || out != "" {
				t.Fatalf("exit %d, stdout %q", code, out)
			}
			if errOut != "error: cannot read given file\n" {
				t.Fatalf("stderr = %q", errOut)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ry", "fun main() { f$<T>(x) }")
	code, out, errOut := runCLI(t, "parse", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	for _, want := range []string{"Unit", `Item Fun "main"`, "Expr Call", `generic: Type Primary "T"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("tree lacks %q:\n%s", want, out)
		}
	}

	code, out, _ = runCLI(t, "parse", "--format", "msgpack", path)
	if code != 0 {
		t.Fatalf("msgpack exit %d", code)
	}
	node, err := diagfmt.DecodeMsgpack(strings.NewReader(out))
	if err != nil || node.Type != "Unit" {
		t.Fatalf("decode: %v, type %q", err, node.Type)
	}
}

func TestParseFailure(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.ry", "fun main() { 1 + }")
	code, out, errOut := runCLI(t, "parse", path)
	if code != 1 || out != "" {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
	if !strings.Contains(errOut, "SYN") || !strings.HasSuffix(errOut, "error: cannot proceed due to previous errors\n") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestParseDirectoryJSON(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.ry", "fun a() {}")
	writeSource(t, dir, "b.ry", "fun b( {}")

	code, out, errOut := runCLI(t, "parse", "--format", "json", "--jobs", "2", dir)
	if code != 1 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	var payload map[string]*diagfmt.ASTNodeOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if payload["a.ry"] == nil || payload["a.ry"].Type != "Unit" {
		t.Fatalf("a.ry = %+v", payload["a.ry"])
	}
	if v, ok := payload["b.ry"]; !ok || v != nil {
		t.Fatalf("b.ry must be null, got %+v", v)
	}
}

func TestGraphvizCommand(t *testing.T) {
	path := writeSource(t, t.TempDir(), "g.ry", "fun g() { a + b }")
	code, out, _ := runCLI(t, "graphviz", path)
	if code != 0 || !strings.HasPrefix(out, "digraph AST {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
}

func TestFmtCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "f.ry", "fun f(){1+2}")

	code, out, _ := runCLI(t, "fmt", "--stdout", path)
	if code != 0 || out != "fun f() {\n    1 + 2\n}\n" {
		t.Fatalf("exit %d, stdout %q", code, out)
	}

	code, out, errOut := runCLI(t, "fmt", "--check", path)
	if code != 1 || out != path+"\n" || !strings.Contains(errOut, "formatting changes required") {
		t.Fatalf("check: exit %d, stdout %q, stderr %q", code, out, errOut)
	}

	if code, _, errOut = runCLI(t, "fmt", "--quiet", path); code != 0 {
		t.Fatalf("write: exit %d, stderr %q", code, errOut)
	}
	if code, _, _ = runCLI(t, "fmt", "--check", path); code != 0 {
		t.Fatalf("file still unformatted after fmt")
	}

	if code, _, _ = runCLI(t, "fmt", "--stdout", "--check", path); code != 1 {
		t.Fatalf("--stdout with --check must fail")
	}
}

func TestVersionJSON(t *testing.T) {
	code, out, _ := runCLI(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "ry" || payload.Version == "" || payload.GitCommit != "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestManifestSettings(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "toolchain_too_old",
			manifest: "[toolchain]\nrequires = \">= 99.0.0\"\n",
			wantCode: 1,
			wantErr:  "does not satisfy",
		},
		{
			name:     "unknown_key",
			manifest: "[diagnostics]\nfancy = true\n",
			wantCode: 1,
			wantErr:  "unknown keys: diagnostics.fancy",
		},
		{
			name:     "flag_overrides_file",
			manifest: "[diagnostics]\ncolor = \"on\"\n",
			args:     []string{"--color", "off"},
			wantCode: 0,
		},
		{
			name:     "bad_color_flag",
			manifest: "",
			args:     []string{"--color", "rainbow"},
			wantCode: 1,
			wantErr:  "invalid --color value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSource(t, dir, "ry.toml", tt.manifest)
			path := writeSource(t, dir, "x.ry", "x")
			args := append([]string{"lex"}, tt.args...)
			code, out, errOut := runCLI(t, append(args, path)...)
			if code != tt.wantCode {
				t.Fatalf("exit %d, stderr %q", code, errOut)
			}
			if tt.wantErr != "" && !strings.Contains(errOut, tt.wantErr) {
				t.Fatalf("stderr %q lacks %q", errOut, tt.wantErr)
			}
			if tt.wantCode == 0 && strings.Contains(out, "\x1b[") {
				t.Fatalf("colour leaked with --color off: %q", out)
			}
		})
	}
}

func TestTraceToStderr(t *testing.T) {
	path := writeSource(t, t.TempDir(), "t.ry", "fun t() {}")
	code, _, errOut := runCLI(t, "--trace", "-", "parse", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errOut, "parse") {
		t.Fatalf("no parse span in trace output: %q", errOut)
	}
}

func TestShortDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "s.ry", "fun s() { 1 + }")
	code, _, errOut := runCLI(t, "--diag-format", "short", "parse", path)
	if code != 1 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(errOut, "error SYN") || !strings.Contains(errOut, "s.ry:1:") {
		t.Fatalf("stderr = %q", errOut)
	}
}
