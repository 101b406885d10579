package source

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFileSetVersions(t *testing.T) {
	fs := NewFileSet()
	first := fs.Add("dir/../main.ry", []byte("v1"), 0)
	second := fs.Add("main.ry", []byte("v2"), 0)

	if first != 0 || second != 1 {
		t.Fatalf("ids = %d, %d; want 0, 1", first, second)
	}
	latest, ok := fs.GetLatest("./main.ry")
	if !ok || latest != second {
		t.Fatalf("GetLatest = %d, %v; want %d", latest, ok, second)
	}
	if got := string(fs.Get(first).Content); got != "v1" {
		t.Fatalf("old version content = %q", got)
	}
	if fs.Get(first).Path != fs.Get(second).Path {
		t.Fatalf("paths differ: %q vs %q", fs.Get(first).Path, fs.Get(second).Path)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len() = %d", fs.Len())
	}
}

func TestLineIndex(t *testing.T) {
	tests := []struct {
		src  string
		want []uint32
	}{
		{"", []uint32{}},
		{"hello", []uint32{}},
		{"\n", []uint32{0}},
		{"a\nb\n", []uint32{1, 3}},
		{"\n\nx", []uint32{0, 1}},
	}
	for _, tt := range tests {
		fs := NewFileSet()
		f := fs.Get(fs.AddVirtual("idx.ry", []byte(tt.src)))
		if !slices.Equal(f.LineIdx, tt.want) {
			t.Errorf("LineIdx(%q) = %v, want %v", tt.src, f.LineIdx, tt.want)
		}
		if f.Flags&FileVirtual == 0 {
			t.Errorf("virtual flag missing for %q", tt.src)
		}
	}
}

func TestNormalization(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		flags FileFlags
	}{
		{"plain", "a\nb\n", "a\nb\n", 0},
		{"bom", "\xEF\xBB\xBFa\nb\n", "a\nb\n", FileHadBOM},
		{"crlf", "a\r\nb\r\n", "a\nb\n", FileNormalizedCRLF},
		{"lone_cr", "a\rb", "a\rb", 0},
		{"both", "\xEF\xBB\xBFx\r\n", "x\n", FileHadBOM | FileNormalizedCRLF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.ry")
			if err := os.WriteFile(path, []byte(tt.raw), 0o600); err != nil {
				t.Fatal(err)
			}
			fs := NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			f := fs.Get(id)
			if string(f.Content) != tt.want {
				t.Errorf("content = %q, want %q", f.Content, tt.want)
			}
			if f.Flags != tt.flags {
				t.Errorf("flags = %b, want %b", f.Flags, tt.flags)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "absent.ry")); err == nil {
		t.Fatal("expected error")
	}
	if fs.Len() != 0 {
		t.Fatalf("failed load must not add a file")
	}
}

func TestResolveUsesByteColumns(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("utf.ry", []byte("α\n"))
	start, end := fs.Resolve(Span{File: id, Start: loc(0, 1, 1), End: loc(2, 1, 2)})
	if start != (LineCol{Line: 1, Col: 1}) || end != (LineCol{Line: 1, Col: 3}) {
		t.Fatalf("Resolve = %+v %+v", start, end)
	}
}

func TestLocationAt(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("loc.ry", []byte("ab\nαβ c\n")))

	tests := []struct {
		off  uint32
		want Location
	}{
		{0, loc(0, 1, 1)},
		{2, loc(2, 1, 3)},
		{3, loc(3, 2, 1)},
		{5, loc(5, 2, 2)},   // после α
		{8, loc(8, 2, 4)},   // на 'c'
		{10, loc(10, 3, 1)}, // конец файла
	}
	for _, tt := range tests {
		if got := f.LocationAt(tt.off); got != tt.want {
			t.Errorf("LocationAt(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestTextAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("text.ry", []byte("fun main() {}\n  x\n"))
	f := fs.Get(id)

	if got := fs.Text(Span{File: id, Start: loc(4, 1, 5), End: loc(8, 1, 9)}); got != "main" {
		t.Errorf("Text() = %q", got)
	}
	if got := fs.Text(Span{File: id, Start: loc(4, 1, 5), End: loc(99, 1, 99)}); got != "" {
		t.Errorf("out of range Text() = %q", got)
	}

	lines := map[uint32]string{0: "", 1: "fun main() {}", 2: "  x", 3: "", 4: ""}
	for n, want := range lines {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatPath(t *testing.T) {
	fs := NewFileSet()
	long := "/very/long/absolute/path/that/goes/on/and/on/main.ry"
	f := fs.Get(fs.AddVirtual(long, nil))
	short := fs.Get(fs.AddVirtual("src/a.ry", nil))

	tests := []struct {
		file *File
		mode string
		want string
	}{
		{f, "basename", "main.ry"},
		{f, "auto", "main.ry"},
		{short, "auto", "src/a.ry"},
		{short, "whatever", "src/a.ry"},
		{f, "relative", "path/that/goes/on/and/on/main.ry"},
	}
	for _, tt := range tests {
		base := ""
		if tt.mode == "relative" {
			base = "/very/long/absolute"
		}
		if got := tt.file.FormatPath(tt.mode, base); got != tt.want {
			t.Errorf("FormatPath(%q) on %q = %q, want %q", tt.mode, tt.file.Path, got, tt.want)
		}
	}
}
