package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxFuzzInput = 64 << 10 // 64 KiB

var builtinSeeds = []string{
	"",
	"fun main() { 1 + 2 * 3 }",
	"fun f() { a++; -a++; x?!!; f$<T>(x)[0].y }",
	"fun f() { { a; b } }",
	"pub fun g<T, U: C>(p *T?, xs [U]) [T] { return xs as [T]; }",
	"fun n() { 0b; 0x1.p; 1e; 0o8; 1__0; 07.5; 1.0i }",
	"fun s() { \"a\\n\\u{1F600}\" + '\\'' + `wrapped name` }",
	"import a::b::`c d`;",
	"fun c() { if a { b } else if c { d } else { e }; while x < y { x += 1; } }",
	"fun bad( {",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет все *.ry из testdata репозитория.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ry" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampInput(src))
		return nil
	})
}

func clampInput(src []byte) []byte {
	if len(src) <= maxFuzzInput {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxFuzzInput]...)
}
