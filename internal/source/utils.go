package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"fortio.org/safecast"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	crlf    = []byte("\r\n")
	lf      = []byte("\n")
)

// normalizeCRLF сворачивает \r\n в \n; одиночный \r остаётся как есть.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}

// buildLineIndex возвращает смещения всех '\n' по возрастанию.
func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, lf))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		idx = append(idx, mustU32(off+i))
		off += i + 1
	}
}

// toLineCol: Col здесь в байтах.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	line, _ := slices.BinarySearch(lineIdx, off)
	lineStart := uint32(0)
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: mustU32(line + 1), Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source offset %d does not fit uint32: %w", n, err))
	}
	return v
}

// AbsolutePath cleans p, makes it absolute and uses forward slashes.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns p relative to baseDir. Paths that escape baseDir are
// returned absolute, `../../x` is harder to read than the full path.
func RelativePath(p, baseDir string) (string, error) {
	target, err := AbsolutePath(p)
	if err != nil {
		return "", err
	}
	base, err := AbsolutePath(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target, nil
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return target, nil
	}
	return rel, nil
}

func BaseName(p string) string {
	return filepath.Base(p)
}
