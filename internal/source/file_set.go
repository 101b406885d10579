package source

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fortio.org/safecast"
)

// FileSet owns every file of a run. FileIDs are dense indexes starting at 0;
// adding the same path again creates a new version with a new ID.
type FileSet struct {
	files   []File
	latest  map[string]FileID
	baseDir string
}

func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase: baseDir используется для относительных путей в выводе.
// Пустая строка означает текущую директорию.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{latest: make(map[string]FileID), baseDir: baseDir}
}

func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add registers already normalized content under path.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files in set: %w", err))
	}
	id := FileID(n)
	path = normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	})
	fs.latest[path] = id
	return id
}

// Load читает файл с диска, убирает BOM и сворачивает CRLF.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the command line
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var flags FileFlags
	content, bom := removeBOM(raw)
	if bom {
		flags |= FileHadBOM
	}
	content, normalized := normalizeCRLF(content)
	if normalized {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (tests, stdin) as is.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get panics on an ID that did not come from this set.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetLatest returns the newest version registered for path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.latest[normalizePath(path)]
	return id, ok
}

// Resolve maps a span to line/column pairs with byte columns,
// unlike Location.Column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fs.files[span.File].LineIdx
	return toLineCol(idx, span.Start.Index), toLineCol(idx, span.End.Index)
}

func (fs *FileSet) Len() int { return len(fs.files) }

// Text returns the bytes covered by span, or "" for a span outside the file.
func (fs *FileSet) Text(span Span) string {
	content := fs.files[span.File].Content
	start, end := span.Range()
	if start > end || int(end) > len(content) {
		return ""
	}
	return string(content[start:end])
}

// LocationAt builds a Location for a byte offset; Column counts runes.
func (f *File) LocationAt(off uint32) Location {
	lc := toLineCol(f.LineIdx, off)
	if int(off) > len(f.Content) {
		return Location{Index: off, Line: lc.Line, Column: lc.Col}
	}
	lineStart := off - (lc.Col - 1)
	runes := utf8.RuneCount(f.Content[lineStart:off])
	return Location{Index: off, Line: lc.Line, Column: mustU32(runes + 1)}
}

// GetLine returns line n (1-based) without its '\n', or "" if there is none.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	end := len(f.Content)
	if int(n) <= len(f.LineIdx) {
		end = int(f.LineIdx[n-1])
	}
	if start >= len(f.Content) {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path for output. mode is one of absolute, relative,
// basename or auto; anything else prints the path as stored.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return BaseName(f.Path)
	case "auto":
		// короткие и относительные пути печатаем как есть
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			return BaseName(f.Path)
		}
	}
	return f.Path
}
