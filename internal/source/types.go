package source

import "strconv"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // байтовые смещения всех '\n'
	Flags   FileFlags
}

// Location is a position inside a file: byte offset plus 1-based line and column.
// Column counts unicode scalar values, not bytes.
type Location struct {
	Index  uint32
	Line   uint32
	Column uint32
}

// StartLocation returns the position of the first byte of any file.
func StartLocation() Location {
	return Location{Index: 0, Line: 1, Column: 1}
}

// Advance returns the location right after r, which occupies size bytes.
func (l Location) Advance(r rune, size int) Location {
	l.Index += mustU32(size)
	if r == '\n' {
		l.Line++
		l.Column = 1
		return l
	}
	l.Column++
	return l
}

// Before reports whether l is strictly before other.
func (l Location) Before(other Location) bool {
	return l.Index < other.Index
}

func (l Location) String() string {
	return strconv.FormatUint(uint64(l.Line), 10) + ":" + strconv.FormatUint(uint64(l.Column), 10)
}

// LineCol is a 1-based line and a 1-based byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}

// WithSpan pairs an arbitrary value with the span it was parsed from.
type WithSpan[T any] struct {
	Value T
	Span  Span
}

// Spanned is a shorthand constructor for WithSpan.
func Spanned[T any](value T, span Span) WithSpan[T] {
	return WithSpan[T]{Value: value, Span: span}
}
