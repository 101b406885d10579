package diagfmt

import "ry/internal/source"

// PathMode decides how file paths appear in diagnostics.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // короткие пути как есть, длинные абсолютные до basename
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // сколько строк исходника показывать перед строкой ошибки
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

// ASTFormat selects how a parsed unit is rendered.
type ASTFormat uint8

const (
	ASTFormatTree ASTFormat = iota
	ASTFormatJSON
	ASTFormatMsgpack
	ASTFormatDot
)

// ParseASTFormat maps a --format value to an ASTFormat.
func ParseASTFormat(s string) (ASTFormat, bool) {
	switch s {
	case "", "tree", "pretty":
		return ASTFormatTree, true
	case "json":
		return ASTFormatJSON, true
	case "msgpack":
		return ASTFormatMsgpack, true
	case "dot", "graphviz":
		return ASTFormatDot, true
	default:
		return ASTFormatTree, false
	}
}

var pathModeNames = [...]string{
	PathModeAuto:     "auto",
	PathModeAbsolute: "absolute",
	PathModeRelative: "relative",
	PathModeBasename: "basename",
}

// String returns the mode name understood by source.File.FormatPath.
func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return "auto"
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	return fs.Get(id).FormatPath(mode.String(), fs.BaseDir())
}
