package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"ry/internal/source"
)

// shortLine is one row of the short format:
//
//	error SYN2001 dir/a.ry:3:7 message
type shortLine struct {
	label string
	code  string
	path  string
	line  uint32
	col   uint32
	msg   string
}

func (l shortLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.label, l.code, l.path, l.line, l.col, l.msg)
}

func compareShort(a, b shortLine) int {
	return cmp.Or(
		strings.Compare(a.path, b.path),
		cmp.Compare(a.line, b.line),
		cmp.Compare(a.col, b.col),
		strings.Compare(a.label, b.label),
		strings.Compare(a.code, b.code),
	)
}

// FormatShortDiagnostics prints one line per diagnostic (and per note when
// includeNotes is set), sorted by position. Used by --diag-format=short and
// by golden tests. Diagnostics pointing outside fs are skipped.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var lines []shortLine
	for _, d := range diags {
		code := d.Code.ID()
		if l, ok := makeShortLine(fs, d.Primary, shortLabel(d.Severity), code, d.Message); ok {
			lines = append(lines, l)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if l, ok := makeShortLine(fs, n.Span, "note", code, n.Msg); ok {
				lines = append(lines, l)
			}
		}
	}
	slices.SortStableFunc(lines, compareShort)

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

func makeShortLine(fs *source.FileSet, sp source.Span, label, code, msg string) (shortLine, bool) {
	if int(sp.File) >= fs.Len() {
		return shortLine{}, false
	}
	path := filepath.ToSlash(fs.Get(sp.File).FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return shortLine{
		label: label,
		code:  code,
		path:  path,
		line:  sp.Start.Line,
		col:   sp.Start.Column,
		msg:   oneLine(msg),
	}, true
}

func shortLabel(sev Severity) string {
	return strings.ToLower(sev.String())
}

// oneLine складывает многострочное сообщение в одну строку.
func oneLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
