package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ry/internal/diag"
	"ry/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note *color.Color
	code, path, gutter    *color.Color
	caret                 *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgGreen, color.Bold),
		code:   color.New(color.FgMagenta),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, pal)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := displayPath(fs, f.ID, opts.PathMode)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", path, d.Primary.Start.Line, d.Primary.Start.Column),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprintf("[%s]", d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, f, start, end, int(opts.Context), pal, pal.caret)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		ns, ne := fs.Resolve(n.Span)
		nf := fs.Get(n.Span.File)
		notePath := displayPath(fs, nf.ID, opts.PathMode)
		fmt.Fprintf(w, "%s %s: %s\n",
			pal.note.Sprint("note:"),
			pal.path.Sprintf("%s:%d:%d", notePath, n.Span.Start.Line, n.Span.Start.Column),
			n.Msg,
		)
		writeSnippet(w, nf, ns, ne, 0, pal, pal.note)
	}
}

// writeSnippet печатает строки контекста и строку с подчёркиванием.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, context int, pal palette, caret *color.Color) {
	if f == nil || start.Line == 0 {
		return
	}
	gutterWidth := len(strconv.FormatUint(uint64(start.Line), 10))
	first := max(int(start.Line)-context, 1)
	for ln := first; ln <= int(start.Line); ln++ {
		text := expandTabs(f.GetLine(uint32(ln)))
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	from := clampCol(line, start.Col)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(line, end.Col)
	}
	pad := runewidth.StringWidth(expandTabs(line[:from]))
	width := max(runewidth.StringWidth(expandTabs(line[from:to])), 1)

	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), caret.Sprint(underline))
}

// clampCol converts a 1-based byte column into an index within line.
func clampCol(line string, col uint32) int {
	idx := int(col) - 1
	if idx < 0 {
		return 0
	}
	return min(idx, len(line))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// GlobalError prints a diagnostic that is not tied to a source span,
// e.g. "error: cannot read given file".
func GlobalError(w io.Writer, msg string, colored bool) {
	pal := newPalette(colored)
	fmt.Fprintf(w, "%s %s\n", pal.err.Sprint("error:"), msg)
}
