package diagfmt

import (
	"encoding/json"
	"io"

	"ry/internal/diag"
	"ry/internal/source"
)

// JSONLocation: байтовые смещения есть всегда, line/col только с
// IncludePositions. Колонки в символах, как в source.Location.
type JSONLocation struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type JSONNote struct {
	Message  string       `json:"message"`
	Location JSONLocation `json:"location"`
}

type JSONDiagnostic struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location JSONLocation `json:"location"`
	Notes    []JSONNote   `json:"notes,omitempty"`
}

// JSONReport is the document printed by --diag-format=json.
type JSONReport struct {
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Count       int              `json:"count"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(sp source.Span) JSONLocation {
	loc := JSONLocation{
		File:      displayPath(b.fs, sp.File, b.opts.PathMode),
		StartByte: sp.Start.Index,
		EndByte:   sp.End.Index,
	}
	if b.opts.IncludePositions {
		loc.StartLine, loc.StartCol = sp.Start.Line, sp.Start.Column
		loc.EndLine, loc.EndCol = sp.End.Line, sp.End.Column
	}
	return loc
}

func (b jsonBuilder) diagnostic(d diag.Diagnostic) JSONDiagnostic {
	out := JSONDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	if b.opts.IncludeNotes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, JSONNote{Message: n.Msg, Location: b.location(n.Span)})
		}
	}
	return out
}

// BuildDiagnosticsOutput converts the bag without encoding it. opts.Max
// limits the output only; the bag is left as is.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) JSONReport {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	b := jsonBuilder{fs: fs, opts: opts}
	report := JSONReport{Diagnostics: make([]JSONDiagnostic, len(items)), Count: len(items)}
	for i, d := range items {
		report.Diagnostics[i] = b.diagnostic(d)
	}
	return report
}

// JSON writes the report indented by two spaces.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
