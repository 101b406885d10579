package diag

import (
	"testing"

	"ry/internal/source"
)

func at(index, line, col uint32) source.Location {
	return source.Location{Index: index, Line: line, Column: col}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/testdata/sample.ry", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynInfo,
			Message:  "another",
			Primary:  source.Span{File: file, Start: at(2, 2, 1), End: at(3, 2, 2)},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: at(0, 1, 1), End: at(1, 1, 2)},
			Notes: []Note{
				{Span: source.Span{File: file, Start: at(2, 2, 1), End: at(3, 2, 2)}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/sample.ry:1:1 first line second\n" +
		"note SYN2001 testdata/sample.ry:2:1 note line\n" +
		"warning SYN2000 testdata/sample.ry:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsSkipsUnknownFiles(t *testing.T) {
	fs := source.NewFileSet()
	diags := []Diagnostic{{Severity: SevError, Code: LexUnexpectedChar, Primary: source.Span{File: 7}}}
	if got := FormatShortDiagnostics(diags, fs, false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
