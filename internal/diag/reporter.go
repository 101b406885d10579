package diag

import "ry/internal/source"

// Reporter: минимальный контракт получения диагностик от лексера и парсера.
// Реализации: BagReporter (кладёт в Bag), DedupReporter (фильтр дублей).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter adapts a *Bag to Reporter. A nil Bag drops everything.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
}

// ReportBuilder collects notes for one diagnostic and emits it at most once.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// ReportError starts an error diagnostic bound to r.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: NewError(code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b != nil {
		b.diag = b.diag.WithNote(sp, msg)
	}
	return b
}

// Emit sends the diagnostic to the reporter; repeated calls are no-ops.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted || b.reporter == nil {
		return
	}
	b.emitted = true
	d := b.diag
	b.reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}
