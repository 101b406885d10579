package diag

import "ry/internal/source"

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

// DedupReporter forwards each distinct (code, severity, span, message)
// once. It is not safe for concurrent use; the driver makes one per file.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	key := dedupKey{code: code, sev: sev, span: primary, msg: msg}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(code, sev, primary, msg, notes)
}
