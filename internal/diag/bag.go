package diag

import (
	"cmp"
	"math"
	"slices"

	"ry/internal/source"
)

// Bag is a bounded list of diagnostics for one file or one run.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag создаёт Bag с лимитом n, зажатым в [0, 65535].
func NewBag(n int) *Bag {
	limit := min(math.MaxUint16, max(0, n))
	return &Bag{
		items: make([]Diagnostic, 0, min(limit, 64)),
		max:   uint16(limit),
	}
}

// Add returns false once the limit is reached; the diagnostic is dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 { return b.max }

func (b *Bag) Len() int { return len(b.items) }

func (b *Bag) HasErrors() bool { return b.hasAtLeast(SevError) }

func (b *Bag) HasWarnings() bool { return b.hasAtLeast(SevWarning) }

func (b *Bag) hasAtLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

// Items возвращает внутренний срез; менять его нельзя.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other, raising the limit if needed.
func (b *Bag) Merge(other *Bag) {
	total := min(len(b.items)+len(other.items), math.MaxUint16)
	b.max = max(b.max, uint16(total))
	b.items = append(b.items, other.items...)
}

// Sort orders by file, start, end, then severity (worst first) and code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start.Index, y.Primary.Start.Index),
			cmp.Compare(x.Primary.End.Index, y.Primary.End.Index),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup keeps the first diagnostic per code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
