package source

import (
	"fmt"
)

// Span is a half-open source range [Start, End).
type Span struct {
	File  FileID
	Start Location // включительно
	End   Location // не включительно
}

// NewSpan builds a span, swapping the bounds if they come reversed.
func NewSpan(file FileID, start, end Location) Span {
	if end.Index < start.Index {
		start, end = end, start
	}
	return Span{File: file, Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start.Index == s.End.Index
}

// Len returns the span length in bytes.
func (s Span) Len() uint32 {
	return s.End.Index - s.Start.Index
}

// Range returns byte offsets suitable for slicing file content.
func (s Span) Range() (start, end uint32) {
	return s.Start.Index, s.End.Index
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d..%d", s.File, s.Start.Index, s.End.Index)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start.Index < s.Start.Index {
		s.Start = other.Start
	}
	if other.End.Index > s.End.Index {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File &&
		s.Start.Index <= other.Start.Index &&
		other.End.Index <= s.End.Index
}

// ZeroAt is an empty span sitting at loc (EOF and missing pieces).
func ZeroAt(file FileID, loc Location) Span {
	return Span{File: file, Start: loc, End: loc}
}
