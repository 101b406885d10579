package ast

import (
	"strings"

	"ry/internal/source"
)

// Name is an owned identifier together with its span.
type Name = source.WithSpan[string]

// Path is a `::` separated name such as std::io::Reader.
type Path struct {
	Segments []Name
	Span     source.Span
}

func (p Path) String() string {
	parts := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		parts[i] = seg.Value
	}
	return strings.Join(parts, "::")
}

// GenericParam is one entry of `<T, U Constraint, V: Constraint>`.
type GenericParam struct {
	Name       Name
	Constraint TypeID // NoTypeID если ограничения нет
}

// GenericAnnotations is a declaration-site generic parameter list.
type GenericAnnotations []GenericParam
