package format

import (
	"ry/internal/ast"
)

func (p *printer) printType(id ast.TypeID) {
	typ := p.builder.Types.Get(id)
	if typ == nil {
		return
	}
	switch typ.Kind {
	case ast.TypePrimary:
		prim, ok := p.builder.Types.Primary(id)
		if !ok {
			return
		}
		p.writer.WriteString(pathText(prim.Path))
		if len(prim.Generics) > 0 {
			p.printTypeList(prim.Generics)
		}
	case ast.TypePointer:
		p.writer.WriteString("*")
		p.printType(typ.Inner)
	case ast.TypeArray:
		p.writer.WriteString("[")
		p.printType(typ.Inner)
		p.writer.WriteString("]")
	case ast.TypeOption:
		p.printType(typ.Inner)
		p.writer.WriteString("?")
	}
}

// printTypeList печатает `<A, B>`. Вложенные `>>` парсер расщепляет сам.
func (p *printer) printTypeList(types []ast.TypeID) {
	p.writer.WriteString("<")
	for i, t := range types {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.printType(t)
	}
	p.writer.WriteString(">")
}
