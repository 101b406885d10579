package format

import (
	"ry/internal/ast"
)

func (p *printer) printImportItem(imp *ast.ImportItem) {
	p.writer.WriteString("import ")
	p.writer.WriteString(pathText(imp.Path))
	p.writer.WriteString(";")
	p.writer.Newline()
}

func (p *printer) printFunItem(fun *ast.FunItem) {
	if fun.Public {
		p.writer.WriteString("pub ")
	}
	p.writer.WriteString("fun ")
	p.writer.WriteString(identText(fun.Name.Value))
	p.printGenericAnnotations(fun.Generics)

	p.writer.WriteString("(")
	for i, prm := range fun.Params {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.writer.WriteString(identText(prm.Name.Value))
		p.writer.Space()
		p.printType(prm.Type)
	}
	p.writer.WriteString(")")

	if fun.Return.IsValid() {
		p.writer.Space()
		p.printType(fun.Return)
	}
	p.writer.Space()
	p.printBlock(fun.Body)
	p.writer.Newline()
}

// printGenericAnnotations печатает `<T, U: C>`; пустой список не печатается.
func (p *printer) printGenericAnnotations(generics ast.GenericAnnotations) {
	if len(generics) == 0 {
		return
	}
	p.writer.WriteString("<")
	for i, g := range generics {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.writer.WriteString(identText(g.Name.Value))
		if g.Constraint.IsValid() {
			p.writer.WriteString(": ")
			p.printType(g.Constraint)
		}
	}
	p.writer.WriteString(">")
}
