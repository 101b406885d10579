package format

import (
	"ry/internal/ast"
)

// printBlock: `{}` для пустого блока, иначе по оператору на строку.
func (p *printer) printBlock(block ast.Block) {
	if len(block.Stmts) == 0 {
		p.writer.WriteString("{}")
		return
	}
	p.writer.WriteString("{")
	p.writer.Newline()
	p.writer.IndentPush()
	for _, id := range block.Stmts {
		p.printStmt(id)
		p.writer.Newline()
	}
	p.writer.IndentPop()
	p.writer.WriteString("}")
}

func (p *printer) printStmt(id ast.StmtID) {
	st := p.builder.Stmts.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case ast.StmtReturn:
		p.writer.WriteString("return ")
		p.printExpr(st.Expr)
		p.writer.WriteString(";")
	case ast.StmtDefer:
		p.writer.WriteString("defer ")
		p.printExpr(st.Expr)
		p.writer.WriteString(";")
	case ast.StmtExpr:
		p.printExpr(st.Expr)
		p.writer.WriteString(";")
	case ast.StmtLastReturn:
		p.printExpr(st.Expr)
	}
}
