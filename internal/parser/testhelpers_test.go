package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"ry/internal/ast"
	"ry/internal/diag"
	"ry/internal/lexer"
	"ry/internal/source"
)

type parsed struct {
	arenas *ast.Builder
	bag    *diag.Bag
}

func newTestLexer(input string, bag *diag.Bag) *lexer.Lexer {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ry", []byte(input))
	return lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
}

func parseExprInput(t *testing.T, input string) (ast.ExprID, parsed) {
	t.Helper()
	bag := diag.NewBag(16)
	arenas := ast.NewBuilder(ast.Hints{})
	id, err := ParseExpression(newTestLexer(input, bag), arenas, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v; diagnostics: %s", input, err, diagnosticsSummary(bag))
	}
	return id, parsed{arenas: arenas, bag: bag}
}

func parseTypeInput(t *testing.T, input string) (ast.TypeID, parsed) {
	t.Helper()
	bag := diag.NewBag(16)
	arenas := ast.NewBuilder(ast.Hints{})
	id, err := ParseType(newTestLexer(input, bag), arenas, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseType(%q): %v", input, err)
	}
	return id, parsed{arenas: arenas, bag: bag}
}

func parseBlockInput(t *testing.T, input string) (ast.Block, parsed) {
	t.Helper()
	bag := diag.NewBag(16)
	arenas := ast.NewBuilder(ast.Hints{})
	block, err := ParseBlock(newTestLexer(input, bag), arenas, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseBlock(%q): %v", input, err)
	}
	return block, parsed{arenas: arenas, bag: bag}
}

func parseFileInput(input string) (Result, parsed, error) {
	bag := diag.NewBag(16)
	arenas := ast.NewBuilder(ast.Hints{})
	res, err := ParseFile(context.Background(), newTestLexer(input, bag), arenas, Options{Reporter: diag.BagReporter{Bag: bag}})
	return res, parsed{arenas: arenas, bag: bag}, err
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// sexpr renders an expression as a compact s-expression for shape checks.
func (ps parsed) sexpr(id ast.ExprID) string {
	exprs := ps.arenas.Exprs
	e := exprs.Get(id)
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ast.ExprInt, ast.ExprFloat, ast.ExprImag, ast.ExprString, ast.ExprChar, ast.ExprBool:
		lit, _ := exprs.Literal(id)
		return lit.Raw
	case ast.ExprStaticName:
		n, _ := exprs.StaticName(id)
		return n.Path.String()
	case ast.ExprList:
		l, _ := exprs.List(id)
		return "[" + ps.exprList(l.Elements) + "]"
	case ast.ExprPrefixOrPostfix:
		u, _ := exprs.PrefixOrPostfix(id)
		if u.Postfix {
			return fmt.Sprintf("(post %s %s)", u.Op.Kind, ps.sexpr(u.Operand))
		}
		return fmt.Sprintf("(pre %s %s)", u.Op.Kind, ps.sexpr(u.Operand))
	case ast.ExprBinary:
		b, _ := exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", b.Op.Kind, ps.sexpr(b.Left), ps.sexpr(b.Right))
	case ast.ExprAs:
		c, _ := exprs.As(id)
		return fmt.Sprintf("(as %s %s)", ps.sexpr(c.Value), ps.typeStr(c.Type))
	case ast.ExprProperty:
		pr, _ := exprs.Property(id)
		return fmt.Sprintf("(. %s %s)", ps.sexpr(pr.Target), pr.Field.Value)
	case ast.ExprIndex:
		ix, _ := exprs.Index(id)
		return fmt.Sprintf("(idx %s %s)", ps.sexpr(ix.Target), ps.sexpr(ix.Index))
	case ast.ExprCall:
		c, _ := exprs.Call(id)
		generics := make([]string, len(c.Generics))
		for i, g := range c.Generics {
			generics[i] = ps.typeStr(g)
		}
		return fmt.Sprintf("(call %s <%s> (%s))", ps.sexpr(c.Callee), strings.Join(generics, " "), ps.exprList(c.Args))
	case ast.ExprIf:
		data, _ := exprs.If(id)
		var sb strings.Builder
		fmt.Fprintf(&sb, "(if %s %s", ps.sexpr(data.Cond), ps.block(data.Then))
		for _, ei := range data.ElseIfs {
			fmt.Fprintf(&sb, " elif %s %s", ps.sexpr(ei.Cond), ps.block(ei.Body))
		}
		if data.HasElse {
			fmt.Fprintf(&sb, " else %s", ps.block(data.Else))
		}
		sb.WriteString(")")
		return sb.String()
	case ast.ExprWhile:
		w, _ := exprs.While(id)
		return fmt.Sprintf("(while %s %s)", ps.sexpr(w.Cond), ps.block(w.Body))
	}
	return "<?>"
}

func (ps parsed) exprList(ids []ast.ExprID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = ps.sexpr(id)
	}
	return strings.Join(parts, " ")
}

func (ps parsed) block(b ast.Block) string {
	parts := make([]string, len(b.Stmts))
	for i, id := range b.Stmts {
		st := ps.arenas.Stmts.Get(id)
		parts[i] = fmt.Sprintf("%s:%s", st.Kind, ps.sexpr(st.Expr))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func (ps parsed) typeStr(id ast.TypeID) string {
	typ := ps.arenas.Types.Get(id)
	if typ == nil {
		return "<nil>"
	}
	switch typ.Kind {
	case ast.TypePrimary:
		prim, _ := ps.arenas.Types.Primary(id)
		if len(prim.Generics) == 0 {
			return prim.Path.String()
		}
		args := make([]string, len(prim.Generics))
		for i, g := range prim.Generics {
			args[i] = ps.typeStr(g)
		}
		return prim.Path.String() + "<" + strings.Join(args, ", ") + ">"
	case ast.TypePointer:
		return "*" + ps.typeStr(typ.Inner)
	case ast.TypeArray:
		return "[" + ps.typeStr(typ.Inner) + "]"
	case ast.TypeOption:
		return ps.typeStr(typ.Inner) + "?"
	}
	return "<?>"
}
