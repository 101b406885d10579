package format

import (
	"ry/internal/ast"
	"ry/internal/parser"
	"ry/internal/token"
)

// atomPrec сильнее любого оператора: литералы, имена, списки, if, while.
const atomPrec = 1 << 8

var (
	prefixPrec = parser.Precedence(token.PlusPlus)
	castPrec   = parser.Precedence(token.KwAs)
	callPrec   = parser.Precedence(token.LParen)
)

// bindingPrec is how tightly e holds together when it stands to the left
// of an operator.
func (p *printer) bindingPrec(id ast.ExprID) int {
	e := p.builder.Exprs.Get(id)
	if e == nil {
		return atomPrec
	}
	switch e.Kind {
	case ast.ExprBinary:
		bin, _ := p.builder.Exprs.Binary(id)
		return parser.Precedence(bin.Op.Kind)
	case ast.ExprAs:
		return castPrec
	case ast.ExprPrefixOrPostfix:
		un, _ := p.builder.Exprs.PrefixOrPostfix(id)
		if un.Postfix {
			return parser.Precedence(un.Op.Kind)
		}
		return prefixPrec
	case ast.ExprProperty, ast.ExprIndex, ast.ExprCall:
		return callPrec
	default:
		return atomPrec
	}
}

// operandPrec: то же для правого операнда: префиксный оператор разбирается
// в любой позиции, поэтому скобки ему не нужны.
func (p *printer) operandPrec(id ast.ExprID) int {
	if e := p.builder.Exprs.Get(id); e != nil && e.Kind == ast.ExprPrefixOrPostfix {
		if un, _ := p.builder.Exprs.PrefixOrPostfix(id); !un.Postfix {
			return atomPrec
		}
	}
	return p.bindingPrec(id)
}

func (p *printer) rightNeedsParen(bin *ast.ExprBinaryData) bool {
	prec := parser.Precedence(bin.Op.Kind)
	rp := p.operandPrec(bin.Right)
	return rp < prec || (rp == prec && !parser.RightAssoc(bin.Op.Kind))
}

// endsWithCast сообщает, кончится ли напечатанное выражение типом из `as`
// без закрывающей скобки. Тогда следующий `<` парсер примет за generics.
func (p *printer) endsWithCast(id ast.ExprID) bool {
	for {
		switch p.kindOf(id) {
		case ast.ExprAs:
			return true
		case ast.ExprBinary:
			bin, _ := p.builder.Exprs.Binary(id)
			if p.rightNeedsParen(bin) {
				return false
			}
			id = bin.Right
		case ast.ExprPrefixOrPostfix:
			un, _ := p.builder.Exprs.PrefixOrPostfix(id)
			if un.Postfix || p.bindingPrec(un.Operand) <= prefixPrec {
				return false
			}
			id = un.Operand
		default:
			return false
		}
	}
}

func (p *printer) printMaybeParen(id ast.ExprID, paren bool) {
	if paren {
		p.writer.WriteString("(")
		p.printExpr(id)
		p.writer.WriteString(")")
		return
	}
	p.printExpr(id)
}

func (p *printer) kindOf(id ast.ExprID) ast.ExprKind {
	if e := p.builder.Exprs.Get(id); e != nil {
		return e.Kind
	}
	return ast.ExprStaticName
}

func (p *printer) printExpr(id ast.ExprID) {
	exprs := p.builder.Exprs
	e := exprs.Get(id)
	if e == nil {
		return
	}

	switch e.Kind {
	case ast.ExprInt, ast.ExprFloat, ast.ExprImag, ast.ExprString, ast.ExprChar, ast.ExprBool:
		lit, _ := exprs.Literal(id)
		p.writer.WriteString(lit.Raw)

	case ast.ExprList:
		list, _ := exprs.List(id)
		p.writer.WriteString("[")
		p.printExprList(list.Elements)
		p.writer.WriteString("]")

	case ast.ExprStaticName:
		name, _ := exprs.StaticName(id)
		p.writer.WriteString(pathText(name.Path))

	case ast.ExprPrefixOrPostfix:
		un, _ := exprs.PrefixOrPostfix(id)
		if un.Postfix {
			p.printMaybeParen(un.Operand, p.bindingPrec(un.Operand) < parser.Precedence(un.Op.Kind))
			p.writer.WriteString(un.Op.Kind.String())
			return
		}
		// `- -x` склеилось бы в `--x`, поэтому вложенный префикс всегда в скобках
		p.writer.WriteString(un.Op.Kind.String())
		p.printMaybeParen(un.Operand, p.bindingPrec(un.Operand) <= prefixPrec)

	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		prec := parser.Precedence(bin.Op.Kind)
		right := parser.RightAssoc(bin.Op.Kind)

		lp := p.bindingPrec(bin.Left)
		// `x as T < y` читается как generic-аргументы типа
		leftParen := lp < prec || (lp == prec && right) ||
			(bin.Op.Kind == token.Lt && p.endsWithCast(bin.Left))
		p.printMaybeParen(bin.Left, leftParen)

		p.writer.WriteString(" ")
		p.writer.WriteString(bin.Op.Kind.String())
		p.writer.WriteString(" ")

		p.printMaybeParen(bin.Right, p.rightNeedsParen(bin))

	case ast.ExprAs:
		cast, _ := exprs.As(id)
		p.printMaybeParen(cast.Value, p.bindingPrec(cast.Value) < castPrec)
		p.writer.WriteString(" as ")
		p.printType(cast.Type)

	case ast.ExprProperty:
		prop, _ := exprs.Property(id)
		paren := p.bindingPrec(prop.Target) < callPrec
		switch p.kindOf(prop.Target) {
		case ast.ExprInt, ast.ExprFloat, ast.ExprImag:
			paren = true
		}
		p.printMaybeParen(prop.Target, paren)
		p.writer.WriteString(".")
		p.writer.WriteString(identText(prop.Field.Value))

	case ast.ExprIndex:
		idx, _ := exprs.Index(id)
		p.printMaybeParen(idx.Target, p.bindingPrec(idx.Target) < callPrec)
		p.writer.WriteString("[")
		p.printExpr(idx.Index)
		p.writer.WriteString("]")

	case ast.ExprCall:
		call, _ := exprs.Call(id)
		p.printMaybeParen(call.Callee, p.bindingPrec(call.Callee) < callPrec)
		if len(call.Generics) > 0 {
			p.writer.WriteString("$")
			p.printTypeList(call.Generics)
		}
		p.writer.WriteString("(")
		p.printExprList(call.Args)
		p.writer.WriteString(")")

	case ast.ExprIf:
		data, _ := exprs.If(id)
		p.writer.WriteString("if ")
		p.printExpr(data.Cond)
		p.writer.Space()
		p.printBlock(data.Then)
		for _, elif := range data.ElseIfs {
			p.writer.WriteString(" else if ")
			p.printExpr(elif.Cond)
			p.writer.Space()
			p.printBlock(elif.Body)
		}
		if data.HasElse {
			p.writer.WriteString(" else ")
			p.printBlock(data.Else)
		}

	case ast.ExprWhile:
		data, _ := exprs.While(id)
		p.writer.WriteString("while ")
		p.printExpr(data.Cond)
		p.writer.Space()
		p.printBlock(data.Body)
	}
}

func (p *printer) printExprList(ids []ast.ExprID) {
	for i, id := range ids {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.printExpr(id)
	}
}
