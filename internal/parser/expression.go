package parser

import (
	"ry/internal/ast"
	"ry/internal/source"
	"ry/internal/token"
)

// parseExpression: Pratt parsing. Левая часть сворачивается с очередным
// оператором, пока его приоритет строго больше minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.ExprID, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return ast.NoExprID, err
	}

	for {
		info := lookupOp(p.current.Kind)
		if info.class == opNone || info.prec <= minPrec {
			return left, nil
		}

		switch info.class {
		case opInfix:
			left, err = p.parseInfix(left, info)
		case opPostfix:
			left, err = p.parsePostfix(left)
		case opCall:
			left, err = p.parseCall(left)
		case opGenericCall:
			left, err = p.parseGenericCall(left)
		case opProperty:
			left, err = p.parseProperty(left)
		case opIndex:
			left, err = p.parseIndex(left)
		case opCast:
			left, err = p.parseCast(left)
		}
		if err != nil {
			return ast.NoExprID, err
		}
	}
}

func (p *Parser) parseInfix(left ast.ExprID, info opInfo) (ast.ExprID, error) {
	op := p.current
	if err := p.advance(); err != nil {
		return ast.NoExprID, err
	}

	// правоассоциативные операторы разбирают правую часть на ступень ниже
	next := info.prec
	if info.rightAssoc {
		next--
	}
	right, err := p.parseExpression(next)
	if err != nil {
		return ast.NoExprID, err
	}

	span := p.exprSpan(left).Cover(p.exprSpan(right))
	return p.arenas.Exprs.NewBinary(span, left, op, right), nil
}

// parsePrefix dispatches on the current token to a leaf or a prefix operator.
func (p *Parser) parsePrefix() (ast.ExprID, error) {
	if err := p.checkScanningError(); err != nil {
		return ast.NoExprID, err
	}

	switch tok := p.current; tok.Kind {
	case token.IntLit, token.FloatLit, token.ImagLit, token.StringLit, token.CharLit, token.BoolLit:
		if err := p.advance(); err != nil {
			return ast.NoExprID, err
		}
		return p.arenas.Exprs.NewLiteral(literalKind(tok.Kind), tok.Span, tok.Value, tok.Text), nil

	case token.LParen:
		return p.parseParenthesized()

	case token.LBracket:
		return p.parseListLiteral()

	case token.Ident:
		path, err := p.parseName()
		if err != nil {
			return ast.NoExprID, err
		}
		return p.arenas.Exprs.NewStaticName(path.Span, path), nil

	case token.KwIf:
		return p.parseIf()

	case token.KwWhile:
		return p.parseWhile()

	default:
		if isPrefixOp(tok.Kind) {
			return p.parsePrefixOperator()
		}
		return ast.NoExprID, p.unexpected("expression", "")
	}
}

func (p *Parser) parsePrefixOperator() (ast.ExprID, error) {
	op := p.current
	if err := p.advance(); err != nil {
		return ast.NoExprID, err
	}
	operand, err := p.parseExpression(precPrefixOrPostfix)
	if err != nil {
		return ast.NoExprID, err
	}
	span := op.Span.Cover(p.exprSpan(operand))
	return p.arenas.Exprs.NewPrefixOrPostfix(span, op, operand, false), nil
}

func (p *Parser) parseParenthesized() (ast.ExprID, error) {
	if err := p.advance(); err != nil { // '('
		return ast.NoExprID, err
	}
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	if err := p.expect(token.RParen, "parenthesized expression"); err != nil {
		return ast.NoExprID, err
	}
	return expr, nil
}

func (p *Parser) parseListLiteral() (ast.ExprID, error) {
	start := p.current.Span
	if err := p.advance(); err != nil { // '['
		return ast.NoExprID, err
	}
	elems, err := parseList(p, "list literal", token.RBracket, func() (ast.ExprID, error) {
		return p.parseExpression(precLowest)
	})
	if err != nil {
		return ast.NoExprID, err
	}
	return p.arenas.Exprs.NewList(p.spanFrom(start), elems), nil
}

func (p *Parser) exprSpan(id ast.ExprID) (sp source.Span) {
	if e := p.arenas.Exprs.Get(id); e != nil {
		sp = e.Span
	}
	return sp
}

func literalKind(k token.Kind) ast.ExprKind {
	switch k {
	case token.IntLit:
		return ast.ExprInt
	case token.FloatLit:
		return ast.ExprFloat
	case token.ImagLit:
		return ast.ExprImag
	case token.StringLit:
		return ast.ExprString
	case token.CharLit:
		return ast.ExprChar
	default:
		return ast.ExprBool
	}
}
