package parser

import (
	"ry/internal/ast"
	"ry/internal/token"
)

// parsePostfix handles `? ++ -- !!` after an operand.
func (p *Parser) parsePostfix(left ast.ExprID) (ast.ExprID, error) {
	op := p.current
	if err := p.advance(); err != nil {
		return ast.NoExprID, err
	}
	span := p.exprSpan(left).Cover(op.Span)
	return p.arenas.Exprs.NewPrefixOrPostfix(span, op, left, true), nil
}

// parseCall: обычный вызов f(a, b); список дженериков пустой, но не nil.
func (p *Parser) parseCall(callee ast.ExprID) (ast.ExprID, error) {
	if err := p.advance(); err != nil { // '('
		return ast.NoExprID, err
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return ast.NoExprID, err
	}
	span := p.spanFrom(p.exprSpan(callee))
	return p.arenas.Exprs.NewCall(span, []ast.TypeID{}, callee, args), nil
}

// parseGenericCall: f$<T, U>(a, b).
func (p *Parser) parseGenericCall(callee ast.ExprID) (ast.ExprID, error) {
	if err := p.advance(); err != nil { // '$'
		return ast.NoExprID, err
	}
	if err := p.expect(token.Lt, "generics"); err != nil {
		return ast.NoExprID, err
	}
	generics, err := parseList(p, "generics", token.Gt, p.parseType)
	if err != nil {
		return ast.NoExprID, err
	}
	if err := p.expect(token.LParen, "call arguments list"); err != nil {
		return ast.NoExprID, err
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return ast.NoExprID, err
	}
	span := p.spanFrom(p.exprSpan(callee))
	return p.arenas.Exprs.NewCall(span, generics, callee, args), nil
}

func (p *Parser) parseCallArgs() ([]ast.ExprID, error) {
	return parseList(p, "call arguments list", token.RParen, func() (ast.ExprID, error) {
		return p.parseExpression(precLowest)
	})
}

func (p *Parser) parseProperty(target ast.ExprID) (ast.ExprID, error) {
	if err := p.advance(); err != nil { // '.'
		return ast.NoExprID, err
	}
	if err := p.check(token.Ident, "property"); err != nil {
		return ast.NoExprID, err
	}
	field := p.identName()
	if err := p.advance(); err != nil {
		return ast.NoExprID, err
	}
	span := p.spanFrom(p.exprSpan(target))
	return p.arenas.Exprs.NewProperty(span, target, field), nil
}

func (p *Parser) parseIndex(target ast.ExprID) (ast.ExprID, error) {
	if err := p.advance(); err != nil { // '['
		return ast.NoExprID, err
	}
	index, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	if err := p.expect(token.RBracket, "index"); err != nil {
		return ast.NoExprID, err
	}
	span := p.spanFrom(p.exprSpan(target))
	return p.arenas.Exprs.NewIndex(span, target, index), nil
}

func (p *Parser) parseCast(value ast.ExprID) (ast.ExprID, error) {
	if err := p.advance(); err != nil { // 'as'
		return ast.NoExprID, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.NoExprID, err
	}
	span := p.spanFrom(p.exprSpan(value))
	return p.arenas.Exprs.NewAs(span, value, typ), nil
}
