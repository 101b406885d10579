package parser

import (
	"ry/internal/ast"
	"ry/internal/token"
)

// parseIf разбирает if, цепочку else if и необязательный else как одно выражение.
func (p *Parser) parseIf() (ast.ExprID, error) {
	start := p.current.Span
	if err := p.advance(); err != nil { // 'if'
		return ast.NoExprID, err
	}
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	then, err := p.parseStatementsBlock()
	if err != nil {
		return ast.NoExprID, err
	}

	var (
		elseIfs []ast.ElseIf
		els     ast.Block
		hasElse bool
	)
	for p.at(token.KwElse) {
		if err := p.advance(); err != nil { // 'else'
			return ast.NoExprID, err
		}
		if !p.at(token.KwIf) {
			els, err = p.parseStatementsBlock()
			if err != nil {
				return ast.NoExprID, err
			}
			hasElse = true
			break
		}
		if err := p.advance(); err != nil { // 'if'
			return ast.NoExprID, err
		}
		elseCond, err := p.parseExpression(precLowest)
		if err != nil {
			return ast.NoExprID, err
		}
		body, err := p.parseStatementsBlock()
		if err != nil {
			return ast.NoExprID, err
		}
		elseIfs = append(elseIfs, ast.ElseIf{Cond: elseCond, Body: body})
	}

	return p.arenas.Exprs.NewIf(p.spanFrom(start), cond, then, elseIfs, els, hasElse), nil
}

func (p *Parser) parseWhile() (ast.ExprID, error) {
	start := p.current.Span
	if err := p.advance(); err != nil { // 'while'
		return ast.NoExprID, err
	}
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoExprID, err
	}
	body, err := p.parseStatementsBlock()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.arenas.Exprs.NewWhile(p.spanFrom(start), cond, body), nil
}
