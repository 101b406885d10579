package parser

import (
	"ry/internal/ast"
	"ry/internal/token"
)

// parseStatementsBlock: `{ stmt* }`. Разбор останавливается на закрывающей
// скобке или на LastReturn, после которого скобка обязательна.
func (p *Parser) parseStatementsBlock() (ast.Block, error) {
	start := p.current.Span
	if err := p.expect(token.LBrace, "statements block"); err != nil {
		return ast.Block{}, err
	}

	stmts := make([]ast.StmtID, 0)
	last := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		var (
			id  ast.StmtID
			err error
		)
		id, last, err = p.parseStatement()
		if err != nil {
			return ast.Block{}, err
		}
		stmts = append(stmts, id)
		if last {
			break
		}
	}

	if !p.at(token.RBrace) {
		suggestion := ""
		if last {
			suggestion = "add ';' after the previous statement"
		}
		return ast.Block{}, p.unexpected("statements block", suggestion)
	}
	if err := p.advance(); err != nil { // '}'
		return ast.Block{}, err
	}
	return ast.Block{Span: p.spanFrom(start), Stmts: stmts}, nil
}

// parseStatement returns the statement and whether it was the block's LastReturn.
func (p *Parser) parseStatement() (ast.StmtID, bool, error) {
	start := p.current.Span

	switch p.current.Kind {
	case token.KwReturn, token.KwDefer:
		kind := ast.StmtReturn
		if p.at(token.KwDefer) {
			kind = ast.StmtDefer
		}
		if err := p.advance(); err != nil {
			return ast.NoStmtID, false, err
		}
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return ast.NoStmtID, false, err
		}
		if err := p.expect(token.Semicolon, "end of the statement"); err != nil {
			return ast.NoStmtID, false, err
		}
		return p.arenas.Stmts.New(kind, p.spanFrom(start), expr), false, nil
	}

	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return ast.NoStmtID, false, err
	}
	if !p.at(token.Semicolon) {
		return p.arenas.Stmts.New(ast.StmtLastReturn, p.exprSpan(expr), expr), true, nil
	}
	if err := p.advance(); err != nil { // ';'
		return ast.NoStmtID, false, err
	}
	return p.arenas.Stmts.New(ast.StmtExpr, p.spanFrom(start), expr), false, nil
}
