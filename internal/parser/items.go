package parser

import (
	"ry/internal/ast"
	"ry/internal/token"
)

// parseItem выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseItem() (ast.ItemID, error) {
	switch p.current.Kind {
	case token.KwImport:
		return p.parseImportItem()
	case token.KwPub, token.KwFun:
		return p.parseFunItem()
	default:
		return ast.NoItemID, p.unexpected("top level item", "expected 'import', 'fun' or 'pub fun'")
	}
}

// parseImportItem: `import a::b;`.
func (p *Parser) parseImportItem() (ast.ItemID, error) {
	start := p.current.Span
	if err := p.advance(); err != nil { // 'import'
		return ast.NoItemID, err
	}
	path, err := p.parseName()
	if err != nil {
		return ast.NoItemID, err
	}
	if err := p.expect(token.Semicolon, "import"); err != nil {
		return ast.NoItemID, err
	}
	return p.arenas.Items.NewImport(p.spanFrom(start), path), nil
}

// parseFunItem: `[pub] fun name<T C>(a A, b B) R { ... }`.
func (p *Parser) parseFunItem() (ast.ItemID, error) {
	start := p.current.Span
	var fun ast.FunItem

	if p.at(token.KwPub) {
		fun.Public = true
		if err := p.advance(); err != nil {
			return ast.NoItemID, err
		}
	}
	if err := p.expect(token.KwFun, "function"); err != nil {
		return ast.NoItemID, err
	}
	if err := p.check(token.Ident, "function"); err != nil {
		return ast.NoItemID, err
	}
	fun.Name = p.identName()
	if err := p.advance(); err != nil {
		return ast.NoItemID, err
	}

	generics, err := p.parseGenericAnnotations()
	if err != nil {
		return ast.NoItemID, err
	}
	fun.Generics = generics

	if err := p.expect(token.LParen, "parameters"); err != nil {
		return ast.NoItemID, err
	}
	fun.Params, err = parseList(p, "parameters", token.RParen, p.parseParam)
	if err != nil {
		return ast.NoItemID, err
	}

	if !p.at(token.LBrace) {
		fun.Return, err = p.parseType()
		if err != nil {
			return ast.NoItemID, err
		}
	}

	fun.Body, err = p.parseStatementsBlock()
	if err != nil {
		return ast.NoItemID, err
	}
	return p.arenas.Items.NewFun(p.spanFrom(start), fun), nil
}

func (p *Parser) parseParam() (ast.Param, error) {
	if err := p.check(token.Ident, "parameters"); err != nil {
		return ast.Param{}, err
	}
	param := ast.Param{Name: p.identName()}
	if err := p.advance(); err != nil {
		return ast.Param{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.Param{}, err
	}
	param.Type = typ
	return param, nil
}
