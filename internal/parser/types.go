package parser

import (
	"ry/internal/ast"
	"ry/internal/token"
)

// parseType: Primary | *T | [T], затем любое число `?`, каждый оборачивает
// предыдущий результат в Option.
func (p *Parser) parseType() (ast.TypeID, error) {
	start := p.current.Span

	var (
		typ ast.TypeID
		err error
	)
	switch p.current.Kind {
	case token.Ident:
		typ, err = p.parsePrimaryType()
	case token.Star:
		typ, err = p.parsePointerType()
	case token.LBracket:
		typ, err = p.parseArrayType()
	default:
		err = p.unexpected("type", "")
	}
	if err != nil {
		return ast.NoTypeID, err
	}

	for p.at(token.Question) {
		if err := p.advance(); err != nil {
			return ast.NoTypeID, err
		}
		typ = p.arenas.Types.NewWrapped(ast.TypeOption, p.spanFrom(start), typ)
	}
	return typ, nil
}

func (p *Parser) parsePrimaryType() (ast.TypeID, error) {
	start := p.current.Span
	path, err := p.parseName()
	if err != nil {
		return ast.NoTypeID, err
	}
	generics, err := p.parseTypeGenericPart()
	if err != nil {
		return ast.NoTypeID, err
	}
	return p.arenas.Types.NewPrimary(p.spanFrom(start), path, generics), nil
}

// parseTypeGenericPart parses an optional `<T, U>` after a type name.
func (p *Parser) parseTypeGenericPart() ([]ast.TypeID, error) {
	if !p.at(token.Lt) {
		return []ast.TypeID{}, nil
	}
	if err := p.advance(); err != nil { // '<'
		return nil, err
	}
	return parseList(p, "generics", token.Gt, p.parseType)
}

func (p *Parser) parsePointerType() (ast.TypeID, error) {
	start := p.current.Span
	if err := p.advance(); err != nil { // '*'
		return ast.NoTypeID, err
	}
	inner, err := p.parseType()
	if err != nil {
		return ast.NoTypeID, err
	}
	return p.arenas.Types.NewWrapped(ast.TypePointer, p.spanFrom(start), inner), nil
}

func (p *Parser) parseArrayType() (ast.TypeID, error) {
	start := p.current.Span
	if err := p.advance(); err != nil { // '['
		return ast.NoTypeID, err
	}
	inner, err := p.parseType()
	if err != nil {
		return ast.NoTypeID, err
	}
	if err := p.expect(token.RBracket, "array type"); err != nil {
		return ast.NoTypeID, err
	}
	return p.arenas.Types.NewWrapped(ast.TypeArray, p.spanFrom(start), inner), nil
}

// parseGenericAnnotations parses declaration-site `<T, U C, V: C>`.
// Отсутствие списка и `<>` дают пустой результат.
func (p *Parser) parseGenericAnnotations() (ast.GenericAnnotations, error) {
	generics := make(ast.GenericAnnotations, 0)
	if !p.at(token.Lt) {
		return generics, nil
	}
	if err := p.advance(); err != nil { // '<'
		return nil, err
	}

	for !p.atClose(token.Gt) {
		if err := p.check(token.Ident, "generic annotations"); err != nil {
			return nil, err
		}
		param := ast.GenericParam{Name: p.identName()}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.Colon) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if !p.at(token.Comma) && !p.atClose(token.Gt) {
			constraint, err := p.parseType()
			if err != nil {
				return nil, err
			}
			param.Constraint = constraint
		}
		generics = append(generics, param)

		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil { // ','
			return nil, err
		}
	}
	if err := p.expectClose(token.Gt, "generic annotations"); err != nil {
		return nil, err
	}
	return generics, nil
}

// parseName: `a::b::c`; текущий токен должен быть идентификатором.
func (p *Parser) parseName() (ast.Path, error) {
	if err := p.check(token.Ident, "name"); err != nil {
		return ast.Path{}, err
	}
	path := ast.Path{Span: p.current.Span}
	for {
		path.Segments = append(path.Segments, p.identName())
		if err := p.advance(); err != nil {
			return ast.Path{}, err
		}
		if !p.at(token.ColonColon) {
			break
		}
		if err := p.advance(); err != nil { // '::'
			return ast.Path{}, err
		}
		if err := p.check(token.Ident, "name"); err != nil {
			return ast.Path{}, err
		}
	}
	path.Span = p.spanFrom(path.Span)
	return path, nil
}

// identName turns the current identifier token into a name.
func (p *Parser) identName() ast.Name {
	return ast.Name{Value: p.current.Value.Str, Span: p.current.Span}
}
