package parser

import (
	"ry/internal/token"
)

// advance сдвигает current в previous и подтягивает следующий значимый токен.
// Комментарии пропускаются; Invalid токен сразу превращается в ошибку.
func (p *Parser) advance() error {
	p.previous = p.current
	tok := p.lx.Next()
	for tok.Kind == token.Comment {
		tok = p.lx.Next()
	}
	p.current = tok
	return p.checkScanningError()
}

func (p *Parser) checkScanningError() error {
	if p.current.Kind != token.Invalid {
		return nil
	}
	return &Error{Kind: ErrScanning, Token: p.current}
}

func (p *Parser) unexpected(context, suggestion string) error {
	if err := p.checkScanningError(); err != nil {
		return err
	}
	return &Error{
		Kind:       ErrUnexpectedToken,
		Token:      p.current,
		Context:    context,
		Suggestion: suggestion,
	}
}

// check: current должен быть k, токен не съедается.
func (p *Parser) check(k token.Kind, context string) error {
	if p.at(k) {
		return nil
	}
	return p.unexpected(context, "")
}

// expect: ожидаем конкретный токен и съедаем его.
func (p *Parser) expect(k token.Kind, context string) error {
	if err := p.check(k, context); err != nil {
		return err
	}
	return p.advance()
}

// atClose reports whether current closes a list ended by k. Внутри списков
// дженериков `>>` тоже закрывает список.
func (p *Parser) atClose(k token.Kind) bool {
	return p.at(k) || (k == token.Gt && p.at(token.Shr))
}

// expectClose consumes the terminator of a list. `>>` is split in two:
// первая половина съедается, вторая остаётся текущим токеном.
func (p *Parser) expectClose(k token.Kind, context string) error {
	if k == token.Gt && p.at(token.Shr) {
		whole := p.current
		first, second := whole, whole
		first.Kind, second.Kind = token.Gt, token.Gt
		first.Text, second.Text = ">", ">"
		first.Span.End = whole.Span.Start
		first.Span.End.Index++
		first.Span.End.Column++
		second.Span.Start = first.Span.End
		p.previous, p.current = first, second
		return nil
	}
	return p.expect(k, context)
}

// parseList разбирает `elem, elem, ...` до терминатора включительно.
// Висячая запятая допускается.
func parseList[T any](p *Parser, context string, terminator token.Kind, elem func() (T, error)) ([]T, error) {
	out := make([]T, 0)
	for !p.atClose(terminator) {
		v, err := elem()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expectClose(terminator, context); err != nil {
		return nil, err
	}
	return out, nil
}
