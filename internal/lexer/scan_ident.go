package lexer

import (
	"golang.org/x/text/unicode/norm"

	"ry/internal/token"
)

// scanIdentOrKeyword сканирует максимальный [\pL\pN_]+ и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase). Token.Text: ровно исходный срез,
// Value.Str: имя в NFC, чтобы "é" в двух записях давало одно имя.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	for !lx.cursor.EOF() && isIdentContinueRune(lx.cursor.Current()) {
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Ident)

	// Проверка на ключевое слово (регистрозависимо)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
		if k == token.BoolLit {
			tok.Value.Bool = tok.Text == "true"
		}
		return tok
	}

	tok.Value.Str = normalizeIdent(tok.Text)
	return tok
}

func normalizeIdent(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
