package lexer

import (
	"strings"

	"ry/internal/token"
)

// scanString: "..." с escape \n \t \r \0 \\ \" \'.
// Перевод строки или конец файла до закрывающей кавычки дают UnterminatedStringLiteral,
// сама кавычка при этом не ищется дальше.
func (lx *Lexer) scanString() token.Token {
	lx.cursor.Bump() // opening '"'

	var sb strings.Builder
	badEscape := rune(-1)
	for {
		if lx.cursor.EOF() || lx.cursor.Current() == '\n' {
			return lx.invalid(token.UnterminatedStringLiteral, 0)
		}
		ch := lx.cursor.Bump()
		switch ch {
		case '"':
			if badEscape >= 0 {
				return lx.invalid(token.UnknownEscapeSequence, badEscape)
			}
			tok := lx.emit(token.StringLit)
			tok.Value.Str = sb.String()
			return tok
		case '\\':
			if lx.cursor.EOF() || lx.cursor.Current() == '\n' {
				continue // дальше сработает проверка на незакрытую строку
			}
			esc := lx.cursor.Bump()
			r, ok := unescape(esc)
			if !ok && badEscape < 0 {
				badEscape = esc
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(ch)
		}
	}
}

// scanWrappedIdent: `любой текст` превращается в идентификатор без проверки ключевых слов.
func (lx *Lexer) scanWrappedIdent() token.Token {
	lx.cursor.Bump() // opening '`'
	contentStart := lx.cursor.Location()
	for !lx.cursor.EOF() && lx.cursor.Current() != '`' && lx.cursor.Current() != '\n' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() || lx.cursor.Current() == '\n' {
		return lx.invalid(token.UnterminatedWrappedIdentifierLiteral, 0)
	}
	name := lx.cursor.Text(contentStart)
	lx.cursor.Bump() // closing '`'

	tok := lx.emit(token.Ident)
	tok.Value.Str = normalizeIdent(name)
	return tok
}

// scanChar: 'c' ровно с одной руной (escape как в строках).
func (lx *Lexer) scanChar() token.Token {
	lx.cursor.Bump() // opening '\''

	var (
		value     rune
		count     int
		badEscape = rune(-1)
	)
	for {
		if lx.cursor.EOF() || lx.cursor.Current() == '\n' {
			return lx.invalid(token.UnterminatedCharLiteral, 0)
		}
		ch := lx.cursor.Bump()
		if ch == '\'' {
			break
		}
		if ch == '\\' && !lx.cursor.EOF() && lx.cursor.Current() != '\n' {
			esc := lx.cursor.Bump()
			r, ok := unescape(esc)
			if !ok && badEscape < 0 {
				badEscape = esc
			}
			ch = r
		}
		value = ch
		count++
	}

	switch {
	case badEscape >= 0:
		return lx.invalid(token.UnknownEscapeSequence, badEscape)
	case count == 0:
		return lx.invalid(token.EmptyCharLiteral, 0)
	case count > 1:
		return lx.invalid(token.MoreThanOneCharInCharLiteral, 0)
	}
	tok := lx.emit(token.CharLit)
	tok.Value.Char = value
	return tok
}

// scanComment: // до конца строки. Span включает "//", полезная нагрузка: текст после них.
func (lx *Lexer) scanComment() token.Token {
	lx.cursor.Bump()
	lx.cursor.Bump()
	textStart := lx.cursor.Location()
	for !lx.cursor.EOF() && lx.cursor.Current() != '\n' {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Comment)
	tok.Value.Str = lx.cursor.Text(textStart)
	return tok
}

func unescape(esc rune) (rune, bool) {
	switch esc {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\', '"', '\'':
		return esc, true
	default:
		return esc, false
	}
}
