package lexer

import (
	"unicode"

	"ry/internal/source"
	"ry/internal/token"
)

// Lexer выдаёт токены по одному на каждый вызов Next. Ошибки не прерывают
// поток: они приходят как token.Invalid, и сканирование продолжается дальше.
// Перезапуск возможен только созданием нового лексера.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	start  source.Location // начало текущего токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		start:  source.StartLocation(),
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next возвращает следующий токен, включая Comment и Invalid.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// пробелы не порождают токенов
	lx.skipWhitespace()
	lx.start = lx.cursor.Location()

	// окно (current, next) выбирает сканер
	c, n := lx.cursor.Current(), lx.cursor.Peek()
	switch {
	case lx.cursor.EOF():
		return token.Token{
			Kind: token.EOF,
			Span: source.ZeroAt(lx.file.ID, lx.start),
			Text: "",
		}
	case c == '"':
		return lx.scanString()
	case c == '`':
		return lx.scanWrappedIdent()
	case c == '\'':
		return lx.scanChar()
	case c == '/' && n == '/':
		return lx.scanComment()
	case isDec(c) || (c == '_' && isDec(n)):
		return lx.scanNumber()
	case isIdentStartRune(c):
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && unicode.IsSpace(lx.cursor.Current()) {
		lx.cursor.Bump()
	}
}

// emit завершает токен kind от lx.start до текущей позиции.
func (lx *Lexer) emit(k token.Kind) token.Token {
	return token.Token{
		Kind: k,
		Span: lx.cursor.SpanFrom(lx.start),
		Text: lx.cursor.Text(lx.start),
	}
}
