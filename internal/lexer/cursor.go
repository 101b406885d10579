package lexer

import (
	"unicode/utf8"

	"ry/internal/source"
)

// Cursor это окно из двух рун (current, next) поверх содержимого файла.
// Позиция хранится как source.Location, поэтому строка и колонка
// считаются на ходу и никогда не откатываются назад.
type Cursor struct {
	File *source.File
	loc  source.Location
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	return Cursor{
		File: f,
		loc:  source.StartLocation(),
	}
}

// runeAt декодирует руну по байтовому смещению; за концом файла возвращает 0, 0.
func (c *Cursor) runeAt(off uint32) (rune, int) {
	if int(off) >= len(c.File.Content) {
		return 0, 0
	}
	b := c.File.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[off:])
}

// EOF проверяет, достигнут ли конец ввода. Встреченный '\0' тоже считается концом.
func (c *Cursor) EOF() bool {
	r, _ := c.runeAt(c.loc.Index)
	return r == 0
}

// Current возвращает текущую руну или 0 в конце файла.
func (c *Cursor) Current() rune {
	r, _ := c.runeAt(c.loc.Index)
	return r
}

// Peek возвращает руну после текущей или 0.
func (c *Cursor) Peek() rune {
	_, sz := c.runeAt(c.loc.Index)
	if sz == 0 {
		return 0
	}
	r, _ := c.runeAt(c.loc.Index + uint32(sz))
	return r
}

// Bump перемещает курсор на одну руну вперед и возвращает прочитанную руну.
func (c *Cursor) Bump() rune {
	r, sz := c.runeAt(c.loc.Index)
	if sz == 0 {
		return 0
	}
	c.loc = c.loc.Advance(r, sz)
	return r
}

// Eat consumes the current rune if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if c.EOF() || c.Current() != r {
		return false
	}
	c.Bump()
	return true
}

// Location возвращает текущую позицию курсора.
func (c *Cursor) Location() source.Location {
	return c.loc
}

// SpanFrom получает Span для фрагмента, начиная с сохранённой позиции.
func (c *Cursor) SpanFrom(start source.Location) source.Span {
	return source.Span{File: c.File.ID, Start: start, End: c.loc}
}

// Text возвращает исходный текст между start и текущей позицией.
func (c *Cursor) Text(start source.Location) string {
	return string(c.File.Content[start.Index:c.loc.Index])
}
