package format

import "strings"

// Writer собирает отформатированный текст. Отступ вставляется лениво,
// перед первым символом строки, поэтому пустые строки остаются пустыми.
type Writer struct {
	buf     []byte
	unit    string // один уровень отступа
	depth   int
	pending bool // следующий символ начинает строку
}

func NewWriter(opt Options, sizeHint int) *Writer {
	opt = opt.withDefaults()
	unit := "\t"
	if !opt.UseTabs {
		unit = strings.Repeat(" ", opt.IndentWidth)
	}
	return &Writer{buf: make([]byte, 0, sizeHint), unit: unit, pending: true}
}

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) lastByte() byte {
	if len(w.buf) == 0 {
		return 0
	}
	return w.buf[len(w.buf)-1]
}

func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	if w.pending {
		for range w.depth {
			w.buf = append(w.buf, w.unit...)
		}
	}
	w.buf = append(w.buf, s...)
	w.pending = s[len(s)-1] == '\n'
}

// Space пишет пробел, если строка не пуста и не кончается пробельным символом.
func (w *Writer) Space() {
	if w.pending {
		return
	}
	switch w.lastByte() {
	case 0, ' ', '\t', '\n':
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline завершает текущую строку; повторные вызовы не плодят пустые строки.
func (w *Writer) Newline() {
	if c := w.lastByte(); c != 0 && c != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.pending = true
}

// BlankLine оставляет ровно одну пустую строку между элементами.
func (w *Writer) BlankLine() {
	w.Newline()
	if len(w.buf) >= 2 && w.buf[len(w.buf)-2] != '\n' {
		w.buf = append(w.buf, '\n')
	}
}

func (w *Writer) IndentPush() { w.depth++ }

func (w *Writer) IndentPop() { w.depth = max(0, w.depth-1) }
