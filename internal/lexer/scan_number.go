package lexer

import (
	"strconv"
	"strings"

	"ry/internal/source"
	"ry/internal/token"
)

// Флаги аккумулятора при сканировании цифр.
const (
	digitSeen     uint8 = 1 << iota // встретилась хотя бы одна настоящая цифра
	separatorSeen                   // встретился хотя бы один '_'
)

// numberScan хранит состояние автомата для одного числового литерала.
type numberScan struct {
	kind   token.Kind
	base   int
	prefix rune // 'x', 'o', 'b'; '0' для неявной восьмеричной; 0 без префикса
	flags  uint8

	badDigit    source.Location // первая цифра вне base (только base <= 10)
	hasBadDigit bool
}

// radixPrefixed: явный префикс 0x/0o/0b. Неявный ведущий 0 сюда не входит.
func (ns *numberScan) radixPrefixed() bool {
	return ns.prefix == 'x' || ns.prefix == 'o' || ns.prefix == 'b'
}

// Поддержка: 0, 123, 0777, 0b..., 0o..., 0x..., 1.0, 12345., 1e-3, 1.0e+10, 2i, 1.5e3i.
// Неверные формы превращаются в Invalid токен с точной причиной.
func (lx *Lexer) scanNumber() token.Token {
	ns := numberScan{kind: token.IntLit, base: 10}

	// ведущий 0 и база?
	if lx.cursor.Current() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Current() {
		case 'x', 'X':
			lx.cursor.Bump()
			ns.base, ns.prefix = 16, 'x'
		case 'o', 'O':
			lx.cursor.Bump()
			ns.base, ns.prefix = 8, 'o'
		case 'b', 'B':
			lx.cursor.Bump()
			ns.base, ns.prefix = 2, 'b'
		default:
			// "0" уже цифра, дальше восьмеричные
			ns.base, ns.prefix = 8, '0'
			ns.flags = digitSeen
		}
	}

	lx.scanDigits(&ns)

	// дробная часть
	if lx.cursor.Current() == '.' {
		ns.kind = token.FloatLit
		if ns.radixPrefixed() {
			return lx.invalid(token.InvalidRadixPoint, 0)
		}
		lx.cursor.Bump() // '.'
		lx.scanDigits(&ns)
	}

	if ns.flags&digitSeen == 0 {
		return lx.invalid(token.HasNoDigits, 0)
	}

	// экспонента: цифры всегда десятичные
	if c := lx.cursor.Current(); c == 'e' || c == 'E' {
		if ns.radixPrefixed() {
			return lx.invalid(token.ExponentRequiresDecimalMantissa, 0)
		}
		lx.cursor.Bump()
		ns.kind = token.FloatLit
		if c := lx.cursor.Current(); c == '+' || c == '-' {
			lx.cursor.Bump()
		}
		exp := numberScan{base: 10}
		lx.scanDigits(&exp)
		ns.flags |= exp.flags & separatorSeen
		if exp.flags&digitSeen == 0 {
			return lx.invalid(token.ExponentHasNoDigits, 0)
		}
	}

	if lx.cursor.Current() == 'i' {
		lx.cursor.Bump()
		ns.kind = token.ImagLit
	}

	// у float и неявного 0 без префикса (09.5, 09i) основание десятичное
	if ns.hasBadDigit && (ns.kind == token.IntLit || ns.radixPrefixed()) {
		sp := source.Span{File: lx.file.ID, Start: ns.badDigit, End: ns.badDigit.Advance('0', 1)}
		return lx.invalidSpan(sp, token.InvalidDigit, 0)
	}

	text := lx.cursor.Text(lx.start)
	if ns.flags&separatorSeen != 0 && !separatorsValid(text, ns.base) {
		return lx.invalid(token.UnderscoreMustSeperateSuccessiveDigits, 0)
	}

	return lx.numberToken(&ns, text)
}

// scanDigits съедает [0-9_]* (или [0-9a-fA-F_]* для base 16), обновляя флаги
// и запоминая первую цифру, которая не влезает в base.
func (lx *Lexer) scanDigits(ns *numberScan) {
	for {
		c := lx.cursor.Current()
		if c == '_' {
			ns.flags |= separatorSeen
			lx.cursor.Bump()
			continue
		}
		if ns.base <= 10 {
			if !isDec(c) {
				return
			}
			if digitValue(c) >= ns.base && !ns.hasBadDigit {
				ns.badDigit = lx.cursor.Location()
				ns.hasBadDigit = true
			}
		} else if !isHex(c) {
			return
		}
		ns.flags |= digitSeen
		lx.cursor.Bump()
	}
}

// separatorsValid проверяет, что каждый '_' стоит строго между двумя цифрами:
// не рядом с префиксом, '.', 'e', знаком, 'i', другим '_' и не на краях литерала.
// Для base <= 10 цифрами считаются 0-9, плохие цифры ловит InvalidDigit.
func separatorsValid(lit string, base int) bool {
	isDigit := func(b byte) bool { return isDec(rune(b)) }
	if base == 16 {
		isDigit = func(b byte) bool { return isHex(rune(b)) }
	}

	i := 0
	if len(lit) >= 2 && lit[0] == '0' {
		switch lit[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i = 2
		}
	}

	prevDigit, prevSep := false, false
	for ; i < len(lit); i++ {
		switch b := lit[i]; {
		case b == '_':
			if !prevDigit {
				return false
			}
			prevDigit, prevSep = false, true
		case isDigit(b):
			prevDigit, prevSep = true, false
		default:
			if prevSep {
				return false
			}
			prevDigit, prevSep = false, false
		}
	}
	return !prevSep
}

// numberToken переводит проверенный текст литерала в значение.
// Символы уже проверены автоматом, поэтому ParseUint может вернуть только ErrRange.
func (lx *Lexer) numberToken(ns *numberScan, text string) token.Token {
	digits := strings.ReplaceAll(text, "_", "")

	switch ns.kind {
	case token.IntLit:
		v, err := parseUint(digits, ns)
		if err != nil {
			return lx.invalid(token.IntegerOverflow, 0)
		}
		tok := lx.emit(token.IntLit)
		tok.Value.Int = v
		return tok

	case token.ImagLit:
		body := strings.TrimSuffix(digits, "i")
		var f float64
		if ns.radixPrefixed() {
			v, err := parseUint(body, ns)
			if err != nil {
				return lx.invalid(token.IntegerOverflow, 0)
			}
			f = float64(v)
		} else {
			f = parseFloat(body)
		}
		tok := lx.emit(token.ImagLit)
		tok.Value.Float = f
		return tok

	default:
		tok := lx.emit(token.FloatLit)
		tok.Value.Float = parseFloat(digits)
		return tok
	}
}

func parseUint(digits string, ns *numberScan) (uint64, error) {
	if ns.radixPrefixed() {
		digits = digits[2:]
	}
	return strconv.ParseUint(digits, ns.base, 64)
}

// parseFloat: ErrRange (1e999) даёт ±Inf, это допустимое значение литерала.
func parseFloat(digits string) float64 {
	f, _ := strconv.ParseFloat(digits, 64)
	return f
}
