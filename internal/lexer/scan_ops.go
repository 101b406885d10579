package lexer

import (
	"ry/internal/token"
)

type opPair struct {
	first, second rune
	kind          token.Kind
}

// Двухсимвольные операторы проверяются раньше односимвольных префиксов.
// '~=' это второе написание '!=' и даёт тот же BangEq.
var twoCharOps = [...]opPair{
	{'+', '+', token.PlusPlus},
	{'+', '=', token.PlusAssign},
	{'-', '-', token.MinusMinus},
	{'-', '=', token.MinusAssign},
	{'*', '*', token.StarStar},
	{'*', '=', token.StarAssign},
	{'/', '=', token.SlashAssign},
	{'!', '=', token.BangEq},
	{'!', '!', token.BangBang},
	{'>', '>', token.Shr},
	{'>', '=', token.GtEq},
	{'<', '<', token.Shl},
	{'<', '=', token.LtEq},
	{'=', '=', token.EqEq},
	{'|', '=', token.PipeAssign},
	{'|', '|', token.OrOr},
	{'&', '&', token.AndAnd},
	{'^', '=', token.CaretAssign},
	{'~', '=', token.BangEq},
	{':', ':', token.ColonColon},
	{'?', ':', token.Elvis},
}

var oneCharOps = map[rune]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'!': token.Bang,
	'<': token.Lt,
	'>': token.Gt,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'~': token.Tilde,
	'?': token.Question,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'.': token.Dot,
	'$': token.Dollar,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
}

// scanOperatorOrPunct: жадно, сначала 2-символьные, затем 1-символьные.
// Неизвестный символ съедается целиком (одна руна) и становится UnexpectedChar.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	c, n := lx.cursor.Current(), lx.cursor.Peek()
	for _, op := range twoCharOps {
		if op.first == c && op.second == n {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(op.kind)
		}
	}

	ch := lx.cursor.Bump()
	if k, ok := oneCharOps[ch]; ok {
		return lx.emit(k)
	}
	return lx.invalid(token.UnexpectedChar, ch)
}
