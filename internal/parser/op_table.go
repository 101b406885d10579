package parser

import (
	"ry/internal/token"
)

// Таблица приоритетов. Чем больше число, тем сильнее связывание.
const (
	precLowest          = 0
	precAssign          = 1  // = += -= *= /= |= ^=
	precElvis           = 2  // ?:
	precOrOr            = 3  // ||
	precAndAnd          = 4  // &&
	precOr              = 5  // |
	precXor             = 6  // ^
	precAnd             = 7  // &
	precEq              = 8  // == !=
	precCompare         = 9  // < <= > >=
	precShift           = 10 // << >>
	precSum             = 11 // + -
	precProduct         = 12 // * / %
	precPower           = 13 // **
	precCast            = 14 // as
	precPrefixOrPostfix = 15 // ? ++ -- !!
	precCall            = 16 // ( [ . $
)

type opClass uint8

const (
	opNone opClass = iota
	opInfix
	opPostfix
	opCall
	opGenericCall
	opProperty
	opIndex
	opCast
)

type opInfo struct {
	prec       int
	class      opClass
	rightAssoc bool
}

var opTable = map[token.Kind]opInfo{
	token.Assign:      {precAssign, opInfix, true},
	token.PlusAssign:  {precAssign, opInfix, true},
	token.MinusAssign: {precAssign, opInfix, true},
	token.StarAssign:  {precAssign, opInfix, true},
	token.SlashAssign: {precAssign, opInfix, true},
	token.PipeAssign:  {precAssign, opInfix, true},
	token.CaretAssign: {precAssign, opInfix, true},

	token.Elvis: {precElvis, opInfix, true},

	token.OrOr:   {precOrOr, opInfix, false},
	token.AndAnd: {precAndAnd, opInfix, false},
	token.Pipe:   {precOr, opInfix, false},
	token.Caret:  {precXor, opInfix, false},
	token.Amp:    {precAnd, opInfix, false},

	token.EqEq:   {precEq, opInfix, false},
	token.BangEq: {precEq, opInfix, false},

	token.Lt:   {precCompare, opInfix, false},
	token.LtEq: {precCompare, opInfix, false},
	token.Gt:   {precCompare, opInfix, false},
	token.GtEq: {precCompare, opInfix, false},

	token.Shl: {precShift, opInfix, false},
	token.Shr: {precShift, opInfix, false},

	token.Plus:    {precSum, opInfix, false},
	token.Minus:   {precSum, opInfix, false},
	token.Star:    {precProduct, opInfix, false},
	token.Slash:   {precProduct, opInfix, false},
	token.Percent: {precProduct, opInfix, false},

	token.StarStar: {precPower, opInfix, true},

	token.KwAs: {precCast, opCast, false},

	token.Question:   {precPrefixOrPostfix, opPostfix, false},
	token.PlusPlus:   {precPrefixOrPostfix, opPostfix, false},
	token.MinusMinus: {precPrefixOrPostfix, opPostfix, false},
	token.BangBang:   {precPrefixOrPostfix, opPostfix, false},

	token.LParen:   {precCall, opCall, false},
	token.LBracket: {precCall, opIndex, false},
	token.Dot:      {precCall, opProperty, false},
	token.Dollar:   {precCall, opGenericCall, false},
}

// lookupOp returns the operator entry for k; tokens outside the table have
// precedence precLowest and never continue an expression.
func lookupOp(k token.Kind) opInfo {
	if info, ok := opTable[k]; ok {
		return info
	}
	return opInfo{prec: precLowest, class: opNone}
}

// Precedence is exported for printers that need to parenthesise.
func Precedence(k token.Kind) int {
	return lookupOp(k).prec
}

// RightAssoc reports whether the binary operator k groups to the right.
func RightAssoc(k token.Kind) bool {
	return lookupOp(k).rightAssoc
}

func isPrefixOp(k token.Kind) bool {
	switch k {
	case token.Bang, token.Tilde, token.PlusPlus, token.MinusMinus, token.Minus, token.Plus:
		return true
	default:
		return false
	}
}
