package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo                 Code = 1000
	LexUnexpectedChar       Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedIdent    Code = 1003
	LexUnterminatedChar     Code = 1004
	LexBadCharLiteral       Code = 1005
	LexUnknownEscape        Code = 1006
	LexNumberHasNoDigits    Code = 1010
	LexInvalidDigit         Code = 1011
	LexInvalidRadixPoint    Code = 1012
	LexExponentNeedsDecimal Code = 1013
	LexExponentHasNoDigits  Code = 1014
	LexBadDigitSeparator    Code = 1015
	LexIntegerOverflow      Code = 1016

	// Парсерные
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectSemicolon      Code = 2002
	SynExpectIdentifier     Code = 2003
	SynExpectType           Code = 2004
	SynExpectExpression     Code = 2005
	SynUnclosedParen        Code = 2006
	SynUnclosedBrace        Code = 2007
	SynUnclosedBracket      Code = 2008
	SynUnclosedAngleBracket Code = 2009
	SynUnexpectedTopLevel   Code = 2010

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

var ( // todo расширить описания и использовать как notes
	codeDescription = map[Code]string{
		UnknownCode:             "Unknown error",
		LexInfo:                 "Lexical information",
		LexUnexpectedChar:       "Unexpected character",
		LexUnterminatedString:   "Unterminated string",
		LexUnterminatedIdent:    "Unterminated wrapped identifier",
		LexUnterminatedChar:     "Unterminated character literal",
		LexBadCharLiteral:       "Bad character literal",
		LexUnknownEscape:        "Unknown escape sequence",
		LexNumberHasNoDigits:    "Number has no digits",
		LexInvalidDigit:         "Invalid digit",
		LexInvalidRadixPoint:    "Invalid radix point",
		LexExponentNeedsDecimal: "Exponent requires decimal mantissa",
		LexExponentHasNoDigits:  "Exponent has no digits",
		LexBadDigitSeparator:    "Misplaced digit separator",
		LexIntegerOverflow:      "Integer literal overflow",
		SynInfo:                 "Syntax information",
		SynUnexpectedToken:      "Unexpected token",
		SynExpectSemicolon:      "Expect semicolon",
		SynExpectIdentifier:     "Expect identifier",
		SynExpectType:           "Expect type",
		SynExpectExpression:     "Expect expression",
		SynUnclosedParen:        "Unclosed parenthesis",
		SynUnclosedBrace:        "Unclosed brace",
		SynUnclosedBracket:      "Unclosed bracket",
		SynUnclosedAngleBracket: "Unclosed angle bracket",
		SynUnexpectedTopLevel:   "Unexpected top level",
		IOLoadFileError:         "I/O load file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
