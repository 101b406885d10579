package token

import (
	"strconv"
)

// LexErrorKind classifies a lexical error carried by an Invalid token.
type LexErrorKind uint8

const (
	// NoLexError is the zero value for valid tokens.
	NoLexError LexErrorKind = iota
	UnexpectedChar
	UnterminatedStringLiteral
	UnterminatedWrappedIdentifierLiteral
	UnterminatedCharLiteral
	EmptyCharLiteral
	MoreThanOneCharInCharLiteral
	UnknownEscapeSequence
	HasNoDigits
	InvalidDigit
	InvalidRadixPoint
	ExponentRequiresDecimalMantissa
	ExponentHasNoDigits
	UnderscoreMustSeperateSuccessiveDigits
	IntegerOverflow
)

var lexErrorNames = [...]string{
	NoLexError:                             "NoLexError",
	UnexpectedChar:                         "UnexpectedChar",
	UnterminatedStringLiteral:              "UnterminatedStringLiteral",
	UnterminatedWrappedIdentifierLiteral:   "UnterminatedWrappedIdentifierLiteral",
	UnterminatedCharLiteral:                "UnterminatedCharLiteral",
	EmptyCharLiteral:                       "EmptyCharLiteral",
	MoreThanOneCharInCharLiteral:           "MoreThanOneCharInCharLiteral",
	UnknownEscapeSequence:                  "UnknownEscapeSequence",
	HasNoDigits:                            "HasNoDigits",
	InvalidDigit:                           "InvalidDigit",
	InvalidRadixPoint:                      "InvalidRadixPoint",
	ExponentRequiresDecimalMantissa:        "ExponentRequiresDecimalMantissa",
	ExponentHasNoDigits:                    "ExponentHasNoDigits",
	UnderscoreMustSeperateSuccessiveDigits: "UnderscoreMustSeperateSuccessiveDigits",
	IntegerOverflow:                        "IntegerOverflow",
}

func (k LexErrorKind) String() string {
	if int(k) < len(lexErrorNames) {
		return lexErrorNames[k]
	}
	return "LexErrorKind(" + itoa(uint64(k)) + ")"
}

// LexError is the payload of an Invalid token. Char is set for
// UnexpectedChar and UnknownEscapeSequence.
type LexError struct {
	Kind LexErrorKind
	Char rune
}

func (e LexError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return "unexpected character " + strconv.QuoteRune(e.Char)
	case UnterminatedStringLiteral:
		return "unterminated string literal"
	case UnterminatedWrappedIdentifierLiteral:
		return "unterminated wrapped identifier literal"
	case UnterminatedCharLiteral:
		return "unterminated character literal"
	case EmptyCharLiteral:
		return "empty character literal"
	case MoreThanOneCharInCharLiteral:
		return "character literal may only contain one codepoint"
	case UnknownEscapeSequence:
		return "unknown escape sequence \\" + string(e.Char)
	case HasNoDigits:
		return "number has no digits"
	case InvalidDigit:
		return "invalid digit for the number base"
	case InvalidRadixPoint:
		return "only decimal numbers may have a fractional part"
	case ExponentRequiresDecimalMantissa:
		return "exponent requires decimal mantissa"
	case ExponentHasNoDigits:
		return "exponent has no digits"
	case UnderscoreMustSeperateSuccessiveDigits:
		return "'_' must separate successive digits"
	case IntegerOverflow:
		return "integer literal is too large"
	default:
		return "invalid token"
	}
}
