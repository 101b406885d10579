package lexer

import (
	"ry/internal/diag"
	"ry/internal/source"
	"ry/internal/token"
)

var lexErrorCodes = map[token.LexErrorKind]diag.Code{
	token.UnexpectedChar:                         diag.LexUnexpectedChar,
	token.UnterminatedStringLiteral:              diag.LexUnterminatedString,
	token.UnterminatedWrappedIdentifierLiteral:   diag.LexUnterminatedIdent,
	token.UnterminatedCharLiteral:                diag.LexUnterminatedChar,
	token.EmptyCharLiteral:                       diag.LexBadCharLiteral,
	token.MoreThanOneCharInCharLiteral:           diag.LexBadCharLiteral,
	token.UnknownEscapeSequence:                  diag.LexUnknownEscape,
	token.HasNoDigits:                            diag.LexNumberHasNoDigits,
	token.InvalidDigit:                           diag.LexInvalidDigit,
	token.InvalidRadixPoint:                      diag.LexInvalidRadixPoint,
	token.ExponentRequiresDecimalMantissa:        diag.LexExponentNeedsDecimal,
	token.ExponentHasNoDigits:                    diag.LexExponentHasNoDigits,
	token.UnderscoreMustSeperateSuccessiveDigits: diag.LexBadDigitSeparator,
	token.IntegerOverflow:                        diag.LexIntegerOverflow,
}

// CodeFor returns the diagnostic code used for a lexical error kind.
func CodeFor(kind token.LexErrorKind) diag.Code {
	if c, ok := lexErrorCodes[kind]; ok {
		return c
	}
	return diag.UnknownCode
}

// invalid завершает токен от lx.start до курсора как Invalid.
func (lx *Lexer) invalid(kind token.LexErrorKind, ch rune) token.Token {
	return lx.invalidSpan(lx.cursor.SpanFrom(lx.start), kind, ch)
}

// invalidSpan строит Invalid токен с произвольным span (например, одна плохая цифра).
func (lx *Lexer) invalidSpan(sp source.Span, kind token.LexErrorKind, ch rune) token.Token {
	lexErr := token.LexError{Kind: kind, Char: ch}
	lx.report(CodeFor(kind), sp, lexErr.Error())
	return token.Token{
		Kind:  token.Invalid,
		Span:  sp,
		Text:  string(lx.file.Content[sp.Start.Index:sp.End.Index]),
		Value: token.Value{Err: lexErr},
	}
}
