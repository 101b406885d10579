package token

import (
	"strconv"

	"ry/internal/source"
)

// Value holds the decoded payload of a token. Only the field matching
// Token.Kind is meaningful.
type Value struct {
	Int   uint64  // IntLit
	Float float64 // FloatLit, ImagLit
	Str   string  // StringLit, Ident, Comment
	Char  rune    // CharLit
	Bool  bool    // BoolLit
	Err   LexError
}

// Token represents a single source token with its location and payload.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value Value
}

// IsLiteral reports whether the token is a numeric, boolean, char or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsInvalid reports whether the token carries a lexical error.
func (t Token) IsInvalid() bool { return t.Kind == Invalid }

// String renders the token the way `ry lex` prints it.
func (t Token) String() string {
	switch t.Kind {
	case IntLit:
		return "integer " + strconv.FormatUint(t.Value.Int, 10)
	case FloatLit:
		return "float " + formatFloat(t.Value.Float)
	case ImagLit:
		return "imaginary " + formatFloat(t.Value.Float) + "i"
	case StringLit:
		return "string " + strconv.Quote(t.Value.Str)
	case CharLit:
		return "char " + strconv.QuoteRune(t.Value.Char)
	case BoolLit:
		return "bool " + strconv.FormatBool(t.Value.Bool)
	case Ident:
		return "identifier " + t.Value.Str
	case Comment:
		return "comment " + t.Value.Str
	case Invalid:
		return "invalid: " + t.Value.Err.Error()
	default:
		return t.Kind.String()
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// 12345 → 12345.0, чтобы float не путался с integer
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E', 'I', 'N':
			return s
		}
	}
	return s + ".0"
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
