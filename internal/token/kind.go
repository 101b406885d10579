package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid carries a lexical error in Token.Value.Err.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Comment is a `//` line comment; payload is the text after the slashes.
	Comment

	// Ident represents an identifier token (plain or `wrapped`).
	Ident
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwDefer represents the 'defer' keyword.
	KwDefer // defer
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwPub represents the 'pub' keyword.
	KwPub // pub

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// ImagLit represents the imaginary literal token (`2i`, `1.5e3i`).
	ImagLit
	// StringLit represents the string literal token.
	StringLit
	// CharLit represents the char literal token.
	CharLit
	// BoolLit represents the boolean literal token.
	BoolLit

	Plus        // +
	PlusPlus    // ++
	PlusAssign  // +=
	Minus       // -
	MinusMinus  // --
	MinusAssign // -=
	Star        // *
	StarAssign  // *=
	StarStar    // **
	Slash       // /
	SlashAssign // /=
	Bang        // !
	BangEq      // != и ~=
	BangBang    // !!
	Gt          // >
	Shr         // >>
	GtEq        // >=
	Lt          // <
	Shl         // <<
	LtEq        // <=
	Assign      // =
	EqEq        // ==
	Pipe        // |
	PipeAssign  // |=
	OrOr        // ||
	Amp         // &
	AndAnd      // &&
	Caret       // ^
	CaretAssign // ^=
	Tilde       // ~ (not)
	LParen      // (
	RParen      // )
	LBracket    // [
	RBracket    // ]
	LBrace      // {
	RBrace      // }
	Comma       // ,
	Semicolon   // ;
	Dot         // .
	ColonColon  // ::
	Colon       // :
	Dollar      // $
	Question    // ?
	Elvis       // ?:
	Percent     // %

	kindCount
)

var kindNames = [...]string{
	Invalid: "invalid",
	EOF:     "end of file",
	Comment: "comment",
	Ident:   "identifier",

	KwIf:     "if",
	KwElse:   "else",
	KwWhile:  "while",
	KwReturn: "return",
	KwDefer:  "defer",
	KwAs:     "as",
	KwFun:    "fun",
	KwImport: "import",
	KwPub:    "pub",

	IntLit:    "integer",
	FloatLit:  "float",
	ImagLit:   "imaginary",
	StringLit: "string",
	CharLit:   "char",
	BoolLit:   "bool",

	Plus:        "+",
	PlusPlus:    "++",
	PlusAssign:  "+=",
	Minus:       "-",
	MinusMinus:  "--",
	MinusAssign: "-=",
	Star:        "*",
	StarAssign:  "*=",
	StarStar:    "**",
	Slash:       "/",
	SlashAssign: "/=",
	Bang:        "!",
	BangEq:      "!=",
	BangBang:    "!!",
	Gt:          ">",
	Shr:         ">>",
	GtEq:        ">=",
	Lt:          "<",
	Shl:         "<<",
	LtEq:        "<=",
	Assign:      "=",
	EqEq:        "==",
	Pipe:        "|",
	PipeAssign:  "|=",
	OrOr:        "||",
	Amp:         "&",
	AndAnd:      "&&",
	Caret:       "^",
	CaretAssign: "^=",
	Tilde:       "~",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
	Comma:       ",",
	Semicolon:   ";",
	Dot:         ".",
	ColonColon:  "::",
	Colon:       ":",
	Dollar:      "$",
	Question:    "?",
	Elvis:       "?:",
	Percent:     "%",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + itoa(uint64(k)) + ")"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwIf && k <= KwPub
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= BoolLit
}

// IsPunctOrOp reports whether k is a punctuation or operator.
func (k Kind) IsPunctOrOp() bool {
	return k >= Plus && k < kindCount
}
