package ast

import (
	"ry/internal/source"
	"ry/internal/token"
)

type ExprKind uint8

const (
	ExprInt ExprKind = iota
	ExprFloat
	ExprImag
	ExprString
	ExprChar
	ExprBool
	ExprList
	ExprStaticName
	ExprPrefixOrPostfix
	ExprBinary
	ExprAs
	ExprProperty
	ExprIndex
	ExprCall
	ExprIf
	ExprWhile
)

var exprKindNames = [...]string{
	ExprInt:             "Int",
	ExprFloat:           "Float",
	ExprImag:            "Imag",
	ExprString:          "String",
	ExprChar:            "Char",
	ExprBool:            "Bool",
	ExprList:            "List",
	ExprStaticName:      "StaticName",
	ExprPrefixOrPostfix: "PrefixOrPostfix",
	ExprBinary:          "Binary",
	ExprAs:              "As",
	ExprProperty:        "Property",
	ExprIndex:           "Index",
	ExprCall:            "Call",
	ExprIf:              "If",
	ExprWhile:           "While",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "ExprKind(?)"
}

// IsLiteral reports whether the expression kind is a single-token literal.
func (k ExprKind) IsLiteral() bool {
	return k <= ExprBool
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLiteralData covers Int, Float, Imag, String, Char and Bool.
// Value повторяет полезную нагрузку токена, Raw хранит исходный текст.
type ExprLiteralData struct {
	Value token.Value
	Raw   string
}

type ExprListData struct {
	Elements []ExprID
}

type ExprStaticNameData struct {
	Path Path
}

// ExprPrefixOrPostfixData is a unary operator application.
type ExprPrefixOrPostfixData struct {
	Op      token.Token
	Operand ExprID
	Postfix bool
}

type ExprBinaryData struct {
	Left  ExprID
	Op    token.Token
	Right ExprID
}

type ExprAsData struct {
	Value ExprID
	Type  TypeID
}

type ExprPropertyData struct {
	Target ExprID
	Field  Name
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprCallData keeps Generics non-nil: an empty slice means a plain call
// like f(x), a non-empty one comes from f$<T>(x).
type ExprCallData struct {
	Generics []TypeID
	Callee   ExprID
	Args     []ExprID
}

type ElseIf struct {
	Cond ExprID
	Body Block
}

type ExprIfData struct {
	Cond    ExprID
	Then    Block
	ElseIfs []ElseIf
	Else    Block
	HasElse bool
}

type ExprWhileData struct {
	Cond ExprID
	Body Block
}
