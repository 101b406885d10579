package parser

import (
	"errors"
	"strings"

	"ry/internal/diag"
	"ry/internal/lexer"
	"ry/internal/source"
	"ry/internal/token"
)

type ErrorKind uint8

const (
	// ErrUnexpectedToken is the only syntactic error kind.
	ErrUnexpectedToken ErrorKind = iota
	// ErrScanning means an Invalid token reached a position that needed a value.
	ErrScanning
)

// Error is the single error a parse can end with.
type Error struct {
	Kind       ErrorKind
	Token      token.Token
	Context    string // что именно разбиралось: "expression", "type", ...
	Suggestion string
}

func (e *Error) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case ErrScanning:
		sb.WriteString(e.Token.Value.Err.Error())
		if e.Context != "" {
			sb.WriteString(" in ")
			sb.WriteString(e.Context)
		}
	default:
		sb.WriteString("unexpected ")
		sb.WriteString(e.Token.String())
		sb.WriteString(", expected ")
		sb.WriteString(e.Context)
	}
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap exposes the lexical cause of an ErrScanning error.
func (e *Error) Unwrap() error {
	if e.Kind == ErrScanning {
		return e.Token.Value.Err
	}
	return nil
}

func (e *Error) Span() source.Span {
	return e.Token.Span
}

var contextCodes = map[string]diag.Code{
	"expression":               diag.SynExpectExpression,
	"parenthesized expression": diag.SynUnclosedParen,
	"list literal":             diag.SynUnclosedBracket,
	"call arguments list":      diag.SynUnclosedParen,
	"property":                 diag.SynExpectIdentifier,
	"index":                    diag.SynUnclosedBracket,
	"type":                     diag.SynExpectType,
	"array type":               diag.SynUnclosedBracket,
	"generics":                 diag.SynUnclosedAngleBracket,
	"generic annotations":      diag.SynUnclosedAngleBracket,
	"name":                     diag.SynExpectIdentifier,
	"statements block":         diag.SynUnclosedBrace,
	"end of the statement":     diag.SynExpectSemicolon,
	"function":                 diag.SynExpectIdentifier,
	"parameters":               diag.SynUnclosedParen,
	"import":                   diag.SynExpectSemicolon,
	"top level item":           diag.SynUnexpectedTopLevel,
}

// Code maps the error to a diagnostic code.
func (e *Error) Code() diag.Code {
	if e.Kind == ErrScanning {
		return lexer.CodeFor(e.Token.Value.Err.Kind)
	}
	if code, ok := contextCodes[e.Context]; ok {
		return code
	}
	return diag.SynUnexpectedToken
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
