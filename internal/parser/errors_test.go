package parser

import (
	"errors"
	"strings"
	"testing"

	"ry/internal/ast"
	"ry/internal/diag"
	"ry/internal/token"
)

func TestExpressionErrorContexts(t *testing.T) {
	tests := []struct {
		input   string
		context string
		tok     token.Kind
		code    diag.Code
	}{
		{"1 +", "expression", token.EOF, diag.SynExpectExpression},
		{")", "expression", token.RParen, diag.SynExpectExpression},
		{"(1", "parenthesized expression", token.EOF, diag.SynUnclosedParen},
		{"[1, 2", "list literal", token.EOF, diag.SynUnclosedBracket},
		{"a[1", "index", token.EOF, diag.SynUnclosedBracket},
		{"f(1 2)", "call arguments list", token.IntLit, diag.SynUnclosedParen},
		{"a.1", "property", token.IntLit, diag.SynExpectIdentifier},
		{"f$(x)", "generics", token.LParen, diag.SynUnclosedAngleBracket},
		{"f$<T>x", "call arguments list", token.Ident, diag.SynUnclosedParen},
		{"x as )", "type", token.RParen, diag.SynExpectType},
		{"x as [T", "array type", token.EOF, diag.SynUnclosedBracket},
		{"x as T<U", "generics", token.EOF, diag.SynUnclosedAngleBracket},
		{"a::", "name", token.EOF, diag.SynExpectIdentifier},
		{"if a b", "statements block", token.Ident, diag.SynUnclosedBrace},
		{"a b", "end of file", token.Ident, diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bag := diag.NewBag(16)
			_, err := ParseExpression(newTestLexer(tt.input, bag), ast.NewBuilder(ast.Hints{}), Options{Reporter: diag.BagReporter{Bag: bag}})
			perr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %v", err)
			}
			if perr.Kind != ErrUnexpectedToken {
				t.Fatalf("kind = %v", perr.Kind)
			}
			if perr.Context != tt.context {
				t.Errorf("context = %q, want %q", perr.Context, tt.context)
			}
			if perr.Token.Kind != tt.tok {
				t.Errorf("token = %v, want %v", perr.Token.Kind, tt.tok)
			}
			if perr.Code() != tt.code {
				t.Errorf("code = %v, want %v", perr.Code(), tt.code)
			}
			if bag.Len() != 1 || bag.Items()[0].Code != tt.code {
				t.Errorf("diagnostics: %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestBlockErrors(t *testing.T) {
	tests := []struct {
		input      string
		context    string
		suggestion bool
	}{
		{"{ a b }", "statements block", true},
		{"{ return a }", "end of the statement", false},
		{"{ a;", "statements block", false},
		{"a", "statements block", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseBlock(newTestLexer(tt.input, diag.NewBag(4)), ast.NewBuilder(ast.Hints{}), Options{})
			perr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %v", err)
			}
			if perr.Context != tt.context {
				t.Errorf("context = %q, want %q", perr.Context, tt.context)
			}
			if (perr.Suggestion != "") != tt.suggestion {
				t.Errorf("suggestion = %q", perr.Suggestion)
			}
		})
	}
}

func TestScanningErrorIsNotReportedTwice(t *testing.T) {
	bag := diag.NewBag(16)
	_, err := ParseExpression(newTestLexer("1 + 0b", bag), ast.NewBuilder(ast.Hints{}), Options{Reporter: diag.BagReporter{Bag: bag}})
	perr, ok := AsError(err)
	if !ok || perr.Kind != ErrScanning {
		t.Fatalf("expected scanning error, got %v", err)
	}
	var lexErr token.LexError
	if !errors.As(err, &lexErr) || lexErr.Kind != token.HasNoDigits {
		t.Fatalf("unwrapped = %v", errors.Unwrap(err))
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexNumberHasNoDigits {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	if perr.Code() != diag.LexNumberHasNoDigits {
		t.Fatalf("code = %v", perr.Code())
	}
}

func TestInvalidFirstToken(t *testing.T) {
	_, err := ParseExpression(newTestLexer(`"open`, diag.NewBag(4)), ast.NewBuilder(ast.Hints{}), Options{})
	perr, ok := AsError(err)
	if !ok || perr.Kind != ErrScanning || perr.Token.Value.Err.Kind != token.UnterminatedStringLiteral {
		t.Fatalf("got %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := ParseExpression(newTestLexer("(1", diag.NewBag(4)), ast.NewBuilder(ast.Hints{}), Options{})
	if got, want := err.Error(), "unexpected end of file, expected parenthesized expression"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	_, err = ParseBlock(newTestLexer("{ a b }", diag.NewBag(4)), ast.NewBuilder(ast.Hints{}), Options{})
	if !strings.HasSuffix(err.Error(), "(add ';' after the previous statement)") {
		t.Fatalf("Error() = %q", err.Error())
	}
}
