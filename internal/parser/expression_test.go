package parser

import (
	"testing"

	"ry/internal/ast"
	"ry/internal/token"
)

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"precedence", "1+2*3", "(+ 1 (* 2 3))"},
		{"left_assoc", "a - b - c", "(- (- a b) c)"},
		{"right_assoc_assign", "a = b = c", "(= a (= b c))"},
		{"right_assoc_power", "2 ** 3 ** 2", "(** 2 (** 3 2))"},
		{"power_over_product", "2 ** 3 * 4", "(* (** 2 3) 4)"},
		{"elvis", "a ?: b ?: c", "(?: a (?: b c))"},
		{"logic", "a || b && c", "(|| a (&& b c))"},
		{"bitwise", "a | b ^ c & d", "(| a (^ b (& c d)))"},
		{"compare_over_eq", "a < b == c > d", "(== (< a b) (> c d))"},
		{"shift", "a << 1 + 2", "(<< a (+ 1 2))"},
		{"compound_assign", "x += y * 2", "(+= x (* y 2))"},
		{"parens", "(1+2)*3", "(* (+ 1 2) 3)"},
		{"postfix", "a++", "(post ++ a)"},
		{"postfix_chain", "a?!!", "(post !! (post ? a))"},
		{"prefix", "-a", "(pre - a)"},
		{"prefix_not", "!a && b", "(&& (pre ! a) b)"},
		{"prefix_tilde", "~a", "(pre ~ a)"},
		{"prefix_binds_call", "-f(x)", "(pre - (call f <> (x)))"},
		{"prefix_then_postfix", "-a++", "(post ++ (pre - a))"},
		{"call", "f(x)", "(call f <> (x))"},
		{"call_no_args", "f()", "(call f <> ())"},
		{"call_trailing_comma", "f(a, b,)", "(call f <> (a b))"},
		{"generic_call", "f$<T>(x)", "(call f <T> (x))"},
		{"generic_call_nested", "f$<Map<K, V>>(x, y)", "(call f <Map<K, V>> (x y))"},
		{"property", "a.b.c", "(. (. a b) c)"},
		{"method_call", "a.b(1)", "(call (. a b) <> (1))"},
		{"index", "a[i + 1]", "(idx a (+ i 1))"},
		{"cast", "x as i32 + 1", "(+ (as x i32) 1)"},
		{"cast_option", "x as T?", "(as x T?)"},
		{"static_name", "std::io::stdout", "std::io::stdout"},
		{"list", "[1, 2, 3]", "[1 2 3]"},
		{"empty_list", "[]", "[]"},
		{"string", `"hi"`, `"hi"`},
		{"float", "1e3", "1e3"},
		{"not_equal_tilde", "a ~= b", "(!= a b)"},
		{"if_else", "if a { b } else { c }", "(if a {LastReturn:b} else {LastReturn:c})"},
		{"if_chain", "if a { 1 } else if b { 2 } else if c { 3 }", "(if a {LastReturn:1} elif b {LastReturn:2} elif c {LastReturn:3})"},
		{"while", "while i < 10 { i += 1; }", "(while (< i 10) {Expression:(+= i 1)})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ps := parseExprInput(t, tt.input)
			if got := ps.sexpr(id); got != tt.want {
				t.Errorf("parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestLiteralValues(t *testing.T) {
	id, ps := parseExprInput(t, "12345")
	e := ps.arenas.Exprs.Get(id)
	if e.Kind != ast.ExprInt {
		t.Fatalf("kind = %v, want Int", e.Kind)
	}
	lit, _ := ps.arenas.Exprs.Literal(id)
	if lit.Value.Int != 12345 {
		t.Fatalf("value = %d", lit.Value.Int)
	}

	id, ps = parseExprInput(t, "true")
	lit, _ = ps.arenas.Exprs.Literal(id)
	if ps.arenas.Exprs.Get(id).Kind != ast.ExprBool || !lit.Value.Bool {
		t.Fatalf("true did not parse as Bool(true)")
	}
}

func TestPlainCallHasEmptyGenerics(t *testing.T) {
	id, ps := parseExprInput(t, "f(x)")
	call, ok := ps.arenas.Exprs.Call(id)
	if !ok {
		t.Fatalf("expected call")
	}
	if call.Generics == nil || len(call.Generics) != 0 {
		t.Fatalf("generics = %#v, want empty non-nil", call.Generics)
	}

	id, ps = parseExprInput(t, "f$<T>(x)")
	call, _ = ps.arenas.Exprs.Call(id)
	if len(call.Generics) != 1 || ps.typeStr(call.Generics[0]) != "T" {
		t.Fatalf("generics = %v", call.Generics)
	}
	if len(call.Args) != 1 || ps.sexpr(call.Args[0]) != "x" {
		t.Fatalf("args = %v", call.Args)
	}
}

func TestBinaryOperatorToken(t *testing.T) {
	id, ps := parseExprInput(t, "a ~= b")
	bin, _ := ps.arenas.Exprs.Binary(id)
	if bin.Op.Kind != token.BangEq || bin.Op.Text != "~=" {
		t.Fatalf("op = %v %q", bin.Op.Kind, bin.Op.Text)
	}
}

func TestExpressionSpans(t *testing.T) {
	tests := []struct {
		input      string
		start, end uint32
	}{
		{"1 + 2*3", 0, 7},
		{"a++", 0, 3},
		{"-x", 0, 2},
		{"f$<T>(x)", 0, 8},
		{"a.b[1]", 0, 6},
		{"x as T??", 0, 8},
		{"(a)", 1, 2},
		{"if a { b }", 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ps := parseExprInput(t, tt.input)
			sp := ps.arenas.Exprs.Get(id).Span
			if sp.Start.Index != tt.start || sp.End.Index != tt.end {
				t.Fatalf("span = %d..%d, want %d..%d", sp.Start.Index, sp.End.Index, tt.start, tt.end)
			}
		})
	}
}

func TestCommentsAreInvisible(t *testing.T) {
	id, ps := parseExprInput(t, "1 + // one\n 2")
	if got := ps.sexpr(id); got != "(+ 1 2)" {
		t.Fatalf("got %s", got)
	}
}
