package testkit_test

import (
	"context"
	"testing"

	"ry/internal/ast"
	"ry/internal/diag"
	"ry/internal/lexer"
	"ry/internal/parser"
	"ry/internal/source"
	"ry/internal/testkit"
)

func TestCheckSpanInvariants(t *testing.T) {
	sources := []string{
		"",
		"import a::b;",
		"// head\nimport std::io;\npub fun main<T>(x T) T { defer f(); g(x); x }\nfun h() {}\n",
		"fun f() { if a { b } else { c }; while x { y; } }",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		sf := fs.Get(fs.AddVirtual("inv.ry", []byte(src)))
		reporter := diag.BagReporter{Bag: diag.NewBag(8)}
		lx := lexer.New(sf, lexer.Options{Reporter: reporter})
		b := ast.NewBuilder(ast.Hints{})
		res, err := parser.ParseFile(context.Background(), lx, b, parser.Options{Reporter: reporter})
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if err := testkit.CheckSpanInvariants(b, res.Unit, sf); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCheckSpanInvariantsRejectsForeignSpan(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("a.ry", []byte("fun f() {}")))
	other := fs.Get(fs.AddVirtual("b.ry", []byte("fun f() {}")))

	reporter := diag.BagReporter{Bag: diag.NewBag(8)}
	b := ast.NewBuilder(ast.Hints{})
	res, err := parser.ParseFile(context.Background(), lexer.New(sf, lexer.Options{Reporter: reporter}), b, parser.Options{Reporter: reporter})
	if err != nil {
		t.Fatal(err)
	}
	if err := testkit.CheckSpanInvariants(b, res.Unit, other); err == nil {
		t.Fatal("unit checked against the wrong file must fail")
	}
	if err := testkit.CheckSpanInvariants(nil, res.Unit, sf); err == nil {
		t.Fatal("nil builder must fail")
	}
}
