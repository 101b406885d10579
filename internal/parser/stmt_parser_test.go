package parser

import (
	"testing"

	"ry/internal/ast"
)

func TestBlockValueSemantics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"last_return", "{ a; b }", "{Expression:a LastReturn:b}"},
		{"terminated", "{ a; b; }", "{Expression:a Expression:b}"},
		{"empty", "{}", "{}"},
		{"only_value", "{ 42 }", "{LastReturn:42}"},
		{"return", "{ return a + 1; }", "{Return:(+ a 1)}"},
		{"defer", "{ defer close(f); x }", "{Defer:(call close <> (f)) LastReturn:x}"},
		{"if_value", "{ if c { a } else { b } }", "{LastReturn:(if c {LastReturn:a} else {LastReturn:b})}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ps := parseBlockInput(t, tt.input)
			if got := ps.block(block); got != tt.want {
				t.Fatalf("block = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLastReturnOnlyAtTail(t *testing.T) {
	block, ps := parseBlockInput(t, "{ a; b; c }")
	for i, id := range block.Stmts {
		st := ps.arenas.Stmts.Get(id)
		isLast := i == len(block.Stmts)-1
		if (st.Kind == ast.StmtLastReturn) != isLast {
			t.Fatalf("statement %d kind %v", i, st.Kind)
		}
	}
	if _, ok := ps.arenas.Stmts.LastReturn(block); !ok {
		t.Fatalf("LastReturn not found")
	}
}

func TestStatementSpanIncludesTerminator(t *testing.T) {
	block, ps := parseBlockInput(t, "{ return x; y }")
	ret := ps.arenas.Stmts.Get(block.Stmts[0])
	if ret.Span.Start.Index != 2 || ret.Span.End.Index != 11 {
		t.Fatalf("return span = %v", ret.Span)
	}
	last := ps.arenas.Stmts.Get(block.Stmts[1])
	if last.Span.Start.Index != 12 || last.Span.End.Index != 13 {
		t.Fatalf("last span = %v", last.Span)
	}
	if block.Span.Start.Index != 0 || block.Span.End.Index != 15 {
		t.Fatalf("block span = %v", block.Span)
	}
}
