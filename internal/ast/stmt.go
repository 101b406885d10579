package ast

import (
	"ry/internal/source"
)

type StmtKind uint8

const (
	StmtReturn StmtKind = iota
	StmtDefer
	StmtExpr
	// StmtLastReturn is the terminator-free tail of a block; its value is the block's value.
	StmtLastReturn
)

var stmtKindNames = [...]string{
	StmtReturn:     "Return",
	StmtDefer:      "Defer",
	StmtExpr:       "Expression",
	StmtLastReturn: "LastReturn",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "StmtKind(?)"
}

// Every statement kind carries exactly one expression, so there is no payload arena.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Expr ExprID
}

// Block is `{ stmt* }`. Only the last statement may be StmtLastReturn.
type Block struct {
	Span  source.Span
	Stmts []StmtID
}

type Stmts struct {
	Arena *Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, expr ExprID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind: kind,
		Span: span,
		Expr: expr,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// LastReturn returns the value statement of block, if it has one.
func (s *Stmts) LastReturn(block Block) (*Stmt, bool) {
	if len(block.Stmts) == 0 {
		return nil, false
	}
	st := s.Get(block.Stmts[len(block.Stmts)-1])
	if st == nil || st.Kind != StmtLastReturn {
		return nil, false
	}
	return st, true
}
