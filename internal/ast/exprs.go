package ast

import (
	"ry/internal/source"
	"ry/internal/token"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena       *Arena[Expr]
	Literals    *Arena[ExprLiteralData]
	Lists       *Arena[ExprListData]
	StaticNames *Arena[ExprStaticNameData]
	Unaries     *Arena[ExprPrefixOrPostfixData]
	Binaries    *Arena[ExprBinaryData]
	Casts       *Arena[ExprAsData]
	Properties  *Arena[ExprPropertyData]
	Indices     *Arena[ExprIndexData]
	Calls       *Arena[ExprCallData]
	Ifs         *Arena[ExprIfData]
	Whiles      *Arena[ExprWhileData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint as the initial capacity.
// If capHint is 0, a default capacity of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Literals:    NewArena[ExprLiteralData](capHint),
		Lists:       NewArena[ExprListData](capHint / 4),
		StaticNames: NewArena[ExprStaticNameData](capHint),
		Unaries:     NewArena[ExprPrefixOrPostfixData](capHint / 4),
		Binaries:    NewArena[ExprBinaryData](capHint),
		Casts:       NewArena[ExprAsData](capHint / 8),
		Properties:  NewArena[ExprPropertyData](capHint / 4),
		Indices:     NewArena[ExprIndexData](capHint / 8),
		Calls:       NewArena[ExprCallData](capHint / 4),
		Ifs:         NewArena[ExprIfData](capHint / 8),
		Whiles:      NewArena[ExprWhileData](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// payloadOf returns the payload id of id when it has the requested kind.
func (e *Exprs) payloadOf(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

// NewLiteral creates a literal expression of the given literal kind.
func (e *Exprs) NewLiteral(kind ExprKind, span source.Span, value token.Value, raw string) ExprID {
	if !kind.IsLiteral() {
		panic("ast: NewLiteral with non-literal kind " + kind.String())
	}
	payload := e.Literals.Allocate(ExprLiteralData{Value: value, Raw: raw})
	return e.new(kind, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || !expr.Kind.IsLiteral() {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewList creates a list literal expression.
func (e *Exprs) NewList(span source.Span, elements []ExprID) ExprID {
	payload := e.Lists.Allocate(ExprListData{Elements: append([]ExprID(nil), elements...)})
	return e.new(ExprList, span, PayloadID(payload))
}

func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	p, ok := e.payloadOf(id, ExprList)
	if !ok {
		return nil, false
	}
	return e.Lists.Get(p), true
}

// NewStaticName creates a (possibly namespaced) name expression.
func (e *Exprs) NewStaticName(span source.Span, path Path) ExprID {
	payload := e.StaticNames.Allocate(ExprStaticNameData{Path: path})
	return e.new(ExprStaticName, span, PayloadID(payload))
}

func (e *Exprs) StaticName(id ExprID) (*ExprStaticNameData, bool) {
	p, ok := e.payloadOf(id, ExprStaticName)
	if !ok {
		return nil, false
	}
	return e.StaticNames.Get(p), true
}

// NewPrefixOrPostfix creates a unary operator expression.
func (e *Exprs) NewPrefixOrPostfix(span source.Span, op token.Token, operand ExprID, postfix bool) ExprID {
	payload := e.Unaries.Allocate(ExprPrefixOrPostfixData{Op: op, Operand: operand, Postfix: postfix})
	return e.new(ExprPrefixOrPostfix, span, PayloadID(payload))
}

func (e *Exprs) PrefixOrPostfix(id ExprID) (*ExprPrefixOrPostfixData, bool) {
	p, ok := e.payloadOf(id, ExprPrefixOrPostfix)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, left ExprID, op token.Token, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Left: left, Op: op, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payloadOf(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

// NewAs creates a cast expression `value as Type`.
func (e *Exprs) NewAs(span source.Span, value ExprID, typ TypeID) ExprID {
	payload := e.Casts.Allocate(ExprAsData{Value: value, Type: typ})
	return e.new(ExprAs, span, PayloadID(payload))
}

func (e *Exprs) As(id ExprID) (*ExprAsData, bool) {
	p, ok := e.payloadOf(id, ExprAs)
	if !ok {
		return nil, false
	}
	return e.Casts.Get(p), true
}

// NewProperty creates a member access expression.
func (e *Exprs) NewProperty(span source.Span, target ExprID, field Name) ExprID {
	payload := e.Properties.Allocate(ExprPropertyData{Target: target, Field: field})
	return e.new(ExprProperty, span, PayloadID(payload))
}

func (e *Exprs) Property(id ExprID) (*ExprPropertyData, bool) {
	p, ok := e.payloadOf(id, ExprProperty)
	if !ok {
		return nil, false
	}
	return e.Properties.Get(p), true
}

// NewIndex creates a new index expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	p, ok := e.payloadOf(id, ExprIndex)
	if !ok {
		return nil, false
	}
	return e.Indices.Get(p), true
}

// NewCall creates a new function call expression. A nil generics slice is
// stored as an empty one.
func (e *Exprs) NewCall(span source.Span, generics []TypeID, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Generics: append(make([]TypeID, 0, len(generics)), generics...),
		Callee:   callee,
		Args:     append(make([]ExprID, 0, len(args)), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payloadOf(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

// NewIf creates an if expression. Else is meaningful only when hasElse is set.
func (e *Exprs) NewIf(span source.Span, cond ExprID, then Block, elseIfs []ElseIf, els Block, hasElse bool) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{
		Cond:    cond,
		Then:    then,
		ElseIfs: append([]ElseIf(nil), elseIfs...),
		Else:    els,
		HasElse: hasElse,
	})
	return e.new(ExprIf, span, PayloadID(payload))
}

func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	p, ok := e.payloadOf(id, ExprIf)
	if !ok {
		return nil, false
	}
	return e.Ifs.Get(p), true
}

// NewWhile creates a while loop expression.
func (e *Exprs) NewWhile(span source.Span, cond ExprID, body Block) ExprID {
	payload := e.Whiles.Allocate(ExprWhileData{Cond: cond, Body: body})
	return e.new(ExprWhile, span, PayloadID(payload))
}

func (e *Exprs) While(id ExprID) (*ExprWhileData, bool) {
	p, ok := e.payloadOf(id, ExprWhile)
	if !ok {
		return nil, false
	}
	return e.Whiles.Get(p), true
}
