package ast

import (
	"ry/internal/source"
)

type TypeKind uint8

const (
	TypePrimary TypeKind = iota
	TypePointer
	TypeArray
	TypeOption
)

var typeKindNames = [...]string{
	TypePrimary: "Primary",
	TypePointer: "Pointer",
	TypeArray:   "Array",
	TypeOption:  "Option",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return "TypeKind(?)"
}

// Type is a type expression. Для Pointer, Array и Option Payload не используется,
// вложенный тип лежит в Inner.
type Type struct {
	Kind    TypeKind
	Span    source.Span
	Inner   TypeID
	Payload PayloadID
}

type TypePrimaryData struct {
	Path     Path
	Generics []TypeID
}

type Types struct {
	Arena     *Arena[Type]
	Primaries *Arena[TypePrimaryData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{
		Arena:     NewArena[Type](capHint),
		Primaries: NewArena[TypePrimaryData](capHint),
	}
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) NewPrimary(span source.Span, path Path, generics []TypeID) TypeID {
	payload := t.Primaries.Allocate(TypePrimaryData{
		Path:     path,
		Generics: append(make([]TypeID, 0, len(generics)), generics...),
	})
	return TypeID(t.Arena.Allocate(Type{Kind: TypePrimary, Span: span, Payload: PayloadID(payload)}))
}

func (t *Types) Primary(id TypeID) (*TypePrimaryData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypePrimary {
		return nil, false
	}
	return t.Primaries.Get(uint32(typ.Payload)), true
}

// NewWrapped creates a Pointer, Array or Option around inner.
func (t *Types) NewWrapped(kind TypeKind, span source.Span, inner TypeID) TypeID {
	if kind == TypePrimary {
		panic("ast: NewWrapped with TypePrimary")
	}
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: span, Inner: inner}))
}
