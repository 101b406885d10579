package ast

import (
	"ry/internal/source"
)

type ItemKind uint8

const (
	ItemImport ItemKind = iota
	ItemFun
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// ImportItem is `import a::b::c;`.
type ImportItem struct {
	Path Path
}

type Param struct {
	Name Name
	Type TypeID
}

// FunItem is `[pub] fun name<T C>(a A) R { ... }`. Return is NoTypeID when omitted.
type FunItem struct {
	Public   bool
	Name     Name
	Generics GenericAnnotations
	Params   []Param
	Return   TypeID
	Body     Block
}

type Items struct {
	Arena   *Arena[Item]
	Imports *Arena[ImportItem]
	Funs    *Arena[FunItem]
}

// NewItems creates and returns an *Items with per-kind arenas initialized to capHint.
// If capHint is 0, NewItems uses a default initial capacity of 1<<6.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:   NewArena[Item](capHint),
		Imports: NewArena[ImportItem](capHint),
		Funs:    NewArena[FunItem](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payloadID PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payloadID,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewImport(span source.Span, path Path) ItemID {
	payload := i.Imports.Allocate(ImportItem{Path: path})
	return i.New(ItemImport, span, PayloadID(payload))
}

func (i *Items) Import(id ItemID) (*ImportItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemImport || !item.Payload.IsValid() {
		return nil, false
	}
	return i.Imports.Get(uint32(item.Payload)), true
}

func (i *Items) NewFun(span source.Span, fun FunItem) ItemID {
	fun.Generics = append(GenericAnnotations(nil), fun.Generics...)
	fun.Params = append([]Param(nil), fun.Params...)
	payload := i.Funs.Allocate(fun)
	return i.New(ItemFun, span, PayloadID(payload))
}

func (i *Items) Fun(id ItemID) (*FunItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemFun || !item.Payload.IsValid() {
		return nil, false
	}
	return i.Funs.Get(uint32(item.Payload)), true
}
