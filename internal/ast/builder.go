package ast

import (
	"ry/internal/source"
)

type Hints struct{ Units, Items, Stmts, Exprs, Types uint }

// Builder owns every arena of one parse. Узлы дерева ссылаются друг на друга
// только через ID, и каждый ID принадлежит ровно одному родителю.
type Builder struct {
	Units *Units
	Items *Items
	Stmts *Stmts
	Exprs *Exprs
	Types *Types
}

func NewBuilder(hints Hints) *Builder {
	if hints.Units == 0 {
		hints.Units = 1 << 2
	}
	if hints.Items == 0 {
		hints.Items = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	return &Builder{
		Units: NewUnits(hints.Units),
		Items: NewItems(hints.Items),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
		Types: NewTypes(hints.Types),
	}
}

func (b *Builder) NewUnit(sp source.Span) UnitID {
	return b.Units.New(sp)
}

// PushItem attaches item to unit, routing imports into Unit.Imports.
func (b *Builder) PushItem(unit UnitID, item ItemID) {
	u := b.Units.Get(unit)
	if u == nil {
		return
	}
	if it := b.Items.Get(item); it != nil && it.Kind == ItemImport {
		u.Imports = append(u.Imports, item)
		return
	}
	u.Items = append(u.Items, item)
}
