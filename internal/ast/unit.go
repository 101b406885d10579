package ast

import (
	"ry/internal/source"
)

// Unit is the result of parsing one source file.
type Unit struct {
	Span    source.Span
	Imports []ItemID // только ItemImport, в порядке объявления
	Items   []ItemID // остальные элементы верхнего уровня
}

type Units struct {
	Arena *Arena[Unit]
}

func NewUnits(capHint uint) *Units {
	return &Units{
		Arena: NewArena[Unit](capHint),
	}
}

func (u *Units) New(sp source.Span) UnitID {
	return UnitID(u.Arena.Allocate(Unit{
		Span:    sp,
		Imports: make([]ItemID, 0),
		Items:   make([]ItemID, 0),
	}))
}

func (u *Units) Get(id UnitID) *Unit {
	return u.Arena.Get(uint32(id))
}
