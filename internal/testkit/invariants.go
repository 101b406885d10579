// Package testkit holds structural checks shared by parser tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ry/internal/ast"
	"ry/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed unit:
// 1) the unit span lies within the file content
// 2) every item span is non-empty and inside the unit span
// 3) imports and other items are each in source order
// 4) every statement of a function body is inside its block
func CheckSpanInvariants(b *ast.Builder, unitID ast.UnitID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	unit := b.Units.Get(unitID)
	if unit == nil {
		return fmt.Errorf("unit %d not found", unitID)
	}

	if unit.Span.File != sf.ID {
		return fmt.Errorf("unit span points to different file id: got=%d want=%d", unit.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if unit.Span.Start.Index > unit.Span.End.Index || unit.Span.End.Index > lenContent {
		return fmt.Errorf("unit span %v outside content of %d bytes", unit.Span, lenContent)
	}

	for _, list := range [][]ast.ItemID{unit.Imports, unit.Items} {
		var prevEnd uint32
		for _, id := range list {
			item := b.Items.Get(id)
			if item == nil {
				return fmt.Errorf("nil item for id=%d", id)
			}
			sp := item.Span
			if sp.Empty() {
				return fmt.Errorf("empty item span: %v", sp)
			}
			if !unit.Span.Contains(sp) {
				return fmt.Errorf("item span %v is outside unit span %v", sp, unit.Span)
			}
			if sp.Start.Index < prevEnd {
				return fmt.Errorf("item span %v overlaps previous item ending at %d", sp, prevEnd)
			}
			prevEnd = sp.End.Index

			if fun, ok := b.Items.Fun(id); ok {
				if err := checkBlock(b, fun.Body, sp); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkBlock(b *ast.Builder, block ast.Block, outer source.Span) error {
	if !outer.Contains(block.Span) {
		return fmt.Errorf("block span %v is outside %v", block.Span, outer)
	}
	for i, id := range block.Stmts {
		st := b.Stmts.Get(id)
		if st == nil {
			return fmt.Errorf("nil stmt for id=%d", id)
		}
		if !block.Span.Contains(st.Span) {
			return fmt.Errorf("stmt span %v is outside block %v", st.Span, block.Span)
		}
		if st.Kind == ast.StmtLastReturn && i != len(block.Stmts)-1 {
			return fmt.Errorf("LastReturn at position %d of %d", i, len(block.Stmts))
		}
	}
	return nil
}
