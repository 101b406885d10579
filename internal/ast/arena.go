package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena stores nodes of one kind contiguously. Handles are 1-based so that
// the zero handle of every ID type means "no node".
type Arena[T any] struct {
	items []T
}

func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capHint)}
}

// Allocate appends value and returns its handle.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.items = append(a.items, value)
	return a.Len()
}

// Get returns nil for handle 0 and for handles past the end.
func (a *Arena[T]) Get(handle uint32) *T {
	if handle == 0 || uint64(handle) > uint64(len(a.items)) {
		return nil
	}
	return &a.items[handle-1]
}

// Slice exposes the backing slice; callers must not modify it.
func (a *Arena[T]) Slice() []T { return a.items }

func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.items))
	if err != nil {
		panic(fmt.Errorf("ast arena holds too many nodes: %w", err))
	}
	return n
}
