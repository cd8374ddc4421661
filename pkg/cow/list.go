package cow

import (
	"fmt"

	"rostercore/pkg/domain"
)

// List is an indexable copy-on-write sequence. The zero value is an empty
// list ready to use.
type List[T any] struct {
	h handle[T]
}

// NewList returns a list holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &List[T]{h: handle[T]{buf: newBuffer(buf)}}
}

// Share returns a second handle over the same buffer. No elements are copied
// until one of the handles mutates.
func (l *List[T]) Share() *List[T] {
	return &List[T]{h: l.h.share()}
}

// Release drops this handle's reference. The list is empty afterwards and
// may be reused.
func (l *List[T]) Release() {
	l.h.release()
}

// IsUniquelyHeld reports whether no other handle references the buffer.
func (l *List[T]) IsUniquelyHeld() bool {
	return l.h.unique()
}

// Add appends item.
func (l *List[T]) Add(item T) {
	b := l.h.writable()
	b.items = append(b.items, item)
}

// Get returns the element at index, or false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	b := l.h.backing()
	if index < 0 || index >= len(b.items) {
		var zero T
		return zero, false
	}
	return b.items[index], true
}

// GetMany returns the elements at the given indices in order, skipping any
// index that is out of range.
func (l *List[T]) GetMany(indices ...int) []T {
	b := l.h.backing()
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(b.items) {
			continue
		}
		out = append(out, b.items[i])
	}
	return out
}

// Delete removes the element at index. Out-of-range indices fail with a
// domain.IndexError and leave the buffer untouched.
func (l *List[T]) Delete(index int) error {
	if n := l.Count(); index < 0 || index >= n {
		return domain.IndexError{Index: index, Len: n}
	}
	b := l.h.writable()
	b.items = append(b.items[:index], b.items[index+1:]...)
	return nil
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return len(l.h.backing().items)
}

// Items returns a copy of the elements.
func (l *List[T]) Items() []T {
	return l.h.snapshot()
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.h.backing().items)
}
