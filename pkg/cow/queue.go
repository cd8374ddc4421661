package cow

import "fmt"

// Queue is a FIFO copy-on-write queue. The zero value is an empty queue
// ready to use.
type Queue[T any] struct {
	h handle[T]
}

// NewQueue returns a queue holding a copy of items, front first.
func NewQueue[T any](items ...T) *Queue[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &Queue[T]{h: handle[T]{buf: newBuffer(buf)}}
}

// Share returns a second handle over the same buffer.
func (q *Queue[T]) Share() *Queue[T] {
	return &Queue[T]{h: q.h.share()}
}

// Release drops this handle's reference.
func (q *Queue[T]) Release() {
	q.h.release()
}

// IsUniquelyHeld reports whether no other handle references the buffer.
func (q *Queue[T]) IsUniquelyHeld() bool {
	return q.h.unique()
}

// Add enqueues item at the back.
func (q *Queue[T]) Add(item T) {
	b := q.h.writable()
	b.items = append(b.items, item)
}

// PopFront removes and returns the front element. An empty queue returns
// false without cloning a shared buffer, since nothing is mutated.
func (q *Queue[T]) PopFront() (T, bool) {
	var zero T
	if q.Count() == 0 {
		return zero, false
	}
	b := q.h.writable()
	item := b.items[0]
	b.items[0] = zero
	b.items = b.items[1:]
	return item, true
}

// Count returns the number of queued elements.
func (q *Queue[T]) Count() int {
	return len(q.h.backing().items)
}

// Items returns a copy of the queued elements, front first.
func (q *Queue[T]) Items() []T {
	return q.h.snapshot()
}

func (q *Queue[T]) String() string {
	return fmt.Sprint(q.h.backing().items)
}
