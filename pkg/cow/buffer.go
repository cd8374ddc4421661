// Package cow provides generic collections with value semantics: handles
// share one backing buffer until a mutation happens through a handle whose
// buffer is also referenced elsewhere, at which point that handle clones the
// buffer and continues on its own copy.
//
// Go assignment copies a struct without telling anyone, so duplication is
// explicit: call Share to obtain a second handle and Release when a handle
// is no longer used. A single handle must not be used from several
// goroutines at once; distinct handles over one buffer may be.
package cow

import "sync/atomic"

type buffer[T any] struct {
	refs  atomic.Int32
	items []T
}

func newBuffer[T any](items []T) *buffer[T] {
	b := &buffer[T]{items: items}
	b.refs.Store(1)
	return b
}

func (b *buffer[T]) clone() *buffer[T] {
	items := make([]T, len(b.items), cap(b.items))
	copy(items, b.items)
	return newBuffer(items)
}

// handle carries the ownership protocol shared by List and Queue.
type handle[T any] struct {
	buf *buffer[T]
}

func (h *handle[T]) backing() *buffer[T] {
	if h.buf == nil {
		h.buf = newBuffer[T](nil)
	}
	return h.buf
}

func (h *handle[T]) share() handle[T] {
	b := h.backing()
	b.refs.Add(1)
	return handle[T]{buf: b}
}

func (h *handle[T]) unique() bool {
	return h.backing().refs.Load() == 1
}

// writable returns a buffer this handle may mutate in place, cloning first
// when the current one is shared. The clone is taken before the old count is
// dropped so no other handle can observe a half-owned buffer.
func (h *handle[T]) writable() *buffer[T] {
	b := h.backing()
	if b.refs.Load() == 1 {
		return b
	}
	c := b.clone()
	b.refs.Add(-1)
	h.buf = c
	return c
}

func (h *handle[T]) release() {
	if h.buf == nil {
		return
	}
	h.buf.refs.Add(-1)
	h.buf = nil
}

func (h *handle[T]) snapshot() []T {
	b := h.backing()
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}
