package framedata

import (
	"iter"
	"unsafe"
)

// View is a read-only, finite traversal over one type's values in push
// order. A View borrows addresses from its FrameData: it is cheap to copy
// and re-iterable, but invalidated by the owning container's next Clear or
// Take. Pointers it yields must be treated as read-only.
type View[T any] struct {
	addrs []unsafe.Pointer
}

// Len returns the number of values in the view.
func (v View[T]) Len() int { return len(v.addrs) }

// At returns a pointer to the i-th value in push order.
func (v View[T]) At(i int) *T { return (*T)(v.addrs[i]) }

// All returns an iterator over the view's values in push order. Every range
// over the sequence starts a fresh forward-only cursor, so a View may be
// iterated any number of times.
func (v View[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, p := range v.addrs {
			if !yield((*T)(p)) {
				return
			}
		}
	}
}
