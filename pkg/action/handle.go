package action

import "fmt"

// Handle identifies an object in an Arena.
type Handle uint64

// NullHandle never identifies an object.
const NullHandle Handle = 0

func makeHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the handle.
func (h Handle) Index() uint32 {
	return uint32(h)
}

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// String formats the handle as index:generation.
func (h Handle) String() string {
	if h == NullHandle {
		return "null"
	}
	return fmt.Sprintf("%d:%d", h.Index(), h.Generation())
}

type arenaSlot[T any] struct {
	generation uint32
	item       *T
}

// Arena stores objects behind generation-checked handles.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores item and returns its handle.
func (a *Arena[T]) Insert(item *T) Handle {
	a.live++
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		slot := &a.slots[index]
		slot.item = item
		return makeHandle(index, slot.generation)
	}
	a.slots = append(a.slots, arenaSlot[T]{generation: 1, item: item})
	return makeHandle(uint32(len(a.slots)-1), 1)
}

// Get returns the object of h, or false when h is null or stale.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h == NullHandle || int(h.Index()) >= len(a.slots) {
		return nil, false
	}
	slot := a.slots[h.Index()]
	if slot.item == nil || slot.generation != h.Generation() {
		return nil, false
	}
	return slot.item, true
}

// Remove deletes the object of h and returns it.
func (a *Arena[T]) Remove(h Handle) (*T, bool) {
	item, ok := a.Get(h)
	if !ok {
		return nil, false
	}
	slot := &a.slots[h.Index()]
	slot.item = nil
	slot.generation++
	if slot.generation == 0 {
		slot.generation = 1
	}
	a.free = append(a.free, h.Index())
	a.live--
	return item, true
}

// Len returns the number of live objects.
func (a *Arena[T]) Len() int {
	return a.live
}

// All returns the live objects in slot order.
func (a *Arena[T]) All() []*T {
	out := make([]*T, 0, a.live)
	for _, slot := range a.slots {
		if slot.item != nil {
			out = append(out, slot.item)
		}
	}
	return out
}
