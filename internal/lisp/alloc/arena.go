package alloc

// slot holds one arena-managed payload plus the two bits mark-and-sweep
// needs to reclaim it: whether a collection cycle has proven it reachable,
// and whether it is already on the free list.
type slot[T any] struct {
	item   T
	marked bool
	free   bool
}

// Arena is a typed, append-only vector of slots addressed by stable integer
// indices, backed by a free list for reuse. It never reorders existing
// slots, so a handle obtained from Alloc stays valid for the slot's entire
// lifetime, including across intervening frees of other slots.
//
// Arena is deliberately ignorant of what T contains: it knows how to store,
// mark and recycle slots, not how to trace references embedded in T. Tracing
// is the caller's job (see the value package's Heap), because only the
// caller knows which fields of T are themselves handles.
type Arena[T any] struct {
	slots    []slot[T]
	freeList []int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Alloc stores item in a fresh or recycled slot and returns its index.
// A recycled slot has its mark bit cleared before reuse, matching the
// requirement that mark bits start a collection cycle cleared.
func (a *Arena[T]) Alloc(item T) int {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.slots[idx] = slot[T]{item: item}
		return idx
	}
	a.slots = append(a.slots, slot[T]{item: item})
	return len(a.slots) - 1
}

// Get returns a pointer to the payload at idx. The caller must only pass
// indices obtained from Alloc that have not since been reclaimed by Sweep.
func (a *Arena[T]) Get(idx int) *T {
	return &a.slots[idx].item
}

// Mark sets the mark bit for idx and reports whether it was already set,
// so tracing code can short-circuit cycles without a separate visited set.
func (a *Arena[T]) Mark(idx int) (wasMarked bool) {
	wasMarked = a.slots[idx].marked
	a.slots[idx].marked = true
	return wasMarked
}

// Sweep reclaims every slot that was not marked since the last sweep and is
// not already free, pushing it onto the free list. Marked slots have their
// mark bit cleared so the next collection cycle starts clean.
func (a *Arena[T]) Sweep() {
	for i := range a.slots {
		s := &a.slots[i]
		if s.free {
			continue
		}
		if !s.marked {
			s.free = true
			var zero T
			s.item = zero
			a.freeList = append(a.freeList, i)
			continue
		}
		s.marked = false
	}
}

// Size returns the number of slots ever allocated, live or free.
func (a *Arena[T]) Size() int {
	return len(a.slots)
}

// FreeCount returns the number of slots currently on the free list.
func (a *Arena[T]) FreeCount() int {
	return len(a.freeList)
}
