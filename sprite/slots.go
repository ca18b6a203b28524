package sprite

// slotAllocator hands out stable integer slots into the parallel attribute
// buffers. Freed slots are recycled LIFO before the sequential counter
// advances; capacity doubles when the counter reaches it. Freed slots leave
// holes in the buffers until a full reset - they are never compacted.
type slotAllocator struct {
	free     []int
	next     int
	capacity int
}

func newSlotAllocator(capacity int) *slotAllocator {
	return &slotAllocator{capacity: capacity}
}

// alloc returns a slot, reusing the free list when possible. grown reports
// whether capacity doubled, in which case the caller must extend every
// attribute buffer and notify the renderer.
func (a *slotAllocator) alloc() (slot int, grown bool) {
	if n := len(a.free); n > 0 {
		slot = a.free[n-1]
		a.free = a.free[:n-1]
		return slot, false
	}
	if a.next == a.capacity {
		a.capacity *= 2
		grown = true
	}
	slot = a.next
	a.next++
	return slot, grown
}

// release returns a slot to the free list. The caller guarantees the slot
// is live; double release would hand the same slot to two sprites.
func (a *slotAllocator) release(slot int) {
	a.free = append(a.free, slot)
}

// live returns the number of allocated, non-free slots.
func (a *slotAllocator) live() int {
	return a.next - len(a.free)
}

// reset discards all bookkeeping and shrinks back to the given capacity.
func (a *slotAllocator) reset(capacity int) {
	a.free = a.free[:0]
	a.next = 0
	a.capacity = capacity
}
