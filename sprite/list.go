package sprite

import (
	"fmt"
	"iter"
	"math/rand"
	"sort"
)

// SpriteList is a batch-rendering store for sprites. Attribute data lives
// in parallel growable buffers indexed by a stable slot per sprite; a
// separate draw-order index buffer holds one slot value per sprite in
// collection order. Reordering the list touches only the index buffer -
// attribute data never moves.
//
// Lists are single-writer: no internal locking, and Flush must not run
// concurrently with mutation of the same list.
type SpriteList struct {
	sprites []*Sprite       // collection order
	slots   map[*Sprite]int // reverse lookup, also the duplicate guard
	bySlot  []*Sprite       // slot -> sprite, nil when free
	alloc   *slotAllocator
	bufs    *attributeBuffers
	index   []int32 // draw order, one live slot value per sprite
	dirty   dirtyMask

	atlas    Atlas
	hash     *SpatialHash
	renderer Renderer

	cfg       Config
	maxRadius float64 // largest collision radius seen, for device narrowing
}

// NewList creates a list with the default config and the shared atlas.
func NewList() *SpriteList {
	return NewListWith(DefaultConfig(), nil)
}

// NewListWith creates a list with an explicit config and atlas. A nil atlas
// selects the shared default atlas.
func NewListWith(cfg Config, atlas Atlas) *SpriteList {
	cfg = cfg.normalized()
	if atlas == nil {
		atlas = DefaultAtlas()
	}
	l := &SpriteList{
		slots:  make(map[*Sprite]int),
		bySlot: make([]*Sprite, cfg.InitialCapacity),
		alloc:  newSlotAllocator(cfg.InitialCapacity),
		bufs:   newAttributeBuffers(cfg.InitialCapacity),
		atlas:  atlas,
		cfg:    cfg,
	}
	if cfg.EnableSpatialHash {
		l.hash = NewSpatialHash(cfg.HashCellSize)
	}
	return l
}

// Len returns the number of sprites in the list.
func (l *SpriteList) Len() int { return len(l.sprites) }

// Capacity returns the current slot capacity of the attribute buffers.
func (l *SpriteList) Capacity() int { return l.alloc.capacity }

// At returns the sprite at collection position i, or nil if out of range.
func (l *SpriteList) At(i int) *Sprite {
	if i < 0 || i >= len(l.sprites) {
		return nil
	}
	return l.sprites[i]
}

// Contains reports whether the sprite occupies a slot in this list.
func (l *SpriteList) Contains(s *Sprite) bool {
	_, ok := l.slots[s]
	return ok
}

// IndexOf returns the sprite's collection position, or -1 if absent.
func (l *SpriteList) IndexOf(s *Sprite) int {
	if _, ok := l.slots[s]; !ok {
		return -1
	}
	for i, have := range l.sprites {
		if have == s {
			return i
		}
	}
	return -1
}

// Slot returns the sprite's slot value and whether it is in the list.
// Slots are stable for the sprite's lifetime in the list.
func (l *SpriteList) Slot(s *Sprite) (int, bool) {
	slot, ok := l.slots[s]
	return slot, ok
}

// Iter iterates sprites in collection order.
func (l *SpriteList) Iter() iter.Seq[*Sprite] {
	return func(yield func(*Sprite) bool) {
		for _, s := range l.sprites {
			if !yield(s) {
				return
			}
		}
	}
}

// Hash returns the attached spatial hash, or nil when disabled.
func (l *SpriteList) Hash() *SpatialHash { return l.hash }

// Atlas returns the texture atlas this list writes slots from.
func (l *SpriteList) Atlas() Atlas { return l.atlas }

// EnableSpatialHash attaches a spatial hash and files every current sprite
// into it. A non-positive cellSize falls back to the configured default.
func (l *SpriteList) EnableSpatialHash(cellSize float64) {
	if cellSize <= 0 {
		cellSize = l.cfg.HashCellSize
	}
	l.hash = NewSpatialHash(cellSize)
	for _, s := range l.sprites {
		l.hash.Insert(s)
	}
}

// DisableSpatialHash detaches the spatial hash. Queries fall back to brute
// force or renderer narrowing.
func (l *SpriteList) DisableSpatialHash() {
	l.hash = nil
}

// AttachRenderer connects the device-side collaborator. Until a renderer is
// attached, Flush returns ErrUninitialized. Attaching signals the current
// slot capacity and marks everything dirty so the first flush uploads the
// full state.
func (l *SpriteList) AttachRenderer(r Renderer) {
	l.renderer = r
	r.Realloc(l.alloc.capacity)
	l.dirty = dirtyAll
}

// Append adds a sprite at the end of the collection order.
func (l *SpriteList) Append(s *Sprite) error {
	return l.insertAt(len(l.sprites), s)
}

// Insert adds a sprite at collection position i, shifting later sprites.
func (l *SpriteList) Insert(i int, s *Sprite) error {
	if i < 0 || i > len(l.sprites) {
		return fmt.Errorf("%w: insert position %d out of range [0,%d]", ErrInvalidArgument, i, len(l.sprites))
	}
	return l.insertAt(i, s)
}

func (l *SpriteList) insertAt(i int, s *Sprite) error {
	if s == nil {
		return fmt.Errorf("%w: nil sprite", ErrInvalidArgument)
	}
	if _, ok := l.slots[s]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSprite, s.Texture())
	}

	slot, grown := l.alloc.alloc()
	if grown {
		l.growTo(l.alloc.capacity)
	}

	l.slots[s] = slot
	l.bySlot[slot] = s
	l.sprites = append(l.sprites, nil)
	copy(l.sprites[i+1:], l.sprites[i:])
	l.sprites[i] = s
	l.index = append(l.index, 0)
	copy(l.index[i+1:], l.index[i:])
	l.index[i] = int32(slot)

	l.bufs.writeAll(slot, s, l.atlas)
	l.dirty = dirtyAll
	if r := s.CollisionRadius(); r > l.maxRadius {
		l.maxRadius = r
	}

	if l.hash != nil {
		l.hash.Insert(s)
	}
	s.registerList(l)
	return nil
}

// growTo extends the attribute buffers and slot table after the allocator
// doubled capacity, and tells the renderer to reallocate device buffers.
// Growth completes before control returns; a partially grown state is
// never observable.
func (l *SpriteList) growTo(capacity int) {
	l.bufs.grow(capacity)
	bySlot := make([]*Sprite, capacity)
	copy(bySlot, l.bySlot)
	l.bySlot = bySlot
	if l.renderer != nil {
		l.renderer.Realloc(capacity)
	}
	l.dirty = dirtyAll
}

// Remove releases the sprite's slot to the free list and removes its slot
// value from the index buffer. Attribute buffers keep the hole - they are
// never compacted outside Clear.
func (l *SpriteList) Remove(s *Sprite) error {
	slot, ok := l.slots[s]
	if !ok {
		return fmt.Errorf("%w: sprite not in list", ErrNotFound)
	}

	delete(l.slots, s)
	l.bySlot[slot] = nil
	l.alloc.release(slot)

	for i, have := range l.sprites {
		if have == s {
			l.sprites = append(l.sprites[:i], l.sprites[i+1:]...)
			break
		}
	}
	// Slots are unique within a list (enforced by the reverse map), so
	// removing the first matching value removes the only one.
	for i, v := range l.index {
		if v == int32(slot) {
			l.index = append(l.index[:i], l.index[i+1:]...)
			break
		}
	}
	l.dirty.mark(bufIndex)

	if l.hash != nil {
		l.hash.remove(s)
	}
	s.unregisterList(l)
	return nil
}

// Swap exchanges the sprites at collection positions i and j.
func (l *SpriteList) Swap(i, j int) error {
	if i < 0 || i >= len(l.sprites) || j < 0 || j >= len(l.sprites) {
		return fmt.Errorf("%w: swap positions %d, %d out of range", ErrInvalidArgument, i, j)
	}
	l.sprites[i], l.sprites[j] = l.sprites[j], l.sprites[i]
	l.index[i], l.index[j] = l.index[j], l.index[i]
	l.dirty.mark(bufIndex)
	return nil
}

// pairSorter reorders the sprite slice and the index buffer in lockstep.
type pairSorter struct {
	l    *SpriteList
	less func(a, b *Sprite) bool
}

func (p *pairSorter) Len() int           { return len(p.l.sprites) }
func (p *pairSorter) Less(i, j int) bool { return p.less(p.l.sprites[i], p.l.sprites[j]) }
func (p *pairSorter) Swap(i, j int) {
	p.l.sprites[i], p.l.sprites[j] = p.l.sprites[j], p.l.sprites[i]
	p.l.index[i], p.l.index[j] = p.l.index[j], p.l.index[i]
}

// Sort stably reorders the collection by the given comparison. Only the
// index buffer changes; attribute data stays in place.
func (l *SpriteList) Sort(less func(a, b *Sprite) bool) {
	sort.Stable(&pairSorter{l: l, less: less})
	l.dirty.mark(bufIndex)
}

// Reverse flips the collection order.
func (l *SpriteList) Reverse() {
	for i, j := 0, len(l.sprites)-1; i < j; i, j = i+1, j-1 {
		l.sprites[i], l.sprites[j] = l.sprites[j], l.sprites[i]
		l.index[i], l.index[j] = l.index[j], l.index[i]
	}
	l.dirty.mark(bufIndex)
}

// Shuffle randomizes the collection order. A nil rng uses the shared
// source.
func (l *SpriteList) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		l.sprites[i], l.sprites[j] = l.sprites[j], l.sprites[i]
		l.index[i], l.index[j] = l.index[j], l.index[i]
	}
	if rng != nil {
		rng.Shuffle(len(l.sprites), swap)
	} else {
		rand.Shuffle(len(l.sprites), swap)
	}
	l.dirty.mark(bufIndex)
}

// Clear removes every sprite and resets slots, buffers, and index to the
// initial capacity. This is the only operation that reclaims slot holes.
func (l *SpriteList) Clear() {
	for _, s := range l.sprites {
		s.unregisterList(l)
	}
	l.sprites = l.sprites[:0]
	l.index = l.index[:0]
	l.slots = make(map[*Sprite]int)
	l.bySlot = make([]*Sprite, l.cfg.InitialCapacity)
	l.alloc.reset(l.cfg.InitialCapacity)
	l.bufs = newAttributeBuffers(l.cfg.InitialCapacity)
	l.maxRadius = 0
	if l.hash != nil {
		l.hash.Clear()
	}
	if l.renderer != nil {
		l.renderer.Realloc(l.cfg.InitialCapacity)
	}
	l.dirty = dirtyAll
}

// Flush pushes every dirty buffer, in full, to the attached renderer, then
// submits the draw and clears the flags. This is the single explicit sync
// point with the device; nothing is uploaded as a side effect of mutation.
func (l *SpriteList) Flush() error {
	if l.renderer == nil {
		return fmt.Errorf("%w: flush", ErrUninitialized)
	}
	if l.dirty.has(bufPosition) {
		l.renderer.UploadPositions(l.bufs.pos)
	}
	if l.dirty.has(bufSize) {
		l.renderer.UploadSizes(l.bufs.size)
	}
	if l.dirty.has(bufAngle) {
		l.renderer.UploadAngles(l.bufs.angle)
	}
	if l.dirty.has(bufColor) {
		l.renderer.UploadColors(l.bufs.color)
	}
	if l.dirty.has(bufTexture) {
		l.renderer.UploadTextures(l.bufs.tex)
	}
	if l.dirty.has(bufIndex) {
		l.renderer.UploadIndex(l.index)
	}
	l.renderer.Draw(len(l.index))
	l.dirty = 0
	return nil
}

// syncForNarrowing pushes stale position and index data to the renderer so
// a device-side narrowing pass answers from current positions, never from
// the last flushed frame. Other buffers stay dirty until Flush.
func (l *SpriteList) syncForNarrowing() {
	if l.dirty.has(bufPosition) {
		l.renderer.UploadPositions(l.bufs.pos)
		l.dirty.clear(bufPosition)
	}
	if l.dirty.has(bufIndex) {
		l.renderer.UploadIndex(l.index)
		l.dirty.clear(bufIndex)
	}
}

// Attribute updates, called by Sprite mutators for each owning list. Each
// rewrites one slot in one buffer and marks that buffer dirty.

func (l *SpriteList) updatePosition(s *Sprite) {
	slot, ok := l.slots[s]
	if !ok {
		return
	}
	l.bufs.writePosition(slot, s)
	l.dirty.mark(bufPosition)
	if l.hash != nil {
		l.hash.Move(s)
	}
}

func (l *SpriteList) updateSize(s *Sprite) {
	slot, ok := l.slots[s]
	if !ok {
		return
	}
	l.bufs.writeSize(slot, s)
	l.dirty.mark(bufSize)
	if r := s.CollisionRadius(); r > l.maxRadius {
		l.maxRadius = r
	}
	if l.hash != nil {
		l.hash.Move(s)
	}
}

func (l *SpriteList) updateAngle(s *Sprite) {
	slot, ok := l.slots[s]
	if !ok {
		return
	}
	l.bufs.writeAngle(slot, s)
	l.dirty.mark(bufAngle)
	if l.hash != nil {
		// Rotation changes the AABB, so the cell range may change too.
		l.hash.Move(s)
	}
}

func (l *SpriteList) updateColor(s *Sprite) {
	slot, ok := l.slots[s]
	if !ok {
		return
	}
	l.bufs.writeColor(slot, s)
	l.dirty.mark(bufColor)
}

func (l *SpriteList) updateTexture(s *Sprite) {
	slot, ok := l.slots[s]
	if !ok {
		return
	}
	l.bufs.writeTexture(slot, s, l.atlas)
	l.dirty.mark(bufTexture)
}
