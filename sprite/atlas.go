package sprite

import "sync"

// Region is a texture's normalized coordinates within an atlas page.
type Region struct {
	U0, V0 float32
	U1, V1 float32
}

// Atlas maps texture identities to stable integer slots. A SpriteList never
// stores image data; it writes the slot integer into the texture attribute
// buffer and leaves coordinate lookup to the rendering side.
type Atlas interface {
	// Slot returns the stable slot for a texture, allocating one on first
	// use. The slot must never change for the lifetime of the atlas.
	Slot(texture string) int

	// Region returns the normalized coordinates registered for a slot.
	Region(slot int) (Region, bool)
}

// MapAtlas is the in-memory Atlas used when no packer is wired in. Unknown
// textures get a full-page region; Add registers explicit coordinates.
type MapAtlas struct {
	slots   map[string]int
	regions []Region
}

// NewMapAtlas creates an empty MapAtlas.
func NewMapAtlas() *MapAtlas {
	return &MapAtlas{slots: make(map[string]int)}
}

// Add registers a texture with explicit normalized coordinates and returns
// its slot. Re-adding a known texture overwrites its region but keeps the
// slot stable.
func (a *MapAtlas) Add(texture string, r Region) int {
	if slot, ok := a.slots[texture]; ok {
		a.regions[slot] = r
		return slot
	}
	slot := len(a.regions)
	a.slots[texture] = slot
	a.regions = append(a.regions, r)
	return slot
}

// Slot implements Atlas. Unknown textures are allocated a full-page region.
func (a *MapAtlas) Slot(texture string) int {
	if slot, ok := a.slots[texture]; ok {
		return slot
	}
	return a.Add(texture, Region{U0: 0, V0: 0, U1: 1, V1: 1})
}

// Region implements Atlas.
func (a *MapAtlas) Region(slot int) (Region, bool) {
	if slot < 0 || slot >= len(a.regions) {
		return Region{}, false
	}
	return a.regions[slot], true
}

// Len returns the number of allocated texture slots.
func (a *MapAtlas) Len() int {
	return len(a.regions)
}

var (
	sharedAtlas     *MapAtlas
	sharedAtlasOnce sync.Once
)

// DefaultAtlas returns the process-wide shared atlas. Lists constructed
// without an explicit atlas use this one, so sprites drawn by independent
// lists agree on texture slots. Initialization is safe from any goroutine;
// the atlas itself follows the single-writer model of the lists using it.
func DefaultAtlas() *MapAtlas {
	sharedAtlasOnce.Do(func() { sharedAtlas = NewMapAtlas() })
	return sharedAtlas
}
