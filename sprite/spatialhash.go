package sprite

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
)

// SpatialHash is a uniform-grid index mapping integer cell coordinates to
// buckets of sprites. A sprite is inserted into every cell its world-space
// bounding box overlaps, so box queries can never miss it (no false
// negatives); a bucket union may still contain sprites that do not actually
// overlap the query (false positives are expected - this is a broad phase).
//
// The hash is a pure structural index: it can be used standalone or
// attached to a SpriteList, which then maintains it on every mutation.
type SpatialHash struct {
	cellSize float64
	buckets  *intmap.Map[uint64, []*Sprite]
	cells    map[*Sprite][]uint64 // bucket keys each sprite was filed under
}

// NewSpatialHash creates a hash with the given cell edge length in world
// units. Panics if cellSize is not positive.
func NewSpatialHash(cellSize float64) *SpatialHash {
	if cellSize <= 0 {
		panic("sprite: spatial hash cell size must be positive")
	}
	return &SpatialHash{
		cellSize: cellSize,
		buckets:  intmap.New[uint64, []*Sprite](64),
		cells:    make(map[*Sprite][]uint64),
	}
}

// CellSize returns the cell edge length.
func (h *SpatialHash) CellSize() float64 { return h.cellSize }

// cellOf maps a world point to integer cell coordinates.
func (h *SpatialHash) cellOf(p cp.Vector) (int32, int32) {
	return int32(math.Floor(p.X / h.cellSize)), int32(math.Floor(p.Y / h.cellSize))
}

// cellKey packs cell coordinates into a single bucket key.
func cellKey(cx, cy int32) uint64 {
	return uint64(uint32(cx))<<32 | uint64(uint32(cy))
}

// Insert files the sprite under every cell overlapped by its bounding box
// and records the touched buckets for O(buckets) removal. Inserting a
// sprite that is already present re-files it at its current position.
func (h *SpatialHash) Insert(s *Sprite) {
	if _, ok := h.cells[s]; ok {
		h.remove(s)
	}

	bb := s.BB()
	x0, y0 := h.cellOf(cp.Vector{X: bb.L, Y: bb.B})
	x1, y1 := h.cellOf(cp.Vector{X: bb.R, Y: bb.T})

	keys := make([]uint64, 0, int(x1-x0+1)*int(y1-y0+1))
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey(cx, cy)
			bucket, _ := h.buckets.Get(key)
			h.buckets.Put(key, append(bucket, s))
			keys = append(keys, key)
		}
	}
	h.cells[s] = keys
}

// Remove purges the sprite from exactly the buckets it was filed under.
// Returns ErrNotFound if the sprite was never inserted.
func (h *SpatialHash) Remove(s *Sprite) error {
	if _, ok := h.cells[s]; !ok {
		return fmt.Errorf("%w: sprite not in spatial hash", ErrNotFound)
	}
	h.remove(s)
	return nil
}

func (h *SpatialHash) remove(s *Sprite) {
	for _, key := range h.cells[s] {
		bucket, _ := h.buckets.Get(key)
		for i, have := range bucket {
			if have == s {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			h.buckets.Del(key)
		} else {
			h.buckets.Put(key, bucket)
		}
	}
	delete(h.cells, s)
}

// Move re-files a sprite after its position, size, or rotation changed.
// Sprites not yet in the hash are simply inserted.
func (h *SpatialHash) Move(s *Sprite) {
	h.Insert(s)
}

// QueryBox returns the union of all buckets overlapping the box. The result
// may include sprites whose exact shape does not overlap the box.
func (h *SpatialHash) QueryBox(bb cp.BB) []*Sprite {
	x0, y0 := h.cellOf(cp.Vector{X: bb.L, Y: bb.B})
	x1, y1 := h.cellOf(cp.Vector{X: bb.R, Y: bb.T})

	seen := make(map[*Sprite]struct{})
	var out []*Sprite
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			bucket, _ := h.buckets.Get(cellKey(cx, cy))
			for _, s := range bucket {
				if _, dup := seen[s]; dup {
					continue
				}
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

// QuerySprite returns all hashed sprites whose cells overlap the given
// sprite's bounding box, excluding the sprite itself.
func (h *SpatialHash) QuerySprite(s *Sprite) []*Sprite {
	out := h.QueryBox(s.BB())
	for i, have := range out {
		if have == s {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// QueryPoint returns the contents of the single cell containing the point.
func (h *SpatialHash) QueryPoint(p cp.Vector) []*Sprite {
	cx, cy := h.cellOf(p)
	bucket, _ := h.buckets.Get(cellKey(cx, cy))
	out := make([]*Sprite, len(bucket))
	copy(out, bucket)
	return out
}

// Contains reports whether the sprite is currently filed in the hash.
func (h *SpatialHash) Contains(s *Sprite) bool {
	_, ok := h.cells[s]
	return ok
}

// Len returns the number of hashed sprites.
func (h *SpatialHash) Len() int {
	return len(h.cells)
}

// Clear drops every bucket and record.
func (h *SpatialHash) Clear() {
	h.buckets.Clear()
	h.cells = make(map[*Sprite][]uint64)
}

// HashStats is a point-in-time summary of hash occupancy.
type HashStats struct {
	Sprites   int
	Buckets   int
	Entries   int
	MaxBucket int
}

// CollectStats walks the recorded bucket keys and summarizes occupancy.
func (h *SpatialHash) CollectStats() HashStats {
	stats := HashStats{
		Sprites: len(h.cells),
		Buckets: h.buckets.Len(),
	}
	seen := make(map[uint64]struct{})
	for _, keys := range h.cells {
		stats.Entries += len(keys)
		for _, key := range keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if bucket, ok := h.buckets.Get(key); ok && len(bucket) > stats.MaxBucket {
				stats.MaxBucket = len(bucket)
			}
		}
	}
	return stats
}
