package sprite

// ListStats is a point-in-time summary of a SpriteList's storage state,
// intended for debug overlays and stress reporting.
type ListStats struct {
	Sprites      int
	SlotCapacity int
	LiveSlots    int
	FreeSlots    int
	IndexLength  int
	DirtyBuffers []string
	Hash         *HashStats
}

// CollectStats summarizes the list and, when attached, its spatial hash.
func (l *SpriteList) CollectStats() ListStats {
	stats := ListStats{
		Sprites:      len(l.sprites),
		SlotCapacity: l.alloc.capacity,
		LiveSlots:    l.alloc.live(),
		FreeSlots:    len(l.alloc.free),
		IndexLength:  len(l.index),
		DirtyBuffers: l.dirty.names(),
	}
	if l.hash != nil {
		hs := l.hash.CollectStats()
		stats.Hash = &hs
	}
	return stats
}
