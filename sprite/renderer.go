package sprite

import "github.com/jakecoffman/cp"

// Renderer is the device-side collaborator a SpriteList flushes into. Each
// Upload call hands over the full current contents of one buffer - the list
// deliberately trades partial-range uploads for correctness, so a dirty
// buffer is always re-sent whole.
//
// Uploaded slices are owned by the list and valid only for the duration of
// the call; implementations must copy what they keep.
type Renderer interface {
	// Realloc notifies the renderer that the slot capacity grew. Any
	// device-side buffers must be resized; previous contents will be
	// re-sent in full by the next flush.
	Realloc(capacity int)

	UploadPositions(data []float32) // x, y per slot
	UploadSizes(data []float32)     // w, h per slot
	UploadAngles(data []float32)    // degrees per slot
	UploadColors(data []float32)    // r, g, b, a per slot, 0-1
	UploadTextures(data []float32)  // atlas slot per slot

	// UploadIndex receives the draw-order buffer: one slot value per
	// sprite, in collection order.
	UploadIndex(data []int32)

	// Draw submits the frame. count is the number of index entries to
	// render, always the current sprite count.
	Draw(count int)
}

// CandidateNarrower is an optional Renderer capability: a coarse proximity
// pass over the device-side position buffer. When a list is large, has no
// spatial hash, and its renderer implements this, collision queries use it
// to narrow candidates before the exact narrow phase.
//
// NearbyCandidates returns the slot values of sprites whose uploaded
// position lies within maxDistance of center on both axes. False positives
// are fine; false negatives are not. The list re-uploads any stale
// position and index data immediately before calling, so the pass always
// runs against current positions.
type CandidateNarrower interface {
	NearbyCandidates(center cp.Vector, maxDistance float64) []int
}
