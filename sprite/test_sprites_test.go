package sprite_test

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/plus3/spritebatch/sprite"
)

// newTestSprite builds a 10x10 sprite centered at (x, y).
func newTestSprite(x, y float64) *sprite.Sprite {
	return sprite.NewSprite("test", x, y, 10, 10)
}

// newTestSprites builds n 10x10 sprites spaced far enough apart not to
// collide, starting at (0, 0).
func newTestSprites(n int) []*sprite.Sprite {
	out := make([]*sprite.Sprite, n)
	for i := range out {
		out[i] = sprite.NewSprite(fmt.Sprintf("tex-%d", i), float64(i*100), 0, 10, 10)
	}
	return out
}

// recordingRenderer captures everything a flush uploads so tests can assert
// on buffer contents, reallocation notifications, and draw counts.
type recordingRenderer struct {
	positions []float32
	sizes     []float32
	angles    []float32
	colors    []float32
	textures  []float32
	index     []int32

	reallocs  []int
	uploads   map[string]int
	drawCount int
	draws     int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{uploads: make(map[string]int)}
}

func (r *recordingRenderer) Realloc(capacity int) {
	r.reallocs = append(r.reallocs, capacity)
}

func (r *recordingRenderer) UploadPositions(data []float32) {
	r.positions = append(r.positions[:0], data...)
	r.uploads["position"]++
}

func (r *recordingRenderer) UploadSizes(data []float32) {
	r.sizes = append(r.sizes[:0], data...)
	r.uploads["size"]++
}

func (r *recordingRenderer) UploadAngles(data []float32) {
	r.angles = append(r.angles[:0], data...)
	r.uploads["angle"]++
}

func (r *recordingRenderer) UploadColors(data []float32) {
	r.colors = append(r.colors[:0], data...)
	r.uploads["color"]++
}

func (r *recordingRenderer) UploadTextures(data []float32) {
	r.textures = append(r.textures[:0], data...)
	r.uploads["texture"]++
}

func (r *recordingRenderer) UploadIndex(data []int32) {
	r.index = append(r.index[:0], data...)
	r.uploads["index"]++
}

func (r *recordingRenderer) Draw(count int) {
	r.drawCount = count
	r.draws++
}

// narrowingRenderer adds a device-side candidate pass on top of the
// recording renderer, driven by the last uploaded position buffer.
type narrowingRenderer struct {
	recordingRenderer
	narrowCalls int
}

func (r *narrowingRenderer) NearbyCandidates(center cp.Vector, maxDistance float64) []int {
	r.narrowCalls++
	var out []int
	for _, v := range r.index {
		slot := int(v)
		if 2*slot+1 >= len(r.positions) {
			continue
		}
		dx := float64(r.positions[2*slot]) - center.X
		dy := float64(r.positions[2*slot+1]) - center.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= maxDistance && dy <= maxDistance {
			out = append(out, slot)
		}
	}
	return out
}
