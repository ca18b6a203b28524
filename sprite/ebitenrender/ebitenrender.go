// Package ebitenrender implements the sprite.Renderer contract on top of
// the Ebiten game engine. Uploaded buffers are mirrored CPU-side and turned
// into textured quads via DrawTriangles when the frame is drawn.
package ebitenrender

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/plus3/spritebatch/sprite"
)

// DrawTriangles indices are uint16, which caps a single batch at 16383
// quads (65532 vertices). Larger draw counts are split into batches.
const maxBatchQuads = 16383

// Renderer mirrors the list's attribute buffers and renders them as quads
// from a single atlas page. It also implements sprite.CandidateNarrower by
// scanning the mirrored position buffer.
type Renderer struct {
	page  *ebiten.Image
	atlas sprite.Atlas

	capacity  int
	positions []float32
	sizes     []float32
	angles    []float32
	colors    []float32
	textures  []float32
	index     []int32
	drawCount int

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ sprite.Renderer = (*Renderer)(nil)
var _ sprite.CandidateNarrower = (*Renderer)(nil)

// New creates a renderer drawing from the given atlas page. The page may be
// nil until DrawTo is first called, which allows headless use of the upload
// and narrowing paths.
func New(page *ebiten.Image, atlas sprite.Atlas) *Renderer {
	return &Renderer{page: page, atlas: atlas}
}

// SetPage swaps the atlas page image.
func (r *Renderer) SetPage(page *ebiten.Image) { r.page = page }

// Realloc implements sprite.Renderer. Mirrors are resized; contents arrive
// with the next full upload.
func (r *Renderer) Realloc(capacity int) {
	r.capacity = capacity
	r.positions = resize(r.positions, 2*capacity)
	r.sizes = resize(r.sizes, 2*capacity)
	r.angles = resize(r.angles, capacity)
	r.colors = resize(r.colors, 4*capacity)
	r.textures = resize(r.textures, capacity)
}

func resize(s []float32, n int) []float32 {
	out := make([]float32, n)
	copy(out, s)
	return out
}

// UploadPositions implements sprite.Renderer.
func (r *Renderer) UploadPositions(data []float32) {
	r.positions = append(r.positions[:0], data...)
}

// UploadSizes implements sprite.Renderer.
func (r *Renderer) UploadSizes(data []float32) {
	r.sizes = append(r.sizes[:0], data...)
}

// UploadAngles implements sprite.Renderer.
func (r *Renderer) UploadAngles(data []float32) {
	r.angles = append(r.angles[:0], data...)
}

// UploadColors implements sprite.Renderer.
func (r *Renderer) UploadColors(data []float32) {
	r.colors = append(r.colors[:0], data...)
}

// UploadTextures implements sprite.Renderer.
func (r *Renderer) UploadTextures(data []float32) {
	r.textures = append(r.textures[:0], data...)
}

// UploadIndex implements sprite.Renderer.
func (r *Renderer) UploadIndex(data []int32) {
	r.index = append(r.index[:0], data...)
}

// Draw implements sprite.Renderer. The actual device submission happens in
// DrawTo, inside the game's Draw callback.
func (r *Renderer) Draw(count int) {
	r.drawCount = count
}

// DrawCount returns the sprite count of the last submitted frame.
func (r *Renderer) DrawCount() int { return r.drawCount }

// NearbyCandidates implements sprite.CandidateNarrower: a coarse box pass
// over the mirrored position buffer, returning the slot values of sprites
// within maxDistance of center on both axes.
func (r *Renderer) NearbyCandidates(center cp.Vector, maxDistance float64) []int {
	var out []int
	for _, v := range r.index {
		slot := int(v)
		if 2*slot+1 >= len(r.positions) {
			continue
		}
		dx := float64(r.positions[2*slot]) - center.X
		dy := float64(r.positions[2*slot+1]) - center.Y
		if math.Abs(dx) <= maxDistance && math.Abs(dy) <= maxDistance {
			out = append(out, slot)
		}
	}
	return out
}

// DrawTo renders the last flushed frame onto screen, iterating the index
// buffer in draw order and looking up each slot's attributes.
func (r *Renderer) DrawTo(screen *ebiten.Image) {
	if r.page == nil || r.drawCount == 0 {
		return
	}

	pageW := float32(r.page.Bounds().Dx())
	pageH := float32(r.page.Bounds().Dy())

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	quads := 0

	flush := func() {
		if quads == 0 {
			return
		}
		screen.DrawTriangles(r.vertices, r.indices, r.page, &ebiten.DrawTrianglesOptions{})
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
		quads = 0
	}

	count := min(r.drawCount, len(r.index))
	for i := 0; i < count; i++ {
		slot := int(r.index[i])
		if 2*slot+1 >= len(r.positions) {
			continue
		}

		cx := r.positions[2*slot]
		cy := r.positions[2*slot+1]
		hw := r.sizes[2*slot] / 2
		hh := r.sizes[2*slot+1] / 2
		sin, cos := math.Sincos(float64(r.angles[slot]) * math.Pi / 180)

		region, ok := r.atlas.Region(int(r.textures[slot]))
		if !ok {
			continue
		}

		cr := r.colors[4*slot]
		cg := r.colors[4*slot+1]
		cb := r.colors[4*slot+2]
		ca := r.colors[4*slot+3]

		base := uint16(len(r.vertices))
		corners := [4][2]float32{
			{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh},
		}
		uvs := [4][2]float32{
			{region.U0, region.V1}, {region.U1, region.V1},
			{region.U1, region.V0}, {region.U0, region.V0},
		}
		for c := 0; c < 4; c++ {
			x, y := corners[c][0], corners[c][1]
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   cx + x*float32(cos) - y*float32(sin),
				DstY:   cy + x*float32(sin) + y*float32(cos),
				SrcX:   uvs[c][0] * pageW,
				SrcY:   uvs[c][1] * pageH,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.indices = append(r.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)

		quads++
		if quads == maxBatchQuads {
			flush()
		}
	}
	flush()
}
