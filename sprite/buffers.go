package sprite

// Attribute buffer identifiers, used as dirty-flag bits and for stats.
const (
	bufPosition = iota
	bufSize
	bufAngle
	bufColor
	bufTexture
	bufIndex
	bufCount
)

var bufNames = [bufCount]string{
	"position", "size", "angle", "color", "texture", "index",
}

// dirtyMask tracks which buffers have unsynchronized changes. One bit per
// attribute buffer plus one for the draw-order index buffer.
type dirtyMask uint8

const dirtyAll dirtyMask = 1<<bufCount - 1

func (m *dirtyMask) mark(buf int)    { *m |= 1 << buf }
func (m *dirtyMask) clear(buf int)   { *m &^= 1 << buf }
func (m dirtyMask) has(buf int) bool { return m&(1<<buf) != 0 }

// names returns the names of all marked buffers, for stats and debugging.
func (m dirtyMask) names() []string {
	var out []string
	for i := 0; i < bufCount; i++ {
		if m.has(i) {
			out = append(out, bufNames[i])
		}
	}
	return out
}

// attributeBuffers is the structure-of-arrays storage behind a SpriteList:
// one fixed-stride float32 buffer per attribute, indexed by slot. Layout
// matches what the renderer uploads verbatim, so a flush is a straight
// slice handoff.
type attributeBuffers struct {
	pos   []float32 // x, y per slot
	size  []float32 // w, h per slot (scaled)
	angle []float32 // degrees per slot
	color []float32 // r, g, b, a per slot, normalized 0-1
	tex   []float32 // atlas slot per slot
}

func newAttributeBuffers(capacity int) *attributeBuffers {
	return &attributeBuffers{
		pos:   make([]float32, 2*capacity),
		size:  make([]float32, 2*capacity),
		angle: make([]float32, capacity),
		color: make([]float32, 4*capacity),
		tex:   make([]float32, capacity),
	}
}

// grow extends every buffer to the new capacity, preserving contents.
func (b *attributeBuffers) grow(capacity int) {
	b.pos = growSlice(b.pos, 2*capacity)
	b.size = growSlice(b.size, 2*capacity)
	b.angle = growSlice(b.angle, capacity)
	b.color = growSlice(b.color, 4*capacity)
	b.tex = growSlice(b.tex, capacity)
}

func growSlice(s []float32, n int) []float32 {
	out := make([]float32, n)
	copy(out, s)
	return out
}

func (b *attributeBuffers) writePosition(slot int, s *Sprite) {
	p := s.Position()
	b.pos[2*slot] = float32(p.X)
	b.pos[2*slot+1] = float32(p.Y)
}

func (b *attributeBuffers) writeSize(slot int, s *Sprite) {
	b.size[2*slot] = float32(s.Width() * s.Scale())
	b.size[2*slot+1] = float32(s.Height() * s.Scale())
}

func (b *attributeBuffers) writeAngle(slot int, s *Sprite) {
	b.angle[slot] = float32(s.Angle())
}

func (b *attributeBuffers) writeColor(slot int, s *Sprite) {
	c := s.Color()
	b.color[4*slot] = float32(c.R) / 255
	b.color[4*slot+1] = float32(c.G) / 255
	b.color[4*slot+2] = float32(c.B) / 255
	b.color[4*slot+3] = float32(s.Alpha()) / 255
}

func (b *attributeBuffers) writeTexture(slot int, s *Sprite, atlas Atlas) {
	b.tex[slot] = float32(atlas.Slot(s.Texture()))
}

// writeAll fills every attribute for a freshly allocated slot.
func (b *attributeBuffers) writeAll(slot int, s *Sprite, atlas Atlas) {
	b.writePosition(slot, s)
	b.writeSize(slot, s)
	b.writeAngle(slot, s)
	b.writeColor(slot, s)
	b.writeTexture(slot, s, atlas)
}
