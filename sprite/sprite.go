package sprite

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Color is an RGB triple. Alpha is tracked separately on the sprite.
type Color struct {
	R, G, B uint8
}

// White is the default sprite color (untinted).
var White = Color{R: 255, G: 255, B: 255}

// Sprite is a movable, textured rectangle. Sprites are owned by the caller;
// a SpriteList only reads their attributes and keeps a slot reference.
//
// Mutators push the changed attribute into every list the sprite belongs
// to, so a single moved sprite costs one buffer write per list, not a
// rebuild.
type Sprite struct {
	position cp.Vector
	width    float64
	height   float64
	scale    float64
	angle    float64 // degrees, counter-clockwise
	color    Color
	alpha    uint8
	texture  string

	hitBox   []cp.Vector // local space, unscaled
	adjusted []cp.Vector // cached world-space hit box

	lists []*SpriteList
}

// NewSprite creates a sprite with the given texture identity, center
// position, and size. The hit box defaults to the sprite's rectangle.
func NewSprite(texture string, x, y, width, height float64) *Sprite {
	s := &Sprite{
		position: cp.Vector{X: x, Y: y},
		width:    width,
		height:   height,
		scale:    1,
		color:    White,
		alpha:    255,
		texture:  texture,
	}
	s.hitBox = rectHitBox(width, height)
	return s
}

func rectHitBox(width, height float64) []cp.Vector {
	hw, hh := width/2, height/2
	return []cp.Vector{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}

// Position returns the sprite's center in world space.
func (s *Sprite) Position() cp.Vector { return s.position }

// Width returns the unscaled width.
func (s *Sprite) Width() float64 { return s.width }

// Height returns the unscaled height.
func (s *Sprite) Height() float64 { return s.height }

// Scale returns the uniform scale factor.
func (s *Sprite) Scale() float64 { return s.scale }

// Angle returns the rotation in degrees.
func (s *Sprite) Angle() float64 { return s.angle }

// Color returns the RGB tint.
func (s *Sprite) Color() Color { return s.color }

// Alpha returns the opacity, 0-255.
func (s *Sprite) Alpha() uint8 { return s.alpha }

// Texture returns the atlas lookup key.
func (s *Sprite) Texture() string { return s.texture }

// HitBox returns the local-space, unscaled hit box vertices.
func (s *Sprite) HitBox() []cp.Vector { return s.hitBox }

// SetPosition moves the sprite and propagates the change to every list it
// belongs to, including their spatial hashes.
func (s *Sprite) SetPosition(p cp.Vector) {
	s.position = p
	s.adjusted = nil
	for _, l := range s.lists {
		l.updatePosition(s)
	}
}

// MoveBy translates the sprite by (dx, dy).
func (s *Sprite) MoveBy(dx, dy float64) {
	s.SetPosition(cp.Vector{X: s.position.X + dx, Y: s.position.Y + dy})
}

// SetSize changes the sprite's dimensions. The hit box is rebuilt only if
// it was the default rectangle.
func (s *Sprite) SetSize(width, height float64) {
	rebuilt := hitBoxEqual(s.hitBox, rectHitBox(s.width, s.height))
	s.width = width
	s.height = height
	if rebuilt {
		s.hitBox = rectHitBox(width, height)
	}
	s.adjusted = nil
	for _, l := range s.lists {
		l.updateSize(s)
	}
}

// SetScale sets the uniform scale factor.
func (s *Sprite) SetScale(scale float64) {
	s.scale = scale
	s.adjusted = nil
	for _, l := range s.lists {
		l.updateSize(s)
	}
}

// SetAngle rotates the sprite to the given angle in degrees.
func (s *Sprite) SetAngle(degrees float64) {
	s.angle = degrees
	s.adjusted = nil
	for _, l := range s.lists {
		l.updateAngle(s)
	}
}

// SetColor tints the sprite.
func (s *Sprite) SetColor(c Color) {
	s.color = c
	for _, l := range s.lists {
		l.updateColor(s)
	}
}

// SetAlpha sets the opacity, 0-255.
func (s *Sprite) SetAlpha(a uint8) {
	s.alpha = a
	for _, l := range s.lists {
		l.updateColor(s)
	}
}

// SetTexture swaps the atlas lookup key.
func (s *Sprite) SetTexture(texture string) {
	s.texture = texture
	for _, l := range s.lists {
		l.updateTexture(s)
	}
}

// SetHitBox replaces the local-space hit box vertices. Vertices are
// interpreted relative to the sprite center, unscaled.
func (s *Sprite) SetHitBox(verts []cp.Vector) {
	s.hitBox = verts
	s.adjusted = nil
	for _, l := range s.lists {
		l.updateSize(s)
	}
}

// AdjustedHitBox returns the hit box in world space with scale, rotation,
// and translation applied. The result is cached until the transform
// changes; callers must not mutate it.
func (s *Sprite) AdjustedHitBox() []cp.Vector {
	if s.adjusted != nil {
		return s.adjusted
	}
	rot := cp.ForAngle(Radians(s.angle))
	verts := make([]cp.Vector, len(s.hitBox))
	for i, p := range s.hitBox {
		verts[i] = s.position.Add(p.Mult(s.scale).Rotate(rot))
	}
	s.adjusted = verts
	return verts
}

// BB returns the world-space axis-aligned bounding box of the adjusted hit
// box. Rotation is accounted for, so the box grows as the sprite turns.
func (s *Sprite) BB() cp.BB {
	verts := s.AdjustedHitBox()
	if len(verts) == 0 {
		return cp.NewBBForExtents(s.position, 0, 0)
	}
	return boundsOf(verts)
}

// CollisionRadius returns a conservative bounding radius: half the scaled
// diagonal. Guaranteed to enclose the sprite at any rotation.
func (s *Sprite) CollisionRadius() float64 {
	return math.Hypot(s.width, s.height) * s.scale / 2
}

// registerList records list membership; called by SpriteList on insert.
func (s *Sprite) registerList(l *SpriteList) {
	s.lists = append(s.lists, l)
}

// unregisterList drops list membership; called by SpriteList on remove.
func (s *Sprite) unregisterList(l *SpriteList) {
	for i, have := range s.lists {
		if have == l {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			return
		}
	}
}

// Lists returns the number of lists this sprite currently belongs to.
func (s *Sprite) Lists() int { return len(s.lists) }

func hitBoxEqual(a, b []cp.Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
