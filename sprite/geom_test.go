package sprite_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/spritebatch/sprite"
)

func TestRotatePoint(t *testing.T) {
	origin := cp.Vector{}

	p := sprite.RotatePoint(cp.Vector{X: 1, Y: 0}, origin, 90)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)

	p = sprite.RotatePoint(cp.Vector{X: 1, Y: 0}, origin, 180)
	assert.InDelta(t, -1, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Rotation about a non-origin center.
	p = sprite.RotatePoint(cp.Vector{X: 2, Y: 1}, cp.Vector{X: 1, Y: 1}, 90)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	square := []cp.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	assert.True(t, sprite.PointInPolygon(cp.Vector{X: 5, Y: 5}, square))
	assert.True(t, sprite.PointInPolygon(cp.Vector{X: 1, Y: 9}, square))
	assert.False(t, sprite.PointInPolygon(cp.Vector{X: 15, Y: 5}, square))
	assert.False(t, sprite.PointInPolygon(cp.Vector{X: -1, Y: -1}, square))

	triangle := []cp.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	assert.True(t, sprite.PointInPolygon(cp.Vector{X: 2, Y: 2}, triangle))
	assert.False(t, sprite.PointInPolygon(cp.Vector{X: 8, Y: 8}, triangle))

	// Degenerate vertex lists never contain anything.
	assert.False(t, sprite.PointInPolygon(cp.Vector{X: 0, Y: 0}, nil))
	assert.False(t, sprite.PointInPolygon(cp.Vector{X: 0, Y: 0}, square[:2]))
}

func TestPolygonsIntersect(t *testing.T) {
	square := func(x, y, half float64) []cp.Vector {
		return []cp.Vector{
			{X: x - half, Y: y - half},
			{X: x + half, Y: y - half},
			{X: x + half, Y: y + half},
			{X: x - half, Y: y + half},
		}
	}

	assert.True(t, sprite.PolygonsIntersect(square(0, 0, 5), square(4, 4, 5)))
	assert.True(t, sprite.PolygonsIntersect(square(0, 0, 5), square(0, 0, 1))) // containment
	assert.False(t, sprite.PolygonsIntersect(square(0, 0, 5), square(20, 0, 5)))
	assert.False(t, sprite.PolygonsIntersect(square(0, 0, 5), nil))

	// Symmetric in argument order.
	a, b := square(0, 0, 5), square(8, 0, 5)
	assert.Equal(t,
		sprite.PolygonsIntersect(a, b),
		sprite.PolygonsIntersect(b, a),
	)
}

func TestAdjustedHitBox(t *testing.T) {
	s := sprite.NewSprite("tex", 100, 50, 10, 20)

	verts := s.AdjustedHitBox()
	assert.Len(t, verts, 4)
	assert.Contains(t, verts, cp.Vector{X: 95, Y: 40})
	assert.Contains(t, verts, cp.Vector{X: 105, Y: 60})

	// Scale doubles the extent around the center.
	s.SetScale(2)
	bb := s.BB()
	assert.InDelta(t, 90, bb.L, 1e-9)
	assert.InDelta(t, 110, bb.R, 1e-9)
	assert.InDelta(t, 30, bb.B, 1e-9)
	assert.InDelta(t, 70, bb.T, 1e-9)
}

func TestBBGrowsWithRotation(t *testing.T) {
	s := sprite.NewSprite("tex", 0, 0, 40, 2)

	flat := s.BB()
	assert.InDelta(t, -20, flat.L, 1e-9)
	assert.InDelta(t, 1, flat.T, 1e-9)

	s.SetAngle(45)
	tilted := s.BB()
	assert.Greater(t, tilted.T, 10.0)
	assert.Less(t, tilted.B, -10.0)
}

func TestCollisionRadiusEnclosesSprite(t *testing.T) {
	s := sprite.NewSprite("tex", 0, 0, 30, 40)
	assert.InDelta(t, 25, s.CollisionRadius(), 1e-9)

	s.SetScale(2)
	assert.InDelta(t, 50, s.CollisionRadius(), 1e-9)

	// At any rotation, every hit box vertex stays within the radius.
	for angle := 0.0; angle < 360; angle += 30 {
		s.SetAngle(angle)
		for _, v := range s.AdjustedHitBox() {
			assert.LessOrEqual(t, v.Length(), s.CollisionRadius()+1e-9)
		}
	}
}
