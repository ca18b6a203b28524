package sprite

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RotatePoint rotates p around center by the given angle in degrees,
// counter-clockwise.
func RotatePoint(p, center cp.Vector, degrees float64) cp.Vector {
	rot := cp.ForAngle(Radians(degrees))
	return center.Add(p.Sub(center).Rotate(rot))
}

// PointInPolygon reports whether p lies inside the polygon described by
// verts, using a standard ray-casting test. Points exactly on an edge may
// report either result.
func PointInPolygon(p cp.Vector, verts []cp.Vector) bool {
	if len(verts) < 3 {
		return false
	}

	inside := false
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		a, b := verts[i], verts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			cross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolygonsIntersect reports whether two convex polygons overlap, using the
// separating-axis theorem over the edge normals of both polygons.
func PolygonsIntersect(a, b []cp.Vector) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis checks the edge normals of polygon a for an axis on
// which the projections of a and b do not overlap.
func hasSeparatingAxis(a, b []cp.Vector) bool {
	for i := range a {
		edge := a[(i+1)%len(a)].Sub(a[i])
		axis := cp.Vector{X: -edge.Y, Y: edge.X}

		minA, maxA := projectPolygon(axis, a)
		minB, maxB := projectPolygon(axis, b)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

func projectPolygon(axis cp.Vector, verts []cp.Vector) (min, max float64) {
	min = axis.Dot(verts[0])
	max = min
	for _, v := range verts[1:] {
		d := axis.Dot(v)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// boundsOf returns the axis-aligned bounding box of a vertex list.
func boundsOf(verts []cp.Vector) cp.BB {
	bb := cp.BB{L: verts[0].X, B: verts[0].Y, R: verts[0].X, T: verts[0].Y}
	for _, v := range verts[1:] {
		bb.L = math.Min(bb.L, v.X)
		bb.B = math.Min(bb.B, v.Y)
		bb.R = math.Max(bb.R, v.X)
		bb.T = math.Max(bb.T, v.Y)
	}
	return bb
}
