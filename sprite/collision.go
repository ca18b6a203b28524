package sprite

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// GetDistance returns the Euclidean distance between two sprite centers.
func GetDistance(a, b *Sprite) float64 {
	return a.Position().Distance(b.Position())
}

// CheckForCollision reports whether two sprites overlap. The test is
// symmetric: a cheap per-axis bounding-radius reject runs first, then the
// exact polygon intersection of both adjusted hit boxes.
func CheckForCollision(a, b *Sprite) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: nil sprite", ErrInvalidArgument)
	}
	return collidesExact(a, b), nil
}

func collidesExact(a, b *Sprite) bool {
	radiusSum := a.CollisionRadius() + b.CollisionRadius()
	pa, pb := a.Position(), b.Position()
	if math.Abs(pa.X-pb.X) > radiusSum || math.Abs(pa.Y-pb.Y) > radiusSum {
		return false
	}
	return PolygonsIntersect(a.AdjustedHitBox(), b.AdjustedHitBox())
}

// CheckForCollisionWithList returns every sprite in the list that overlaps
// s. The broad phase is chosen by broadPhase; every strategy converges on
// the same result set after the exact narrow phase, so the choice is purely
// a performance heuristic.
func CheckForCollisionWithList(s *Sprite, list *SpriteList) ([]*Sprite, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil sprite", ErrInvalidArgument)
	}
	if list == nil {
		return nil, fmt.Errorf("%w: nil list", ErrInvalidArgument)
	}

	var hits []*Sprite
	for _, candidate := range broadPhase(s, list) {
		if candidate == s {
			continue
		}
		if collidesExact(s, candidate) {
			hits = append(hits, candidate)
		}
	}
	return hits, nil
}

// CheckForCollisionWithLists runs CheckForCollisionWithList against several
// lists and concatenates the results.
func CheckForCollisionWithLists(s *Sprite, lists []*SpriteList) ([]*Sprite, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil sprite", ErrInvalidArgument)
	}
	var hits []*Sprite
	for _, list := range lists {
		found, err := CheckForCollisionWithList(s, list)
		if err != nil {
			return nil, err
		}
		hits = append(hits, found...)
	}
	return hits, nil
}

// broadPhase selects collision candidates. Preference order: the list's
// spatial hash, brute force below the configured threshold, then the
// renderer's device-side narrowing pass when available. Brute force is the
// final fallback.
func broadPhase(s *Sprite, list *SpriteList) []*Sprite {
	if list.hash != nil {
		return list.hash.QuerySprite(s)
	}
	if len(list.sprites) < list.cfg.BruteForceThreshold {
		return list.sprites
	}
	if narrower, ok := list.renderer.(CandidateNarrower); ok {
		list.syncForNarrowing()
		maxDistance := s.CollisionRadius() + list.maxRadius
		slots := narrower.NearbyCandidates(s.Position(), maxDistance)
		candidates := make([]*Sprite, 0, len(slots))
		for _, slot := range slots {
			if slot >= 0 && slot < len(list.bySlot) && list.bySlot[slot] != nil {
				candidates = append(candidates, list.bySlot[slot])
			}
		}
		return candidates
	}
	return list.sprites
}

// GetClosestSprite returns the sprite in the list nearest to s by center
// distance, and that distance. Returns a nil sprite when the list is empty
// (or contains only s itself).
func GetClosestSprite(s *Sprite, list *SpriteList) (*Sprite, float64, error) {
	if s == nil {
		return nil, 0, fmt.Errorf("%w: nil sprite", ErrInvalidArgument)
	}
	if list == nil {
		return nil, 0, fmt.Errorf("%w: nil list", ErrInvalidArgument)
	}

	var closest *Sprite
	best := math.Inf(1)
	for _, candidate := range list.sprites {
		if candidate == s {
			continue
		}
		if d := GetDistance(s, candidate); d < best {
			best = d
			closest = candidate
		}
	}
	if closest == nil {
		return nil, 0, nil
	}
	return closest, best, nil
}

// GetSpritesAtPoint returns every sprite whose adjusted hit box contains
// the point. Uses the spatial hash's point query when available.
func GetSpritesAtPoint(p cp.Vector, list *SpriteList) ([]*Sprite, error) {
	if list == nil {
		return nil, fmt.Errorf("%w: nil list", ErrInvalidArgument)
	}

	candidates := list.sprites
	if list.hash != nil {
		candidates = list.hash.QueryPoint(p)
	}
	var hits []*Sprite
	for _, s := range candidates {
		if PointInPolygon(p, s.AdjustedHitBox()) {
			hits = append(hits, s)
		}
	}
	return hits, nil
}

// GetSpritesAtExactPoint returns every sprite whose center equals the
// point exactly.
func GetSpritesAtExactPoint(p cp.Vector, list *SpriteList) ([]*Sprite, error) {
	if list == nil {
		return nil, fmt.Errorf("%w: nil list", ErrInvalidArgument)
	}

	candidates := list.sprites
	if list.hash != nil {
		candidates = list.hash.QueryPoint(p)
	}
	var hits []*Sprite
	for _, s := range candidates {
		if s.Position() == p {
			hits = append(hits, s)
		}
	}
	return hits, nil
}
