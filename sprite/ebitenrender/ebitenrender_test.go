package ebitenrender_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/spritebatch/sprite"
	"github.com/plus3/spritebatch/sprite/ebitenrender"
)

// These tests exercise the headless paths: buffer mirroring, reallocation,
// and device-side candidate narrowing. Actual draw submission needs a
// graphics context and is covered by running cmd/sprite-stress visually.

func TestRendererMirrorsFlushedBuffers(t *testing.T) {
	atlas := sprite.NewMapAtlas()
	renderer := ebitenrender.New(nil, atlas)

	list := sprite.NewList()
	list.AttachRenderer(renderer)

	a := sprite.NewSprite("a", 10, 20, 32, 32)
	b := sprite.NewSprite("b", 30, 40, 32, 32)
	assert.NoError(t, list.Append(a))
	assert.NoError(t, list.Append(b))
	assert.NoError(t, list.Flush())

	assert.Equal(t, 2, renderer.DrawCount())

	slot, _ := list.Slot(b)
	candidates := renderer.NearbyCandidates(cp.Vector{X: 30, Y: 40}, 5)
	assert.Equal(t, []int{slot}, candidates)
}

func TestRendererReallocOnGrowth(t *testing.T) {
	renderer := ebitenrender.New(nil, sprite.NewMapAtlas())

	list := sprite.NewList()
	list.AttachRenderer(renderer)

	for i := 0; i < 101; i++ {
		assert.NoError(t, list.Append(sprite.NewSprite("tex", float64(i), 0, 8, 8)))
	}
	assert.NoError(t, list.Flush())
	assert.Equal(t, 101, renderer.DrawCount())

	// After growth, every sprite is still narrowable at its position.
	candidates := renderer.NearbyCandidates(cp.Vector{X: 100, Y: 0}, 0.5)
	assert.Len(t, candidates, 1)
}

func TestNearbyCandidatesBoxSemantics(t *testing.T) {
	renderer := ebitenrender.New(nil, sprite.NewMapAtlas())

	list := sprite.NewList()
	list.AttachRenderer(renderer)

	near := sprite.NewSprite("near", 0, 0, 8, 8)
	diag := sprite.NewSprite("diag", 40, 40, 8, 8)
	far := sprite.NewSprite("far", 500, 0, 8, 8)
	for _, s := range []*sprite.Sprite{near, diag, far} {
		assert.NoError(t, list.Append(s))
	}
	assert.NoError(t, list.Flush())

	// The narrowing pass is a box test, so the diagonal sprite is a
	// legitimate false positive at distance 50 but axis offsets 40.
	candidates := renderer.NearbyCandidates(cp.Vector{}, 45)
	assert.Len(t, candidates, 2)
}
