package sprite_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/plus3/spritebatch/sprite"
)

func benchList(n int, hashed bool) (*sprite.SpriteList, []*sprite.Sprite) {
	cfg := sprite.DefaultConfig()
	cfg.EnableSpatialHash = hashed
	list := sprite.NewListWith(cfg, nil)

	rng := rand.New(rand.NewSource(11))
	sprites := make([]*sprite.Sprite, n)
	for i := range sprites {
		sprites[i] = sprite.NewSprite(fmt.Sprintf("tex-%d", i%8), rng.Float64()*4096, rng.Float64()*4096, 32, 32)
		if err := list.Append(sprites[i]); err != nil {
			panic(err)
		}
	}
	return list, sprites
}

func BenchmarkAppendRemove(b *testing.B) {
	list, _ := benchList(1000, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := sprite.NewSprite("churn", 0, 0, 32, 32)
		if err := list.Append(s); err != nil {
			b.Fatal(err)
		}
		if err := list.Remove(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdatePosition(b *testing.B) {
	_, sprites := benchList(10000, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sprites[i%len(sprites)].MoveBy(1, 0)
	}
}

func BenchmarkUpdatePositionHashed(b *testing.B) {
	_, sprites := benchList(10000, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sprites[i%len(sprites)].MoveBy(1, 0)
	}
}

func BenchmarkFlush(b *testing.B) {
	list, sprites := benchList(10000, false)
	list.AttachRenderer(newRecordingRenderer())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sprites[i%len(sprites)].MoveBy(1, 0)
		if err := list.Flush(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCollisionBruteForce(b *testing.B) {
	list, sprites := benchList(1000, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sprite.CheckForCollisionWithList(sprites[i%len(sprites)], list); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCollisionSpatialHash(b *testing.B) {
	list, sprites := benchList(10000, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sprite.CheckForCollisionWithList(sprites[i%len(sprites)], list); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQueryBox(b *testing.B) {
	list, _ := benchList(10000, true)
	hash := list.Hash()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := float64(i%64) * 64
		hash.QueryBox(cp.BB{L: x, B: x, R: x + 256, T: x + 256})
	}
}
