package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/pkg/profile"

	"github.com/plus3/spritebatch/sprite"
)

// countingRenderer is a headless device stand-in: it counts uploads and
// draws, and narrows candidates from the last uploaded position buffer.
type countingRenderer struct {
	capacity  int
	positions []float32
	index     []int32
	uploads   int64
	draws     int64
}

func (r *countingRenderer) Realloc(capacity int) {
	r.capacity = capacity
	positions := make([]float32, 2*capacity)
	copy(positions, r.positions)
	r.positions = positions
}

func (r *countingRenderer) UploadPositions(data []float32) {
	r.positions = append(r.positions[:0], data...)
	r.uploads++
}

func (r *countingRenderer) UploadSizes(data []float32)    { r.uploads++ }
func (r *countingRenderer) UploadAngles(data []float32)   { r.uploads++ }
func (r *countingRenderer) UploadColors(data []float32)   { r.uploads++ }
func (r *countingRenderer) UploadTextures(data []float32) { r.uploads++ }

func (r *countingRenderer) UploadIndex(data []int32) {
	r.index = append(r.index[:0], data...)
	r.uploads++
}

func (r *countingRenderer) Draw(count int) { r.draws++ }

func (r *countingRenderer) NearbyCandidates(center cp.Vector, maxDistance float64) []int {
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

const worldSize = 4096.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	spriteCount := flag.Int("sprites", 10000, "The initial number of sprites to create.")
	configPath := flag.String("config", "", "Optional YAML config file for the sprite list.")
	profileMode := flag.String("profile", "", "Enable profiling: cpu or mem.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	log.Println("Starting sprite batch stress test...")

	// 1. Build the list from config (defaults when no file given).
	cfg := sprite.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sprite.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	list := sprite.NewListWith(cfg, nil)
	renderer := &countingRenderer{}
	list.AttachRenderer(renderer)

	// 2. Populate with randomly placed sprites.
	log.Printf("Populating list with %d sprites...\n", *spriteCount)
	rng := rand.New(rand.NewSource(42))
	sprites := make([]*sprite.Sprite, 0, *spriteCount)
	for i := 0; i < *spriteCount; i++ {
		s := sprite.NewSprite(
			fmt.Sprintf("tex-%d", i%16),
			rng.Float64()*worldSize,
			rng.Float64()*worldSize,
			16+rng.Float64()*48,
			16+rng.Float64()*48,
		)
		s.SetAngle(rng.Float64() * 360)
		must(list.Append(s))
		sprites = append(sprites, s)
	}
	log.Println("Population complete.")

	// 3. Run the churn loop.
	report := &Report{
		Duration:       *duration,
		Sprites:        *spriteCount,
		HashEnabled:    list.Hash() != nil,
		CellSize:       cfg.HashCellSize,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()

			// Move a random subset.
			for i := 0; i < len(sprites)/20+1; i++ {
				s := sprites[rng.Intn(len(sprites))]
				s.MoveBy(rng.Float64()*8-4, rng.Float64()*8-4)
			}

			// Remove one, append a fresh one (exercises slot recycling).
			victim := rng.Intn(len(sprites))
			must(list.Remove(sprites[victim]))
			replacement := sprite.NewSprite(
				fmt.Sprintf("tex-%d", rng.Intn(16)),
				rng.Float64()*worldSize,
				rng.Float64()*worldSize,
				32, 32,
			)
			must(list.Append(replacement))
			sprites[victim] = replacement

			// Occasionally reorder.
			if totalFrames%64 == 0 {
				list.Shuffle(rng)
			}
			if totalFrames%128 == 0 {
				list.Sort(func(a, b *sprite.Sprite) bool {
					return a.Position().Y > b.Position().Y
				})
			}

			// Collision queries against random probes.
			for i := 0; i < 32; i++ {
				probe := sprites[rng.Intn(len(sprites))]
				hits, err := sprite.CheckForCollisionWithList(probe, list)
				must(err)
				report.CollisionChecks++
				report.CollisionHits += int64(len(hits))
			}

			must(list.Flush())
			report.Flushes++

			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.BufferUploads = renderer.uploads
	report.FinalCapacity = list.Capacity()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn loop finished.")

	// 4. Generate report to console.
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
