package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/spritebatch/sprite"
)

// Render draws the performance window and records deltaTime (seconds) into
// the rolling frame history.
func (ps *PerformanceStatsComponent) Render(list *sprite.SpriteList, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := list.CollectStats()

	imgui.Text(fmt.Sprintf("Sprites: %d", stats.Sprites))
	imgui.Text(fmt.Sprintf("Slot Capacity: %d", stats.SlotCapacity))
	imgui.Text(fmt.Sprintf("Index Length: %d", stats.IndexLength))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	imgui.End()
}
