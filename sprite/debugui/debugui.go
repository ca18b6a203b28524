// Package debugui provides Dear ImGui inspection panels for sprite lists:
// slot and dirty-flag state, draw-order contents, spatial hash occupancy,
// and frame-time tracking.
package debugui

// ListInspectorComponent renders the storage state of a single SpriteList.
type ListInspectorComponent struct {
	maxRows int
}

// NewListInspectorComponent creates an inspector showing at most maxRows
// sprites in the draw-order table.
func NewListInspectorComponent(maxRows int) ListInspectorComponent {
	if maxRows <= 0 {
		maxRows = 50
	}
	return ListInspectorComponent{maxRows: maxRows}
}

// PerformanceStatsComponent tracks and renders a rolling frame-time graph
// alongside list statistics.
type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStatsComponent creates a stats panel with a rolling history
// of historyFrames frames.
func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}
