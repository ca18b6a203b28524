package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/spritebatch/sprite"
)

// Render draws the list inspector window: slot allocator state, dirty
// flags, the head of the draw-order table, and spatial hash occupancy.
func (li *ListInspectorComponent) Render(list *sprite.SpriteList) {
	if !imgui.BeginV("Sprite List", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := list.CollectStats()

	imgui.Text(fmt.Sprintf("Sprites: %d", stats.Sprites))
	imgui.Text(fmt.Sprintf("Slot Capacity: %d", stats.SlotCapacity))
	imgui.Text(fmt.Sprintf("Live / Free Slots: %d / %d", stats.LiveSlots, stats.FreeSlots))
	if len(stats.DirtyBuffers) == 0 {
		imgui.Text("Dirty Buffers: none")
	} else {
		imgui.Text("Dirty Buffers: " + strings.Join(stats.DirtyBuffers, ", "))
	}

	imgui.Separator()

	if imgui.TreeNodeStr("Draw Order") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("DrawOrderTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Pos")
			imgui.TableSetupColumn("Slot")
			imgui.TableSetupColumn("Center")
			imgui.TableSetupColumn("Angle")
			imgui.TableSetupColumn("Texture")
			imgui.TableHeadersRow()

			for i := 0; i < list.Len() && i < li.maxRows; i++ {
				s := list.At(i)
				slot, _ := list.Slot(s)
				p := s.Position()

				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", i))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", slot))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f", s.Angle()))
				imgui.TableNextColumn()
				imgui.Text(s.Texture())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if stats.Hash != nil {
		if imgui.TreeNodeStr("Spatial Hash") {
			imgui.Text(fmt.Sprintf("Cell Size: %.1f", list.Hash().CellSize()))
			imgui.Text(fmt.Sprintf("Buckets: %d", stats.Hash.Buckets))
			imgui.Text(fmt.Sprintf("Entries: %d", stats.Hash.Entries))
			imgui.Text(fmt.Sprintf("Max Bucket: %d", stats.Hash.MaxBucket))
			imgui.TreePop()
		}
	}

	imgui.End()
}
