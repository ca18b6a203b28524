// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game engine, for hosting the sprite debug panels inside an Ebiten loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
