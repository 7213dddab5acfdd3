package components

import (
	cfg "github.com/automoto/radialmenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// HighlightKey is the state the outer ring colors were last computed for.
type HighlightKey struct {
	ItemCount     int
	SelectedIndex int
	Blend         float32
}

// GeometryData caches the ring meshes for one player's menu. Vertex positions
// are relative to the menu center.
type GeometryData struct {
	Styles cfg.Styles // styles the meshes were built with
	Built  bool

	Inner        []ebiten.Vertex
	Outer        []ebiten.Vertex
	InnerIndices []uint16
	OuterIndices []uint16

	Highlight      HighlightKey
	HighlightValid bool

	// Reused per draw to translate meshes to the screen center.
	Scratch []ebiten.Vertex
}

var Geometry = donburi.NewComponentType[GeometryData]()
