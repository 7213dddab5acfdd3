package components

import (
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/shared/radialmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// GamePadData is one tick of raw controller state for a player.
type GamePadData struct {
	Connected    bool
	LeftTrigger  float64 // 0..1
	RightTrigger float64 // 0..1
	LeftStick    radialmath.Vec2
	RightStick   radialmath.Vec2

	Current  [cfg.GamepadButtonSize]bool // Current frame's pressed state
	Previous [cfg.GamepadButtonSize]bool // Previous frame's pressed state
	// Consumed buttons must not also be acted on by the host game this tick.
	Consumed [cfg.GamepadButtonSize]bool
}

// Pressed reports whether b is held this tick.
func (g *GamePadData) Pressed(b ebiten.StandardGamepadButton) bool {
	return b >= 0 && int(b) < len(g.Current) && g.Current[b]
}

// JustPressed reports a press that started this tick.
func (g *GamePadData) JustPressed(b ebiten.StandardGamepadButton) bool {
	if b < 0 || int(b) >= len(g.Current) {
		return false
	}
	return g.Current[b] && !g.Previous[b]
}

// Consume marks a button as handled by the menu.
func (g *GamePadData) Consume(b ebiten.StandardGamepadButton) {
	if b >= 0 && int(b) < len(g.Consumed) {
		g.Consumed[b] = true
	}
}

var GamePad = donburi.NewComponentType[GamePadData]()
