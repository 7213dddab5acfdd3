package components

import (
	"github.com/automoto/radialmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PlayerData binds a menu session to a player and controller.
type PlayerData struct {
	ID             menu.PlayerID
	BoundGamepadID *ebiten.GamepadID // nil = first available gamepad
	// Suspended is set by the host while the player can't act (cutscenes,
	// other menus). An open radial menu keeps working until it closes.
	Suspended bool
}

var Player = donburi.NewComponentType[PlayerData]()
