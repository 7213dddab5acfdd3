package systems

import (
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/shared/radialmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateGamePads samples every player's controller into their GamePad
// component. Must run BEFORE UpdateRadialMenu in the system order.
func UpdateGamePads(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.GamePad.Each(ecs.World, func(entry *donburi.Entry) {
		pad := components.GamePad.Get(entry)
		BeginGamePadTick(pad)

		var bound *ebiten.GamepadID
		if entry.HasComponent(components.Player) {
			bound = components.Player.Get(entry).BoundGamepadID
		}
		if gpID, ok := resolveGamepad(bound, gamepadIDs); ok {
			pollGamepad(pad, gpID)
			return
		}
		pollKeyboard(pad)
	})
}

// BeginGamePadTick rolls the button buffers forward and clears last tick's
// analog values and consumed buttons.
func BeginGamePadTick(pad *components.GamePadData) {
	pad.Previous = pad.Current
	pad.Current = [cfg.GamepadButtonSize]bool{}
	pad.Consumed = [cfg.GamepadButtonSize]bool{}
	pad.Connected = false
	pad.LeftTrigger, pad.RightTrigger = 0, 0
	pad.LeftStick, pad.RightStick = radialmath.Vec2{}, radialmath.Vec2{}
}

// IsButtonConsumed reports whether the menu handled b this tick, in which case
// the host game should ignore it.
func IsButtonConsumed(pad *components.GamePadData, b ebiten.StandardGamepadButton) bool {
	if b < 0 || int(b) >= len(pad.Consumed) {
		return false
	}
	return pad.Consumed[b]
}

// resolveGamepad picks the bound gamepad, or the first one with a standard
// layout when the player has no binding.
func resolveGamepad(bound *ebiten.GamepadID, gamepads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	if bound != nil {
		for _, gpID := range gamepads {
			if gpID == *bound {
				return gpID, ebiten.IsStandardGamepadLayoutAvailable(gpID)
			}
		}
		return 0, false
	}
	for _, gpID := range gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			return gpID, true
		}
	}
	return 0, false
}

// pollGamepad reads one controller into pad.
func pollGamepad(pad *components.GamePadData, gpID ebiten.GamepadID) {
	pad.Connected = true
	for b := ebiten.StandardGamepadButton(0); b <= cfg.GamepadButtonMax; b++ {
		pad.Current[b] = ebiten.IsStandardGamepadButtonPressed(gpID, b)
	}
	// Triggers are analog buttons in the standard layout
	pad.LeftTrigger = ebiten.StandardGamepadButtonValue(gpID, cfg.LeftTrigger)
	pad.RightTrigger = ebiten.StandardGamepadButtonValue(gpID, cfg.RightTrigger)
	pad.LeftStick = radialmath.StickFromAxes(
		ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
	)
	pad.RightStick = radialmath.StickFromAxes(
		ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
		ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
	)
}

// pollKeyboard emulates a gamepad from cfg.Keyboard. Both sticks follow the
// direction keys so every thumbstick preference works.
func pollKeyboard(pad *components.GamePadData) {
	kb := cfg.Keyboard
	if anyKeyPressed(kb.LeftTrigger) {
		pad.LeftTrigger = 1
		pad.Current[cfg.LeftTrigger] = true
	}
	if anyKeyPressed(kb.RightTrigger) {
		pad.RightTrigger = 1
		pad.Current[cfg.RightTrigger] = true
	}
	for b, keys := range kb.Buttons {
		if anyKeyPressed(keys) {
			pad.Current[b] = true
		}
	}

	var h, v float64
	if anyKeyPressed(kb.StickLeft) {
		h--
	}
	if anyKeyPressed(kb.StickRight) {
		h++
	}
	if anyKeyPressed(kb.StickUp) {
		v--
	}
	if anyKeyPressed(kb.StickDown) {
		v++
	}
	stick := radialmath.StickFromAxes(h, v)
	pad.LeftStick, pad.RightStick = stick, stick
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
