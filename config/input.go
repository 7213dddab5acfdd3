package config

import "github.com/hajimehoshi/ebiten/v2"

// ButtonConfig maps menu actions to standard gamepad buttons.
type ButtonConfig struct {
	// ActionButton activates the targeted item with the primary action.
	ActionButton ebiten.StandardGamepadButton `json:"actionButton"`
	// SecondaryActionButton activates the targeted item with the secondary action.
	SecondaryActionButton ebiten.StandardGamepadButton `json:"secondaryActionButton"`
	PreviousPageButton    ebiten.StandardGamepadButton `json:"previousPageButton"`
	NextPageButton        ebiten.StandardGamepadButton `json:"nextPageButton"`
}

// Triggers and sticks read by the cursor.
const (
	LeftTrigger       = ebiten.StandardGamepadButtonFrontBottomLeft
	RightTrigger      = ebiten.StandardGamepadButtonFrontBottomRight
	LeftStickButton   = ebiten.StandardGamepadButtonLeftStick
	RightStickButton  = ebiten.StandardGamepadButtonRightStick
	GamepadButtonMax  = ebiten.StandardGamepadButtonMax
	GamepadButtonSize = int(ebiten.StandardGamepadButtonMax) + 1
)

// DefaultButtons returns the default button layout.
func DefaultButtons() ButtonConfig {
	return ButtonConfig{
		// A / Cross button
		ActionButton: ebiten.StandardGamepadButtonRightBottom,
		// X / Square button
		SecondaryActionButton: ebiten.StandardGamepadButtonRightLeft,
		// Bumpers
		PreviousPageButton: ebiten.StandardGamepadButtonFrontTopLeft,
		NextPageButton:     ebiten.StandardGamepadButtonFrontTopRight,
	}
}

// KeyboardConfig lets the demo host drive a virtual gamepad from the keyboard
// when no controller is connected.
type KeyboardConfig struct {
	LeftTrigger  []ebiten.Key
	RightTrigger []ebiten.Key
	StickUp      []ebiten.Key
	StickDown    []ebiten.Key
	StickLeft    []ebiten.Key
	StickRight   []ebiten.Key
	Buttons      map[ebiten.StandardGamepadButton][]ebiten.Key
}

// Keyboard is the global keyboard fallback configuration
var Keyboard KeyboardConfig

func init() {
	Keyboard = KeyboardConfig{
		LeftTrigger:  []ebiten.Key{ebiten.KeyQ},
		RightTrigger: []ebiten.Key{ebiten.KeyE},
		StickUp:      []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		StickDown:    []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		StickLeft:    []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		StickRight:   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		Buttons: map[ebiten.StandardGamepadButton][]ebiten.Key{
			ebiten.StandardGamepadButtonRightBottom:   {ebiten.KeySpace, ebiten.KeyEnter},
			ebiten.StandardGamepadButtonRightLeft:     {ebiten.KeyF},
			ebiten.StandardGamepadButtonFrontTopLeft:  {ebiten.KeyZ},
			ebiten.StandardGamepadButtonFrontTopRight: {ebiten.KeyC},
			ebiten.StandardGamepadButtonLeftStick:     {ebiten.KeyR},
		},
	}
}
