package config

import (
	"image/color"

	"github.com/automoto/radialmenu/menu"
)

// ActivationMethod is how the primary action on the targeted item is triggered.
type ActivationMethod int

const (
	// ActivateActionButton uses the face action button (A / Cross).
	ActivateActionButton ActivationMethod = iota
	// ActivateThumbStickPress uses a click of the stick driving the cursor.
	ActivateThumbStickPress
	// ActivateTriggerRelease activates when the menu's trigger is released.
	ActivateTriggerRelease
)

// ThumbStickPreference selects which stick moves the cursor.
type ThumbStickPreference int

const (
	ThumbStickAlwaysLeft ThumbStickPreference = iota
	ThumbStickAlwaysRight
	// ThumbStickSameAsTrigger uses the stick on the same side as the trigger
	// that opened the menu.
	ThumbStickSameAsTrigger
)

// Configuration is the full set of tunables read by the radial menu. The
// engine treats it as a read-only snapshot.
type Configuration struct {
	// Input
	TriggerDeadZone      float64              `json:"triggerDeadZone"`
	SwapTriggers         bool                 `json:"swapTriggers"`
	ThumbStickPreference ThumbStickPreference `json:"thumbStickPreference"`
	ThumbStickDeadZone   float64              `json:"thumbStickDeadZone"`
	Buttons              ButtonConfig         `json:"buttons"`

	// Activation
	PrimaryActivation ActivationMethod    `json:"primaryActivation"`
	PrimaryAction     menu.ItemAction     `json:"primaryAction"`
	SecondaryAction   menu.ItemAction     `json:"secondaryAction"`
	ActivationDelayMs float64             `json:"activationDelayMs"`
	DelayedActions    menu.DelayedActions `json:"delayedActions"`
	// MaxUndelayedAttempts bounds how many ticks an item may keep answering
	// Delayed or Ignored after the delay is over before it is given up on.
	MaxUndelayedAttempts int `json:"maxUndelayedAttempts"`

	// Content
	MaxInventoryItems int             `json:"maxInventoryItems"`
	Shortcuts         []menu.Shortcut `json:"shortcuts"`

	Styles Styles `json:"styles"`
}

// Config holds general window configuration for the demo host
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Logging   bool   // Development logger with colored levels
	LogLevel  string // zap level name
	ShowInput bool   // Draw the sampled gamepad state
}

// Global configuration instances
var C *Config
var RadialMenu Configuration
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Gold         = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	Silver       = color.RGBA{R: 200, G: 210, B: 220, A: 255}
	Iridium      = color.RGBA{R: 190, G: 90, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Radial Menu",
	}

	RadialMenu = DefaultConfiguration()

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogLevel: "info",
	}
}

// DefaultConfiguration returns the built-in defaults. Each call returns a fresh
// copy, so callers may modify it.
func DefaultConfiguration() Configuration {
	return Configuration{
		TriggerDeadZone:      0.2,
		ThumbStickPreference: ThumbStickAlwaysLeft,
		ThumbStickDeadZone:   0.2,
		Buttons:              DefaultButtons(),

		PrimaryActivation:    ActivateActionButton,
		PrimaryAction:        menu.ActionUse,
		SecondaryAction:      menu.ActionSelect,
		ActivationDelayMs:    250,
		DelayedActions:       menu.DelayToolSwitch,
		MaxUndelayedAttempts: 30,

		MaxInventoryItems: 12,

		Styles: DefaultStyles(),
	}
}
