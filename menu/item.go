package menu

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerID identifies a local player session (one per screen).
type PlayerID int

// ItemAction is what the player asked an item to do.
type ItemAction int

const (
	// ActionSelect only switches to the item, never consumes it.
	ActionSelect ItemAction = iota
	// ActionUse consumes or uses the item when possible, otherwise selects it.
	ActionUse
)

// ActivationResult is what happened when an item was activated.
type ActivationResult int

const (
	// ResultIgnored means nothing happened; the activation is retried.
	ResultIgnored ActivationResult = iota - 1
	// ResultUsed means the item was consumed or used.
	ResultUsed
	// ResultDelayed means the item is waiting for the activation delay to end.
	ResultDelayed
	// ResultSelected means the item was switched to without being used.
	ResultSelected
	// ResultCustom means a custom action ran.
	ResultCustom
)

// IsTerminal reports whether the result ends a pending activation.
func (r ActivationResult) IsTerminal() bool {
	return r != ResultIgnored && r != ResultDelayed
}

func (r ActivationResult) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultUsed:
		return "used"
	case ResultDelayed:
		return "delayed"
	case ResultSelected:
		return "selected"
	case ResultCustom:
		return "custom"
	}
	return "unknown"
}

// DelayedActions is the delay policy passed to every activation attempt.
type DelayedActions int

const (
	// DelayNone means the delay is over (or disabled) and the item may act.
	DelayNone DelayedActions = iota
	// DelayAll delays every activation.
	DelayAll
	// DelayToolSwitch delays only activations that switch tools; consumables
	// take effect immediately.
	DelayToolSwitch
)

// Icon describes how an item is drawn. A nil Texture draws a placeholder.
type Icon struct {
	Texture *ebiten.Image
	// Source is the region of Texture to draw; empty means the whole texture.
	Source image.Rectangle
	// TintSource is an optional overlay region drawn with Tint.
	TintSource image.Rectangle
	Tint       color.Color
}

// SourceSize returns the size of the drawn region.
func (i Icon) SourceSize() image.Point {
	if !i.Source.Empty() {
		return i.Source.Size()
	}
	if i.Texture != nil {
		return i.Texture.Bounds().Size()
	}
	return image.Point{}
}

// Item is a single entry in a radial menu page. Inventory items, shortcuts and
// plugin-provided entries all implement it.
type Item interface {
	Title() string
	Description() string
	// StackSize returns the count to display, if any.
	StackSize() (int, bool)
	// Quality returns the quality tier to display, if any.
	Quality() (int, bool)
	Icon() Icon
	// Activate attempts the item's action. The item decides whether delay
	// forbids acting yet and returns ResultDelayed in that case.
	Activate(who PlayerID, delay DelayedActions, action ItemAction) ActivationResult
}
