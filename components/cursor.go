package components

import "github.com/yohamta/donburi"

// MenuKind identifies one of the two radial menus.
type MenuKind int

const (
	MenuNone MenuKind = iota
	// MenuPrimary is opened by the left trigger (the inventory).
	MenuPrimary
	// MenuSecondary is opened by the right trigger (shortcuts and plugin pages).
	MenuSecondary
)

func (k MenuKind) String() string {
	switch k {
	case MenuPrimary:
		return "primary"
	case MenuSecondary:
		return "secondary"
	}
	return "none"
}

// CursorTarget is where the stick points and which item that selects.
type CursorTarget struct {
	Angle         float64 // radians, clockwise from up, in [0, 2π)
	SelectedIndex int     // -1 when the page has no items
}

// CursorData is the per-player menu/target state machine.
type CursorData struct {
	ActiveMenu   MenuKind
	PreviousMenu MenuKind      // menu before the last change, for RevertActiveMenu
	Target       *CursorTarget // nil when no menu is open or the stick is centered
	// SuppressedMenu may not open again until its trigger returns to neutral.
	SuppressedMenu MenuKind

	// Edge flags, valid for the tick they were set on
	WasMenuChanged   bool
	WasTargetChanged bool
}

var Cursor = donburi.NewComponentType[CursorData]()
