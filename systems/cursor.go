package systems

import (
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/shared/radialmath"
	"github.com/hajimehoshi/ebiten/v2"
)

// NextActiveMenu returns the menu the triggers are asking for. When both
// triggers are held the primary menu wins; this is a fixed priority.
func NextActiveMenu(pad *components.GamePadData, conf *cfg.Configuration) components.MenuKind {
	primary, secondary := pad.LeftTrigger, pad.RightTrigger
	if conf.SwapTriggers {
		primary, secondary = secondary, primary
	}
	switch {
	case primary > conf.TriggerDeadZone:
		return components.MenuPrimary
	case secondary > conf.TriggerDeadZone:
		return components.MenuSecondary
	}
	return components.MenuNone
}

// UpdateActiveMenu advances the open/closed state from the triggers and sets
// WasMenuChanged.
func UpdateActiveMenu(c *components.CursorData, pad *components.GamePadData, conf *cfg.Configuration) {
	c.WasMenuChanged = false
	next := applySuppression(c, NextActiveMenu(pad, conf))
	// First come, first served: whichever menu opened first stays open until
	// dismissed, so the two triggers never fight.
	if c.ActiveMenu != components.MenuNone && next != components.MenuNone {
		return
	}
	if next == c.ActiveMenu {
		return
	}
	c.PreviousMenu = c.ActiveMenu
	c.ActiveMenu = next
	c.WasMenuChanged = true
}

// CheckSuppressionState clears suppression once the triggers stop asking for
// the suppressed menu. Returns whether a menu is still suppressed.
func CheckSuppressionState(c *components.CursorData, pad *components.GamePadData, conf *cfg.Configuration) bool {
	applySuppression(c, NextActiveMenu(pad, conf))
	return c.SuppressedMenu != components.MenuNone
}

func applySuppression(c *components.CursorData, next components.MenuKind) components.MenuKind {
	if c.SuppressedMenu == components.MenuNone {
		return next
	}
	if next == c.SuppressedMenu {
		return components.MenuNone
	}
	c.SuppressedMenu = components.MenuNone
	return next
}

// SuppressUntilTriggerRelease keeps the active menu from reopening until its
// trigger has been released.
func SuppressUntilTriggerRelease(c *components.CursorData) {
	c.SuppressedMenu = c.ActiveMenu
}

// RevertActiveMenu restores the menu that was open before the last change.
// Used when the trigger release itself activates the item, so the closed
// menu's target still applies.
func RevertActiveMenu(c *components.CursorData) {
	c.ActiveMenu = c.PreviousMenu
}

// ResetCursor closes the menu and clears the target. Suppression is kept.
func ResetCursor(c *components.CursorData) {
	c.PreviousMenu = c.ActiveMenu
	c.ActiveMenu = components.MenuNone
	c.Target = nil
}

// UpdateCurrentTarget recomputes the target from the preferred stick and sets
// WasTargetChanged when the selected index changes. Angle jitter within the
// same item is not a change.
func UpdateCurrentTarget(c *components.CursorData, pad *components.GamePadData, conf *cfg.Configuration, itemCount int) {
	prevIndex, hadTarget := targetIndex(c.Target)
	c.Target = computeTarget(c, pad, conf, itemCount)
	index, hasTarget := targetIndex(c.Target)
	c.WasTargetChanged = hadTarget != hasTarget || prevIndex != index
}

func targetIndex(t *components.CursorTarget) (int, bool) {
	if t == nil {
		return 0, false
	}
	return t.SelectedIndex, true
}

func computeTarget(c *components.CursorData, pad *components.GamePadData, conf *cfg.Configuration, itemCount int) *components.CursorTarget {
	if c.ActiveMenu == components.MenuNone {
		return nil
	}
	angle, ok := radialmath.StickToAngle(activeStick(c, pad, conf), conf.ThumbStickDeadZone)
	if !ok {
		return nil
	}
	return &components.CursorTarget{
		Angle:         angle,
		SelectedIndex: radialmath.AngleToIndex(angle, itemCount),
	}
}

func activeStick(c *components.CursorData, pad *components.GamePadData, conf *cfg.Configuration) radialmath.Vec2 {
	if usesRightStick(c, conf) {
		return pad.RightStick
	}
	return pad.LeftStick
}

func usesRightStick(c *components.CursorData, conf *cfg.Configuration) bool {
	switch conf.ThumbStickPreference {
	case cfg.ThumbStickAlwaysRight:
		return true
	case cfg.ThumbStickSameAsTrigger:
		// The menu opened by the right trigger uses the right stick.
		rightTriggerMenu := components.MenuSecondary
		if conf.SwapTriggers {
			rightTriggerMenu = components.MenuPrimary
		}
		return c.ActiveMenu == rightTriggerMenu
	}
	return false
}

// IsThumbStickForActiveMenu reports whether button is the click of the stick
// currently driving the cursor.
func IsThumbStickForActiveMenu(c *components.CursorData, conf *cfg.Configuration, button ebiten.StandardGamepadButton) bool {
	if c.ActiveMenu == components.MenuNone {
		return false
	}
	if usesRightStick(c, conf) {
		return button == cfg.RightStickButton
	}
	return button == cfg.LeftStickButton
}
