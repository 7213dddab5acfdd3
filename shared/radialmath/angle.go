package radialmath

import "math"

// TwoPi is a full turn in radians.
const TwoPi = math.Pi * 2

// Vec2 is an analog stick position in stick space (x right, y up).
type Vec2 struct {
	X, Y float64
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// StickFromAxes converts raw gamepad axes (y pointing down, as reported by
// ebiten) into stick space.
func StickFromAxes(horizontal, vertical float64) Vec2 {
	return Vec2{X: horizontal, Y: -vertical}
}

// StickToAngle returns the clockwise angle of the stick from "up" in [0, 2π).
// Returns false when the stick is inside the dead zone.
func StickToAngle(v Vec2, deadZone float64) (float64, bool) {
	if v.Length() <= deadZone {
		return 0, false
	}
	// atan2(x, y) instead of (y, x) puts zero at the top of the menu.
	return NormalizeAngle(math.Atan2(v.X, v.Y)), true
}

// NormalizeAngle wraps any angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle+TwoPi, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// AngleToIndex maps an angle onto one of itemCount equal slices, where slice 0
// is centered on angle 0. Returns -1 when there are no items.
func AngleToIndex(angle float64, itemCount int) int {
	if itemCount <= 0 {
		return -1
	}
	itemAngle := TwoPi / float64(itemCount)
	// Round, not floor: each hit zone is centered on the item's position.
	index := int(math.Round(angle/itemAngle)) % itemCount
	if index < 0 {
		index += itemCount
	}
	return index
}

// ItemAngle returns the angle at which item index is drawn.
func ItemAngle(index, itemCount int) float64 {
	if itemCount <= 0 {
		return 0
	}
	return TwoPi * float64(index) / float64(itemCount)
}
