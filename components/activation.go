package components

import (
	"github.com/automoto/radialmenu/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ActivationData is a scheduled, possibly delayed, item activation.
type ActivationData struct {
	// Pending is nil when nothing is scheduled.
	Pending func(delay menu.DelayedActions) menu.ActivationResult
	// IsDelayed is set once the item first answered Delayed.
	IsDelayed         bool
	RemainingDelayMs  float64
	DelayMs           float64 // delay the schedule started with
	UndelayedAttempts int     // non-terminal attempts after the delay ended
	Blink             *gween.Tween
}

var Activation = donburi.NewComponentType[ActivationData]()
