package systems

import (
	"math"

	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/menu"
	"github.com/automoto/radialmenu/observability"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// blinkHalfPeriodMs is how long the armed highlight takes to fade out (or back in).
const blinkHalfPeriodMs = 80

// ScheduleActivation captures the targeted item for activation. Returns false
// (and schedules nothing) when no item is targeted.
func ScheduleActivation(
	a *components.ActivationData,
	c *components.CursorData,
	items []menu.Item,
	who menu.PlayerID,
	action menu.ItemAction,
	conf *cfg.Configuration,
) bool {
	a.IsDelayed = false
	a.UndelayedAttempts = 0
	a.Pending = nil
	if c.Target == nil {
		return false
	}
	index := c.Target.SelectedIndex
	if index < 0 || index >= len(items) {
		return false
	}
	item := items[index]
	a.Pending = func(delay menu.DelayedActions) menu.ActivationResult {
		return item.Activate(who, delay, action)
	}
	a.DelayMs = math.Max(conf.ActivationDelayMs, 0)
	a.RemainingDelayMs = a.DelayMs
	a.Blink = gween.New(1, 0, blinkHalfPeriodMs, ease.Linear)
	SuppressUntilTriggerRelease(c)
	return true
}

// HasPendingActivation reports whether an activation is waiting to resolve.
func HasPendingActivation(a *components.ActivationData) bool {
	return a.Pending != nil
}

// UpdateActivation advances a pending activation by elapsedMs and attempts it.
// While the delay runs the item is asked with the configured delay policy so it
// can decide whether the delay applies to it; afterwards it is asked with
// DelayNone. Terminal results clear the schedule and reset the cursor.
func UpdateActivation(
	a *components.ActivationData,
	c *components.CursorData,
	elapsedMs float64,
	conf *cfg.Configuration,
	playCue func(cfg.SoundID),
) menu.ActivationResult {
	if a.Pending == nil {
		return menu.ResultIgnored
	}
	if a.RemainingDelayMs > 0 {
		a.RemainingDelayMs = math.Max(a.RemainingDelayMs-elapsedMs, 0)
	}

	waiting := a.RemainingDelayMs > 0
	delay := menu.DelayNone
	if waiting {
		delay = conf.DelayedActions
	}
	result := a.Pending(delay)

	if result == menu.ResultDelayed && !a.IsDelayed {
		a.IsDelayed = true
		if playCue != nil {
			playCue(cfg.SoundActivationArmed)
		}
	}

	if !result.IsTerminal() && !waiting {
		a.UndelayedAttempts++
		if a.UndelayedAttempts >= max(conf.MaxUndelayedAttempts, 1) {
			observability.L().Warn("abandoning activation that never resolved",
				zap.Stringer("result", result),
				zap.Int("attempts", a.UndelayedAttempts))
			finishActivation(a, c)
			return result
		}
	}

	if result.IsTerminal() {
		finishActivation(a, c)
	}
	return result
}

func finishActivation(a *components.ActivationData, c *components.CursorData) {
	a.Pending = nil
	a.IsDelayed = false
	a.RemainingDelayMs = 0
	a.UndelayedAttempts = 0
	a.Blink = nil
	ResetCursor(c)
}

// SelectionBlend is how strongly the highlight color shows: 1 normally, and a
// triangle wave synced to the elapsed delay while an activation is armed.
func SelectionBlend(a *components.ActivationData) float32 {
	if a.Pending == nil || !a.IsDelayed || a.Blink == nil {
		return 1
	}
	elapsed := a.DelayMs - a.RemainingDelayMs
	phase := math.Mod(elapsed, 2*blinkHalfPeriodMs)
	if phase > blinkHalfPeriodMs {
		phase = 2*blinkHalfPeriodMs - phase
	}
	blend, _ := a.Blink.Set(float32(phase))
	return blend
}
