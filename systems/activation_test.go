package systems

import (
	"testing"

	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/menu"
	"github.com/automoto/radialmenu/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type activateCall struct {
	who    menu.PlayerID
	delay  menu.DelayedActions
	action menu.ItemAction
}

// scriptedItem answers Activate with respond and records every call.
type scriptedItem struct {
	title   string
	calls   []activateCall
	respond func(delay menu.DelayedActions) menu.ActivationResult
}

func (i *scriptedItem) Title() string          { return i.title }
func (i *scriptedItem) Description() string    { return "" }
func (i *scriptedItem) StackSize() (int, bool) { return 0, false }
func (i *scriptedItem) Quality() (int, bool)   { return 0, false }
func (i *scriptedItem) Icon() menu.Icon        { return menu.Icon{} }
func (i *scriptedItem) Activate(who menu.PlayerID, delay menu.DelayedActions, action menu.ItemAction) menu.ActivationResult {
	i.calls = append(i.calls, activateCall{who, delay, action})
	return i.respond(delay)
}

// delayedUntilFree is Delayed while any delay policy applies, then Used.
func delayedUntilFree(delay menu.DelayedActions) menu.ActivationResult {
	if delay != menu.DelayNone {
		return menu.ResultDelayed
	}
	return menu.ResultUsed
}

func openCursorAt(index int) *components.CursorData {
	return &components.CursorData{
		ActiveMenu: components.MenuPrimary,
		Target:     &components.CursorTarget{SelectedIndex: index},
	}
}

func TestScheduleActivationNeedsTarget(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	item := &scriptedItem{respond: delayedUntilFree}
	items := []menu.Item{item}
	a := &components.ActivationData{}

	assert.False(t, ScheduleActivation(a, &components.CursorData{ActiveMenu: components.MenuPrimary}, items, 1, menu.ActionUse, &conf))
	assert.False(t, ScheduleActivation(a, openCursorAt(3), items, 1, menu.ActionUse, &conf))
	assert.False(t, ScheduleActivation(a, openCursorAt(-1), items, 1, menu.ActionUse, &conf))
	assert.False(t, HasPendingActivation(a))
	assert.Empty(t, item.calls)
}

func TestScheduleActivationSuppressesMenu(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	a := &components.ActivationData{}
	c := openCursorAt(0)

	require.True(t, ScheduleActivation(a, c, []menu.Item{&scriptedItem{respond: delayedUntilFree}}, 1, menu.ActionUse, &conf))

	assert.True(t, HasPendingActivation(a))
	assert.Equal(t, conf.ActivationDelayMs, a.RemainingDelayMs)
	assert.Equal(t, components.MenuPrimary, c.SuppressedMenu)
}

func TestDelayedActivationRoundTrip(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	conf.ActivationDelayMs = 250
	conf.DelayedActions = menu.DelayToolSwitch
	item := &scriptedItem{respond: delayedUntilFree}
	a := &components.ActivationData{}
	c := openCursorAt(0)
	var cues []cfg.SoundID
	cue := func(id cfg.SoundID) { cues = append(cues, id) }

	require.True(t, ScheduleActivation(a, c, []menu.Item{item}, 7, menu.ActionSelect, &conf))

	var results []menu.ActivationResult
	for HasPendingActivation(a) && len(results) < 10 {
		results = append(results, UpdateActivation(a, c, 100, &conf, cue))
	}

	// 250ms at 100ms per tick: waiting at 150 and 50, resolved at 0.
	assert.Equal(t, []menu.ActivationResult{menu.ResultDelayed, menu.ResultDelayed, menu.ResultUsed}, results)
	require.Len(t, item.calls, 3)
	assert.Equal(t, activateCall{7, menu.DelayToolSwitch, menu.ActionSelect}, item.calls[0])
	assert.Equal(t, activateCall{7, menu.DelayToolSwitch, menu.ActionSelect}, item.calls[1])
	assert.Equal(t, activateCall{7, menu.DelayNone, menu.ActionSelect}, item.calls[2])

	assert.Equal(t, []cfg.SoundID{cfg.SoundActivationArmed}, cues, "armed cue plays once")
	assert.False(t, HasPendingActivation(a))
	assert.Equal(t, components.MenuNone, c.ActiveMenu)
	assert.Nil(t, c.Target)
	assert.Zero(t, a.RemainingDelayMs)
}

func TestImmediateActivationIgnoresDelay(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	conf.ActivationDelayMs = 250
	// A consumable: the tool-switch delay does not apply to it.
	item := &scriptedItem{respond: func(menu.DelayedActions) menu.ActivationResult { return menu.ResultUsed }}
	a := &components.ActivationData{}
	c := openCursorAt(0)

	require.True(t, ScheduleActivation(a, c, []menu.Item{item}, 1, menu.ActionUse, &conf))
	result := UpdateActivation(a, c, 16, &conf, nil)

	assert.Equal(t, menu.ResultUsed, result)
	require.Len(t, item.calls, 1)
	assert.Equal(t, conf.DelayedActions, item.calls[0].delay)
	assert.False(t, HasPendingActivation(a))
}

func TestZeroDelayActivatesWithoutPolicy(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	conf.ActivationDelayMs = 0
	item := &scriptedItem{respond: delayedUntilFree}
	a := &components.ActivationData{}
	c := openCursorAt(0)

	ScheduleActivation(a, c, []menu.Item{item}, 1, menu.ActionUse, &conf)
	assert.Equal(t, menu.ResultUsed, UpdateActivation(a, c, 16, &conf, nil))
	assert.Equal(t, menu.DelayNone, item.calls[0].delay)
}

func TestIgnoredActivationIsRetried(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	conf.ActivationDelayMs = 0
	attempts := 0
	item := &scriptedItem{respond: func(menu.DelayedActions) menu.ActivationResult {
		attempts++
		if attempts < 3 {
			return menu.ResultIgnored
		}
		return menu.ResultSelected
	}}
	a := &components.ActivationData{}
	c := openCursorAt(0)

	ScheduleActivation(a, c, []menu.Item{item}, 1, menu.ActionUse, &conf)
	assert.Equal(t, menu.ResultIgnored, UpdateActivation(a, c, 16, &conf, nil))
	assert.True(t, HasPendingActivation(a))
	assert.Equal(t, menu.ResultIgnored, UpdateActivation(a, c, 16, &conf, nil))
	assert.Equal(t, menu.ResultSelected, UpdateActivation(a, c, 16, &conf, nil))
	assert.False(t, HasPendingActivation(a))
}

func TestActivationThatNeverResolvesIsAbandoned(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(nil) })

	conf := cfg.DefaultConfiguration()
	conf.ActivationDelayMs = 0
	conf.MaxUndelayedAttempts = 5
	item := &scriptedItem{respond: func(menu.DelayedActions) menu.ActivationResult { return menu.ResultDelayed }}
	a := &components.ActivationData{}
	c := openCursorAt(0)

	ScheduleActivation(a, c, []menu.Item{item}, 1, menu.ActionUse, &conf)
	for i := 0; i < 4; i++ {
		UpdateActivation(a, c, 16, &conf, nil)
		require.True(t, HasPendingActivation(a), "attempt %d", i+1)
	}
	UpdateActivation(a, c, 16, &conf, nil)

	assert.False(t, HasPendingActivation(a))
	assert.Len(t, item.calls, 5)
	assert.Equal(t, components.MenuNone, c.ActiveMenu)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "abandoning activation that never resolved", entry.Message)
	assert.Equal(t, int64(5), entry.ContextMap()["attempts"])
}

func TestUpdateActivationWithoutSchedule(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	c := openCursorAt(0)

	assert.Equal(t, menu.ResultIgnored, UpdateActivation(&components.ActivationData{}, c, 16, &conf, nil))
	assert.Equal(t, components.MenuPrimary, c.ActiveMenu)
}

func TestSelectionBlend(t *testing.T) {
	conf := cfg.DefaultConfiguration()
	conf.ActivationDelayMs = 400
	a := &components.ActivationData{}
	c := openCursorAt(0)

	assert.Equal(t, float32(1), SelectionBlend(a), "nothing pending")

	ScheduleActivation(a, c, []menu.Item{&scriptedItem{respond: delayedUntilFree}}, 1, menu.ActionUse, &conf)
	assert.Equal(t, float32(1), SelectionBlend(a), "pending but not armed")

	UpdateActivation(a, c, 40, &conf, nil)
	require.True(t, a.IsDelayed)
	assert.InDelta(t, 0.5, SelectionBlend(a), 1e-6)

	UpdateActivation(a, c, 40, &conf, nil) // 80ms elapsed: fully faded
	assert.InDelta(t, 0, SelectionBlend(a), 1e-6)

	UpdateActivation(a, c, 40, &conf, nil) // 120ms: fading back in
	assert.InDelta(t, 0.5, SelectionBlend(a), 1e-6)

	UpdateActivation(a, c, 40, &conf, nil) // 160ms: full period
	assert.InDelta(t, 1, SelectionBlend(a), 1e-6)
}
