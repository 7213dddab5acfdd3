package systems

import (
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/menu"
	"github.com/automoto/radialmenu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRadialMenu runs the menu pre-update for every player: menu open/close,
// paging, targeting, activation buttons and pending activations. Must run
// AFTER UpdateGamePads and BEFORE anything in the host that reads buttons.
func UpdateRadialMenu(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	// Snapshot; the host may replace settings.Config between ticks.
	conf := settings.Config
	elapsedMs := TickDurationMs(ebiten.TPS())
	cue := func(id cfg.SoundID) { PlaySFX(e, id) }

	tags.RadialPlayer.Each(e.World, func(entry *donburi.Entry) {
		if r := components.RadialMenu.Get(entry); r.ConfigVersion != settings.Version {
			ApplyConfiguration(r, &conf)
			r.ConfigVersion = settings.Version
		}
		UpdatePlayerMenu(entry, &conf, elapsedMs, cue)
	})
}

// TickDurationMs is the length of one tick at tps ticks per second. When the
// tick rate is not fixed (SyncWithFPS reports -1) it assumes the default
// 60 TPS, so pending delays still run out.
func TickDurationMs(tps int) float64 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1000 / float64(tps)
}

// UpdatePlayerMenu advances one player's menu by one tick.
func UpdatePlayerMenu(entry *donburi.Entry, conf *cfg.Configuration, elapsedMs float64, cue func(cfg.SoundID)) {
	player := components.Player.Get(entry)
	pad := components.GamePad.Get(entry)
	cursor := components.Cursor.Get(entry)
	activation := components.Activation.Get(entry)
	menus := components.RadialMenu.Get(entry)

	cursor.WasMenuChanged = false
	cursor.WasTargetChanged = false

	if player.Suspended && cursor.ActiveMenu == components.MenuNone {
		CheckSuppressionState(cursor, pad, conf)
		return
	}

	if !HasPendingActivation(activation) {
		updateOpenMenu(player, pad, cursor, activation, menus, conf, cue)
	}

	// Triggers belong to the menu; the host never sees them.
	pad.Consume(cfg.LeftTrigger)
	pad.Consume(cfg.RightTrigger)

	if HasPendingActivation(activation) {
		CheckSuppressionState(cursor, pad, conf)
		result := UpdateActivation(activation, cursor, elapsedMs, conf, cue)
		if !HasPendingActivation(activation) {
			finishPlayerActivation(menus, result)
		}
	}
}

func updateOpenMenu(
	player *components.PlayerData,
	pad *components.GamePadData,
	cursor *components.CursorData,
	activation *components.ActivationData,
	menus *components.RadialMenuData,
	conf *cfg.Configuration,
	cue func(cfg.SoundID),
) {
	UpdateActiveMenu(cursor, pad, conf)
	if cursor.WasMenuChanged {
		if cursor.ActiveMenu != components.MenuNone {
			if cursor.PreviousMenu == components.MenuNone {
				playCue(cue, cfg.SoundMenuOpen)
			}
			if menus.Inventory != nil {
				menus.Inventory.Invalidate()
			}
			if m := menus.MenuFor(cursor.ActiveMenu); m != nil {
				m.ResetSelectedPage()
			}
		} else if conf.PrimaryActivation == cfg.ActivateTriggerRelease && cursor.Target != nil {
			// Releasing the trigger is the activation; reopen the menu for
			// this tick so its target still applies.
			RevertActiveMenu(cursor)
			if ScheduleActivation(activation, cursor, menus.ActiveItems, player.ID, conf.PrimaryAction, conf) {
				return
			}
			// Nothing under the cursor: the release only closes the menu.
			cursor.ActiveMenu = components.MenuNone
		}
	}

	if cursor.ActiveMenu == components.MenuNone {
		menus.ActiveItems = nil
		UpdateCurrentTarget(cursor, pad, conf, 0)
		return
	}

	m := menus.MenuFor(cursor.ActiveMenu)
	if m != nil && turnPage(m, pad, &conf.Buttons) {
		playCue(cue, cfg.SoundPageTurn)
	}
	menus.ActiveItems = activeItems(m)

	UpdateCurrentTarget(cursor, pad, conf, len(menus.ActiveItems))
	if cursor.WasTargetChanged && cursor.Target != nil && !cursor.WasMenuChanged {
		playCue(cue, cfg.SoundMenuNavigate)
	}

	if cursor.Target == nil {
		return
	}
	if action, button, ok := requestedAction(cursor, pad, conf); ok {
		ScheduleActivation(activation, cursor, menus.ActiveItems, player.ID, action, conf)
		pad.Consume(button)
	}
}

// turnPage handles the page buttons. Both are consumed while a menu is open,
// whether or not the page changed.
func turnPage(m menu.Menu, pad *components.GamePadData, buttons *cfg.ButtonConfig) bool {
	turned := false
	switch {
	case pad.JustPressed(buttons.NextPageButton):
		turned = menu.NextPage(m)
	case pad.JustPressed(buttons.PreviousPageButton):
		turned = menu.PreviousPage(m)
	}
	if pad.Pressed(buttons.NextPageButton) {
		pad.Consume(buttons.NextPageButton)
	}
	if pad.Pressed(buttons.PreviousPageButton) {
		pad.Consume(buttons.PreviousPageButton)
	}
	return turned
}

// requestedAction returns the action asked for by a button pressed this tick.
// The secondary button wins over the primary activation.
func requestedAction(cursor *components.CursorData, pad *components.GamePadData, conf *cfg.Configuration) (menu.ItemAction, ebiten.StandardGamepadButton, bool) {
	if pad.JustPressed(conf.Buttons.SecondaryActionButton) {
		return conf.SecondaryAction, conf.Buttons.SecondaryActionButton, true
	}
	switch conf.PrimaryActivation {
	case cfg.ActivateActionButton:
		if pad.JustPressed(conf.Buttons.ActionButton) {
			return conf.PrimaryAction, conf.Buttons.ActionButton, true
		}
	case cfg.ActivateThumbStickPress:
		for _, b := range []ebiten.StandardGamepadButton{cfg.LeftStickButton, cfg.RightStickButton} {
			if pad.JustPressed(b) && IsThumbStickForActiveMenu(cursor, conf, b) {
				return conf.PrimaryAction, b, true
			}
		}
	}
	return 0, 0, false
}

func activeItems(m menu.Menu) []menu.Item {
	if m == nil {
		return nil
	}
	return menu.SelectedItems(m)
}

// finishPlayerActivation runs once a pending activation has been resolved or
// abandoned and the cursor has been reset.
func finishPlayerActivation(menus *components.RadialMenuData, result menu.ActivationResult) {
	menus.ActiveItems = nil
	if result == menu.ResultUsed && menus.Inventory != nil {
		menus.Inventory.Invalidate()
	}
}

// ApplyConfiguration updates a player's menus after the configuration was
// replaced.
func ApplyConfiguration(r *components.RadialMenuData, conf *cfg.Configuration) {
	if r.Inventory != nil {
		r.Inventory.SetPageSize(conf.MaxInventoryItems)
		r.Inventory.Invalidate()
	}
	if r.Custom != nil {
		r.Custom.RebuildShortcutPage(conf.Shortcuts)
	}
	if r.Pages != nil {
		r.Pages.Invalidate()
	}
}

// IsMenuOpen reports whether the player's radial menu is showing, so the host
// can freeze the player's other controls.
func IsMenuOpen(entry *donburi.Entry) bool {
	return components.Cursor.Get(entry).ActiveMenu != components.MenuNone
}

func playCue(cue func(cfg.SoundID), id cfg.SoundID) {
	if cue != nil {
		cue(id)
	}
}
