package factory

import (
	"github.com/automoto/radialmenu/archetypes"
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RadialPlayerOptions describes the player a menu session is created for.
type RadialPlayerOptions struct {
	ID      menu.PlayerID
	Gamepad *ebiten.GamepadID // nil = first available gamepad
	// Inventory backs the primary menu; nil leaves the primary menu empty.
	Inventory menu.Inventory
	// Activate runs shortcuts picked from the secondary menu.
	Activate menu.ShortcutActivator
}

// CreateRadialPlayer spawns a player with both radial menus. The secondary
// menu shows the configured shortcuts followed by every page registered in
// registry, built for this player.
func CreateRadialPlayer(ecs *ecs.ECS, registry *menu.PageRegistry, opts RadialPlayerOptions) *donburi.Entry {
	player := archetypes.RadialPlayer.Spawn(ecs)

	conf, version := currentConfiguration(ecs)

	components.Player.SetValue(player, components.PlayerData{
		ID:             opts.ID,
		BoundGamepadID: opts.Gamepad,
	})

	menus := components.RadialMenuData{ConfigVersion: version}
	if opts.Inventory != nil {
		menus.Inventory = menu.NewInventoryMenu(opts.Inventory, conf.MaxInventoryItems)
	}
	var extra menu.PageList
	if registry != nil {
		menus.Pages = registry.OpenPlayerPages(opts.ID)
		extra = menus.Pages
	}
	menus.Custom = menu.NewCustomMenu(conf.Shortcuts, opts.Activate, extra)
	components.RadialMenu.SetValue(player, menus)

	return player
}

// DestroyRadialPlayer ends the player's page session and removes the entity.
func DestroyRadialPlayer(ecs *ecs.ECS, registry *menu.PageRegistry, player *donburi.Entry) {
	if registry != nil {
		registry.ClosePlayerPages(components.Player.Get(player).ID)
	}
	ecs.World.Remove(player.Entity())
}

func currentConfiguration(ecs *ecs.ECS) (cfg.Configuration, int) {
	if entry, ok := components.Settings.First(ecs.World); ok {
		s := components.Settings.Get(entry)
		return s.Config, s.Version
	}
	return cfg.RadialMenu, 0
}
