package components

import (
	"github.com/automoto/radialmenu/menu"
	"github.com/yohamta/donburi"
)

// RadialMenuData holds a player's two menus and the items on screen.
type RadialMenuData struct {
	Inventory *menu.InventoryMenu
	Custom    *menu.CustomMenu
	// Pages is the player's plugin page session; closed when the player leaves.
	Pages       *menu.PlayerPages
	ActiveItems []menu.Item
	// ConfigVersion is the Settings version the menus were last built for.
	ConfigVersion int
}

// MenuFor returns the menu opened by kind, or nil.
func (r *RadialMenuData) MenuFor(kind MenuKind) menu.Menu {
	switch kind {
	case MenuPrimary:
		if r.Inventory != nil {
			return r.Inventory
		}
	case MenuSecondary:
		if r.Custom != nil {
			return r.Custom
		}
	}
	return nil
}

var RadialMenu = donburi.NewComponentType[RadialMenuData]()
