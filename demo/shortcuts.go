package demo

import (
	"image/color"
	"strings"

	"github.com/automoto/radialmenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var shortcutColors = map[string]color.RGBA{
	"Map":     {R: 220, G: 200, B: 140, A: 255},
	"Journal": {R: 140, G: 90, B: 60, A: 255},
	"Mail":    {R: 240, G: 240, B: 240, A: 255},
	"Warp":    {R: 120, G: 80, B: 220, A: 255},
}

var shortcutIcons = map[string]*ebiten.Image{}

// SampleShortcuts returns the default shortcut set for the secondary menu.
func SampleShortcuts() []menu.Shortcut {
	return []menu.Shortcut{
		{Name: "Map", Description: "Open the world map.", Keybind: []string{"M"}},
		{Name: "Journal", Description: "Review active quests.", Keybind: []string{"F"}},
		{Name: "Mail", Description: "Read your letters.", Keybind: []string{"Shift", "M"}},
		{Name: "Warp", Description: "Return home. Waits for the activation delay.", Keybind: []string{"H"}, EnableActivationDelay: true},
	}
}

// AttachShortcutIcons gives known shortcuts their icon. Icons are not saved
// with the configuration, so this runs after loading it.
func AttachShortcutIcons(shortcuts []menu.Shortcut) {
	for i := range shortcuts {
		c, ok := shortcutColors[shortcuts[i].Name]
		if !ok {
			continue
		}
		img, ok := shortcutIcons[shortcuts[i].Name]
		if !ok {
			img = ebiten.NewImageFromImage(IconPattern(ShapeDiamond, c, iconSize))
			shortcutIcons[shortcuts[i].Name] = img
		}
		shortcuts[i].Icon = menu.Icon{Texture: img}
	}
}

// NewShortcutActivator returns an activator that logs the key binding a real
// game would press.
func NewShortcutActivator(log *zap.Logger) menu.ShortcutActivator {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("shortcuts")
	return func(who menu.PlayerID, s menu.Shortcut) {
		log.Info("shortcut pressed",
			zap.Int("player", int(who)),
			zap.String("shortcut", s.Name),
			zap.String("keybind", strings.Join(s.Keybind, "+")))
	}
}
