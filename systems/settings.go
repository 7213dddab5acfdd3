package systems

import (
	"github.com/automoto/radialmenu/archetypes"
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// with cfg.RadialMenu if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			Config: cfg.RadialMenu,
		})
	}
	return components.Settings.Get(entry)
}

// SetConfiguration replaces the live configuration. Players pick it up on the
// next tick.
func SetConfiguration(e *ecs.ECS, conf cfg.Configuration) {
	settings := GetOrCreateSettings(e)
	settings.Config = conf
	settings.Version++
}
