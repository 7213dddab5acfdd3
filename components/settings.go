package components

import (
	cfg "github.com/automoto/radialmenu/config"
	"github.com/yohamta/donburi"
)

// SettingsData is the live configuration snapshot (singleton component). The
// host replaces Config wholesale; systems copy it at the start of each tick.
type SettingsData struct {
	Config cfg.Configuration
	// Version increments whenever Config is replaced.
	Version int
}

var Settings = donburi.NewComponentType[SettingsData]()
