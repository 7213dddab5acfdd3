package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/observability"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const configurationKey = "configuration"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for configuration storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "radialmenu",
	})
	if err != nil {
		observability.L().Warn("could not initialize persistence", zap.Error(err))
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadConfiguration reads the saved configuration. It returns nil, nil when
// persistence is unavailable or nothing has been saved yet.
func LoadConfiguration() (*cfg.Configuration, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(configurationKey)
	if err != nil {
		observability.L().Warn("could not load configuration", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeConfiguration(data)
}

// DecodeConfiguration parses saved configuration JSON over the defaults, so
// fields missing from older saves keep their default values.
func DecodeConfiguration(data []byte) (*cfg.Configuration, error) {
	conf := cfg.DefaultConfiguration()
	if err := json.Unmarshal(data, &conf); err != nil {
		observability.L().Warn("could not parse saved configuration", zap.Error(err))
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &conf, nil
}

// SaveConfiguration writes conf to disk
func SaveConfiguration(conf *cfg.Configuration) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(conf)
	if err != nil {
		observability.L().Warn("could not serialize configuration", zap.Error(err))
		return fmt.Errorf("serialize configuration: %w", err)
	}

	if err := gdataManager.SaveItem(configurationKey, data); err != nil {
		observability.L().Warn("could not save configuration", zap.Error(err))
		return fmt.Errorf("save configuration: %w", err)
	}
	return nil
}

// SaveCurrentConfiguration saves the live configuration of this ECS
func SaveCurrentConfiguration(e *ecs.ECS) error {
	return SaveConfiguration(&GetOrCreateSettings(e).Config)
}

// ApplySavedConfiguration makes a loaded configuration the live one
func ApplySavedConfiguration(e *ecs.ECS, saved *cfg.Configuration) {
	if saved == nil {
		return
	}
	SetConfiguration(e, *saved)
}
