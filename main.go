package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/fonts"
	"github.com/automoto/radialmenu/observability"
	"github.com/automoto/radialmenu/scenes"
	"github.com/automoto/radialmenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *config.Configuration) *Game {
	if err := fonts.LoadDefaultFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewRadialScene(saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Logging, "debug", config.Debug.Logging, "Development logging")
	flag.StringVar(&config.Debug.LogLevel, "log-level", config.Debug.LogLevel, "Log level (debug, info, warn, error)")
	flag.BoolVar(&config.Debug.ShowInput, "show-input", config.Debug.ShowInput, "Draw the sampled gamepad state")
	flag.Parse()

	logger, err := observability.Initialize(observability.LoggerConfig{
		Level:       config.Debug.LogLevel,
		Development: config.Debug.Logging,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer observability.Sync()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("settings will not be saved", zap.Error(err))
	}
	saved, err := systems.LoadConfiguration()
	if err != nil {
		logger.Warn("ignoring saved settings", zap.Error(err))
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		logger.Error("game exited with error", zap.Error(err))
	}
}
