package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/demo"
	"github.com/automoto/radialmenu/fonts"
	"github.com/automoto/radialmenu/menu"
	"github.com/automoto/radialmenu/observability"
	"github.com/automoto/radialmenu/systems"
	"github.com/automoto/radialmenu/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	hudMargin     = 16
	hudLineHeight = 22
)

var helpLines = []string{
	"Q / E or triggers: open menus   WASD / stick: aim   Space / A: use   F / X: select",
	"Z C / bumpers: page   F1: activation   F2: swap triggers   F3: stick   F5: save   Tab: suspend",
}

var (
	activationNames = map[cfg.ActivationMethod]string{
		cfg.ActivateActionButton:    "action button",
		cfg.ActivateThumbStickPress: "thumbstick press",
		cfg.ActivateTriggerRelease:  "trigger release",
	}
	thumbStickNames = map[cfg.ThumbStickPreference]string{
		cfg.ThumbStickAlwaysLeft:    "left",
		cfg.ThumbStickAlwaysRight:   "right",
		cfg.ThumbStickSameAsTrigger: "same as trigger",
	}
)

// RadialScene hosts one local player with the sample inventory, shortcuts and
// the friendships plugin page.
type RadialScene struct {
	ecs      *ecs.ECS
	registry *menu.PageRegistry
	player   *donburi.Entry
	saved    *cfg.Configuration
	status   string
	once     sync.Once
}

// NewRadialScene creates the scene. saved may be nil to start from defaults.
func NewRadialScene(saved *cfg.Configuration) *RadialScene {
	return &RadialScene{saved: saved}
}

func (rs *RadialScene) Update() {
	rs.once.Do(rs.configure)
	rs.handleHostKeys()
	rs.ecs.Update()
}

func (rs *RadialScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
	rs.drawHUD(screen)
}

func (rs *RadialScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	log := observability.L()
	ecs := ecs.NewECS(donburi.NewWorld())

	conf := cfg.DefaultConfiguration()
	conf.Shortcuts = demo.SampleShortcuts()
	if rs.saved != nil {
		conf = *rs.saved
	}
	demo.AttachShortcutIcons(conf.Shortcuts)
	systems.SetConfiguration(ecs, conf)

	// Input first so the menu sees this tick's buttons; the host reads
	// consumed buttons after the menu.
	ecs.AddSystem(systems.UpdateGamePads)
	ecs.AddSystem(systems.UpdateRadialMenu)
	ecs.AddSystem(rs.updateHostActions)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawRadialMenu)

	rs.ecs = ecs
	rs.registry = menu.NewPageRegistry()
	demo.RegisterFriendships(menu.NewAPI(rs.registry, log), log)

	rs.player = factory.CreateRadialPlayer(rs.ecs, rs.registry, factory.RadialPlayerOptions{
		ID:        1,
		Inventory: demo.SampleInventory(log),
		Activate:  demo.NewShortcutActivator(log),
	})
	rs.status = "Hold Q or the left trigger to open the inventory."
}

// updateHostActions plays the part of the game: it only acts on buttons the
// menu left alone.
func (rs *RadialScene) updateHostActions(e *ecs.ECS) {
	if !rs.player.Valid() || systems.IsMenuOpen(rs.player) {
		return
	}
	pad := components.GamePad.Get(rs.player)
	buttons := systems.GetOrCreateSettings(e).Config.Buttons
	if pad.JustPressed(buttons.ActionButton) && !systems.IsButtonConsumed(pad, buttons.ActionButton) {
		rs.status = "The player swings their tool."
	}
}

func (rs *RadialScene) handleHostKeys() {
	if rs.player == nil {
		return
	}
	settings := systems.GetOrCreateSettings(rs.ecs)
	conf := settings.Config
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		conf.PrimaryActivation = (conf.PrimaryActivation + 1) % 3
		rs.status = "Activation: " + activationNames[conf.PrimaryActivation]
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		conf.SwapTriggers = !conf.SwapTriggers
		rs.status = fmt.Sprintf("Swap triggers: %t", conf.SwapTriggers)
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		conf.ThumbStickPreference = (conf.ThumbStickPreference + 1) % 3
		rs.status = "Thumbstick: " + thumbStickNames[conf.ThumbStickPreference]
	default:
		changed = false
	}
	if changed {
		systems.SetConfiguration(rs.ecs, conf)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := systems.SaveCurrentConfiguration(rs.ecs); err != nil {
			rs.status = "Could not save settings."
		} else {
			rs.status = "Settings saved."
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		player := components.Player.Get(rs.player)
		player.Suspended = !player.Suspended
		rs.status = fmt.Sprintf("Suspended: %t", player.Suspended)
		observability.L().Debug("host suspended player", zap.Bool("suspended", player.Suspended))
	}
}

func (rs *RadialScene) drawHUD(screen *ebiten.Image) {
	face := fonts.Description.Face()
	y := float64(hudMargin)
	for _, line := range helpLines {
		drawHUDLine(screen, line, face, y, cfg.Silver)
		y += hudLineHeight
	}
	drawHUDLine(screen, rs.status, face, y, cfg.White)

	if cfg.Debug.ShowInput && rs.player != nil {
		pad := components.GamePad.Get(rs.player)
		line := fmt.Sprintf("connected=%t LT=%.2f RT=%.2f L=(%.2f, %.2f) R=(%.2f, %.2f)",
			pad.Connected, pad.LeftTrigger, pad.RightTrigger,
			pad.LeftStick.X, pad.LeftStick.Y, pad.RightStick.X, pad.RightStick.Y)
		drawHUDLine(screen, line, face, float64(screen.Bounds().Dy()-hudMargin-hudLineHeight), cfg.Gold)
	}
}

func drawHUDLine(screen *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
