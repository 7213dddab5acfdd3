package demo

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/radialmenu/menu"
	"go.uber.org/zap"
)

const (
	pluginOwner    = "demo"
	charactersPage = "characters"
	maxHearts      = 10
)

type character struct {
	name  string
	color color.RGBA
}

var villagers = []character{
	{"Abigail", color.RGBA{R: 150, G: 90, B: 200, A: 255}},
	{"Linus", color.RGBA{R: 120, G: 150, B: 80, A: 255}},
	{"Robin", color.RGBA{R: 230, G: 120, B: 60, A: 255}},
	{"Willy", color.RGBA{R: 70, G: 110, B: 170, A: 255}},
}

// Friendships is a plugin that adds a page of villagers to greet. Each greeting
// earns a heart and rebuilds the page so the counts stay current.
type Friendships struct {
	api *menu.API
	log *zap.Logger

	mu     sync.Mutex
	hearts map[menu.PlayerID]map[string]int
	icons  map[string]*Item
}

// RegisterFriendships registers the villager page with api.
func RegisterFriendships(api *menu.API, log *zap.Logger) *Friendships {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Friendships{
		api:    api,
		log:    log.Named("friendships"),
		hearts: make(map[menu.PlayerID]map[string]int),
		icons:  make(map[string]*Item),
	}
	for _, v := range villagers {
		f.icons[v.name] = &Item{Color: v.color, Shape: ShapeCircle}
	}
	api.RegisterPage(pluginOwner, charactersPage, f.page)
	return f
}

// Hearts returns how many hearts who has earned with name.
func (f *Friendships) Hearts(who menu.PlayerID, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hearts[who][name]
}

func (f *Friendships) page(who menu.PlayerID) menu.Page {
	items := make([]menu.Item, 0, len(villagers))
	for _, v := range villagers {
		items = append(items, &villagerItem{plugin: f, name: v.name, hearts: f.Hearts(who, v.name)})
	}
	return menu.NewPage(items, nil)
}

func (f *Friendships) greet(who menu.PlayerID, name string) {
	f.mu.Lock()
	perPlayer, ok := f.hearts[who]
	if !ok {
		perPlayer = make(map[string]int)
		f.hearts[who] = perPlayer
	}
	perPlayer[name] = min(perPlayer[name]+1, maxHearts)
	hearts := perPlayer[name]
	f.mu.Unlock()

	f.log.Info("greeted villager", zap.Int("player", int(who)), zap.String("villager", name), zap.Int("hearts", hearts))
	f.api.InvalidatePage(pluginOwner, charactersPage)
}

type villagerItem struct {
	plugin *Friendships
	name   string
	hearts int
}

func (v *villagerItem) Title() string { return v.name }

func (v *villagerItem) Description() string {
	return fmt.Sprintf("%d/%d hearts. Say hello!", v.hearts, maxHearts)
}

func (v *villagerItem) StackSize() (int, bool) { return v.hearts, v.hearts > 0 }

func (v *villagerItem) Quality() (int, bool) { return 0, false }

func (v *villagerItem) Icon() menu.Icon { return v.plugin.icons[v.name].Icon() }

func (v *villagerItem) Activate(who menu.PlayerID, delay menu.DelayedActions, _ menu.ItemAction) menu.ActivationResult {
	if delay == menu.DelayAll {
		return menu.ResultDelayed
	}
	v.plugin.greet(who, v.name)
	return menu.ResultCustom
}
