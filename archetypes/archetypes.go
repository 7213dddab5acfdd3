package archetypes

import (
	"github.com/automoto/radialmenu/components"
	cfg "github.com/automoto/radialmenu/config"
	"github.com/automoto/radialmenu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	RadialPlayer = newArchetype(
		tags.RadialPlayer,
		components.Player,
		components.GamePad,
		components.Cursor,
		components.Activation,
		components.RadialMenu,
		components.Geometry,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
