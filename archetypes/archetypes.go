package archetypes

import (
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Field = newArchetype(
		tags.Field,
		components.Field,
		components.Pointer,
		components.Surface,
	)
	Space = newArchetype(
		components.Space,
	)
	Landing = newArchetype(
		tags.Landing,
		components.Waitlist,
		components.Address,
		components.Hero,
		components.Settings,
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
