package factory

import (
	"math/rand/v2"

	"github.com/automoto/herofield/archetypes"
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewParticles generates a batch of particles scattered uniformly over
// [0,width)x[0,height). Each velocity component is uniform in
// [-span/2, span/2) where span is the width of the speed range.
func NewParticles(rng *rand.Rand, count int, width, height float64, size, speed cfg.Range) []components.ParticleData {
	if count < 0 {
		count = 0
	}
	opacity := cfg.Field.InitialOpacity
	span := speed.Span()
	out := make([]components.ParticleData, count)
	for i := range out {
		out[i] = components.ParticleData{
			X:       rng.Float64() * width,
			Y:       rng.Float64() * height,
			Size:    size.Min + rng.Float64()*size.Span(),
			SpeedX:  (rng.Float64() - 0.5) * span,
			SpeedY:  (rng.Float64() - 0.5) * span,
			Opacity: opacity.Min + rng.Float64()*opacity.Span(),
		}
	}
	return out
}

// SpawnParticles stores a batch as particle entities in spawn order.
func SpawnParticles(ecs *ecs.ECS, particles []components.ParticleData) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(particles))
	for i := range particles {
		e := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(e, particles[i])
		entries = append(entries, e)
	}
	return entries
}

// ClearParticles removes every particle entity and its index object.
func ClearParticles(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})

	space, hasSpace := components.Space.First(ecs.World)
	for _, e := range stale {
		if hasSpace && e.HasComponent(components.Object) {
			components.Space.Get(space).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}
