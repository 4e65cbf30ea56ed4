package systems

import (
	"github.com/automoto/herofield/archetypes"
	"github.com/automoto/herofield/canvas"
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestField builds a world with a mounted field drawing into a recorder.
func newTestField(width, height float64, particles []components.ParticleData) (*ecs.ECS, *canvas.Recorder) {
	e := ecs.NewECS(donburi.NewWorld())
	rec := &canvas.Recorder{}
	entry := archetypes.Field.Spawn(e)
	fieldCfg := cfg.DeriveField(width)
	fieldCfg.ParticleCount = len(particles)
	components.Field.SetValue(entry, components.FieldData{Config: fieldCfg})
	components.Surface.SetValue(entry, components.SurfaceData{
		Canvas:      rec,
		Width:       width,
		Height:      height,
		PixelWidth:  int(width),
		PixelHeight: int(height),
		PixelRatio:  1,
	})
	factory.SpawnParticles(e, particles)
	return e, rec
}

func snapshotParticles(e *ecs.ECS) []components.ParticleData {
	var out []components.ParticleData
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, *components.Particle.Get(entry))
	})
	return out
}
