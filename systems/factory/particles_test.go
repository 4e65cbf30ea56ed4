package factory

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func TestNewParticlesRanges(t *testing.T) {
	const w, h = 1024.0, 768.0
	rng := rand.New(rand.NewPCG(1, 2))
	particles := NewParticles(rng, 500, w, h, cfg.Range{Min: 2, Max: 4}, cfg.Range{Min: 0.1, Max: 0.3})

	if len(particles) != 500 {
		t.Fatalf("len = %d, want 500", len(particles))
	}
	for i, p := range particles {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			t.Errorf("particle %d position (%v, %v) outside field", i, p.X, p.Y)
		}
		if p.Size < 2 || p.Size >= 4 {
			t.Errorf("particle %d size %v outside [2,4)", i, p.Size)
		}
		if p.SpeedX < -0.1 || p.SpeedX >= 0.1 || p.SpeedY < -0.1 || p.SpeedY >= 0.1 {
			t.Errorf("particle %d velocity (%v, %v) outside [-0.1,0.1)", i, p.SpeedX, p.SpeedY)
		}
		if p.Opacity < 0.1 || p.Opacity >= 0.5 {
			t.Errorf("particle %d opacity %v outside [0.1,0.5)", i, p.Opacity)
		}
		if p.Connection != 0 {
			t.Errorf("particle %d connection %v, want 0", i, p.Connection)
		}
	}
}

func TestNewParticlesNegativeCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	if got := NewParticles(rng, -3, 10, 10, cfg.Field.ParticleSize, cfg.Field.ParticleSpeed); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSpawnAndClearParticles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	rng := rand.New(rand.NewPCG(4, 4))
	batch := NewParticles(rng, 20, 300, 200, cfg.Field.ParticleSize, cfg.Field.ParticleSpeed)

	entries := SpawnParticles(e, batch)
	if len(entries) != 20 {
		t.Fatalf("spawned %d entries, want 20", len(entries))
	}
	if got := components.Particle.Get(entries[3]).X; got != batch[3].X {
		t.Errorf("entry 3 X = %v, want %v", got, batch[3].X)
	}
	CreateSpace(e, 300, 200, cfg.Field.ConnectionDistance)
	if !entries[0].HasComponent(components.Object) {
		t.Error("CreateSpace did not attach index objects")
	}

	ClearParticles(e)
	if n := donburi.NewQuery(filter.Contains(components.Particle)).Count(e.World); n != 0 {
		t.Errorf("%d particles left after ClearParticles", n)
	}
	space, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("space removed with particles")
	}
	if n := len(components.Space.Get(space).Objects()); n != 0 {
		t.Errorf("%d index objects left after ClearParticles", n)
	}

	RemoveSpace(e)
	if _, ok := components.Space.First(e.World); ok {
		t.Error("RemoveSpace left the space entity")
	}
}
