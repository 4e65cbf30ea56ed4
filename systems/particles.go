package systems

import (
	"math"

	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles advances every particle by one frame using the current
// pointer position and the logical surface size.
func UpdateParticles(ecs *ecs.ECS) {
	_, pointer, surface, ok := fieldState(ecs)
	if !ok {
		return
	}
	pos := *pointer
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		StepParticle(components.Particle.Get(e), pos, surface.Width, surface.Height)
	})
}

// StepParticle moves p by its velocity, pulls it toward the pointer, wraps
// it around the edges, applies drag and clears its connection strength.
func StepParticle(p *components.ParticleData, pointer components.PointerData, width, height float64) {
	p.X += p.SpeedX
	p.Y += p.SpeedY

	dx := pointer.X - p.X
	dy := pointer.Y - p.Y
	if force := AttractionForce(math.Hypot(dx, dy)); force > 0 {
		p.SpeedX += dx * force * cfg.Field.AttractionScale
		p.SpeedY += dy * force * cfg.Field.AttractionScale
	}

	p.X = wrap(p.X, width)
	p.Y = wrap(p.Y, height)

	p.SpeedX *= cfg.Field.Damping
	p.SpeedY *= cfg.Field.Damping

	p.Connection = 0
}

// AttractionForce is the pointer pull at distance d: zero at or beyond the
// pointer radius, growing linearly to full strength at the pointer.
func AttractionForce(d float64) float64 {
	r := cfg.Field.PointerRadius
	if d >= r || math.IsNaN(d) {
		return 0
	}
	return (1 - d/r) * cfg.Field.AttractionStrength
}

func wrap(v, dimension float64) float64 {
	m := cfg.Field.WrapMargin
	if v < -m {
		return dimension + m
	}
	if v > dimension+m {
		return -m
	}
	return v
}
