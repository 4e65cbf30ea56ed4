package systems

import (
	"image/color"

	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawTrail washes the surface with a translucent background so previous
// frames fade out instead of being cleared.
func DrawTrail(ecs *ecs.ECS) {
	field, _, surface, ok := fieldState(ecs)
	if !ok {
		return
	}
	bg := field.Config.Colors.Background
	surface.Canvas.FillRect(0, 0, surface.Width, surface.Height,
		color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: cfg.Field.TrailAlpha})
}

// DrawParticles fills each particle with a radial gradient. Connected
// particles glow larger.
func DrawParticles(ecs *ecs.ECS) {
	field, _, surface, ok := fieldState(ecs)
	if !ok {
		return
	}
	colors := field.Config.Colors
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		surface.Canvas.FillRadialGradient(p.X, p.Y, ParticleRadius(p),
			colors.Primary.WithAlpha(p.Opacity), colors.Secondary.WithAlpha(0))
	})
	field.Frames++
}

// ParticleRadius is the drawn radius including the connection glow.
func ParticleRadius(p *components.ParticleData) float64 {
	return p.Size * (1 + p.Connection*cfg.Field.GlowScale)
}
