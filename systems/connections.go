package systems

import (
	"math"
	"slices"

	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames
var (
	connectionEntries    []*donburi.Entry
	connectionParticles  []*components.ParticleData
	connectionCandidates []int
)

// ConnectionOpacity returns the line alpha for two particles d apart.
func ConnectionOpacity(d, maxDistance float64) float64 {
	s := connectionStrength(d, maxDistance)
	return s * cfg.Field.ConnectionMaxAlpha
}

func connectionStrength(d, maxDistance float64) float64 {
	if maxDistance <= 0 || d >= maxDistance {
		return 0
	}
	return 1 - d/maxDistance
}

// DrawConnections strokes a line between every pair of particles closer
// than the connection distance and raises both particles' connection
// strength. Pairs are visited in (i, j>i) order.
func DrawConnections(ecs *ecs.ECS) {
	field, _, surface, ok := fieldState(ecs)
	if !ok {
		return
	}

	connectionEntries = particleEntries(ecs, connectionEntries)
	connectionParticles = connectionParticles[:0]
	for _, e := range connectionEntries {
		connectionParticles = append(connectionParticles, components.Particle.Get(e))
	}

	maxDistance := field.Config.ConnectionDistance
	primary := field.Config.Colors.Primary
	link := func(a, b *components.ParticleData) bool {
		d := math.Hypot(b.X-a.X, b.Y-a.Y)
		if d >= maxDistance {
			return false
		}
		strength := connectionStrength(d, maxDistance)
		surface.Canvas.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.Field.ConnectionLineWidth,
			primary.WithAlpha(strength*cfg.Field.ConnectionMaxAlpha))
		a.Connection = max(a.Connection, strength)
		b.Connection = max(b.Connection, strength)
		return true
	}

	drawn := 0
	if space, ok := components.Space.First(ecs.World); ok {
		drawn = drawIndexedConnections(components.Space.Get(space), connectionEntries, connectionParticles, link)
	} else {
		for i := range connectionParticles {
			for j := i + 1; j < len(connectionParticles); j++ {
				if link(connectionParticles[i], connectionParticles[j]) {
					drawn++
				}
			}
		}
	}
	field.ConnectionsDrawn = drawn
}

// drawIndexedConnections only tests pairs that share a cell. Candidates are
// sorted so lines are stroked in the same order as the all-pairs scan.
func drawIndexedConnections(space *components.SpaceData, entries []*donburi.Entry, particles []*components.ParticleData, link func(a, b *components.ParticleData) bool) int {
	SyncSpatialIndex(space, entries)

	drawn := 0
	for i, e := range entries {
		obj := components.Object.Get(e).Object
		check := obj.Check(0, 0, tags.ResolvParticle)
		if check == nil {
			continue
		}
		connectionCandidates = connectionCandidates[:0]
		for _, other := range check.Objects {
			if j, ok := other.Data.(int); ok && j > i {
				connectionCandidates = append(connectionCandidates, j)
			}
		}
		slices.Sort(connectionCandidates)
		for _, j := range connectionCandidates {
			if link(particles[i], particles[j]) {
				drawn++
			}
		}
	}
	return drawn
}
