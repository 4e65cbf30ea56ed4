package factory

import (
	"math"

	"github.com/automoto/herofield/archetypes"
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a cell index that covers the wrap margin around a
// width x height field. Each particle gets a square object slightly wider
// than the connection distance so any pair closer than that shares a cell.
func CreateSpace(ecs *ecs.ECS, width, height, distance float64) *donburi.Entry {
	offset := cfg.Field.WrapMargin + distance
	cell := int(math.Ceil(distance))
	if cell < 1 {
		cell = 1
	}
	// NewSpace truncates to whole cells, keep a spare one on each axis
	w := (int(math.Ceil((width+2*offset)/float64(cell))) + 1) * cell
	h := (int(math.Ceil((height+2*offset)/float64(cell))) + 1) * cell

	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Space:  resolv.NewSpace(w, h, cell, cell),
		Offset: offset,
	})

	var particles []*donburi.Entry
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		particles = append(particles, e)
	})
	// resolv counts an object as covering [X, X+W-1], one pixel extra keeps
	// pairs just under distance apart in a shared cell
	size := distance + 1
	for _, e := range particles {
		p := components.Particle.Get(e)
		obj := resolv.NewObject(p.X+offset-size/2, p.Y+offset-size/2, size, size, tags.ResolvParticle)
		components.Space.Get(space).Add(obj)
		donburi.Add(e, components.Object, &components.ObjectData{Object: obj})
	}
	return space
}

// RemoveSpace drops the cell index if one exists.
func RemoveSpace(ecs *ecs.ECS) {
	space, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	ecs.World.Remove(space.Entity())
}
