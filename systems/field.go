package systems

import (
	"github.com/automoto/herofield/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fieldState returns the singleton field entry components. ok is false when
// no field is mounted in this world.
func fieldState(ecs *ecs.ECS) (field *components.FieldData, pointer *components.PointerData, surface *components.SurfaceData, ok bool) {
	entry, ok := components.Field.First(ecs.World)
	if !ok {
		return nil, nil, nil, false
	}
	return components.Field.Get(entry), components.Pointer.Get(entry), components.Surface.Get(entry), true
}

// particleEntries returns the particle entries in storage order. The order
// is stable for the whole frame since nothing spawns mid-frame.
func particleEntries(ecs *ecs.ECS, buf []*donburi.Entry) []*donburi.Entry {
	buf = buf[:0]
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		buf = append(buf, e)
	})
	return buf
}
