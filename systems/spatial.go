package systems

import (
	"github.com/automoto/herofield/components"
	"github.com/yohamta/donburi"
)

// SyncSpatialIndex moves each particle's index object to the particle's
// current position and tags it with the particle's position in entries.
func SyncSpatialIndex(space *components.SpaceData, entries []*donburi.Entry) {
	for i, e := range entries {
		if !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e).Object
		p := components.Particle.Get(e)
		obj.X = p.X + space.Offset - obj.W/2
		obj.Y = p.Y + space.Offset - obj.H/2
		obj.Data = i
		obj.Update()
	}
}
