package field

import (
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/frame"
	"github.com/yohamta/donburi"
)

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// PendingFrame returns the outstanding frame request, zero when none.
func (e *Engine) PendingFrame() frame.ID {
	return e.pending
}

// Config returns the active configuration.
func (e *Engine) Config() cfg.FieldConfig {
	if e.field == nil {
		return cfg.FieldConfig{}
	}
	return components.Field.Get(e.field).Config
}

// Pointer returns the last recorded pointer position.
func (e *Engine) Pointer() components.PointerData {
	if e.field == nil {
		return components.PointerData{}
	}
	return *components.Pointer.Get(e.field)
}

// Surface returns the current surface description.
func (e *Engine) Surface() components.SurfaceData {
	if e.field == nil {
		return components.SurfaceData{}
	}
	return *components.Surface.Get(e.field)
}

// ConnectionsDrawn returns the number of lines stroked in the last frame.
func (e *Engine) ConnectionsDrawn() int {
	if e.field == nil {
		return 0
	}
	return components.Field.Get(e.field).ConnectionsDrawn
}

// Frames returns the number of frames drawn since the last start or resize.
func (e *Engine) Frames() int {
	if e.field == nil {
		return 0
	}
	return components.Field.Get(e.field).Frames
}

// Particles returns a copy of the particle set in draw order.
func (e *Engine) Particles() []components.ParticleData {
	if e.ecs == nil {
		return nil
	}
	var out []components.ParticleData
	components.Particle.Each(e.ecs.World, func(entry *donburi.Entry) {
		out = append(out, *components.Particle.Get(entry))
	})
	return out
}

// Indexed reports whether pair candidates come from the cell index.
func (e *Engine) Indexed() bool {
	if e.ecs == nil {
		return false
	}
	_, ok := components.Space.First(e.ecs.World)
	return ok
}
