// Package field renders the animated particle background.
package field

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/automoto/herofield/archetypes"
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/frame"
	"github.com/automoto/herofield/systems"
	"github.com/automoto/herofield/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// State is the lifecycle state of an Engine.
type State int

const (
	StateUnmounted State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "unmounted"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrAlreadyRunning = errors.New("field: already running")
	ErrNoSurface      = errors.New("field: no drawing surface")
	ErrNoScheduler    = errors.New("field: host has no frame scheduler")
)

// Engine owns one particle field: its configuration, pointer, particles and
// surface. All methods must be called from the goroutine that ticks the
// host's scheduler.
type Engine struct {
	rng   *rand.Rand
	state State
	ctx   context.Context

	host    Host
	ecs     *ecs.ECS
	field   *donburi.Entry
	pending frame.ID

	onPointer func(w donburi.World, ev PointerMoved)
	onResize  func(w donburi.World, ev ViewportResized)
}

// NewEngine returns an unmounted engine. A nil rng seeds one at random.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e := &Engine{rng: rng}
	e.onPointer = func(_ donburi.World, ev PointerMoved) {
		e.OnPointerMove(ev.X, ev.Y)
	}
	e.onResize = func(_ donburi.World, ev ViewportResized) {
		e.OnResize(ev.Viewport)
	}
	return e
}

// Start mounts the engine into host. If the host cannot provide a drawing
// surface the engine logs a warning and stays unmounted. Cancelling ctx
// unmounts the engine at its next frame.
func (e *Engine) Start(ctx context.Context, host Host) error {
	if e.state == StateRunning {
		return ErrAlreadyRunning
	}
	if host.Scheduler == nil {
		return ErrNoScheduler
	}
	if ctx == nil {
		ctx = context.Background()
	}

	vp := currentViewport(host)
	surface, err := acquireSurface(host, vp)
	if err != nil {
		log.Printf("Warning: Particle field not started: %v", err)
		return nil
	}

	e.ctx = ctx
	e.host = host
	e.ecs = newFieldECS()
	e.field = archetypes.Field.Spawn(e.ecs)
	components.Surface.SetValue(e.field, surface)
	e.reset(vp.Width, vp.Height)

	if host.Events != nil {
		PointerMovedEvent.Subscribe(host.Events, e.onPointer)
		ViewportResizedEvent.Subscribe(host.Events, e.onResize)
	}
	e.state = StateRunning
	e.pending = host.Scheduler.Request(e.frame)
	return nil
}

// Stop cancels the pending frame and drops the event subscriptions. It is
// a no-op on an unmounted engine.
func (e *Engine) Stop() {
	if e.state != StateRunning {
		return
	}
	e.state = StateUnmounted
	if e.pending != 0 {
		e.host.Scheduler.Cancel(e.pending)
		e.pending = 0
	}
	if e.host.Events != nil {
		PointerMovedEvent.Unsubscribe(e.host.Events, e.onPointer)
		ViewportResizedEvent.Unsubscribe(e.host.Events, e.onResize)
	}
}

// OnPointerMove records the pointer position.
func (e *Engine) OnPointerMove(x, y float64) {
	if e.state != StateRunning {
		return
	}
	components.Pointer.SetValue(e.field, components.PointerData{X: x, Y: y})
}

// OnResize reallocates the surface for vp, re-derives the configuration and
// replaces every particle.
func (e *Engine) OnResize(vp Viewport) {
	if e.state != StateRunning {
		return
	}
	surface, err := acquireSurface(e.host, vp)
	if err != nil {
		log.Printf("Warning: Particle field stopped on resize: %v", err)
		e.Stop()
		return
	}
	components.Surface.SetValue(e.field, surface)
	e.reset(vp.Width, vp.Height)
}

// frame runs one update/draw pass and schedules the next one.
func (e *Engine) frame() {
	e.pending = 0
	if e.state != StateRunning {
		return
	}
	if e.ctx.Err() != nil {
		e.Stop()
		return
	}
	e.ecs.Update()
	e.pending = e.host.Scheduler.Request(e.frame)
}

// reset replaces the particle batch for a width x height field.
func (e *Engine) reset(width, height float64) {
	fieldCfg := cfg.DeriveField(width)
	components.Field.SetValue(e.field, components.FieldData{Config: fieldCfg})

	factory.ClearParticles(e.ecs)
	factory.RemoveSpace(e.ecs)
	particles := factory.NewParticles(e.rng, fieldCfg.ParticleCount, width, height,
		fieldCfg.ParticleSize, fieldCfg.ParticleSpeed)
	factory.SpawnParticles(e.ecs, particles)
	if fieldCfg.ParticleCount > cfg.Field.SpatialIndexThreshold {
		factory.CreateSpace(e.ecs, width, height, fieldCfg.ConnectionDistance)
	}
}

func newFieldECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.DrawTrail)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.DrawConnections)
	e.AddSystem(systems.DrawParticles)
	return e
}

func currentViewport(host Host) Viewport {
	if host.Viewport == nil {
		return Viewport{}
	}
	return host.Viewport()
}

// acquireSurface asks the host for a surface sized for vp at a pixel ratio
// capped at cfg.Field.MaxPixelRatio.
func acquireSurface(host Host, vp Viewport) (components.SurfaceData, error) {
	if host.Surface == nil {
		return components.SurfaceData{}, ErrNoSurface
	}
	ratio := PixelRatio(vp.DeviceScale)
	pw := int(math.Ceil(vp.Width * ratio))
	ph := int(math.Ceil(vp.Height * ratio))
	c, err := host.Surface(pw, ph, ratio)
	if err != nil {
		return components.SurfaceData{}, fmt.Errorf("%w: %w", ErrNoSurface, err)
	}
	if c == nil {
		return components.SurfaceData{}, ErrNoSurface
	}
	return components.SurfaceData{
		Canvas:      c,
		Width:       vp.Width,
		Height:      vp.Height,
		PixelWidth:  pw,
		PixelHeight: ph,
		PixelRatio:  ratio,
	}, nil
}

// PixelRatio caps a device scale factor. Unknown scales count as 1.
func PixelRatio(deviceScale float64) float64 {
	if deviceScale <= 0 || math.IsNaN(deviceScale) {
		return 1
	}
	return min(deviceScale, cfg.Field.MaxPixelRatio)
}
