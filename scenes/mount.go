package scenes

import (
	"context"
	"log"

	"github.com/automoto/herofield/field"
	"github.com/automoto/herofield/frame"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// fieldMount connects one engine to the scene's event world and frame
// queue.
type fieldMount struct {
	engine *field.Engine
	queue  *frame.Queue
	events donburi.World
	host   field.Host
	cancel context.CancelFunc

	viewport field.Viewport
	pointerX float64
	pointerY float64
	restart  bool
}

// newFieldMount wires engine to a fresh queue and event world. The host's
// Viewport and Surface come from the caller.
func newFieldMount(engine *field.Engine, viewport func() field.Viewport, surface field.SurfaceFactory) *fieldMount {
	m := &fieldMount{
		engine: engine,
		queue:  frame.NewQueue(),
		events: donburi.NewWorld(),
	}
	m.host = field.Host{
		Events:    m.events,
		Scheduler: m.queue,
		Viewport:  viewport,
		Surface:   surface,
	}
	m.viewport = viewport()
	return m
}

func (m *fieldMount) running() bool {
	return m.engine.State() == field.StateRunning
}

func (m *fieldMount) setEnabled(enabled bool) {
	if !enabled {
		m.stop()
		return
	}
	if m.running() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := m.engine.Start(ctx, m.host); err != nil {
		log.Printf("Warning: Particle field not started: %v", err)
		cancel()
		return
	}
	m.cancel = cancel
}

func (m *fieldMount) stop() {
	m.restart = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.engine.Stop()
}

// resize publishes a viewport change. A field that was stopped, for
// example by an empty window, is marked for restart when enabled.
func (m *fieldMount) resize(vp field.Viewport, enabled bool) {
	if vp == m.viewport {
		return
	}
	m.viewport = vp
	field.ViewportResizedEvent.Publish(m.events, field.ViewportResized{Viewport: vp})
	m.restart = enabled && !m.running()
}

// pointer publishes a pointer move in logical pixels.
func (m *fieldMount) pointer(x, y float64) {
	if x == m.pointerX && y == m.pointerY {
		return
	}
	m.pointerX, m.pointerY = x, y
	field.PointerMovedEvent.Publish(m.events, field.PointerMoved{X: x, Y: y})
}

// tick delivers queued events, restarts a stopped field after the resize
// has been seen, then runs the pending frame.
func (m *fieldMount) tick() {
	events.ProcessAllEvents(m.events)
	if m.restart {
		m.restart = false
		m.setEnabled(true)
	}
	m.queue.Tick()
}
