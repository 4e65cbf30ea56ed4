package field

import (
	"github.com/automoto/herofield/canvas"
	"github.com/automoto/herofield/frame"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Viewport is the visible page area in device-independent pixels.
type Viewport struct {
	Width       float64
	Height      float64
	DeviceScale float64 // Physical pixels per logical pixel
}

// SurfaceFactory allocates a drawing surface of pixelWidth x pixelHeight
// physical pixels. ratio is the scale from logical to physical pixels.
type SurfaceFactory func(pixelWidth, pixelHeight int, ratio float64) (canvas.Canvas, error)

// Host is the page the field is mounted into.
type Host struct {
	// Events carries PointerMoved and ViewportResized. Use one world per
	// engine: donburi matches unsubscribed handlers by their code pointer.
	Events    donburi.World
	Scheduler frame.Scheduler
	Viewport  func() Viewport
	Surface   SurfaceFactory
}

// PointerMoved reports the pointer position in device-independent pixels.
type PointerMoved struct {
	X, Y float64
}

// ViewportResized reports a new viewport.
type ViewportResized struct {
	Viewport Viewport
}

var (
	PointerMovedEvent    = events.NewEventType[PointerMoved]()
	ViewportResizedEvent = events.NewEventType[ViewportResized]()
)
