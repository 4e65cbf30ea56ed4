package components

import (
	"github.com/automoto/herofield/canvas"
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi"
)

// PointerData is the last known pointer position. It stays at the origin
// until the first move event.
type PointerData struct {
	X, Y float64
}

var Pointer = donburi.NewComponentType[PointerData]()

// SurfaceData describes the drawing surface the field renders onto.
type SurfaceData struct {
	Canvas      canvas.Canvas
	Width       float64 // Logical width
	Height      float64 // Logical height
	PixelWidth  int
	PixelHeight int
	PixelRatio  float64 // Capped at cfg.Field.MaxPixelRatio
}

var Surface = donburi.NewComponentType[SurfaceData]()

// FieldData holds the configuration of the mounted field and per-frame stats.
type FieldData struct {
	Config           cfg.FieldConfig
	ConnectionsDrawn int
	Frames           int // Frames drawn since the last start or resize
}

var Field = donburi.NewComponentType[FieldData]()
