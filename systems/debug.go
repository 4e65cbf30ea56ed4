package systems

import (
	"fmt"

	cfg "github.com/automoto/herofield/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// FieldStats is what the debug overlay reports about the particle field.
type FieldStats struct {
	State       string
	Particles   int
	Connections int
	Frames      int
	PixelRatio  float64
	Indexed     bool
}

// NewDrawDebug returns a renderer that prints frame and field stats when
// the overlay is enabled.
func NewDrawDebug(stats func() FieldStats) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateLanding(ecs).Settings.DebugOverlay {
			return
		}
		ebitenutil.DebugPrintAt(screen, DebugText(ebiten.ActualTPS(), ebiten.ActualFPS(), stats()), cfg.Debug.X, cfg.Debug.Y)
	}
}

// DebugText formats the overlay.
func DebugText(tps, fps float64, s FieldStats) string {
	scan := "all pairs"
	if s.Indexed {
		scan = "cell index"
	}
	return fmt.Sprintf("TPS: %0.2f  FPS: %0.2f\nField: %s (%d frames)\nParticles: %d\nConnections: %d (%s)\nPixel ratio: %0.2f",
		tps, fps, s.State, s.Frames, s.Particles, s.Connections, scan, s.PixelRatio)
}
