package scenes

import (
	"errors"
	"log"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/automoto/herofield/canvas"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/field"
	"github.com/automoto/herofield/fonts"
	"github.com/automoto/herofield/systems"
	"github.com/automoto/herofield/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errEmptyViewport = errors.New("viewport has no area")

// LandingScene is the whole page: the particle field underneath, the hero
// block and the widgets on top.
type LandingScene struct {
	ecs  *ecs.ECS
	once sync.Once

	engine  *field.Engine
	mount   *fieldMount
	surface *canvas.Ebiten

	ui        *ui.LandingUI
	fontScale float64
	uiWidth   int

	// Outside size in logical pixels and the device scale, from Layout
	width, height float64
	scale         float64

	quitRequested bool
}

// NewLandingScene creates the landing page scene.
func NewLandingScene() *LandingScene {
	return &LandingScene{scale: 1}
}

// Layout renders at device resolution so text stays sharp on high-density
// displays.
func (ls *LandingScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if s <= 0 {
		s = 1
	}
	ls.width, ls.height, ls.scale = float64(outsideWidth), float64(outsideHeight), s
	return int(math.Ceil(ls.width * s)), int(math.Ceil(ls.height * s))
}

func (ls *LandingScene) Update() error {
	ls.once.Do(ls.configure)

	ls.syncUI()
	ls.publishHostEvents()
	ls.ecs.Update()
	ls.mount.tick()

	if ls.quitRequested {
		ls.mount.stop()
		return ebiten.Termination
	}
	return nil
}

func (ls *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Landing.PageColor.Opaque())

	if ls.ecs == nil {
		return
	}
	if ls.engine.State() == field.StateRunning && ls.surface != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(ls.scale/ls.surface.Scale(), ls.scale/ls.surface.Scale())
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(ls.surface.Image(), op)
	}
	ls.ecs.Draw(screen)
}

func (ls *LandingScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	var rng *rand.Rand
	if cfg.Debug.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Debug.Seed, cfg.Debug.Seed))
	}
	ls.engine = field.NewEngine(rng)
	ls.mount = newFieldMount(ls.engine, ls.currentViewport, ls.newSurface)

	landing := systems.GetOrCreateLanding(ls.ecs)
	landing.Settings.FieldEnabled = cfg.C.FieldEnabled

	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.NewUpdateShortcuts(systems.ShortcutHooks{
		Typing:        func() bool { return ls.ui != nil && ls.ui.Typing() },
		SetFullscreen: ebiten.SetFullscreen,
		SetField:      func(enabled bool) { ls.mount.setEnabled(enabled) },
		Quit:          func() { ls.quitRequested = true },
	}))
	ls.ecs.AddSystem(systems.UpdateWaitlist)
	ls.ecs.AddSystem(systems.UpdateAddress)
	ls.ecs.AddSystem(systems.UpdateHero)
	ls.ecs.AddSystem(ls.updateUI)

	ls.ecs.AddRenderer(cfg.LayerHUD, systems.NewDrawHero(func() float64 { return ls.scale }))
	ls.ecs.AddRenderer(cfg.LayerHUD, ls.drawUI)
	ls.ecs.AddRenderer(cfg.LayerHUD, systems.NewDrawDebug(ls.fieldStats))

	if landing.Settings.FieldEnabled {
		ls.mount.setEnabled(true)
	}
}

func (ls *LandingScene) currentViewport() field.Viewport {
	return field.Viewport{Width: ls.width, Height: ls.height, DeviceScale: ls.scale}
}

// newSurface allocates the offscreen image the field draws into.
func (ls *LandingScene) newSurface(pixelWidth, pixelHeight int, ratio float64) (canvas.Canvas, error) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return nil, errEmptyViewport
	}
	if ls.surface != nil {
		ls.surface.Image().Deallocate()
	}
	ls.surface = canvas.NewEbiten(ebiten.NewImage(pixelWidth, pixelHeight), ratio, cfg.Field.GradientSegments)
	return ls.surface, nil
}

// publishHostEvents reports window and cursor changes to the field.
func (ls *LandingScene) publishHostEvents() {
	enabled := systems.GetOrCreateLanding(ls.ecs).Settings.FieldEnabled
	ls.mount.resize(ls.currentViewport(), enabled)

	cx, cy := ebiten.CursorPosition()
	ls.mount.pointer(float64(cx)/ls.scale, float64(cy)/ls.scale)
}

// syncUI reloads fonts when the device scale changes and rebuilds the
// widgets when the hero block changes height.
func (ls *LandingScene) syncUI() {
	if ls.scale != ls.fontScale {
		if err := fonts.Load(ls.scale); err != nil {
			log.Printf("Warning: Failed to load fonts: %v", err)
			return
		}
		ls.fontScale = ls.scale
		ls.ui = nil
	}

	screenWidth := int(math.Ceil(ls.width * ls.scale))
	if ls.ui != nil && ls.uiWidth == screenWidth {
		return
	}

	email := ""
	if ls.ui != nil {
		email = ls.ui.Email()
	}
	top := systems.LayoutHero(float64(screenWidth), ls.scale).Bottom
	ls.ui = ui.NewLandingUI(ls.scale, top,
		func(email string) error { return systems.SubmitWaitlist(ls.ecs, email) },
		func() { _ = systems.CopyAddress(ls.ecs, systems.SystemClipboard) },
	)
	ls.ui.SetEmail(email)
	ls.uiWidth = screenWidth
}

func (ls *LandingScene) updateUI(e *ecs.ECS) {
	if ls.ui == nil {
		return
	}
	ls.ui.UI.Update()
	ls.ui.Sync(systems.GetOrCreateLanding(e))
}

func (ls *LandingScene) drawUI(e *ecs.ECS, screen *ebiten.Image) {
	if ls.ui == nil {
		return
	}
	ls.ui.UI.Draw(screen)
	ls.ui.DrawAcknowledgements(screen, systems.GetOrCreateLanding(e))
}

func (ls *LandingScene) fieldStats() systems.FieldStats {
	return systems.FieldStats{
		State:       ls.engine.State().String(),
		Particles:   ls.engine.Config().ParticleCount,
		Connections: ls.engine.ConnectionsDrawn(),
		Frames:      ls.engine.Frames(),
		PixelRatio:  ls.engine.Surface().PixelRatio,
		Indexed:     ls.engine.Indexed(),
	}
}
