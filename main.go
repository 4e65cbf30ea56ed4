package main

import (
	"flag"
	"log"

	"github.com/automoto/herofield/config"
	"github.com/automoto/herofield/scenes"
	"github.com/automoto/herofield/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{scene: scenes.NewLandingScene()}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	width := flag.Int("width", config.C.Width, "window width in logical pixels")
	height := flag.Int("height", config.C.Height, "window height in logical pixels")
	particles := flag.Bool("particles", config.C.FieldEnabled, "show the particle field")
	debug := flag.Bool("debug", config.Debug.Overlay, "show the debug overlay")
	seed := flag.Uint64("seed", 0, "particle seed, 0 for random")
	density := flag.Int("density", 0, "desktop particle count, above 200 switches to the cell index")
	flag.Parse()

	config.C.Width, config.C.Height = *width, *height
	config.Debug.Overlay = *debug
	config.Debug.Seed = *seed
	if *density > 0 {
		config.Field.DesktopParticles = *density
		config.Field.MaxParticles = max(config.Field.MaxParticles, *density)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedSettings(systems.LoadSettings())

	// An explicit flag beats the saved setting
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "particles" {
			config.C.FieldEnabled = *particles
		}
	})

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
