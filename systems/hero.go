package systems

import (
	"image/color"
	"strings"

	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateHero floats the title block up and back down.
func UpdateHero(ecs *ecs.ECS) {
	hero := GetOrCreateLanding(ecs).Hero
	half := float32(cfg.Landing.FloatPeriod.Seconds() / 2)
	dist := float32(cfg.Landing.FloatDistance)

	if hero.Float == nil {
		hero.Rising = true
		hero.Float = gween.New(0, dist, half, ease.InOutSine)
	}
	v, done := hero.Float.Update(float32(frameDuration().Seconds()))
	hero.Offset = -float64(v)
	if !done {
		return
	}
	if hero.Rising {
		hero.Float = gween.New(dist, 0, half, ease.InOutSine)
	} else {
		hero.Float = gween.New(0, dist, half, ease.InOutSine)
	}
	hero.Rising = !hero.Rising
}

// Hero block positions in logical pixels, before the float offset.
const (
	heroBadgeTop     = 96
	heroTitleTop     = 150
	heroSubtitleGap  = 20
	heroBottomGap    = 40
	heroLineSpacing  = 1.2
	heroMaxLineRatio = 0.9
)

// HeroLayout positions the hero block on a screen. All values are device
// pixels; baselines are for ebiten/text.
type HeroLayout struct {
	BadgeX, BadgeY, BadgeW, BadgeH float64
	BadgeTextX, BadgeTextY         int
	Title                          []string
	TitleBaselines                 []float64
	Subtitle                       []string
	SubtitleBaselines              []float64
	Bottom                         float64 // First free row below the block
}

// LayoutHero lays out the hero block for a screen width at scale s. Fonts
// must be loaded at the same scale.
func LayoutHero(width, s float64) HeroLayout {
	var l HeroLayout

	badgeFace := fonts.Small.Get()
	badge := text.BoundString(badgeFace, cfg.Landing.Badge)
	padX, padY := 24*s, 8*s
	l.BadgeW = float64(badge.Dx()) + 2*padX
	l.BadgeH = float64(badge.Dy()) + 2*padY
	l.BadgeX = (width - l.BadgeW) / 2
	l.BadgeY = heroBadgeTop * s
	l.BadgeTextX = int(l.BadgeX+padX) - badge.Min.X
	l.BadgeTextY = int(l.BadgeY+padY) - badge.Min.Y

	titleFace := fonts.Title.Get()
	titleStep := float64(titleFace.Metrics().Height.Ceil()) * heroLineSpacing
	y := heroTitleTop * s
	l.Title = WrapText(titleFace, cfg.Landing.Title, width*heroMaxLineRatio)
	for range l.Title {
		l.TitleBaselines = append(l.TitleBaselines, y)
		y += titleStep
	}

	bodyFace := fonts.Body.Get()
	bodyStep := float64(bodyFace.Metrics().Height.Ceil()) * heroLineSpacing
	y += heroSubtitleGap*s - titleStep + bodyStep
	l.Subtitle = WrapText(bodyFace, cfg.Landing.Subtitle, width*heroMaxLineRatio)
	for range l.Subtitle {
		l.SubtitleBaselines = append(l.SubtitleBaselines, y)
		y += bodyStep
	}
	l.Bottom = y - bodyStep + heroBottomGap*s
	return l
}

// NewDrawHero returns a renderer for the badge, title and subtitle.
// scale reports device pixels per logical pixel.
func NewDrawHero(scale func() float64) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		hero := GetOrCreateLanding(ecs).Hero
		s := scale()
		width := float64(screen.Bounds().Dx())
		l := LayoutHero(width, s)
		off := hero.Offset * s

		vector.FillRect(screen, float32(l.BadgeX), float32(l.BadgeY+off), float32(l.BadgeW), float32(l.BadgeH),
			cfg.DeepEmerald.WithAlpha(0.3), true)
		vector.StrokeRect(screen, float32(l.BadgeX), float32(l.BadgeY+off), float32(l.BadgeW), float32(l.BadgeH), float32(s),
			cfg.DeepEmerald.WithAlpha(0.5), true)
		text.Draw(screen, cfg.Landing.Badge, fonts.Small.Get(), l.BadgeTextX, l.BadgeTextY+int(off), cfg.Landing.AccentColor.Opaque())

		for i, line := range l.Title {
			drawCentered(screen, fonts.Title.Get(), line, width, l.TitleBaselines[i]+off, cfg.Landing.TextColor.Opaque())
		}
		for i, line := range l.Subtitle {
			drawCentered(screen, fonts.Body.Get(), line, width, l.SubtitleBaselines[i]+off, cfg.Landing.MutedColor.Opaque())
		}
	}
}

func drawCentered(screen *ebiten.Image, face font.Face, s string, width, baseline float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := (width-float64(b.Dx()))/2 - float64(b.Min.X)
	text.Draw(screen, s, face, int(x), int(baseline), clr)
}

// WrapText splits s into lines no wider than maxWidth pixels. A single word
// wider than maxWidth gets a line of its own.
func WrapText(face font.Face, s string, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if float64(font.MeasureString(face, candidate).Ceil()) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
