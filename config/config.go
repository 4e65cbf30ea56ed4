package config

import (
	"image/color"
	"math"
	"time"
)

// RGB is an opaque color. Alpha is attached at the draw boundary.
type RGB struct {
	R, G, B uint8
}

// WithAlpha combines the color with an alpha in [0,1]. Values outside the
// range are clamped and the byte is floored.
func (c RGB) WithAlpha(a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: AlphaByte(a)}
}

// Opaque returns the color at full alpha.
func (c RGB) Opaque() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// AlphaByte converts an alpha in [0,1] to floor(a*255).
func AlphaByte(a float64) uint8 {
	if math.IsNaN(a) || a <= 0 {
		return 0
	}
	if a >= 1 {
		return 0xff
	}
	return uint8(math.Floor(a * 255))
}

// Range is an inclusive-exclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// FieldColors holds the particle field palette.
type FieldColors struct {
	Primary    RGB
	Secondary  RGB
	Background RGB
}

// FieldConfig is the configuration of one mounted particle field.
// It is re-derived whenever the viewport is resized.
type FieldConfig struct {
	ParticleCount      int
	ParticleSize       Range
	ParticleSpeed      Range
	ConnectionDistance float64
	Colors             FieldColors
}

// FieldTuning contains the physics and rendering constants of the particle field
type FieldTuning struct {
	// Population
	MobileBreakpoint   float64 // Viewports narrower than this get the mobile count
	MobileParticles    int
	DesktopParticles   int
	MaxParticles       int
	ParticleSize       Range
	ParticleSpeed      Range
	InitialOpacity     Range
	ConnectionDistance float64

	// Physics
	PointerRadius      float64
	AttractionStrength float64
	AttractionScale    float64
	WrapMargin         float64
	Damping            float64

	// Rendering
	MaxPixelRatio         float64
	TrailAlpha            uint8 // Alpha of the background fill each frame
	ConnectionMaxAlpha    float64
	ConnectionLineWidth   float64
	GlowScale             float64 // Radius growth at full connection
	GradientSegments      int
	SpatialIndexThreshold int // Counts above this use the cell index

	Colors FieldColors
}

// DeriveField returns the field configuration for a viewport width.
func DeriveField(viewportWidth float64) FieldConfig {
	count := Field.DesktopParticles
	if viewportWidth < Field.MobileBreakpoint {
		count = Field.MobileParticles
	}
	if count > Field.MaxParticles {
		count = Field.MaxParticles
	}
	return FieldConfig{
		ParticleCount:      count,
		ParticleSize:       Field.ParticleSize,
		ParticleSpeed:      Field.ParticleSpeed,
		ConnectionDistance: Field.ConnectionDistance,
		Colors:             Field.Colors,
	}
}

// LandingConfig contains copy, palette and layout for the landing page
type LandingConfig struct {
	Badge          string
	Title          string
	Subtitle       string
	FeaturesHeader string
	Features       []string

	EmailPlaceholder string
	JoinLabel        string
	JoinedLabel      string

	TokenHeader      string
	TokenDescription string
	TokenAddress     string
	TokenVerified    string
	CopyLabel        string
	CopiedLabel      string

	// Palette
	TextColor       RGB
	MutedColor      RGB
	AccentColor     RGB
	PanelColor      RGB
	PageColor       RGB
	InputColor      RGB
	ErrorColor      RGB
	PanelAlpha      float64
	TitleFontSize   float64
	HeadingFontSize float64
	BodyFontSize    float64
	SmallFontSize   float64
	PanelWidth      int
	SectionSpacing  int

	// Hero float animation
	FloatDistance float64
	FloatPeriod   time.Duration
}

// ToastConfig contains timing for transient acknowledgements
type ToastConfig struct {
	WaitlistDuration time.Duration
	CopyDuration     time.Duration
	FadeDuration     time.Duration
}

// DebugConfig contains debug settings
type DebugConfig struct {
	Overlay bool
	Seed    uint64 // Zero means a random seed
	X, Y    int
}

// PersistenceConfig names the local storage slots
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
	OutboxKey   string
}

// Config holds window settings
type Config struct {
	Width        int
	Height       int
	Title        string
	TPS          int
	FieldEnabled bool
}

var C *Config
var Field FieldTuning
var Landing LandingConfig
var Toast ToastConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Common colors
var (
	Emerald     = RGB{R: 0x10, G: 0xb9, B: 0x81}
	DeepEmerald = RGB{R: 0x05, G: 0x96, B: 0x69}
	Charcoal    = RGB{R: 0x1e, G: 0x1e, B: 0x1e}
	White       = RGB{R: 0xff, G: 0xff, B: 0xff}
	Gray        = RGB{R: 0x9c, G: 0xa3, B: 0xaf}
	Ink         = RGB{R: 0x11, G: 0x18, B: 0x27}
	Slate       = RGB{R: 0x1f, G: 0x29, B: 0x37}
	Red         = RGB{R: 0xf8, G: 0x71, B: 0x71}
)

func init() {
	C = &Config{
		Width:        1280,
		Height:       800,
		Title:        "Solana AI Builder",
		TPS:          60,
		FieldEnabled: true,
	}

	Field = FieldTuning{
		MobileBreakpoint:   768,
		MobileParticles:    50,
		DesktopParticles:   100,
		MaxParticles:       100,
		ParticleSize:       Range{Min: 2, Max: 4},
		ParticleSpeed:      Range{Min: 0.1, Max: 0.3},
		InitialOpacity:     Range{Min: 0.1, Max: 0.5},
		ConnectionDistance: 150,

		PointerRadius:      200,
		AttractionStrength: 0.2,
		AttractionScale:    0.01,
		WrapMargin:         50,
		Damping:            0.99,

		MaxPixelRatio:         2,
		TrailAlpha:            0x10,
		ConnectionMaxAlpha:    0.5,
		ConnectionLineWidth:   1,
		GlowScale:             0.3,
		GradientSegments:      24,
		SpatialIndexThreshold: 200,

		Colors: FieldColors{
			Primary:    Emerald,
			Secondary:  DeepEmerald,
			Background: Charcoal,
		},
	}

	Landing = LandingConfig{
		Badge:          "Coming Soon",
		Title:          "Build Solana Smart Contracts with AI",
		Subtitle:       "Create, deploy, and manage Solana smart contracts without code.",
		FeaturesHeader: "Powerful Features",
		Features: []string{
			"AI code generation",
			"Security audits",
			"One-click deployment",
		},

		EmailPlaceholder: "Enter your email",
		JoinLabel:        "Join Waitlist",
		JoinedLabel:      "Added to waitlist",

		TokenHeader:      "Token Contract Address",
		TokenDescription: "Official smart contract address for the platform token",
		TokenAddress:     "So11111111111111111111111111111111111111112",
		TokenVerified:    "Verified on Solana Explorer",
		CopyLabel:        "Copy Address",
		CopiedLabel:      "Copied!",

		TextColor:       White,
		MutedColor:      Gray,
		AccentColor:     Emerald,
		PanelColor:      Charcoal,
		PageColor:       Ink,
		InputColor:      Slate,
		ErrorColor:      Red,
		PanelAlpha:      0.8,
		TitleFontSize:   40,
		HeadingFontSize: 28,
		BodyFontSize:    18,
		SmallFontSize:   14,
		PanelWidth:      560,
		SectionSpacing:  24,

		FloatDistance: 10,
		FloatPeriod:   3 * time.Second,
	}

	Toast = ToastConfig{
		WaitlistDuration: 3 * time.Second,
		CopyDuration:     2 * time.Second,
		FadeDuration:     300 * time.Millisecond,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
		X:       8,
		Y:       8,
	}

	Persistence = PersistenceConfig{
		AppName:     "herofield",
		SettingsKey: "settings",
		OutboxKey:   "waitlist_outbox",
	}
}
