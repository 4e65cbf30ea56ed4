package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/systems/factory"
)

func TestAttractionForce(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"at pointer", 0, 0.2},
		{"half radius", 100, 0.1},
		{"at radius", 200, 0},
		{"beyond radius", 350, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttractionForce(tt.d); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AttractionForce(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestAttractionForceIncreasesTowardPointer(t *testing.T) {
	prev := AttractionForce(199.999)
	if prev <= 0 {
		t.Fatalf("AttractionForce just inside radius = %v, want > 0", prev)
	}
	for d := 199.0; d >= 0; d -= 1 {
		got := AttractionForce(d)
		if got <= prev {
			t.Fatalf("AttractionForce(%v) = %v, not greater than %v", d, got, prev)
		}
		prev = got
	}
}

func TestStepParticlePointerOnParticle(t *testing.T) {
	p := components.ParticleData{X: 100, Y: 100, Size: 3, Opacity: 0.3}
	StepParticle(&p, components.PointerData{X: 100, Y: 100}, 800, 600)

	if math.IsNaN(p.SpeedX) || math.IsNaN(p.SpeedY) {
		t.Fatalf("velocity is NaN: %+v", p)
	}
	if p.SpeedX != 0 || p.SpeedY != 0 {
		t.Errorf("velocity = (%v, %v), want zero", p.SpeedX, p.SpeedY)
	}
	if p.X != 100 || p.Y != 100 {
		t.Errorf("position = (%v, %v), want (100, 100)", p.X, p.Y)
	}
}

func TestStepParticleAttraction(t *testing.T) {
	p := components.ParticleData{X: 100, Y: 100}
	StepParticle(&p, components.PointerData{X: 200, Y: 100}, 800, 600)

	// d = 100, force = 0.1, delta = 100 * 0.1 * 0.01 = 0.1, then drag
	want := 0.1 * 0.99
	if math.Abs(p.SpeedX-want) > 1e-12 {
		t.Errorf("SpeedX = %v, want %v", p.SpeedX, want)
	}
	if p.SpeedY != 0 {
		t.Errorf("SpeedY = %v, want 0", p.SpeedY)
	}
}

func TestStepParticleOutsideRadiusOnlyDamps(t *testing.T) {
	p := components.ParticleData{X: 100, Y: 100, SpeedX: 0.2, SpeedY: -0.1}
	StepParticle(&p, components.PointerData{X: 700, Y: 500}, 800, 600)

	if math.Abs(p.SpeedX-0.2*0.99) > 1e-12 || math.Abs(p.SpeedY+0.1*0.99) > 1e-12 {
		t.Errorf("velocity = (%v, %v)", p.SpeedX, p.SpeedY)
	}
}

func TestStepParticleResetsConnection(t *testing.T) {
	p := components.ParticleData{X: 10, Y: 10, Connection: 0.8}
	StepParticle(&p, components.PointerData{X: 700, Y: 500}, 800, 600)
	if p.Connection != 0 {
		t.Errorf("Connection = %v, want 0", p.Connection)
	}
}

func TestStepParticleWraps(t *testing.T) {
	tests := []struct {
		name         string
		p            components.ParticleData
		wantX, wantY float64
	}{
		{"left", components.ParticleData{X: -50, Y: 300, SpeedX: -0.5}, 850, 300},
		{"right", components.ParticleData{X: 850, Y: 300, SpeedX: 0.5}, -50, 300},
		{"top", components.ParticleData{X: 400, Y: -50, SpeedY: -0.5}, 400, 650},
		{"bottom", components.ParticleData{X: 400, Y: 650, SpeedY: 0.5}, 400, -50},
		{"inside margin", components.ParticleData{X: -49, Y: 649, SpeedX: -0.5, SpeedY: 0.5}, -49.5, 649.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			// Pointer far away so only motion and wrap apply
			StepParticle(&p, components.PointerData{X: 10000, Y: 10000}, 800, 600)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestStepParticleDampingNeverSpeedsUp(t *testing.T) {
	p := components.ParticleData{X: 400, Y: 300, SpeedX: 0.15, SpeedY: -0.12}
	prev := math.Hypot(p.SpeedX, p.SpeedY)
	for i := 0; i < 500; i++ {
		StepParticle(&p, components.PointerData{X: 1e6, Y: 1e6}, 800, 600)
		speed := math.Hypot(p.SpeedX, p.SpeedY)
		if speed > prev {
			t.Fatalf("frame %d: speed %v > previous %v", i, speed, prev)
		}
		prev = speed
	}
}

func TestStepParticleStaysWithinMargin(t *testing.T) {
	const w, h = 640.0, 480.0
	rng := rand.New(rand.NewPCG(7, 11))
	particles := factory.NewParticles(rng, 100, w, h, cfg.Field.ParticleSize, cfg.Field.ParticleSpeed)
	for i := range particles {
		// Fast particles exercise the wrap every few frames
		particles[i].SpeedX *= 40
		particles[i].SpeedY *= 40
	}

	pointers := []components.PointerData{{}, {X: 320, Y: 240}, {X: -40, Y: 500}}
	for frame := 0; frame < 2000; frame++ {
		ptr := pointers[frame%len(pointers)]
		for i := range particles {
			StepParticle(&particles[i], ptr, w, h)
			p := particles[i]
			if p.X < -50 || p.X > w+50 || p.Y < -50 || p.Y > h+50 {
				t.Fatalf("frame %d particle %d escaped: (%v, %v)", frame, i, p.X, p.Y)
			}
		}
	}
}
