package components

import "github.com/yohamta/donburi"

// ParticleData is one point of the background field.
// Position is in device-independent pixels.
type ParticleData struct {
	X, Y           float64
	Size           float64 // Radius, fixed at creation
	SpeedX, SpeedY float64
	Opacity        float64 // Fixed at creation
	Connection     float64 // Strongest link this frame, reset every update
}

var Particle = donburi.NewComponentType[ParticleData]()
