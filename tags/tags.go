package tags

import "github.com/yohamta/donburi"

var (
	Particle = donburi.NewTag().SetName("Particle")
	Field    = donburi.NewTag().SetName("Field")
	Landing  = donburi.NewTag().SetName("Landing")
)

// Resolv tags for the cell index
const (
	ResolvParticle = "particle"
)
