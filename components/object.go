package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its cell-index object.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the cell index used to find nearby particles.
type SpaceData struct {
	*resolv.Space
	Offset float64 // Added to coordinates so wrapped particles stay in bounds
}

var Space = donburi.NewComponentType[SpaceData]()
