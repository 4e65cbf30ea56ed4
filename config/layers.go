package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order
const (
	LayerField ecs.LayerID = iota
	LayerHUD
)

// Default is the layer used by entities that are never drawn directly
const Default = LayerField
