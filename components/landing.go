package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WaitlistData is the state of the email capture form.
type WaitlistData struct {
	Email     string
	Status    string // Validation message, empty when fine
	Submitted ToastData
	Outbox    []string // Accepted addresses awaiting a backend
}

var Waitlist = donburi.NewComponentType[WaitlistData]()

// AddressData is the state of the token address widget.
type AddressData struct {
	Address string
	Copied  ToastData
}

var Address = donburi.NewComponentType[AddressData]()

// HeroData drives the floating title block.
type HeroData struct {
	Float  *gween.Tween
	Rising bool
	Offset float64
}

var Hero = donburi.NewComponentType[HeroData]()

// SettingsData mirrors the persisted settings plus session-only toggles.
type SettingsData struct {
	Fullscreen   bool
	FieldEnabled bool
	DebugOverlay bool
}

var Settings = donburi.NewComponentType[SettingsData]()
