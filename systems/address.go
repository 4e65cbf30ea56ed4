package systems

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi/ecs"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard is the OS clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// CopyAddress copies the token address. A failure is logged and leaves the
// widget as it was.
func CopyAddress(ecs *ecs.ECS, cb Clipboard) error {
	a := GetOrCreateLanding(ecs).Address
	if err := cb.WriteAll(a.Address); err != nil {
		log.Printf("Warning: Failed to copy address: %v", err)
		return err
	}
	ShowToast(&a.Copied, cfg.Toast.CopyDuration)
	return nil
}

// AddressButtonLabel is the copy button text for the current state.
func AddressButtonLabel(a *components.AddressData) string {
	if a.Copied.Active() {
		return cfg.Landing.CopiedLabel
	}
	return cfg.Landing.CopyLabel
}

// UpdateAddress counts down the copied acknowledgement.
func UpdateAddress(ecs *ecs.ECS) {
	TickToast(&GetOrCreateLanding(ecs).Address.Copied, frameDuration())
}
