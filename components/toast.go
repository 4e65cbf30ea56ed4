package components

import (
	"time"

	"github.com/tanema/gween"
)

// ToastData is a transient acknowledgement that expires after a duration.
type ToastData struct {
	Remaining time.Duration
	Fade      *gween.Tween // Alpha, restarted whenever the toast is shown
	Alpha     float32
}

// Active reports whether the toast is still showing.
func (t *ToastData) Active() bool {
	return t.Remaining > 0
}
