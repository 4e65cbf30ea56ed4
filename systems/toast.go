package systems

import (
	"time"

	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// frameDuration is the simulated time of one Update call.
func frameDuration() time.Duration {
	if cfg.C.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(cfg.C.TPS)
}

// ShowToast (re)starts a toast for d and fades it in.
func ShowToast(t *components.ToastData, d time.Duration) {
	t.Remaining = d
	t.Alpha = 0
	t.Fade = gween.New(0, 1, float32(cfg.Toast.FadeDuration.Seconds()), ease.OutQuad)
}

// TickToast advances a toast by dt. It returns true on the tick the toast
// expires.
func TickToast(t *components.ToastData, dt time.Duration) bool {
	if !t.Active() {
		return false
	}
	if t.Fade != nil {
		t.Alpha, _ = t.Fade.Update(float32(dt.Seconds()))
	}
	t.Remaining -= dt
	if t.Remaining > 0 {
		return false
	}
	t.Remaining = 0
	t.Alpha = 0
	t.Fade = nil
	return true
}
