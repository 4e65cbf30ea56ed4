package systems

import (
	"testing"
	"time"

	"github.com/automoto/herofield/components"
)

func TestToastLifecycle(t *testing.T) {
	var toast components.ToastData
	if TickToast(&toast, time.Second) {
		t.Fatal("inactive toast reported expiry")
	}

	ShowToast(&toast, 100*time.Millisecond)
	if !toast.Active() || toast.Alpha != 0 {
		t.Fatalf("toast after show = %+v", toast)
	}
	if TickToast(&toast, 50*time.Millisecond) {
		t.Fatal("toast expired early")
	}
	if toast.Alpha <= 0 {
		t.Errorf("toast did not fade in, alpha %v", toast.Alpha)
	}
	if !TickToast(&toast, 50*time.Millisecond) {
		t.Fatal("toast did not expire")
	}
	if toast.Active() || toast.Alpha != 0 || toast.Fade != nil {
		t.Errorf("toast after expiry = %+v", toast)
	}
}

// framesFor returns the number of updates needed to cover d.
func framesFor(d time.Duration) int {
	step := frameDuration()
	return int((d + step - 1) / step)
}
