package systems

import (
	"errors"
	"testing"
	"time"

	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newLandingECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"ann@example.com", "ann@example.com", nil},
		{"  ann@example.com\n", "ann@example.com", nil},
		{"a.b+tag@sub.example.org", "a.b+tag@sub.example.org", nil},
		{"", "", ErrEmptyEmail},
		{"   ", "", ErrEmptyEmail},
		{"not-an-email", "", ErrInvalidEmail},
		{"ann@", "", ErrInvalidEmail},
		{"Ann <ann@example.com>", "", ErrInvalidEmail},
		{"<ann@example.com>", "", ErrInvalidEmail},
		{"a@example.com, b@example.com", "", ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidateEmail(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateEmail(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAppendOutboxDedupesIgnoringCase(t *testing.T) {
	outbox, added := AppendOutbox(nil, "ann@example.com")
	if !added || len(outbox) != 1 {
		t.Fatalf("first append: %v %v", outbox, added)
	}
	outbox, added = AppendOutbox(outbox, "ANN@Example.com")
	if added || len(outbox) != 1 {
		t.Errorf("duplicate append: %v %v", outbox, added)
	}
	outbox, added = AppendOutbox(outbox, "bob@example.com")
	if !added || len(outbox) != 2 {
		t.Errorf("second address: %v %v", outbox, added)
	}
}

func TestSubmitWaitlistAcknowledgesForThreeSeconds(t *testing.T) {
	e := newLandingECS()
	if err := SubmitWaitlist(e, "ann@example.com"); err != nil {
		t.Fatalf("SubmitWaitlist: %v", err)
	}
	w := GetOrCreateLanding(e).Waitlist
	if got := WaitlistButtonLabel(w); got != "Added to waitlist" {
		t.Errorf("label = %q, want %q", got, "Added to waitlist")
	}
	if w.Email != "" || w.Status != "" {
		t.Errorf("form not cleared: %+v", w)
	}
	if len(w.Outbox) != 1 || w.Outbox[0] != "ann@example.com" {
		t.Errorf("outbox = %v", w.Outbox)
	}

	frames := framesFor(cfg.Toast.WaitlistDuration)
	for i := 0; i < frames-1; i++ {
		UpdateWaitlist(e)
	}
	if got := WaitlistButtonLabel(w); got != "Added to waitlist" {
		t.Errorf("label reverted one frame early: %q", got)
	}
	UpdateWaitlist(e)
	if got := WaitlistButtonLabel(w); got != "Join Waitlist" {
		t.Errorf("label after 3s = %q, want %q", got, "Join Waitlist")
	}
}

func TestSubmitWaitlistRejectsInvalid(t *testing.T) {
	e := newLandingECS()
	err := SubmitWaitlist(e, "nope")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("SubmitWaitlist error = %v, want ErrInvalidEmail", err)
	}
	w := GetOrCreateLanding(e).Waitlist
	if w.Status == "" {
		t.Error("no status message for invalid email")
	}
	if w.Email != "nope" {
		t.Errorf("input cleared on failure: %q", w.Email)
	}
	if w.Submitted.Active() || len(w.Outbox) != 0 {
		t.Errorf("invalid email accepted: %+v", w)
	}
	if got := WaitlistButtonLabel(w); got != "Join Waitlist" {
		t.Errorf("label = %q", got)
	}

	if err := SubmitWaitlist(e, ""); !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("empty submit error = %v, want ErrEmptyEmail", err)
	}
}

func TestResubmitRestartsAcknowledgement(t *testing.T) {
	e := newLandingECS()
	_ = SubmitWaitlist(e, "ann@example.com")
	w := GetOrCreateLanding(e).Waitlist
	for i := 0; i < 100; i++ {
		UpdateWaitlist(e)
	}
	_ = SubmitWaitlist(e, "ann@example.com")
	if w.Submitted.Remaining != 3*time.Second {
		t.Errorf("Remaining = %v, want 3s", w.Submitted.Remaining)
	}
	if len(w.Outbox) != 1 {
		t.Errorf("outbox = %v, want one entry", w.Outbox)
	}
}
