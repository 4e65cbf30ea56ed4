package systems

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/automoto/herofield/archetypes"
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// ValidateEmail trims s and checks that it is a single bare address such
// as "name@example.com".
func ValidateEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, s)
	}
	// Reject display-name forms like "Ann <ann@example.com>"
	if addr.Name != "" || addr.Address != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, s)
	}
	return addr.Address, nil
}

// SubmitWaitlist validates email and queues it in the local outbox. On
// success the form shows its acknowledgement and the input is cleared.
func SubmitWaitlist(ecs *ecs.ECS, email string) error {
	w := GetOrCreateLanding(ecs).Waitlist
	addr, err := ValidateEmail(email)
	if err != nil {
		w.Email = email
		if errors.Is(err, ErrEmptyEmail) {
			w.Status = "Please enter your email"
		} else {
			w.Status = "Please enter a valid email address"
		}
		return err
	}

	w.Email = ""
	w.Status = ""
	ShowToast(&w.Submitted, cfg.Toast.WaitlistDuration)

	var added bool
	w.Outbox, added = AppendOutbox(w.Outbox, addr)
	if added {
		_ = SaveOutbox(w.Outbox)
	}
	return nil
}

// AppendOutbox adds email unless an address differing only in case is
// already queued.
func AppendOutbox(outbox []string, email string) ([]string, bool) {
	for _, queued := range outbox {
		if strings.EqualFold(queued, email) {
			return outbox, false
		}
	}
	return append(outbox, email), true
}

// WaitlistButtonLabel is the submit button text for the current state.
func WaitlistButtonLabel(w *components.WaitlistData) string {
	if w.Submitted.Active() {
		return cfg.Landing.JoinedLabel
	}
	return cfg.Landing.JoinLabel
}

// UpdateWaitlist counts down the submission acknowledgement.
func UpdateWaitlist(ecs *ecs.ECS) {
	TickToast(&GetOrCreateLanding(ecs).Waitlist.Submitted, frameDuration())
}

// LandingState bundles the singleton landing components.
type LandingState struct {
	Waitlist *components.WaitlistData
	Address  *components.AddressData
	Hero     *components.HeroData
	Settings *components.SettingsData
}

// GetOrCreateLanding returns the landing singleton, creating it with the
// configured address and the loaded outbox if needed.
func GetOrCreateLanding(ecs *ecs.ECS) LandingState {
	entry, ok := components.Waitlist.First(ecs.World)
	if !ok {
		entry = archetypes.Landing.Spawn(ecs)
		components.Address.SetValue(entry, components.AddressData{Address: cfg.Landing.TokenAddress})
		components.Waitlist.SetValue(entry, components.WaitlistData{Outbox: LoadOutbox()})
		saved := LoadSettings()
		components.Settings.SetValue(entry, components.SettingsData{
			Fullscreen:   saved.Fullscreen,
			FieldEnabled: saved.FieldEnabled,
			DebugOverlay: cfg.Debug.Overlay,
		})
	}
	return LandingState{
		Waitlist: components.Waitlist.Get(entry),
		Address:  components.Address.Get(entry),
		Hero:     components.Hero.Get(entry),
		Settings: components.Settings.Get(entry),
	}
}
