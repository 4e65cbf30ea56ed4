package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/herofield/config"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	m := &memStore{items: make(map[string][]byte)}
	saved := store
	store = m
	t.Cleanup(func() { store = saved })
	return m
}

func TestSettingsRoundTrip(t *testing.T) {
	useMemStore(t)
	if got := LoadSettings(); got != cfg.DefaultSettings() {
		t.Errorf("LoadSettings on empty store = %+v", got)
	}
	want := cfg.Settings{Fullscreen: true, FieldEnabled: false}
	if err := SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if got := LoadSettings(); got != want {
		t.Errorf("LoadSettings = %+v, want %+v", got, want)
	}
}

func TestCorruptSettingsFallBackToDefaults(t *testing.T) {
	m := useMemStore(t)
	m.items[cfg.Persistence.SettingsKey] = []byte("{not json")
	if got := LoadSettings(); got != cfg.DefaultSettings() {
		t.Errorf("LoadSettings = %+v, want defaults", got)
	}
}

func TestOutboxSurvivesReload(t *testing.T) {
	useMemStore(t)
	e := newLandingECS()
	if err := SubmitWaitlist(e, "ann@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := SubmitWaitlist(e, "bob@example.com"); err != nil {
		t.Fatal(err)
	}

	reloaded := GetOrCreateLanding(newLandingECS()).Waitlist
	if len(reloaded.Outbox) != 2 || reloaded.Outbox[1] != "bob@example.com" {
		t.Errorf("reloaded outbox = %v", reloaded.Outbox)
	}
}

func TestSaveFailureDoesNotBlockSubmit(t *testing.T) {
	m := useMemStore(t)
	m.saveErr = errors.New("disk full")
	e := newLandingECS()
	if err := SubmitWaitlist(e, "ann@example.com"); err != nil {
		t.Fatalf("SubmitWaitlist: %v", err)
	}
	if !GetOrCreateLanding(e).Waitlist.Submitted.Active() {
		t.Error("acknowledgement not shown")
	}
}

func TestWithoutStoreIsNoop(t *testing.T) {
	saved := store
	store = nil
	t.Cleanup(func() { store = saved })

	if err := SaveOutbox([]string{"a@b.c"}); err != nil {
		t.Errorf("SaveOutbox = %v", err)
	}
	if got := LoadOutbox(); got != nil {
		t.Errorf("LoadOutbox = %v, want nil", got)
	}
}
