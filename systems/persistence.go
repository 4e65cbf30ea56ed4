package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/herofield/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// itemStore is the subset of *gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the local data store for settings and the outbox
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk, falling back to defaults
func LoadSettings() cfg.Settings {
	settings := cfg.DefaultSettings()
	if !loadJSON(cfg.Persistence.SettingsKey, "settings", &settings) {
		return cfg.DefaultSettings()
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s cfg.Settings) error {
	return saveJSON(cfg.Persistence.SettingsKey, "settings", s)
}

// ApplySavedSettings applies loaded settings before the first frame
func ApplySavedSettings(s cfg.Settings) {
	ebiten.SetFullscreen(s.Fullscreen)
	cfg.C.FieldEnabled = s.FieldEnabled
}

// LoadOutbox loads the queued waitlist addresses
func LoadOutbox() []string {
	var outbox []string
	if !loadJSON(cfg.Persistence.OutboxKey, "waitlist outbox", &outbox) {
		return nil
	}
	return outbox
}

// SaveOutbox saves the queued waitlist addresses
func SaveOutbox(outbox []string) error {
	return saveJSON(cfg.Persistence.OutboxKey, "waitlist outbox", outbox)
}

func loadJSON(key, what string, v any) bool {
	if store == nil {
		return false
	}
	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", what, err)
		return false
	}
	if len(data) == 0 {
		// Nothing saved yet
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", what, err)
		return false
	}
	return true
}

func saveJSON(key, what string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", what, err)
		return err
	}
	if err := store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", what, err)
		return err
	}
	return nil
}
