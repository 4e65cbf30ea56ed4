package config

// Settings is the persisted subset of user preferences
type Settings struct {
	Fullscreen   bool `json:"fullscreen"`
	FieldEnabled bool `json:"field_enabled"`
}

// DefaultSettings returns the settings used when nothing was saved yet
func DefaultSettings() Settings {
	return Settings{
		Fullscreen:   false,
		FieldEnabled: true,
	}
}
