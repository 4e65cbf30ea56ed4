package systems

import (
	"github.com/automoto/herofield/components"
	cfg "github.com/automoto/herofield/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples the shortcut keys for this tick. Runs before the
// shortcut system.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	for id := range input.Current {
		input.Current[id] = anyKeyPressed(cfg.Input.Bindings[cfg.ActionID(id)].Keys)
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the edge state of a page action.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

// ShortcutHooks connects page shortcuts to the outside world.
type ShortcutHooks struct {
	Typing        func() bool // True while a text input has focus
	SetFullscreen func(bool)
	SetField      func(enabled bool)
	Quit          func()
}

// NewUpdateShortcuts returns a system that applies the page shortcuts and
// persists the settings they change.
func NewUpdateShortcuts(hooks ShortcutHooks) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		settings := GetOrCreateLanding(ecs).Settings
		typing := hooks.Typing != nil && hooks.Typing()

		if GetAction(input, cfg.ActionQuit).JustPressed && hooks.Quit != nil {
			hooks.Quit()
			return
		}
		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings.DebugOverlay = !settings.DebugOverlay
		}
		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			settings.Fullscreen = !settings.Fullscreen
			if hooks.SetFullscreen != nil {
				hooks.SetFullscreen(settings.Fullscreen)
			}
			fullscreen := settings.Fullscreen
			saveSetting(func(s *cfg.Settings) { s.Fullscreen = fullscreen })
		}
		if GetAction(input, cfg.ActionToggleField).JustPressed && !typing {
			settings.FieldEnabled = !settings.FieldEnabled
			if hooks.SetField != nil {
				hooks.SetField(settings.FieldEnabled)
			}
			enabled := settings.FieldEnabled
			saveSetting(func(s *cfg.Settings) { s.FieldEnabled = enabled })
		}
	}
}

// saveSetting rewrites one saved preference. The session value of the
// others may come from a command-line override and is not written back.
func saveSetting(update func(*cfg.Settings)) {
	saved := LoadSettings()
	update(&saved)
	_ = SaveSettings(saved)
}
