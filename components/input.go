package components

import (
	cfg "github.com/automoto/herofield/config"
	"github.com/yohamta/donburi"
)

// ActionState is one shortcut's edge state for the current tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData keeps two ticks of key state per page action.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action compares the two ticks for id.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
