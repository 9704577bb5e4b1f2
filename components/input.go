package components

import (
	cfg "github.com/automoto/fowlplay/config"
	"github.com/yohamta/donburi"
)

// InputSnapshot is one frame of chef controls. It is produced once per
// frame by the keyboard poller or the autopilot and read by value.
type InputSnapshot struct {
	MoveX, MoveY float64 // each in [-1, 1]
	Actions      [cfg.ActionCount]bool
}

// Pressed reports whether action is held.
func (s InputSnapshot) Pressed(action cfg.ActionID) bool {
	return s.Actions[action]
}

// InputData stores the current and previous frame's snapshot.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  InputSnapshot
	Previous InputSnapshot
}

var Input = donburi.NewComponentType[InputData]()

// Push shifts Current into Previous and stores next.
func (in *InputData) Push(next InputSnapshot) {
	in.Previous = in.Current
	in.Current = next
}

// JustPressed reports a press that started this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current.Actions[action] && !in.Previous.Actions[action]
}
