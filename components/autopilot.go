package components

import "github.com/yohamta/donburi"

// AutopilotData drives the chef without a player. It lives on the level
// entry when the headless simulator enables it.
type AutopilotData struct {
	DecisionTimer int
	Held          InputSnapshot // movement repeated between decisions
	NextTrap      int           // index into the placeable trap rotation
	Decisions     int
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
