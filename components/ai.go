package components

import (
	"context"

	"github.com/automoto/fowlplay/config"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// AIData is a chicken's controller. It lives on the chicken's entry, so it
// is removed together with the chicken.
type AIData struct {
	FSM *fsm.FSM

	// Force is this frame's movement request. When Impulse is set it is a
	// one-off impulse, otherwise a target velocity.
	Force   dmath.Vec2
	Impulse bool
	Frozen  bool // no movement request this frame
}

var AI = donburi.NewComponentType[AIData]()

// NewChickenFSM builds the chase/knockback/stunned/attack machine.
func NewChickenFSM() *fsm.FSM {
	return fsm.NewFSM(
		config.StateChase,
		fsm.Events{
			{Name: config.EventHit, Src: []string{config.StateChase}, Dst: config.StateKnockback},
			{Name: config.EventStun, Src: []string{config.StateKnockback}, Dst: config.StateStunned},
			{Name: config.EventRecover, Src: []string{config.StateStunned}, Dst: config.StateChase},
			{Name: config.EventAttack, Src: []string{config.StateChase}, Dst: config.StateAttack},
			{Name: config.EventFinish, Src: []string{config.StateAttack}, Dst: config.StateChase},
		},
		fsm.Callbacks{},
	)
}

func NewAI() AIData {
	return AIData{FSM: NewChickenFSM()}
}

// State returns the current state name.
func (a *AIData) State() string {
	return a.FSM.Current()
}

// Fire triggers event, returning false when it is not valid from the current state.
func (a *AIData) Fire(event string) bool {
	if !a.FSM.Can(event) {
		return false
	}
	return a.FSM.Event(context.Background(), event) == nil
}

// Request writes a velocity request for this frame.
func (a *AIData) Request(x, y float64) {
	a.Force = dmath.Vec2{X: x, Y: y}
	a.Impulse = false
	a.Frozen = false
}

// Push writes an impulse request for this frame.
func (a *AIData) Push(x, y float64) {
	a.Force = dmath.Vec2{X: x, Y: y}
	a.Impulse = true
	a.Frozen = false
}

// Hold zeroes the force request.
func (a *AIData) Hold() {
	a.Force = dmath.Vec2{}
	a.Impulse = false
	a.Frozen = true
}
