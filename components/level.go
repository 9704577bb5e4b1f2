package components

import "github.com/yohamta/donburi"

// Outcome of a level.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "playing"
}

// LevelStateData tracks progress and outcome of the running level.
type LevelStateData struct {
	Name            string
	Frame           int
	Elapsed         float64
	Outcome         Outcome
	ChickensRemoved int
	Recorded        bool // result written to the save
}

var LevelState = donburi.NewComponentType[LevelStateData]()

func (l *LevelStateData) Over() bool {
	return l.Outcome != OutcomePlaying
}
