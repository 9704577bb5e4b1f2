package systems

import (
	"log"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel advances the level clock and settles the outcome: won once
// the stove is fully cooked, lost when the chef runs out of health.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return
	}
	state := components.LevelState.Get(levelEntry)
	if state.Over() {
		return
	}
	state.Frame++
	state.Elapsed += cfg.DT

	if components.Temperature.Get(levelEntry).IsCooked() {
		state.Outcome = components.OutcomeWon
	} else if chef, ok := factory.FindChef(ecs.World); ok && components.Health.Get(chef).Dead() {
		state.Outcome = components.OutcomeLost
	}

	if state.Over() {
		log.Printf("level: %s %s after %.1fs, %d chickens removed",
			state.Name, state.Outcome, state.Elapsed, state.ChickensRemoved)
	}
}

// LevelOver reports whether the running level has an outcome.
func LevelOver(ecs *ecs.ECS) bool {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return false
	}
	return components.LevelState.Get(levelEntry).Over()
}

// WithLevelOverCheck wraps a system to skip execution once the level is over.
func WithLevelOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if LevelOver(e) {
			return
		}
		system(e)
	}
}
