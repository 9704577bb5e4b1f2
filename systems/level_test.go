package systems

import (
	"testing"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestLevelWonWhenCooked(t *testing.T) {
	w := newKitchen(t)
	level := mustLevel(t, w)
	temp := components.Temperature.Get(level)

	UpdateLevel(w)
	assert.False(t, LevelOver(w))

	temp.Value = temp.Max
	UpdateLevel(w)
	state := components.LevelState.Get(level)
	assert.Equal(t, components.OutcomeWon, state.Outcome)
	assert.Equal(t, 2, state.Frame)
	assert.InDelta(t, 2*cfg.DT, state.Elapsed, 1e-12)

	// the clock stops once the level is over
	UpdateLevel(w)
	assert.Equal(t, 2, state.Frame)
}

func TestLevelLostWhenChefDies(t *testing.T) {
	w := newKitchen(t)
	components.Health.Get(mustChef(t, w)).Damage(cfg.Chef.MaxHealth)

	UpdateLevel(w)
	assert.Equal(t, components.OutcomeLost, components.LevelState.Get(mustLevel(t, w)).Outcome)
	assert.True(t, LevelOver(w))
}

func TestGameplayChecksStopSystems(t *testing.T) {
	w := newKitchen(t)
	calls := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	sys(w)
	GetOrCreatePause(w).IsPaused = true
	sys(w)
	assert.Equal(t, 1, calls, "paused")

	GetOrCreatePause(w).IsPaused = false
	components.LevelState.Get(mustLevel(t, w)).Outcome = components.OutcomeLost
	sys(w)
	assert.Equal(t, 1, calls, "level over")
}

func TestPauseToggles(t *testing.T) {
	w := newKitchen(t)
	in := components.Input.Get(mustLevel(t, w))
	var pressed components.InputSnapshot
	pressed.Actions[cfg.ActionPause] = true

	in.Push(pressed)
	UpdatePause(w)
	assert.True(t, GetOrCreatePause(w).IsPaused)

	in.Push(components.InputSnapshot{})
	UpdatePause(w)
	in.Push(pressed)
	UpdatePause(w)
	assert.False(t, GetOrCreatePause(w).IsPaused)
}

func TestCookingNeedsStove(t *testing.T) {
	w := newKitchen(t)
	level := mustLevel(t, w)
	chef := components.Chef.Get(mustChef(t, w))
	temp := components.Temperature.Get(level)

	var snap components.InputSnapshot
	snap.Actions[cfg.ActionCook] = true
	components.Input.Get(level).Push(snap)

	UpdateTemperature(w)
	assert.Zero(t, temp.Value)

	chef.EnterStove()
	UpdateTemperature(w)
	assert.Equal(t, temp.CookRate, temp.Value)
	assert.True(t, temp.Cooking)

	chef.KnockedTimer = 0.2
	UpdateTemperature(w)
	assert.Equal(t, temp.CookRate, temp.Value, "no cooking while knocked back")
}
