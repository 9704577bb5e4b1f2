package systems

import (
	"testing"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func pilotInput(t *testing.T, w *ecs.ECS) *components.InputData {
	t.Helper()
	return components.Input.Get(mustLevel(t, w))
}

func TestAutopilotNeedsEnabling(t *testing.T) {
	w := newKitchen(t)
	UpdateAutopilot(w)
	assert.Equal(t, components.InputSnapshot{}, pilotInput(t, w).Current)

	require.True(t, EnableAutopilot(w))
	require.True(t, EnableAutopilot(w), "enabling twice is harmless")
	UpdateAutopilot(w)
	assert.Equal(t, 1, components.Autopilot.Get(mustLevel(t, w)).Decisions)
}

func TestAutopilotSlapsNearbyChicken(t *testing.T) {
	w := newKitchen(t)
	require.True(t, EnableAutopilot(w))
	spawnChicken(t, w, "Nugget", 340, 240)

	UpdateAutopilot(w)
	in := pilotInput(t, w)
	assert.True(t, in.JustPressed(cfg.ActionSlap))
	assert.Greater(t, in.Current.MoveX, 0.0, "faces the chicken")

	// released until the next decision
	UpdateAutopilot(w)
	assert.False(t, in.Current.Pressed(cfg.ActionSlap))
}

func TestAutopilotWalksToStoveThenCooks(t *testing.T) {
	w := newKitchen(t)
	require.True(t, EnableAutopilot(w))

	UpdateAutopilot(w)
	in := pilotInput(t, w)
	assert.Less(t, in.Current.MoveX, 0.0, "stove is up and to the left")
	assert.Less(t, in.Current.MoveY, 0.0)
	assert.False(t, in.Current.Pressed(cfg.ActionCook))

	components.Chef.Get(mustChef(t, w)).EnterStove()
	components.Autopilot.Get(mustLevel(t, w)).DecisionTimer = 0
	UpdateAutopilot(w)
	assert.True(t, in.Current.Pressed(cfg.ActionCook))

	// cooking is held between decisions
	UpdateAutopilot(w)
	assert.True(t, in.Current.Pressed(cfg.ActionCook))
}

func TestAutopilotTrapsACrowd(t *testing.T) {
	w := newKitchen(t)
	require.True(t, EnableAutopilot(w))
	spawnChicken(t, w, "Nugget", 420, 240)
	spawnChicken(t, w, "Nugget", 430, 260)
	spawnChicken(t, w, "Nugget", 430, 220)

	UpdateAutopilot(w)
	in := pilotInput(t, w)
	placed := in.Current.Pressed(cfg.ActionTrapLure) ||
		in.Current.Pressed(cfg.ActionTrapSlow) ||
		in.Current.Pressed(cfg.ActionTrapFire)
	assert.True(t, placed)
}
