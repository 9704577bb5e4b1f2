package scenes

import (
	"testing"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBuildKitchenFromEmbeddedLevel(t *testing.T) {
	cfg.Reset()
	w, err := BuildKitchen(Options{Level: "kitchen", Seed: 3, Autopilot: true, Headless: true})
	require.NoError(t, err)

	level, ok := factory.FindLevel(w.World)
	require.True(t, ok)
	assert.Equal(t, "Kitchen", components.LevelState.Get(level).Name)
	assert.True(t, level.HasComponent(components.Autopilot))

	chef, ok := factory.FindChef(w.World)
	require.True(t, ok)
	assert.Equal(t, 2, components.Chef.Get(chef).TrapStock[cfg.TrapFire])

	traps := 0
	tags.Trap.Each(w.World, func(*donburi.Entry) { traps++ })
	assert.Equal(t, 2, traps)
	assert.Equal(t, 8, components.Wave.Get(level).Count)
}

func TestUnknownLevelFails(t *testing.T) {
	_, err := BuildKitchen(Options{Level: "pantry", Headless: true})
	assert.Error(t, err)
}

func TestAutopilotPlaysHeadless(t *testing.T) {
	cfg.Reset()
	w, err := BuildKitchen(Options{Level: "kitchen", Seed: 11, Autopilot: true, Headless: true})
	require.NoError(t, err)
	level, _ := factory.FindLevel(w.World)

	const frames = 20 * cfg.TPS
	for i := 0; i < frames && !systems.LevelOver(w); i++ {
		w.Update()
	}

	state := components.LevelState.Get(level)
	assert.Positive(t, state.Frame)
	assert.Positive(t, components.Autopilot.Get(level).Decisions)
	assert.Positive(t, components.Wave.Get(level).Spawned, "waves arrive while the chef cooks")
	if !state.Over() {
		assert.Equal(t, frames, state.Frame)
	}
}
