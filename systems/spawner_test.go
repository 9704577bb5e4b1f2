package systems

import (
	"testing"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

type spawned struct {
	Type string
	X, Y float64
}

func spawnLog(w *ecs.ECS) []spawned {
	var out []spawned
	for _, e := range live(w, tags.Chicken) {
		p := components.Body.Get(e).Position()
		out = append(out, spawned{components.Chicken.Get(e).TypeName, p.X, p.Y})
	}
	return out
}

func TestSpawnerIsDeterministic(t *testing.T) {
	run := func() []spawned {
		w := newKitchen(t)
		wave := components.Wave.Get(mustLevel(t, w))
		wave.Timer = cfg.DT / 2
		UpdateSpawner(w)
		return spawnLog(w)
	}
	a := run()
	b := run()
	require.Len(t, a, cfg.Waves.Size)
	assert.ElementsMatch(t, a, b)

	for _, s := range a {
		_, known := cfg.Chickens[s.Type]
		assert.True(t, known, s.Type)
		// jitter stays around one of the two spawn points
		assert.InDelta(t, 400, s.Y, 6)
	}
}

func TestSpawnerWaitsForTimer(t *testing.T) {
	w := newKitchen(t)
	wave := components.Wave.Get(mustLevel(t, w))
	wave.Timer = 1

	UpdateSpawner(w)
	assert.Zero(t, CountChickens(w))
	assert.InDelta(t, 1-cfg.DT, wave.Timer, 1e-9)
}

func TestSpawnerRespectsMaxAlive(t *testing.T) {
	w := newKitchen(t)
	wave := components.Wave.Get(mustLevel(t, w))
	wave.Size = 5
	wave.MaxAlive = 2
	chef := mustChef(t, w).Entity()

	assert.Equal(t, 2, SpawnWave(w, wave, chef))
	assert.Equal(t, 0, SpawnWave(w, wave, chef))
	assert.Equal(t, 2, CountChickens(w))
}

func TestSpawnerStopsAfterCount(t *testing.T) {
	w := newKitchen(t)
	wave := components.Wave.Get(mustLevel(t, w))
	wave.Count = 1
	wave.Timer = cfg.DT / 2

	UpdateSpawner(w)
	require.True(t, wave.Done())
	before := CountChickens(w)

	wave.Timer = 0
	UpdateSpawner(w)
	assert.Equal(t, before, CountChickens(w))
}

func TestWeightedTypes(t *testing.T) {
	w := newKitchen(t)
	wave := components.Wave.Get(mustLevel(t, w))
	wave.Probabilities = map[string]float64{"Dino": 1}
	wave.MaxAlive = 0
	wave.Size = 10

	SpawnWave(w, wave, mustChef(t, w).Entity())
	for _, s := range spawnLog(w) {
		assert.Equal(t, "Dino", s.Type)
	}
}
