package systems

import (
	"testing"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/leveldata"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newKitchen builds a small level with a wall along the right edge, one
// stove in the top-left corner and the chef in the middle.
func newKitchen(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	w := ecs.NewECS(donburi.NewWorld())
	data := &leveldata.LevelData{
		Settings:  leveldata.Settings{Name: "test"},
		MapWidth:  640,
		MapHeight: 480,
		TileSize:  32,
		Walls:     []leveldata.Rect{{X: 576, Y: 0, W: 64, H: 480}},
		Stoves:    []leveldata.Rect{{X: 32, Y: 32, W: 64, H: 64}},
		ChickenSpawns: []leveldata.Point{
			{X: 100, Y: 400},
			{X: 400, Y: 400},
		},
		ChefSpawn: leveldata.Point{X: 320, Y: 240},
	}
	factory.CreateLevel(w, data, 7)
	return w
}

func mustChef(t *testing.T, w *ecs.ECS) *donburi.Entry {
	t.Helper()
	chef, ok := factory.FindChef(w.World)
	require.True(t, ok)
	return chef
}

func mustLevel(t *testing.T, w *ecs.ECS) *donburi.Entry {
	t.Helper()
	level, ok := factory.FindLevel(w.World)
	require.True(t, ok)
	return level
}

func spawnChicken(t *testing.T, w *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	t.Helper()
	return factory.CreateChicken(w, typeName, x, y, mustChef(t, w).Entity())
}

func tagFor(e *donburi.Entry, kind tags.Kind, sensor tags.Sensor) components.ContactTag {
	return components.ContactTag{Kind: kind, Sensor: sensor, Entity: e.Entity()}
}

func begin(a, b components.ContactTag) components.ContactEvent {
	return components.ContactEvent{Begin: true, A: a, B: b}
}

func end(a, b components.ContactTag) components.ContactEvent {
	return components.ContactEvent{Begin: false, A: a, B: b}
}

// live collects the entries carrying tag that are not marked removed.
func live(w *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w.World, func(e *donburi.Entry) {
		if !factory.IsRemoved(e) {
			out = append(out, e)
		}
	})
	return out
}
