package factory

import (
	"testing"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/leveldata"
	"github.com/automoto/fowlplay/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newLevel(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	w := ecs.NewECS(donburi.NewWorld())
	CreateLevel(w, &leveldata.LevelData{
		Settings: leveldata.Settings{
			Name:      "pantry",
			WaveSize:  4,
			TrapStock: map[string]int{"Lure": 5, "Glue": 1},
		},
		MapWidth:      320,
		MapHeight:     320,
		Walls:         []leveldata.Rect{{X: 0, Y: 0, W: 320, H: 32}},
		Stoves:        []leveldata.Rect{{X: 128, Y: 128, W: 32, H: 32}},
		ChickenSpawns: []leveldata.Point{{X: 64, Y: 64}},
		ChefSpawn:     leveldata.Point{X: 160, Y: 200},
		Traps: []leveldata.TrapSpawn{
			{Kind: "Slow", X: 100, Y: 100},
			{Kind: "Glue", X: 120, Y: 100},
		},
	}, 1)
	return w
}

func TestCreateLevel(t *testing.T) {
	w := newLevel(t)

	level, ok := FindLevel(w.World)
	require.True(t, ok)
	assert.Equal(t, "pantry", components.LevelState.Get(level).Name)
	assert.Equal(t, cfg.Temperature.Max, components.Temperature.Get(level).Max)

	wave := components.Wave.Get(level)
	assert.Equal(t, 4, wave.Size)
	assert.Equal(t, cfg.Waves.Gap, wave.Gap)
	assert.Len(t, wave.SpawnPoints, 1)

	chef, ok := FindChef(w.World)
	require.True(t, ok)
	stock := components.Chef.Get(chef).TrapStock
	assert.Equal(t, 5, stock[cfg.TrapLure])
	assert.Equal(t, cfg.Chef.TrapStock[cfg.TrapSlow], stock[cfg.TrapSlow])

	traps := 0
	tags.Trap.Each(w.World, func(*donburi.Entry) { traps++ })
	assert.Equal(t, 1, traps, "unknown trap kinds are skipped")

	space := MustSpace(w.World)
	assert.True(t, space.Blocked(100, 10))
	assert.False(t, space.Blocked(100, 100))
	assert.True(t, space.Blocked(-1, 100))
	assert.True(t, space.Blocked(100, 320))
}

func TestLookupAndDestroy(t *testing.T) {
	w := newLevel(t)
	chef, _ := FindChef(w.World)
	chicken := CreateChicken(w, "Nugget", 64, 64, chef.Entity())
	id := chicken.Entity()
	space := MustSpace(w.World)
	shapes := components.Body.Get(chicken).Shapes
	require.Len(t, shapes, 2)

	got, ok := Lookup(w.World, id)
	require.True(t, ok)
	assert.Equal(t, id, got.Entity())

	MarkRemoved(chicken)
	MarkRemoved(chicken)
	assert.True(t, IsRemoved(chicken))
	_, ok = Lookup(w.World, id)
	assert.False(t, ok, "removed entities are not found")

	Destroy(w, chicken)
	assert.False(t, w.World.Valid(id))
	for _, s := range shapes {
		assert.False(t, space.Space.ContainsShape(s))
	}
	_, ok = Lookup(w.World, id)
	assert.False(t, ok)
}

func TestUnknownChickenFallsBack(t *testing.T) {
	w := newLevel(t)
	chef, _ := FindChef(w.World)
	chicken := CreateChicken(w, "Turkey", 64, 64, chef.Entity())
	assert.Equal(t, "Nugget", components.Chicken.Get(chicken).TypeName)
}

func TestBulletFliesAlongFacing(t *testing.T) {
	w := newLevel(t)
	chef, _ := FindChef(w.World)
	components.Chef.Get(chef).Facing.X = 0
	components.Chef.Get(chef).Facing.Y = -1

	bullet := CreateBullet(w, chef)
	v := components.Body.Get(bullet).Velocity()
	assert.Zero(t, v.X)
	assert.Equal(t, -cfg.Chef.BulletSpeed, v.Y)
	assert.Less(t, components.Body.Get(bullet).Position().Y, 200.0)
}

func TestDestroyedWallFreesGrid(t *testing.T) {
	w := newLevel(t)
	space := MustSpace(w.World)
	wall := CreateWall(w, 200, 200, 32, 32)
	assert.True(t, space.Blocked(216, 216))
	assert.Equal(t, wall.Entity(), components.Object.Get(wall).Wall)

	Destroy(w, wall)
	assert.False(t, space.Blocked(216, 216))
}
