package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateLevel builds a playable kitchen from parsed level data: the physics
// space, walls, stoves, the chef, pre-placed traps and the level entry that
// carries temperature, waves and input. The seed drives the wave spawner.
func CreateLevel(ecs *ecs.ECS, data *leveldata.LevelData, seed int64) *donburi.Entry {
	tileSize := data.TileSize
	if tileSize <= 0 {
		tileSize = cfg.Physics.TileSize
	}
	CreateSpace(ecs, float64(data.MapWidth), float64(data.MapHeight), tileSize)

	for _, w := range data.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, s := range data.Stoves {
		CreateStove(ecs, s.X, s.Y, s.W, s.H)
	}

	chef := CreateChef(ecs, data.ChefSpawn.X, data.ChefSpawn.Y, trapStock(data.Settings))

	for _, t := range data.Traps {
		kind, err := cfg.ParseTrapKind(t.Kind)
		if err != nil {
			log.Printf("factory: skipping trap at %.0f,%.0f: %v", t.X, t.Y, err)
			continue
		}
		CreateTrap(ecs, kind, t.X, t.Y)
	}

	level := archetypes.Level.Spawn(ecs)
	s := data.Settings

	components.LevelState.SetValue(level, components.LevelStateData{Name: s.Name})
	components.Temperature.SetValue(level, components.NewTemperature(
		pick(s.TemperatureMax, cfg.Temperature.Max),
		cfg.Temperature.CookRate,
		pick(s.ReductionPerAttack, cfg.Temperature.ReductionPerAttack),
	))

	spawns := make([]dmath.Vec2, 0, len(data.ChickenSpawns))
	for _, p := range data.ChickenSpawns {
		spawns = append(spawns, dmath.Vec2{X: p.X, Y: p.Y})
	}
	probabilities := cfg.Waves.Probabilities
	if len(s.SpawnWeights) > 0 {
		probabilities = s.SpawnWeights
	}
	gap := cfg.Waves.Gap
	if s.WaveGap > 0 {
		gap = s.WaveGap
	}
	components.Wave.SetValue(level, components.WaveData{
		Timer:         cfg.Waves.First,
		Gap:           gap,
		Size:          pick(s.WaveSize, cfg.Waves.Size),
		Count:         pick(s.WaveCount, cfg.Waves.Count),
		MaxAlive:      cfg.Waves.MaxAlive,
		Probabilities: probabilities,
		SpawnPoints:   spawns,
		Rand:          rand.New(rand.NewSource(seed)),
	})

	log.Printf("factory: level %q built, chef at %.0f,%.0f, %d walls, %d stoves",
		s.Name, components.Body.Get(chef).Position().X, components.Body.Get(chef).Position().Y,
		len(data.Walls), len(data.Stoves))

	return level
}

// FindLevel returns the level entry, if built.
func FindLevel(w donburi.World) (*donburi.Entry, bool) {
	return components.LevelState.First(w)
}

// trapStock overlays the level's trap stock on the configured default.
func trapStock(s leveldata.Settings) map[cfg.TrapKind]int {
	stock := make(map[cfg.TrapKind]int, len(cfg.Chef.TrapStock))
	for k, v := range cfg.Chef.TrapStock {
		stock[k] = v
	}
	for name, n := range s.TrapStock {
		kind, err := cfg.ParseTrapKind(name)
		if err != nil {
			log.Printf("factory: ignoring trap stock %q: %v", name, err)
			continue
		}
		stock[kind] = n
	}
	return stock
}

func pick(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
