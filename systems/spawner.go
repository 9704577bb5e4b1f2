package systems

import (
	"log"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnJitter spreads chickens that share a spawn point.
const spawnJitter = 12.0

// UpdateSpawner counts down the wave timer and spawns a wave when it fires.
func UpdateSpawner(ecs *ecs.ECS) {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return
	}
	chefEntry, ok := factory.FindChef(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(levelEntry)
	if wave.Done() {
		return
	}

	wave.Timer -= cfg.DT
	if wave.Timer > 0 {
		return
	}
	wave.Timer = wave.Gap

	n := SpawnWave(ecs, wave, chefEntry.Entity())
	wave.Spawned++
	log.Printf("spawner: wave %d spawned %d chickens", wave.Spawned, n)
}

// SpawnWave creates up to wave.Size chickens, respecting MaxAlive.
func SpawnWave(ecs *ecs.ECS, wave *components.WaveData, chef donburi.Entity) int {
	n := wave.Size
	if wave.MaxAlive > 0 {
		if room := wave.MaxAlive - CountChickens(ecs); room < n {
			n = room
		}
	}

	spawned := 0
	for i := 0; i < n; i++ {
		p, ok := wave.PickSpawn()
		if !ok {
			break
		}
		typeName := wave.PickType(cfg.ChickenOrder)
		x := p.X + (wave.Rand.Float64()-0.5)*spawnJitter
		y := p.Y + (wave.Rand.Float64()-0.5)*spawnJitter
		factory.CreateChicken(ecs, typeName, x, y, chef)
		spawned++
	}
	return spawned
}

// CountChickens returns the number of chickens not marked removed.
func CountChickens(ecs *ecs.ECS) int {
	n := 0
	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		if !factory.IsRemoved(e) {
			n++
		}
	})
	return n
}
