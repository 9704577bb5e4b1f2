package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// WaveData drives chicken spawning for a level.
type WaveData struct {
	Timer         float64 // seconds until the next wave
	Gap           float64
	Size          int
	Count         int // waves to spawn, 0 = unlimited
	Spawned       int // waves spawned so far
	MaxAlive      int
	Probabilities map[string]float64
	SpawnPoints   []dmath.Vec2
	Rand          *rand.Rand
}

var Wave = donburi.NewComponentType[WaveData]()

// Done reports whether every wave has been spawned.
func (w *WaveData) Done() bool {
	return w.Count > 0 && w.Spawned >= w.Count
}

// PickType chooses a chicken type by weight. order fixes the iteration
// order so the same seed always yields the same sequence.
func (w *WaveData) PickType(order []string) string {
	total := 0.0
	for _, name := range order {
		total += w.Probabilities[name]
	}
	if total <= 0 {
		return order[0]
	}
	roll := w.Rand.Float64() * total
	for _, name := range order {
		p := w.Probabilities[name]
		if roll < p {
			return name
		}
		roll -= p
	}
	return order[len(order)-1]
}

// PickSpawn chooses a spawn point uniformly.
func (w *WaveData) PickSpawn() (dmath.Vec2, bool) {
	if len(w.SpawnPoints) == 0 {
		return dmath.Vec2{}, false
	}
	return w.SpawnPoints[w.Rand.Intn(len(w.SpawnPoints))], true
}
