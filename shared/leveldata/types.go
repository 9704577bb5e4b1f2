// Package leveldata parses TMX kitchen levels into plain data.
// It has no dependencies on ebitengine, donburi, or chipmunk.
package leveldata

// Rect is an axis-aligned rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in level pixels.
type Point struct {
	X, Y float64
}

// TrapSpawn is a trap placed by the level designer.
type TrapSpawn struct {
	Kind string
	X, Y float64
}

// Settings are per-level overrides. Zero values mean "use the config default".
type Settings struct {
	Name               string
	TemperatureMax     int
	ReductionPerAttack int
	WaveGap            float64
	WaveSize           int
	WaveCount          int
	SpawnWeights       map[string]float64
	TrapStock          map[string]int
}

// LevelData holds everything the game needs from one TMX file.
type LevelData struct {
	Settings      Settings
	MapWidth      int
	MapHeight     int
	TileSize      int
	Walls         []Rect
	Stoves        []Rect
	ChickenSpawns []Point
	ChefSpawn     Point
	Traps         []TrapSpawn
}
