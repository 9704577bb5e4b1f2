package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoChef   = errors.New("level has no chef spawn")
	ErrNoSpawns = errors.New("level has no chicken spawns")
	ErrNoStove  = errors.New("level has no stove")
)

// Object group and layer names used by kitchen levels.
const (
	GroupWalls  = "Walls"
	GroupStoves = "Stoves"
	GroupSpawns = "Spawns"
	GroupChef   = "Chef"
	GroupTraps  = "Traps"
	GroupLevel  = "Level"
	LayerWalls  = "walls"
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (tools).
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:  levelMap.TileWidth,
		Settings: Settings{
			Name:         strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
			SpawnWeights: map[string]float64{},
			TrapStock:    map[string]int{},
		},
	}

	// Solid tiles from the walls layer, if the level uses one
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Walls = append(data.Walls, Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH})
			}
		}
		break
	}

	chefFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupWalls:
				data.Walls = append(data.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case GroupStoves:
				data.Stoves = append(data.Stoves, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case GroupSpawns:
				data.ChickenSpawns = append(data.ChickenSpawns, Point{X: o.X, Y: o.Y})
			case GroupChef:
				data.ChefSpawn = Point{X: o.X, Y: o.Y}
				chefFound = true
			case GroupTraps:
				data.Traps = append(data.Traps, TrapSpawn{Kind: o.Properties.GetString("kind"), X: o.X, Y: o.Y})
			case GroupLevel:
				readSettings(&data.Settings, o.Properties)
			}
		}
	}

	if !chefFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoChef)
	}
	if len(data.ChickenSpawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawns)
	}
	if len(data.Stoves) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoStove)
	}

	// Sort spawns for a stable order under a fixed seed
	sort.Slice(data.ChickenSpawns, func(i, j int) bool {
		a, b := data.ChickenSpawns[i], data.ChickenSpawns[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	return data, nil
}

// readSettings copies level properties. Keys "spawn.<Type>" and
// "trapStock.<Kind>" fill the weight and stock tables.
func readSettings(s *Settings, props tiled.Properties) {
	for _, p := range props {
		switch {
		case p.Name == "name":
			s.Name = p.Value
		case p.Name == "temperatureMax":
			s.TemperatureMax = props.GetInt(p.Name)
		case p.Name == "reductionPerAttack":
			s.ReductionPerAttack = props.GetInt(p.Name)
		case p.Name == "waveGap":
			s.WaveGap = props.GetFloat(p.Name)
		case p.Name == "waveSize":
			s.WaveSize = props.GetInt(p.Name)
		case p.Name == "waveCount":
			s.WaveCount = props.GetInt(p.Name)
		case strings.HasPrefix(p.Name, "spawn."):
			s.SpawnWeights[strings.TrimPrefix(p.Name, "spawn.")] = props.GetFloat(p.Name)
		case strings.HasPrefix(p.Name, "trapStock."):
			s.TrapStock[strings.TrimPrefix(p.Name, "trapStock.")] = props.GetInt(p.Name)
		}
	}
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*LevelData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
