package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/fowlplay/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LevelDir is the directory inside the embedded filesystem holding TMX files.
const LevelDir = "levels"

// LevelFS exposes the embedded levels for tools and tests.
func LevelFS() fs.FS {
	return levelFS
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels from the embedded filesystem.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levelFS}
}

// NewLevelLoaderFS reads levels from fsys, for example os.DirFS during development.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevels parses every level under LevelDir, ordered by name.
func (l *LevelLoader) LoadLevels() ([]*leveldata.LevelData, []string, error) {
	byName, names, err := leveldata.LoadAll(l.fsys, LevelDir)
	if err != nil {
		return nil, nil, err
	}
	levels := make([]*leveldata.LevelData, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels, names, nil
}

func (l *LevelLoader) MustLoadLevels() []*leveldata.LevelData {
	levels, _, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

// LoadLevel parses one level by stem name ("kitchen") or by path.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.LevelData, error) {
	path := name
	if _, err := fs.Stat(l.fsys, path); err != nil {
		path = fmt.Sprintf("%s/%s.tmx", LevelDir, name)
	}
	data, err := leveldata.Load(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return data, nil
}
