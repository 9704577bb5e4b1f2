package components

import (
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData holds the level's physics world, its obstacle grid and the
// contact events queued by the last step.
type SpaceData struct {
	Space    *cp.Space
	Grid     *resolv.Space
	Width    float64
	Height   float64
	Contacts *ContactQueue
}

var Space = donburi.NewComponentType[SpaceData]()

// Blocked reports whether the world point lies outside the level or in a
// grid cell occupied by a wall.
func (s *SpaceData) Blocked(x, y float64) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return true
	}
	if s.Grid == nil {
		return false
	}
	probe := resolv.NewObject(x-1, y-1, 2, 2)
	s.Grid.Add(probe)
	defer s.Grid.Remove(probe)
	return probe.Check(0, 0, tags.ResolvWall) != nil
}
