package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugGridColor   = color.RGBA{100, 100, 100, 255}
	debugSolidColor  = color.RGBA{0, 255, 255, 255}
	debugSensorColor = color.RGBA{0, 255, 0, 255}
)

// DrawDebug outlines the obstacle grid and every physics shape's bounds and
// labels chickens with their AI state. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug {
		return
	}
	space, ok := factory.GetSpace(ecs.World)
	if !ok {
		return
	}

	for _, obj := range space.Grid.Objects() {
		if !obj.HasTags(tags.ResolvWall) {
			continue
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, debugGridColor, false)
	}

	space.Space.EachShape(func(shape *cp.Shape) {
		bb := shape.BB()
		c := debugSolidColor
		if shape.Sensor() {
			c = debugSensorColor
		}
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, c, false)
	})

	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Body.Get(e).Position()
		ai := components.AI.Get(e)
		lifecycle := components.AttackLifecycle.Get(e)
		label := fmt.Sprintf("%s %s", ai.State(), lifecycle.Phase)
		ebitenutil.DebugPrintAt(screen, label, int(pos.X)-20, int(pos.Y)+12)
	})

	if n := space.Contacts.Len(); n > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("queued contacts: %d", n), 8, cfg.C.Height-20)
	}
}
