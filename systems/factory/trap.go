package factory

import (
	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateTrap places a trap of kind centred on (x, y).
func CreateTrap(ecs *ecs.ECS, kind cfg.TrapKind, x, y float64) *donburi.Entry {
	trapType := cfg.Traps.Types[kind]
	trap := archetypes.Trap.Spawn(ecs)
	space := MustSpace(ecs.World)

	tag := contactTag(tags.KindTrap, components.SensorForTrap(kind), trap)
	var body *cp.Body
	var shape *cp.Shape
	bd := components.BodyData{Radius: trapType.Radius}
	if trapType.Box {
		side := trapType.Radius * 2
		body, shape = newSensorBox(space.Space, x, y, side, side, tags.CollisionTrap, tag)
		bd.Width, bd.Height = side, side
	} else {
		body, shape = newSensorCircle(space.Space, x, y, trapType.Radius, tags.CollisionTrap, tag)
	}
	bd.Body = body
	bd.Shapes = []*cp.Shape{shape}

	components.Body.SetValue(trap, bd)
	components.Trap.SetValue(trap, components.NewTrap(kind, dmath.Vec2{X: x, Y: y}, trapType))

	return trap
}
