package factory

import (
	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChef spawns the player character centred on (x, y).
func CreateChef(ecs *ecs.ECS, x, y float64, stock map[cfg.TrapKind]int) *donburi.Entry {
	chef := archetypes.Chef.Spawn(ecs)
	space := MustSpace(ecs.World)

	tag := contactTag(tags.KindChef, tags.SensorNone, chef)
	body, shape := newCircleBody(space.Space, x, y, cfg.Chef.Radius, cfg.Chef.Mass, tags.CollisionChef, tag)

	components.Body.SetValue(chef, components.BodyData{
		Body:     body,
		Shapes:   []*cp.Shape{shape},
		Radius:   cfg.Chef.Radius,
		MaxSpeed: cfg.Chef.MoveSpeed * 3,
	})
	components.Chef.SetValue(chef, components.NewChef(stock))
	components.Health.SetValue(chef, components.HealthData{
		Current: cfg.Chef.MaxHealth,
		Max:     cfg.Chef.MaxHealth,
	})

	return chef
}

// FindChef returns the chef entry, if spawned.
func FindChef(w donburi.World) (*donburi.Entry, bool) {
	return tags.Chef.First(w)
}
