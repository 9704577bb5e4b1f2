package factory

import (
	"log"

	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChicken spawns a chicken of the named type chasing chef.
// Unknown type names fall back to Nugget.
func CreateChicken(ecs *ecs.ECS, typeName string, x, y float64, chef donburi.Entity) *donburi.Entry {
	chickenType, ok := cfg.ChickenType(typeName)
	if !ok {
		log.Printf("factory: unknown chicken type %q, using Nugget", typeName)
		typeName = "Nugget"
		chickenType, _ = cfg.ChickenType(typeName)
	}

	chicken := archetypes.Chicken.Spawn(ecs)
	space := MustSpace(ecs.World)

	bodyTag := contactTag(tags.KindChicken, tags.SensorNone, chicken)
	body, shape := newCircleBody(space.Space, x, y, chickenType.Radius, chickenType.Mass, tags.CollisionChicken, bodyTag)

	// Hurtbox on the same body, so chef attacks register slightly before bodies touch
	hurtbox := space.Space.AddShape(cp.NewCircle(body, chickenType.HurtboxRadius, cp.Vector{}))
	hurtbox.SetSensor(true)
	hurtbox.SetCollisionType(tags.CollisionChickenHurtbox)
	hurtbox.UserData = contactTag(tags.KindChicken, tags.SensorHurtbox, chicken)

	components.Body.SetValue(chicken, components.BodyData{
		Body:     body,
		Shapes:   []*cp.Shape{shape, hurtbox},
		Radius:   chickenType.Radius,
		MaxSpeed: chickenType.MaxSpeed,
	})
	components.Chicken.SetValue(chicken, components.NewChicken(typeName, chickenType, chef))
	components.AI.SetValue(chicken, components.NewAI())
	components.AttackLifecycle.SetValue(chicken, components.NewAttackLifecycle(chickenType))

	return chicken
}
