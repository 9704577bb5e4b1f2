package factory

import (
	"math"

	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/gamemath"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateAttack spawns the AttackInstance for owner's current strike and
// links it back to the owner's lifecycle. Melee kinds are armed at once,
// projectiles and explosions arm when they land or detonate.
func CreateAttack(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	chicken := components.Chicken.Get(owner)
	lifecycle := components.AttackLifecycle.Get(owner)
	t := chicken.TypeConfig
	origin := components.Body.Get(owner).Position()
	dest := lifecycle.Destination

	dirX, dirY, _ := gamemath.Direction(origin.X, origin.Y, dest.X, dest.Y)
	if dirX == 0 && dirY == 0 {
		dirX = 1
		if !chicken.FacingRight {
			dirX = -1
		}
	}

	attack := archetypes.Attack.Spawn(ecs)
	space := MustSpace(ecs.World)

	data := components.AttackData{
		Kind:        lifecycle.Kind,
		Owner:       owner.Entity(),
		Target:      chicken.Chef,
		Origin:      origin,
		Position:    origin,
		Destination: dest,
		Angle:       math.Atan2(dirY, dirX),
		Radius:      t.HitboxRadius,
		Damage:      t.Damage,
	}

	switch lifecycle.Kind {
	case cfg.AttackBasic, cfg.AttackKnockback:
		data.Position = dmath.Vec2{X: origin.X + dirX*t.HitboxReach, Y: origin.Y + dirY*t.HitboxReach}
	case cfg.AttackProjectile:
		data.Lob = gween.New(0, 1, float32(t.AttackDuration), ease.Linear)
	case cfg.AttackExplosion:
		data.Radius = t.BlastRadius
		data.Fuse = gween.New(0, float32(t.BlastRadius), float32(t.AttackDuration), ease.OutCubic)
	}

	body := space.Space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: data.Position.X, Y: data.Position.Y})
	body.UserData = attack.Entity()

	components.Body.SetValue(attack, components.BodyData{Body: body, Radius: data.Radius})
	components.Attack.SetValue(attack, data)

	switch lifecycle.Kind {
	case cfg.AttackBasic, cfg.AttackKnockback, cfg.AttackCharge:
		ArmAttack(ecs, attack)
	}

	lifecycle.Instance = attack.Entity()
	return attack
}

// ArmAttack adds the hit shape to an attack instance. Calling it twice is a no-op.
func ArmAttack(ecs *ecs.ECS, attack *donburi.Entry) {
	data := components.Attack.Get(attack)
	if data.Armed {
		return
	}
	bd := components.Body.Get(attack)
	space := MustSpace(ecs.World)

	shape := space.Space.AddShape(cp.NewCircle(bd.Body, data.Radius, cp.Vector{}))
	shape.SetSensor(true)
	shape.SetCollisionType(tags.CollisionAttack)
	shape.UserData = contactTag(tags.KindAttack, tags.SensorHitbox, attack)

	bd.Shapes = append(bd.Shapes, shape)
	bd.Radius = data.Radius
	data.Armed = true
}
