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

// CreateSlap spawns the chef's melee hitbox in front of the chef.
func CreateSlap(ecs *ecs.ECS, chef *donburi.Entry) *donburi.Entry {
	chefData := components.Chef.Get(chef)
	pos := components.Body.Get(chef).Position()
	offset := dmath.Vec2{X: chefData.Facing.X * cfg.Chef.SlapReach, Y: chefData.Facing.Y * cfg.Chef.SlapReach}

	slap := archetypes.Slap.Spawn(ecs)
	space := MustSpace(ecs.World)

	tag := contactTag(tags.KindSlap, tags.SensorHitbox, slap)
	body, shape := newSensorCircle(space.Space, pos.X+offset.X, pos.Y+offset.Y, cfg.Chef.SlapRadius, tags.CollisionSlap, tag)

	components.Body.SetValue(slap, components.BodyData{Body: body, Shapes: []*cp.Shape{shape}, Radius: cfg.Chef.SlapRadius})
	components.Hitbox.SetValue(slap, components.HitboxData{
		OwnerEntity: chef.Entity(),
		Damage:      cfg.Chef.SlapDamage,
		LifeTime:    cfg.Chef.SlapLifetime,
		Offset:      offset,
		Piercing:    true,
		HitEntities: make(map[donburi.Entity]bool),
	})
	return slap
}

// CreateBullet throws a projectile from the chef along its facing.
func CreateBullet(ecs *ecs.ECS, chef *donburi.Entry) *donburi.Entry {
	chefData := components.Chef.Get(chef)
	pos := components.Body.Get(chef).Position()
	start := cfg.Chef.Radius + cfg.Chef.BulletRadius

	bullet := archetypes.Bullet.Spawn(ecs)
	space := MustSpace(ecs.World)

	tag := contactTag(tags.KindBullet, tags.SensorHitbox, bullet)
	body, shape := newSensorCircle(space.Space,
		pos.X+chefData.Facing.X*start, pos.Y+chefData.Facing.Y*start,
		cfg.Chef.BulletRadius, tags.CollisionBullet, tag)
	vel := dmath.Vec2{X: chefData.Facing.X * cfg.Chef.BulletSpeed, Y: chefData.Facing.Y * cfg.Chef.BulletSpeed}
	body.SetVelocity(vel.X, vel.Y)

	components.Body.SetValue(bullet, components.BodyData{Body: body, Shapes: []*cp.Shape{shape}, Radius: cfg.Chef.BulletRadius})
	components.Hitbox.SetValue(bullet, components.HitboxData{
		OwnerEntity: chef.Entity(),
		Damage:      cfg.Chef.BulletDamage,
		LifeTime:    cfg.Chef.BulletLifetime,
		Velocity:    vel,
		HitEntities: make(map[donburi.Entity]bool),
	})
	return bullet
}
