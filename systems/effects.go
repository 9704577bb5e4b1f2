package systems

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ticks timed effects: burns on chickens, lingering traps,
// and the lifetimes of slaps and bullets.
func UpdateEffects(ecs *ecs.ECS) {
	dt := cfg.DT
	var expired []*donburi.Entry

	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		chicken := components.Chicken.Get(e)
		if dmg := chicken.TickBurn(dt, cfg.Combat.BurnDamagePerSecond); dmg > 0 {
			if chicken.TakeDamage(dmg) {
				expired = append(expired, e)
			}
		}
	})

	tags.Trap.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		if components.Trap.Get(e).Tick(dt) {
			expired = append(expired, e)
		}
	})

	space := factory.MustSpace(ecs.World)

	tags.Slap.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		hitbox := components.Hitbox.Get(e)
		hitbox.LifeTime -= dt
		owner, ok := factory.Lookup(ecs.World, hitbox.OwnerEntity)
		if hitbox.LifeTime <= 0 || !ok {
			expired = append(expired, e)
			return
		}
		// Slaps stay in front of the chef
		pos := components.Body.Get(owner).Position()
		pos.X += hitbox.Offset.X
		pos.Y += hitbox.Offset.Y
		components.Body.Get(e).SetPosition(pos)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		hitbox := components.Hitbox.Get(e)
		hitbox.LifeTime -= dt
		pos := components.Body.Get(e).Position()
		if hitbox.LifeTime <= 0 || space.Blocked(pos.X, pos.Y) {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		factory.MarkRemoved(e)
	}
}
