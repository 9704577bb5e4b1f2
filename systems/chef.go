package systems

import (
	"log"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/gamemath"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var trapActions = []struct {
	action cfg.ActionID
	kind   cfg.TrapKind
}{
	{cfg.ActionTrapLure, cfg.TrapLure},
	{cfg.ActionTrapSlow, cfg.TrapSlow},
	{cfg.ActionTrapFire, cfg.TrapFire},
}

// UpdateChef applies this frame's input snapshot to the chef: movement,
// slaps, thrown bullets, trap placement and the kill-all debug command.
func UpdateChef(ecs *ecs.ECS) {
	chefEntry, ok := factory.FindChef(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(levelEntry)
	temp := components.Temperature.Get(levelEntry)
	chef := components.Chef.Get(chefEntry)
	body := components.Body.Get(chefEntry)
	dt := cfg.DT

	chef.InvulnTimer = tick(chef.InvulnTimer, dt)
	chef.KnockedTimer = tick(chef.KnockedTimer, dt)
	chef.SlapCooldown = tick(chef.SlapCooldown, dt)
	chef.BulletCooldown = tick(chef.BulletCooldown, dt)
	chef.TrapCooldown = tick(chef.TrapCooldown, dt)

	snap := input.Current

	// Movement. A knocked chef keeps the impulse velocity until control returns.
	if chef.KnockedTimer <= 0 {
		mx, my := gamemath.ClampLength(snap.MoveX, snap.MoveY, 1)
		if mx != 0 || my != 0 {
			fx, fy, _ := gamemath.Direction(0, 0, mx, my)
			chef.Facing = dmath.Vec2{X: fx, Y: fy}
		}
		if temp.Cooking {
			// Standing at the stove
			mx, my = 0, 0
		}
		body.SetVelocity(mx*cfg.Chef.MoveSpeed, my*cfg.Chef.MoveSpeed)
	}

	if input.JustPressed(cfg.ActionSlap) && chef.SlapCooldown <= 0 {
		factory.CreateSlap(ecs, chefEntry)
		chef.SlapCooldown = cfg.Chef.SlapCooldown
		temp.ReduceTemp(temp.ReductionPerAttack)
	}

	if input.JustPressed(cfg.ActionShoot) && chef.BulletCooldown <= 0 {
		factory.CreateBullet(ecs, chefEntry)
		chef.BulletCooldown = cfg.Chef.BulletCooldown
		temp.ReduceTemp(temp.ReductionPerAttack)
	}

	for _, ta := range trapActions {
		if input.JustPressed(ta.action) {
			PlaceTrap(ecs, chefEntry, ta.kind)
		}
	}

	if input.JustPressed(cfg.ActionKillAll) {
		n := KillAll(ecs)
		log.Printf("chef: kill all removed %d chickens", n)
	}
}

// PlaceTrap puts a trap of kind in front of the chef if the chef has one in
// stock and the spot is free. It reports whether a trap was placed.
func PlaceTrap(ecs *ecs.ECS, chefEntry *donburi.Entry, kind cfg.TrapKind) bool {
	chef := components.Chef.Get(chefEntry)
	if chef.TrapCooldown > 0 || chef.TrapStock[kind] <= 0 {
		return false
	}

	pos := components.Body.Get(chefEntry).Position()
	reach := cfg.Chef.Radius + cfg.Traps.Types[kind].Radius + 4
	at := dmath.Vec2{X: pos.X + chef.Facing.X*reach, Y: pos.Y + chef.Facing.Y*reach}

	if factory.MustSpace(ecs.World).Blocked(at.X, at.Y) {
		return false
	}
	if !chef.TakeTrap(kind) {
		return false
	}
	factory.CreateTrap(ecs, kind, at.X, at.Y)
	chef.TrapCooldown = cfg.Chef.TrapCooldown
	return true
}

// KillAll marks every chicken removed and returns how many were marked.
func KillAll(ecs *ecs.ECS) int {
	var victims []*donburi.Entry
	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		if !factory.IsRemoved(e) {
			victims = append(victims, e)
		}
	})
	for _, e := range victims {
		factory.MarkRemoved(e)
	}
	return len(victims)
}

// tick counts a timer down to zero.
func tick(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
