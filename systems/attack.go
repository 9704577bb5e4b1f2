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

// UpdateAttacks advances every chicken's attack lifecycle, spawns attack
// instances on the strike signal and steers chickens that are mid-attack.
func UpdateAttacks(ecs *ecs.ECS) {
	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		updateLifecycle(ecs, e, cfg.DT)
	})
}

func updateLifecycle(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	lifecycle := components.AttackLifecycle.Get(e)
	if !lifecycle.IsAttacking() {
		return
	}
	chicken := components.Chicken.Get(e)
	ai := components.AI.Get(e)

	done := lifecycle.Advance(dt)

	if lifecycle.MakeAttack() {
		if lifecycle.Kind == cfg.AttackCharge {
			dest := lifecycle.Destination
			if factory.MustSpace(ecs.World).Blocked(dest.X, dest.Y) {
				lifecycle.Cancel()
				ai.Request(0, 0)
				return
			}
		}
		factory.CreateAttack(ecs, e)
	}

	if done {
		completeAttack(ecs.World, chicken)
		ai.Request(0, 0)
		return
	}

	switch {
	case lifecycle.Rooted():
		ai.Request(0, 0)
	case lifecycle.Phase == components.PhaseActive && lifecycle.Kind == cfg.AttackCharge:
		steerCharge(ecs.World, e, lifecycle, chicken, ai)
	default:
		ai.Request(0, 0)
	}
}

// steerCharge rams toward the snapshot destination and ends the strike on arrival.
func steerCharge(w donburi.World, e *donburi.Entry, lifecycle *components.AttackLifecycleData, chicken *components.ChickenData, ai *components.AIData) {
	pos := components.Body.Get(e).Position()
	dest := lifecycle.Destination
	dirX, dirY, dist := gamemath.Direction(pos.X, pos.Y, dest.X, dest.Y)
	if dist <= cfg.Combat.ArrivalEpsilon {
		if inst, ok := factory.Lookup(w, lifecycle.Instance); ok && inst.HasComponent(components.Attack) {
			components.Attack.Get(inst).Reached = true
		}
		lifecycle.FinishAttack()
		ai.Request(0, 0)
		return
	}
	if dirX != 0 {
		chicken.FacingRight = dirX > 0
	}
	speed := chicken.TypeConfig.ChargeSpeed
	ai.Request(dirX*speed, dirY*speed)
}

// completeAttack runs once when a strike returns to Idle. A chicken that
// finishes an attack on its lure wears the lure down.
func completeAttack(w donburi.World, chicken *components.ChickenData) {
	if chicken.Target.Kind != tags.KindTrap {
		return
	}
	trapEntry, ok := factory.Lookup(w, chicken.Target.Entity)
	if !ok || !trapEntry.HasComponent(components.Trap) {
		return
	}
	trap := components.Trap.Get(trapEntry)
	if trap.Kind != cfg.TrapLure {
		return
	}
	if trap.Use() {
		factory.MarkRemoved(trapEntry)
	}
}

// UpdateAttackInstances moves live attack instances and retires them. An
// instance whose owner is gone is removed before it can act.
func UpdateAttackInstances(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	tags.Attack.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		if !updateInstance(ecs, e, cfg.DT) {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		factory.MarkRemoved(e)
	}
}

// updateInstance reports whether the instance should stay alive.
func updateInstance(ecs *ecs.ECS, e *donburi.Entry, dt float64) bool {
	data := components.Attack.Get(e)
	body := components.Body.Get(e)

	owner, ownerAlive := factory.Lookup(ecs.World, data.Owner)
	if !data.Detached && !ownerAlive {
		return false
	}

	switch data.Kind {
	case cfg.AttackBasic, cfg.AttackKnockback:
		return ownerStriking(owner, e)

	case cfg.AttackCharge:
		if !ownerStriking(owner, e) {
			return false
		}
		data.Position = components.Body.Get(owner).Position()
		body.SetPosition(data.Position)
		return true

	case cfg.AttackProjectile:
		if !data.Splat {
			t := chickenType(owner, data.Kind)
			progress, finished := data.Lob.Update(float32(dt))
			p := float64(progress)
			data.Position = gamemath.Lerp(data.Origin, data.Destination, p)
			data.Height = t.LobHeight * 4 * p * (1 - p)
			body.SetPosition(data.Position)
			if finished {
				data.Reached = true
				data.Height = 0
				land(ecs, e, data, t.SplatTime)
			}
			return true
		}
		return splatting(data, dt)

	case cfg.AttackExplosion:
		if !data.Splat {
			if ownerAlive {
				data.Position = components.Body.Get(owner).Position()
				body.SetPosition(data.Position)
			}
			r, finished := data.Fuse.Update(float32(dt))
			data.FuseRadius = float64(r)
			if finished {
				detonate(ecs, e, owner, data)
			}
			return true
		}
		return splatting(data, dt)
	}

	log.Printf("attack: instance %v has unknown kind %v", e.Entity(), data.Kind)
	return false
}

// ownerStriking reports whether inst is still the owner's active strike.
func ownerStriking(owner, inst *donburi.Entry) bool {
	if owner == nil {
		return false
	}
	lifecycle := components.AttackLifecycle.Get(owner)
	return lifecycle.Phase == components.PhaseActive && lifecycle.Instance == inst.Entity()
}

// land arms an instance at its destination for the splat window.
func land(ecs *ecs.ECS, e *donburi.Entry, data *components.AttackData, window float64) {
	data.Splat = true
	data.SplatTimer = window
	factory.ArmAttack(ecs, e)
}

// detonate arms the blast. The owner is consumed by its own explosion.
func detonate(ecs *ecs.ECS, e, owner *donburi.Entry, data *components.AttackData) {
	t := chickenType(owner, data.Kind)
	data.Reached = true
	data.Detached = true
	if owner != nil {
		factory.MarkRemoved(owner)
	}
	land(ecs, e, data, t.SplatTime)
}

func splatting(data *components.AttackData, dt float64) bool {
	data.SplatTimer -= dt
	return data.SplatTimer > 0
}

// chickenType finds the type row of an instance's owner. Detached
// instances may outlive their owner, so the row is then looked up by kind.
func chickenType(owner *donburi.Entry, kind cfg.AttackKind) *cfg.ChickenTypeConfig {
	if owner != nil {
		return components.Chicken.Get(owner).TypeConfig
	}
	for _, name := range cfg.ChickenOrder {
		if t, ok := cfg.ChickenType(name); ok && t.Attack == kind {
			return t
		}
	}
	return &cfg.ChickenTypeConfig{}
}

// AttackDrawPosition is where an instance is drawn, lifted by its lob height.
func AttackDrawPosition(data *components.AttackData) dmath.Vec2 {
	return dmath.Vec2{X: data.Position.X, Y: data.Position.Y - data.Height}
}
