package systems

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/gamemath"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// stunEpsilon absorbs float drift when summing frame deltas up to InvulnTime.
const stunEpsilon = 1e-9

// UpdateEnemies runs every live chicken's controller once. All decisions
// read positions from the previous physics step.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		UpdateChickenAI(ecs.World, e, cfg.DT)
	})
}

// UpdateChickenAI advances one chicken's state machine by dt and writes its
// movement request.
func UpdateChickenAI(w donburi.World, e *donburi.Entry, dt float64) {
	chicken := components.Chicken.Get(e)
	ai := components.AI.Get(e)

	chicken.StopTimer = tick(chicken.StopTimer, dt)
	chicken.Cooldown = tick(chicken.Cooldown, dt)

	switch ai.State() {
	case cfg.StateChase:
		handleChaseState(w, e, chicken, ai)
	case cfg.StateKnockback:
		handleKnockbackState(w, e, chicken, ai)
	case cfg.StateStunned:
		handleStunnedState(chicken, ai, dt)
	case cfg.StateAttack:
		handleAttackState(e, chicken, ai)
	}
}

func handleChaseState(w donburi.World, e *donburi.Entry, chicken *components.ChickenData, ai *components.AIData) {
	if chicken.WasHit {
		chicken.WasHit = false
		if ai.Fire(cfg.EventHit) {
			handleKnockbackState(w, e, chicken, ai)
		}
		return
	}

	pos := components.Body.Get(e).Position()
	target, ok := targetPosition(w, chicken)
	if !ok {
		ai.Hold()
		return
	}

	dirX, dirY, dist := gamemath.Direction(pos.X, pos.Y, target.X, target.Y)
	if dirX != 0 {
		chicken.FacingRight = dirX > 0
	}

	t := chicken.TypeConfig
	lifecycle := components.AttackLifecycle.Get(e)
	if dist <= t.AttackRange && chicken.Cooldown <= 0 && !lifecycle.IsAttacking() {
		if lifecycle.StartAttack(target) && ai.Fire(cfg.EventAttack) {
			ai.Request(0, 0)
			return
		}
	}

	// Freeze after bumping into the chef
	if chicken.StopTimer > 0 {
		ai.Request(0, 0)
		return
	}

	speed := t.ChaseSpeed * chicken.Slow
	ai.Request(dirX*speed, dirY*speed)
}

// handleKnockbackState stuns the chicken, pushes it away from its target and
// moves on to Stunned within the same update.
func handleKnockbackState(w donburi.World, e *donburi.Entry, chicken *components.ChickenData, ai *components.AIData) {
	chicken.Stunned = true
	chicken.InvulnTimer = 0
	chicken.Invisible = false

	pos := components.Body.Get(e).Position()
	away := dmath.Vec2{}
	if target, ok := targetPosition(w, chicken); ok {
		away.X, away.Y = gamemath.CalculateAwayVelocity(pos.X, pos.Y, target.X, target.Y, chicken.TypeConfig.KnockbackStrength)
	}
	ai.Push(away.X, away.Y)
	ai.Fire(cfg.EventStun)
}

func handleStunnedState(chicken *components.ChickenData, ai *components.AIData, dt float64) {
	// Hits while stunned still deal damage but do not restart the knockback
	chicken.WasHit = false

	chicken.InvulnTimer += dt
	chicken.Invisible = int(chicken.InvulnTimer*cfg.Combat.FlickerRate*2)%2 == 1
	ai.Hold()

	if chicken.InvulnTimer >= cfg.Combat.InvulnTime-stunEpsilon {
		chicken.InvulnTimer = cfg.Combat.InvulnTime
		chicken.Stunned = false
		chicken.Invisible = false
		ai.Fire(cfg.EventRecover)
	}
}

// handleAttackState leaves movement to the attack system and returns to
// Chase once the lifecycle is idle again.
func handleAttackState(e *donburi.Entry, chicken *components.ChickenData, ai *components.AIData) {
	chicken.WasHit = false
	if components.AttackLifecycle.Get(e).IsAttacking() {
		return
	}
	chicken.Cooldown = chicken.TypeConfig.AttackCooldown
	ai.Fire(cfg.EventFinish)
}

// targetPosition resolves the chicken's target. A lure that no longer exists
// sends the chicken back to the chef.
func targetPosition(w donburi.World, chicken *components.ChickenData) (dmath.Vec2, bool) {
	if chicken.Target.Kind == tags.KindTrap {
		if trap, ok := factory.Lookup(w, chicken.Target.Entity); ok && trap.HasComponent(components.Trap) {
			return components.Trap.Get(trap).Position, true
		}
		chicken.ResetTarget()
	}
	chef, ok := factory.Lookup(w, chicken.Chef)
	if !ok || !chef.HasComponent(components.Body) {
		return dmath.Vec2{}, false
	}
	return components.Body.Get(chef).Position(), true
}
