package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/gamemath"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnknownContact = errors.New("unknown contact pair")
	ErrStaleContact   = errors.New("contact participant no longer exists")
	ErrBadSensor      = errors.New("unexpected sensor")
)

// UpdateCombat drains the contacts queued by the last physics step and
// resolves them in order. A contact that cannot be resolved is logged and
// skipped so the frame carries on.
func UpdateCombat(ecs *ecs.ECS) {
	space := factory.MustSpace(ecs.World)
	for _, ev := range space.Contacts.Drain() {
		if err := ResolveContact(ecs, ev); err != nil {
			log.Printf("combat: dropped contact: %v", err)
		}
	}
}

// ResolveContact applies one begin or end event.
func ResolveContact(ecs *ecs.ECS, ev components.ContactEvent) error {
	a, b := ev.A, ev.B
	if b.Kind < a.Kind {
		a, b = b, a
	}

	switch [2]tags.Kind{a.Kind, b.Kind} {
	case [2]tags.Kind{tags.KindChef, tags.KindStove}:
		return chefStove(ecs.World, a, ev.Begin)
	case [2]tags.Kind{tags.KindChef, tags.KindChicken}:
		return chefChicken(ecs.World, a, b, ev.Begin)
	case [2]tags.Kind{tags.KindChef, tags.KindAttack}:
		if !ev.Begin {
			return nil
		}
		return attackChef(ecs.World, a, b)
	case [2]tags.Kind{tags.KindChicken, tags.KindTrap}:
		if ev.Begin {
			return trapBegin(ecs, a, b)
		}
		return trapEnd(ecs.World, a, b)
	case [2]tags.Kind{tags.KindChicken, tags.KindSlap},
		[2]tags.Kind{tags.KindChicken, tags.KindBullet}:
		if !ev.Begin {
			return nil
		}
		return hitChicken(ecs.World, a, b)
	}
	return fmt.Errorf("%w: %s + %s", ErrUnknownContact, a, b)
}

// entries resolves both participants of a begin event.
func entries(w donburi.World, a, b components.ContactTag) (*donburi.Entry, *donburi.Entry, error) {
	ea, ok := factory.Lookup(w, a.Entity)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrStaleContact, a)
	}
	eb, ok := factory.Lookup(w, b.Entity)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrStaleContact, b)
	}
	return ea, eb, nil
}

func chefStove(w donburi.World, chefTag components.ContactTag, begin bool) error {
	chefEntry, ok := factory.Lookup(w, chefTag.Entity)
	if !ok {
		return fmt.Errorf("%w: %s", ErrStaleContact, chefTag)
	}
	chef := components.Chef.Get(chefEntry)
	if begin {
		chef.EnterStove()
	} else {
		chef.LeaveStove()
	}
	return nil
}

// chefChicken tracks body contact. Bumping into the chef freezes the chicken
// briefly and asks its attack to stop once any running strike completes.
func chefChicken(w donburi.World, chefTag, chickenTag components.ContactTag, begin bool) error {
	chickenEntry, ok := factory.Lookup(w, chickenTag.Entity)
	if !ok {
		if begin {
			return fmt.Errorf("%w: %s", ErrStaleContact, chickenTag)
		}
		// The chicken was removed while touching
		return nil
	}
	chicken := components.Chicken.Get(chickenEntry)
	lifecycle := components.AttackLifecycle.Get(chickenEntry)
	if begin {
		chicken.StopTimer = cfg.Combat.StopTime
	}
	lifecycle.StopAttack(begin)
	chicken.Touching = begin
	return nil
}

// hitChicken applies a slap or bullet to a chicken hurtbox, scaled by how
// cooked the level is.
func hitChicken(w donburi.World, chickenTag, hitTag components.ContactTag) error {
	if chickenTag.Sensor != tags.SensorHurtbox {
		return fmt.Errorf("%w: %s", ErrBadSensor, chickenTag)
	}
	chickenEntry, hitEntry, err := entries(w, chickenTag, hitTag)
	if err != nil {
		return err
	}
	levelEntry, ok := factory.FindLevel(w)
	if !ok {
		return errors.New("no level")
	}

	hitbox := components.Hitbox.Get(hitEntry)
	if !hitbox.MarkHit(chickenEntry.Entity()) {
		return nil
	}
	if !hitbox.Piercing {
		factory.MarkRemoved(hitEntry)
	}

	damage := components.Temperature.Get(levelEntry).DamageCalc(hitbox.Damage)
	DamageChicken(chickenEntry, damage)
	return nil
}

// DamageChicken applies damage from a chef attack. A killed chicken is
// marked removed, a surviving one is flagged for knockback.
func DamageChicken(e *donburi.Entry, damage float64) {
	chicken := components.Chicken.Get(e)
	if damage <= 0 {
		return
	}
	if chicken.TakeDamage(damage) {
		factory.MarkRemoved(e)
		return
	}
	chicken.WasHit = true
}

func trapBegin(ecs *ecs.ECS, chickenTag, trapTag components.ContactTag) error {
	chickenEntry, trapEntry, err := entries(ecs.World, chickenTag, trapTag)
	if err != nil {
		return err
	}
	chicken := components.Chicken.Get(chickenEntry)
	trap := components.Trap.Get(trapEntry)

	switch trap.Kind {
	case cfg.TrapLure:
		chicken.Lure(trapEntry.Entity())
	case cfg.TrapSlow:
		chicken.ApplySlow(trapEntry.Entity(), trap.Magnitude)
		if trap.Use() {
			factory.MarkRemoved(trapEntry)
		}
	case cfg.TrapFire:
		factory.CreateTrap(ecs, cfg.TrapFireLinger, trap.Position.X, trap.Position.Y)
		if trap.Use() {
			factory.MarkRemoved(trapEntry)
		}
	case cfg.TrapFireLinger:
		chicken.ApplyBurn(trap.Magnitude)
	default:
		return fmt.Errorf("%w: trap kind %v", ErrBadSensor, trap.Kind)
	}
	return nil
}

// trapEnd undoes a trap effect. The trap may already be gone, so the kind
// comes from the sensor tag on its shape.
func trapEnd(w donburi.World, chickenTag, trapTag components.ContactTag) error {
	chickenEntry, ok := factory.Lookup(w, chickenTag.Entity)
	if !ok {
		return nil
	}
	chicken := components.Chicken.Get(chickenEntry)

	switch components.TrapForSensor(trapTag.Sensor) {
	case cfg.TrapLure:
		chicken.Unlure(trapTag.Entity)
	case cfg.TrapSlow:
		chicken.RemoveSlow(trapTag.Entity)
	case cfg.TrapFire:
	case cfg.TrapFireLinger:
		chicken.StopBurn()
	default:
		return fmt.Errorf("%w: %s", ErrBadSensor, trapTag)
	}
	return nil
}

// attackChef damages the chef once per attack window. Knockback swipes also
// shove the chef, a connecting charge ends the ram.
func attackChef(w donburi.World, chefTag, attackTag components.ContactTag) error {
	chefEntry, attackEntry, err := entries(w, chefTag, attackTag)
	if err != nil {
		return err
	}
	attack := components.Attack.Get(attackEntry)
	chef := components.Chef.Get(chefEntry)
	if !attack.CanHit() || chef.Invulnerable() {
		return nil
	}

	attack.HitChef = true
	components.Health.Get(chefEntry).Damage(attack.Damage)
	chef.InvulnTimer = cfg.Chef.InvulnTime

	switch attack.Kind {
	case cfg.AttackKnockback:
		owner, ok := factory.Lookup(w, attack.Owner)
		if !ok {
			break
		}
		body := components.Body.Get(chefEntry)
		from := components.Body.Get(owner).Position()
		to := body.Position()
		strength := components.Chicken.Get(owner).TypeConfig.ChefKnockback
		vx, vy := gamemath.CalculateHomingVelocity(from.X, from.Y, to.X, to.Y, strength)
		m := body.Body.Mass()
		body.Body.ApplyImpulseAtLocalPoint(cp.Vector{X: vx * m, Y: vy * m}, cp.Vector{})
		chef.KnockedTimer = cfg.Chef.KnockedTime
	case cfg.AttackCharge:
		if owner, ok := factory.Lookup(w, attack.Owner); ok {
			components.AttackLifecycle.Get(owner).FinishAttack()
		}
	}
	return nil
}
