package components

import (
	"fmt"

	"github.com/automoto/fowlplay/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// AttackPhase is the sub-state of a chicken's attack lifecycle.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseCharging
	PhaseActive
	PhaseRecovering
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCharging:
		return "Charging"
	case PhaseActive:
		return "Active"
	case PhaseRecovering:
		return "Recovering"
	}
	return fmt.Sprintf("AttackPhase(%d)", int(p))
}

// PendingStop is a stop request deferred until the running attack completes.
type PendingStop struct {
	Touching bool
}

// AttackTiming is the per-type timing the lifecycle runs with.
type AttackTiming struct {
	Charge   float64
	Duration float64
	Recover  float64
}

// AttackLifecycleData is the charge/strike/recover timer machine of one chicken.
type AttackLifecycleData struct {
	Kind   config.AttackKind
	Timing AttackTiming

	Phase       AttackPhase
	ChargeTimer float64 // counts up while charging, -1 when idle
	AttackTimer float64 // counts down while active or recovering, -1 when idle
	Destination dmath.Vec2
	Touching    bool
	HitboxOut   bool
	Pending     *PendingStop

	spawn    bool
	finish   bool
	Instance donburi.Entity // weak back-reference to the live AttackInstance
}

var AttackLifecycle = donburi.NewComponentType[AttackLifecycleData]()

// NewAttackLifecycle returns an idle lifecycle for the given type.
func NewAttackLifecycle(t *config.ChickenTypeConfig) AttackLifecycleData {
	return AttackLifecycleData{
		Kind: t.Attack,
		Timing: AttackTiming{
			Charge:   t.ChargeTime,
			Duration: t.AttackDuration,
			Recover:  t.RecoverTime,
		},
		ChargeTimer: -1,
		AttackTimer: -1,
	}
}

// IsAttacking reports whether an attack is in progress.
func (a *AttackLifecycleData) IsAttacking() bool {
	return a.Phase != PhaseIdle
}

// Rooted reports whether the owner must stand still this frame.
func (a *AttackLifecycleData) Rooted() bool {
	return a.Phase == PhaseCharging || a.Phase == PhaseRecovering
}

// StartAttack begins charging toward dest. A call while an attack is running
// does not interrupt it; it is recorded as a deferred stop instead.
func (a *AttackLifecycleData) StartAttack(dest dmath.Vec2) bool {
	if a.IsAttacking() {
		if a.Pending == nil {
			a.Pending = &PendingStop{Touching: a.Touching}
		}
		return false
	}
	a.Phase = PhaseCharging
	a.ChargeTimer = 0
	a.AttackTimer = 0
	a.Destination = dest
	a.HitboxOut = false
	a.spawn = false
	a.finish = false
	a.Pending = nil
	return true
}

// StopAttack stops immediately when idle, otherwise defers until completion.
func (a *AttackLifecycleData) StopAttack(touching bool) {
	if !a.IsAttacking() {
		a.ChargeTimer = -1
		a.AttackTimer = -1
		a.Touching = touching
		return
	}
	a.Pending = &PendingStop{Touching: touching}
}

// FinishAttack cuts an active strike short and moves to recovery.
func (a *AttackLifecycleData) FinishAttack() {
	if a.Phase == PhaseActive {
		a.finish = true
	}
}

// MakeAttack is the one-shot spawn poll: it returns true once per strike.
func (a *AttackLifecycleData) MakeAttack() bool {
	if !a.spawn {
		return false
	}
	a.spawn = false
	return true
}

// Cancel drops the attack without completing it. Used when the owner dies
// or a charge destination is blocked.
func (a *AttackLifecycleData) Cancel() {
	a.reset()
	a.Pending = nil
}

// Advance runs the lifecycle for dt seconds and reports whether the attack
// returned to Idle during this call.
func (a *AttackLifecycleData) Advance(dt float64) bool {
	switch a.Phase {
	case PhaseCharging:
		a.ChargeTimer += dt
		if a.ChargeTimer >= a.Timing.Charge {
			a.ChargeTimer = a.Timing.Charge
			a.Phase = PhaseActive
			a.AttackTimer = a.Timing.Duration
			if !a.HitboxOut {
				a.HitboxOut = true
				a.spawn = true
			}
		}
	case PhaseActive:
		if a.finish {
			a.finish = false
			a.Phase = PhaseRecovering
			a.AttackTimer = a.Timing.Recover
			a.HitboxOut = false
			a.spawn = false
			break
		}
		a.AttackTimer -= dt
		if a.AttackTimer <= 0 {
			a.complete()
			return true
		}
	case PhaseRecovering:
		a.AttackTimer -= dt
		if a.AttackTimer <= 0 {
			a.complete()
			return true
		}
	}
	return false
}

func (a *AttackLifecycleData) complete() {
	a.reset()
	if a.Pending != nil {
		a.Touching = a.Pending.Touching
		a.Pending = nil
	}
}

func (a *AttackLifecycleData) reset() {
	a.Phase = PhaseIdle
	a.ChargeTimer = -1
	a.AttackTimer = -1
	a.HitboxOut = false
	a.spawn = false
	a.finish = false
}

// AttackData is a live AttackInstance: the transient hitbox of one strike.
type AttackData struct {
	Kind   config.AttackKind
	Owner  donburi.Entity // weak
	Target donburi.Entity // the chef

	Origin      dmath.Vec2
	Position    dmath.Vec2
	Destination dmath.Vec2
	Angle       float64
	Radius      float64
	Damage      int

	Armed      bool // hit shape is in the space
	Reached    bool
	Splat      bool
	SplatTimer float64
	HitChef    bool // the chef was already hit during this window
	Detached   bool // outlives its owner (a detonated explosion)

	// Lob is the projectile's progress 0..1, Fuse the explosion's visual radius.
	Lob        *gween.Tween
	Fuse       *gween.Tween
	Height     float64
	FuseRadius float64
}

var Attack = donburi.NewComponentType[AttackData]()

// CanHit reports whether this instance may damage the chef now.
func (a *AttackData) CanHit() bool {
	return a.Armed && !a.HitChef
}
