package components

import (
	"github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
)

// TargetRef is a non-owning reference to what a chicken is chasing: the
// chef or a lure trap.
type TargetRef struct {
	Kind   tags.Kind
	Entity donburi.Entity
}

// SlowEffect is one active slow, keyed by the trap that applied it.
type SlowEffect struct {
	Source   donburi.Entity
	Strength float64
}

type ChickenData struct {
	TypeName   string                    // "Nugget", "Buffalo", ...
	TypeConfig *config.ChickenTypeConfig // Cached reference to type configuration

	Health      float64
	MaxHealth   float64
	FacingRight bool

	// Effects
	Slow      float64 // movement multiplier in [0, 1], 1 = full speed
	Slows     []SlowEffect
	BurnTimer float64 // -1 = inactive

	// Stun
	Stunned     bool
	InvulnTimer float64 // counts up to Combat.InvulnTime while stunned
	Invisible   bool    // flicker draw flag
	WasHit      bool    // set by the combat resolver, consumed by the AI

	Target        TargetRef
	Chef          donburi.Entity // fallback target
	Touching      bool           // body is in contact with the chef
	StopTimer     float64        // post chef-collision freeze
	Cooldown      float64        // seconds until the next attack may start
	PendingAttack config.AttackKind
}

var Chicken = donburi.NewComponentType[ChickenData]()

// NewChicken initialises per-type state for a freshly spawned chicken.
func NewChicken(typeName string, t *config.ChickenTypeConfig, chef donburi.Entity) ChickenData {
	return ChickenData{
		TypeName:      typeName,
		TypeConfig:    t,
		Health:        t.MaxHealth,
		MaxHealth:     t.MaxHealth,
		FacingRight:   true,
		Slow:          1,
		BurnTimer:     -1,
		Target:        TargetRef{Kind: tags.KindChef, Entity: chef},
		Chef:          chef,
		PendingAttack: t.Attack,
	}
}

// IsAlive reports whether health is above zero.
func (c *ChickenData) IsAlive() bool {
	return c.Health > 0
}

// TakeDamage lowers health by amount. Negative amounts are ignored so
// health never increases. It returns true when this hit killed the chicken.
func (c *ChickenData) TakeDamage(amount float64) bool {
	if amount <= 0 || !c.IsAlive() {
		return false
	}
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
	return c.Health <= 0
}

// ApplySlow registers a slow from source. A source already applied is ignored.
func (c *ChickenData) ApplySlow(source donburi.Entity, strength float64) {
	for _, s := range c.Slows {
		if s.Source == source {
			return
		}
	}
	c.Slows = append(c.Slows, SlowEffect{Source: source, Strength: strength})
	c.recomputeSlow()
}

// RemoveSlow refunds the slow applied by source, if any.
func (c *ChickenData) RemoveSlow(source donburi.Entity) {
	for i, s := range c.Slows {
		if s.Source == source {
			c.Slows = append(c.Slows[:i], c.Slows[i+1:]...)
			c.recomputeSlow()
			return
		}
	}
}

// recomputeSlow rebuilds the multiplier from the active set in application
// order, so removing a slow restores the exact previous value.
func (c *ChickenData) recomputeSlow() {
	m := 1.0
	for _, s := range c.Slows {
		m -= s.Strength
	}
	if m < 0 {
		m = 0
	}
	if m > 1 {
		m = 1
	}
	c.Slow = m
}

// ApplyBurn starts or refreshes the burn for duration seconds.
func (c *ChickenData) ApplyBurn(duration float64) {
	if duration > c.BurnTimer {
		c.BurnTimer = duration
	}
}

// StopBurn ends any burn immediately.
func (c *ChickenData) StopBurn() {
	c.BurnTimer = -1
}

func (c *ChickenData) Burning() bool {
	return c.BurnTimer >= 0
}

// TickBurn advances the burn by dt and returns the damage it deals.
func (c *ChickenData) TickBurn(dt, damagePerSecond float64) float64 {
	if !c.Burning() {
		return 0
	}
	step := dt
	if c.BurnTimer < dt {
		step = c.BurnTimer
	}
	c.BurnTimer -= dt
	if c.BurnTimer < 0 {
		c.BurnTimer = -1
	}
	return step * damagePerSecond
}

// Lure points the chicken at a lure trap.
func (c *ChickenData) Lure(trap donburi.Entity) {
	c.Target = TargetRef{Kind: tags.KindTrap, Entity: trap}
}

// Unlure returns the chicken to the chef if it was chasing trap.
func (c *ChickenData) Unlure(trap donburi.Entity) {
	if c.Target.Kind == tags.KindTrap && c.Target.Entity == trap {
		c.ResetTarget()
	}
}

// ResetTarget points the chicken back at the chef.
func (c *ChickenData) ResetTarget() {
	c.Target = TargetRef{Kind: tags.KindChef, Entity: c.Chef}
}
