package components

import (
	"github.com/automoto/fowlplay/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ChefData struct {
	Facing dmath.Vec2 // unit aim direction, last non-zero movement

	InvulnTimer  float64 // seconds of hit immunity left
	KnockedTimer float64 // seconds without control left after a swipe

	// Stove proximity is counted so overlapping stoves do not clear it early.
	StovesNear int

	SlapCooldown   float64
	BulletCooldown float64
	TrapCooldown   float64
	TrapStock      map[config.TrapKind]int
}

var Chef = donburi.NewComponentType[ChefData]()

func NewChef(stock map[config.TrapKind]int) ChefData {
	c := ChefData{
		Facing:    dmath.Vec2{X: 1},
		TrapStock: make(map[config.TrapKind]int, len(stock)),
	}
	for k, v := range stock {
		c.TrapStock[k] = v
	}
	return c
}

// CanCook reports whether the chef stands near a stove.
func (c *ChefData) CanCook() bool {
	return c.StovesNear > 0
}

func (c *ChefData) EnterStove() {
	c.StovesNear++
}

func (c *ChefData) LeaveStove() {
	if c.StovesNear > 0 {
		c.StovesNear--
	}
}

// Invulnerable reports whether a hit would be ignored.
func (c *ChefData) Invulnerable() bool {
	return c.InvulnTimer > 0
}

// TakeTrap spends one trap of kind from the stock.
func (c *ChefData) TakeTrap(kind config.TrapKind) bool {
	if c.TrapStock[kind] <= 0 {
		return false
	}
	c.TrapStock[kind]--
	return true
}
