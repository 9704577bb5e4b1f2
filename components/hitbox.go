package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// HitboxData is a chef attack: a slap or a thrown bullet.
type HitboxData struct {
	OwnerEntity donburi.Entity          // the chef
	Damage      float64                 // base damage before cook scaling
	LifeTime    float64                 // seconds left
	Velocity    dmath.Vec2              // bullets only
	Offset      dmath.Vec2              // slaps follow the chef at this offset
	Piercing    bool                    // slaps hit everything they touch, bullets stop at the first chicken
	HitEntities map[donburi.Entity]bool // chickens already hit
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// MarkHit records target and reports whether it was hit for the first time.
func (h *HitboxData) MarkHit(target donburi.Entity) bool {
	if h.HitEntities == nil {
		h.HitEntities = make(map[donburi.Entity]bool)
	}
	if h.HitEntities[target] {
		return false
	}
	h.HitEntities[target] = true
	return true
}
