package tags

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

var (
	Chef    = donburi.NewTag().SetName("Chef")
	Chicken = donburi.NewTag().SetName("Chicken")
	Trap    = donburi.NewTag().SetName("Trap")
	Attack  = donburi.NewTag().SetName("Attack")
	Slap    = donburi.NewTag().SetName("Slap")
	Bullet  = donburi.NewTag().SetName("Bullet")
	Stove   = donburi.NewTag().SetName("Stove")
	Wall    = donburi.NewTag().SetName("Wall")

	// Removed marks an entry for the cleanup pass.
	Removed = donburi.NewTag().SetName("Removed")
)

// Resolv tags for the obstacle grid
const (
	ResolvWall = "wall"
)

// Chipmunk collision types. Handlers are registered per pair in the space factory.
const (
	CollisionNone cp.CollisionType = iota
	CollisionChef
	CollisionChicken
	CollisionChickenHurtbox
	CollisionWall
	CollisionStove
	CollisionTrap
	CollisionSlap
	CollisionBullet
	CollisionAttack
)

// Kind is the entity kind stored on every physics shape.
type Kind int

const (
	KindUnknown Kind = iota
	KindChef
	KindChicken
	KindWall
	KindStove
	KindTrap
	KindSlap
	KindBullet
	KindAttack
)

var kindNames = [...]string{"unknown", "chef", "chicken", "wall", "stove", "trap", "slap", "bullet", "attack"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Sensor refines a Kind for shapes that only report overlap.
type Sensor int

const (
	SensorNone Sensor = iota
	SensorHurtbox
	SensorStove
	SensorLure
	SensorSlow
	SensorFire
	SensorFireLinger
	SensorHitbox
)

var sensorNames = [...]string{"none", "hurtbox", "stove", "lure", "slow", "fire", "fireLinger", "hitbox"}

func (s Sensor) String() string {
	if s < 0 || int(s) >= len(sensorNames) {
		return "invalid"
	}
	return sensorNames[s]
}
