package factory

import (
	"github.com/automoto/fowlplay/archetypes"
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactPairs are the collision type pairs the combat resolver listens to.
var contactPairs = [][2]cp.CollisionType{
	{tags.CollisionChef, tags.CollisionStove},
	{tags.CollisionChef, tags.CollisionChicken},
	{tags.CollisionSlap, tags.CollisionChickenHurtbox},
	{tags.CollisionBullet, tags.CollisionChickenHurtbox},
	{tags.CollisionTrap, tags.CollisionChicken},
	{tags.CollisionAttack, tags.CollisionChef},
}

// CreateSpace builds the physics space and obstacle grid for a level of
// the given pixel size.
func CreateSpace(ecs *ecs.ECS, width, height float64, tileSize int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.SetDamping(cfg.Physics.Damping)
	if cfg.Physics.Iterations > 0 {
		space.Iterations = cfg.Physics.Iterations
	}

	queue := &components.ContactQueue{}
	registerContacts(space, queue)

	components.Space.SetValue(entry, components.SpaceData{
		Space:    space,
		Grid:     resolv.NewSpace(int(width), int(height), tileSize, tileSize),
		Width:    width,
		Height:   height,
		Contacts: queue,
	})
	return entry
}

func registerContacts(space *cp.Space, queue *components.ContactQueue) {
	for _, pair := range contactPairs {
		h := space.NewCollisionHandler(pair[0], pair[1])
		h.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			queue.Push(contactEvent(arb, true))
			return true
		}
		h.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			queue.Push(contactEvent(arb, false))
		}
	}
}

func contactEvent(arb *cp.Arbiter, begin bool) components.ContactEvent {
	a, b := arb.Shapes()
	return components.ContactEvent{Begin: begin, A: tagOf(a), B: tagOf(b)}
}

// tagOf reads the contact tag stored on a shape. Shapes without one come
// back as KindUnknown and are rejected by the resolver.
func tagOf(shape *cp.Shape) components.ContactTag {
	if shape == nil {
		return components.ContactTag{}
	}
	if tag, ok := shape.UserData.(components.ContactTag); ok {
		return tag
	}
	return components.ContactTag{}
}

// MustSpace returns the level's space data. Systems call it after the level
// is built, so a missing space is a programming error.
func MustSpace(w donburi.World) *components.SpaceData {
	entry, ok := components.Space.First(w)
	if !ok {
		panic("factory: no space in world")
	}
	return components.Space.Get(entry)
}

// GetSpace returns the level's space data if one exists.
func GetSpace(w donburi.World) (*components.SpaceData, bool) {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}
