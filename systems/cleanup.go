package systems

import (
	"github.com/automoto/fowlplay/components"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup destroys every entry marked removed this frame. A removed
// chicken cancels its attack and takes its live attack instance with it,
// so a hitbox never outlives its owner.
func UpdateCleanup(ecs *ecs.ECS) {
	var removed []*donburi.Entry
	tags.Removed.Each(ecs.World, func(e *donburi.Entry) {
		removed = append(removed, e)
	})

	chickens := 0
	for _, e := range removed {
		if !e.Valid() {
			continue
		}
		if e.HasComponent(tags.Chicken) {
			cancelAttack(ecs, e)
			chickens++
		}
		factory.Destroy(ecs, e)
	}

	if chickens > 0 {
		if levelEntry, ok := factory.FindLevel(ecs.World); ok {
			components.LevelState.Get(levelEntry).ChickensRemoved += chickens
		}
	}
}

func cancelAttack(ecs *ecs.ECS, e *donburi.Entry) {
	lifecycle := components.AttackLifecycle.Get(e)
	inst := lifecycle.Instance
	lifecycle.Cancel()
	lifecycle.Instance = 0

	if !ecs.World.Valid(inst) {
		return
	}
	instEntry := ecs.World.Entry(inst)
	if instEntry.HasComponent(components.Attack) && components.Attack.Get(instEntry).Detached {
		return
	}
	factory.Destroy(ecs, instEntry)
}
