package systems

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTemperature cooks while the chef is at a stove holding cook. It runs
// before the chef system so attack costs in the same frame see the new value.
func UpdateTemperature(ecs *ecs.ECS) {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return
	}
	temp := components.Temperature.Get(levelEntry)
	input := components.Input.Get(levelEntry)

	active := false
	if chefEntry, ok := factory.FindChef(ecs.World); ok {
		chef := components.Chef.Get(chefEntry)
		active = chef.CanCook() && chef.KnockedTimer <= 0 && input.Current.Pressed(cfg.ActionCook)
	}
	temp.Cook(active)
}
