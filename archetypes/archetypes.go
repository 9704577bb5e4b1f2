package archetypes

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Chef = newArchetype(
		tags.Chef,
		components.Chef,
		components.Health,
		components.Body,
	)
	Chicken = newArchetype(
		tags.Chicken,
		components.Chicken,
		components.AI,
		components.AttackLifecycle,
		components.Body,
	)
	Attack = newArchetype(
		tags.Attack,
		components.Attack,
		components.Body,
	)
	Slap = newArchetype(
		tags.Slap,
		components.Hitbox,
		components.Body,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Hitbox,
		components.Body,
	)
	Trap = newArchetype(
		tags.Trap,
		components.Trap,
		components.Body,
	)
	Stove = newArchetype(
		tags.Stove,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.LevelState,
		components.Temperature,
		components.Wave,
		components.Input,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
