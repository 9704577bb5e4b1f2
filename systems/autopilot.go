package systems

import (
	"math"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/gamemath"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// EnableAutopilot attaches a scripted chef controller to the level.
func EnableAutopilot(ecs *ecs.ECS) bool {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return false
	}
	if !levelEntry.HasComponent(components.Autopilot) {
		donburi.Add(levelEntry, components.Autopilot, &components.AutopilotData{})
	}
	return true
}

// UpdateAutopilot produces the chef's input snapshot. It replaces
// UpdateInput in the headless simulator and must run in the same slot.
func UpdateAutopilot(ecs *ecs.ECS) {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok || !levelEntry.HasComponent(components.Autopilot) {
		return
	}
	chefEntry, ok := factory.FindChef(ecs.World)
	if !ok {
		return
	}
	pilot := components.Autopilot.Get(levelEntry)
	input := components.Input.Get(levelEntry)

	if pilot.DecisionTimer > 0 {
		pilot.DecisionTimer--
		// Between decisions keep moving and cooking, release one-shot buttons
		held := components.InputSnapshot{MoveX: pilot.Held.MoveX, MoveY: pilot.Held.MoveY}
		held.Actions[cfg.ActionCook] = pilot.Held.Actions[cfg.ActionCook]
		input.Push(held)
		return
	}
	pilot.DecisionTimer = cfg.Autopilot.DecisionFrames
	pilot.Decisions++

	snap := decide(ecs, pilot, chefEntry, components.Temperature.Get(levelEntry))
	pilot.Held = snap
	input.Push(snap)
}

// decide picks one action, in priority order: slap a chicken in reach,
// drop a trap into a crowd, shoot at range, otherwise cook.
func decide(ecs *ecs.ECS, pilot *components.AutopilotData, chefEntry *donburi.Entry, temp *components.TemperatureData) components.InputSnapshot {
	var snap components.InputSnapshot
	chef := components.Chef.Get(chefEntry)
	pos := components.Body.Get(chefEntry).Position()

	nearest, dist, crowd := scanChickens(ecs.World, pos)

	if nearest != nil && dist <= cfg.Autopilot.SlapRange {
		aim(&snap, pos, *nearest, 0.2)
		snap.Actions[cfg.ActionSlap] = true
		return snap
	}

	if nearest != nil && crowd >= cfg.Autopilot.TrapCrowd && chef.TrapCooldown <= 0 {
		for i := range cfg.PlaceableTraps {
			idx := (pilot.NextTrap + i) % len(cfg.PlaceableTraps)
			kind := cfg.PlaceableTraps[idx]
			if chef.TrapStock[kind] > 0 {
				pilot.NextTrap = idx + 1
				aim(&snap, pos, *nearest, 0.2)
				snap.Actions[trapAction(kind)] = true
				return snap
			}
		}
	}

	if nearest != nil && dist <= cfg.Autopilot.ShootRange && temp.PercentCooked() > 0.1 {
		aim(&snap, pos, *nearest, 0.2)
		snap.Actions[cfg.ActionShoot] = true
		return snap
	}

	if chef.CanCook() {
		snap.Actions[cfg.ActionCook] = true
		return snap
	}
	if stove, ok := nearestStove(ecs.World, pos); ok {
		aim(&snap, pos, stove, 1)
	}
	return snap
}

// aim points the movement stick at target with the given magnitude.
func aim(snap *components.InputSnapshot, from, target dmath.Vec2, magnitude float64) {
	dx, dy, _ := gamemath.Direction(from.X, from.Y, target.X, target.Y)
	snap.MoveX, snap.MoveY = dx*magnitude, dy*magnitude
}

// scanChickens returns the nearest live chicken, its distance, and how many
// chickens are within shooting range.
func scanChickens(w donburi.World, pos dmath.Vec2) (*dmath.Vec2, float64, int) {
	var nearest *dmath.Vec2
	best := math.Inf(1)
	crowd := 0
	tags.Chicken.Each(w, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		p := components.Body.Get(e).Position()
		d := gamemath.Distance(pos, p)
		if d <= cfg.Autopilot.ShootRange {
			crowd++
		}
		if d < best {
			best = d
			nearest = &p
		}
	})
	return nearest, best, crowd
}

func nearestStove(w donburi.World, pos dmath.Vec2) (dmath.Vec2, bool) {
	var out dmath.Vec2
	found := false
	best := math.Inf(1)
	tags.Stove.Each(w, func(e *donburi.Entry) {
		p := components.Body.Get(e).Position()
		if d := gamemath.Distance(pos, p); d < best {
			best = d
			out = p
			found = true
		}
	})
	return out, found
}

func trapAction(kind cfg.TrapKind) cfg.ActionID {
	for _, ta := range trapActions {
		if ta.kind == kind {
			return ta.action
		}
	}
	return cfg.ActionNone
}
