package systems

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/shared/gamemath"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/automoto/fowlplay/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies the chickens' movement requests and steps the
// space. Contacts produced by the step are queued for UpdateCombat.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		if factory.IsRemoved(e) {
			return
		}
		ApplyForce(components.AI.Get(e), components.Body.Get(e))
	})

	if chef, ok := factory.FindChef(ecs.World); ok {
		body := components.Body.Get(chef)
		clampSpeed(body)
	}

	factory.MustSpace(ecs.World).Space.Step(cfg.DT)
}

// ApplyForce turns an AI request into body motion. Impulses are consumed
// once. A held request leaves the velocity to damping.
func ApplyForce(ai *components.AIData, body *components.BodyData) {
	switch {
	case ai.Impulse:
		m := body.Body.Mass()
		body.Body.ApplyImpulseAtLocalPoint(cp.Vector{X: ai.Force.X * m, Y: ai.Force.Y * m}, cp.Vector{})
		ai.Hold()
	case ai.Frozen:
	default:
		body.SetVelocity(ai.Force.X, ai.Force.Y)
	}
	clampSpeed(body)
}

func clampSpeed(body *components.BodyData) {
	if body.MaxSpeed <= 0 {
		return
	}
	v := body.Velocity()
	x, y := gamemath.ClampLength(v.X, v.Y, body.MaxSpeed)
	if x != v.X || y != v.Y {
		body.SetVelocity(x, y)
	}
}
