package components

import (
	"testing"

	"github.com/automoto/fowlplay/config"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestLifecycle() AttackLifecycleData {
	return NewAttackLifecycle(&config.ChickenTypeConfig{
		Attack:         config.AttackBasic,
		ChargeTime:     0.5,
		AttackDuration: 0.25,
		RecoverTime:    0.1,
	})
}

// run advances until the lifecycle returns to idle and counts spawn signals.
func run(a *AttackLifecycleData, dt float64, maxFrames int) (frames, spawns int, completed bool) {
	for frames = 1; frames <= maxFrames; frames++ {
		done := a.Advance(dt)
		if a.MakeAttack() {
			spawns++
		}
		if done {
			return frames, spawns, true
		}
	}
	return maxFrames, spawns, false
}

func TestLifecycleFullCycle(t *testing.T) {
	a := newTestLifecycle()
	assert.Equal(t, -1.0, a.ChargeTimer)
	assert.Equal(t, -1.0, a.AttackTimer)

	assert.True(t, a.StartAttack(dmath.Vec2{X: 10, Y: 20}))
	assert.Equal(t, PhaseCharging, a.Phase)
	assert.True(t, a.Rooted())
	assert.Equal(t, dmath.Vec2{X: 10, Y: 20}, a.Destination)

	_, spawns, completed := run(&a, 0.05, 100)
	assert.True(t, completed)
	assert.Equal(t, 1, spawns, "hitbox spawns exactly once per strike")
	assert.Equal(t, PhaseIdle, a.Phase)
	assert.Equal(t, -1.0, a.ChargeTimer)
	assert.Equal(t, -1.0, a.AttackTimer)
	assert.False(t, a.HitboxOut)
}

func TestStopDuringChargeIsDeferred(t *testing.T) {
	a := newTestLifecycle()
	a.StartAttack(dmath.Vec2{})
	a.Advance(0.1)

	a.StopAttack(true)
	assert.Equal(t, PhaseCharging, a.Phase, "stop must not cancel a running attack")
	assert.NotNil(t, a.Pending)
	assert.False(t, a.Touching)

	sawActive := false
	for i := 0; i < 100 && a.IsAttacking(); i++ {
		a.Advance(0.05)
		if a.Phase == PhaseActive {
			sawActive = true
		}
	}
	assert.True(t, sawActive, "the strike still happens")
	assert.Equal(t, PhaseIdle, a.Phase)
	assert.Nil(t, a.Pending)
	assert.True(t, a.Touching, "deferred touching flag applied on completion")
}

func TestStopWhenIdleIsImmediate(t *testing.T) {
	a := newTestLifecycle()
	a.StopAttack(true)
	assert.Nil(t, a.Pending)
	assert.True(t, a.Touching)
	assert.Equal(t, -1.0, a.ChargeTimer)
}

func TestSecondStartIsAbsorbed(t *testing.T) {
	a := newTestLifecycle()
	assert.True(t, a.StartAttack(dmath.Vec2{X: 1}))
	a.Advance(0.2)
	timer := a.ChargeTimer

	assert.False(t, a.StartAttack(dmath.Vec2{X: 99}))
	assert.Equal(t, timer, a.ChargeTimer, "running attack is not restarted")
	assert.Equal(t, 1.0, a.Destination.X)
	assert.NotNil(t, a.Pending)

	_, spawns, completed := run(&a, 0.05, 100)
	assert.True(t, completed)
	assert.Equal(t, 1, spawns)
}

func TestFinishAttackRecovers(t *testing.T) {
	a := newTestLifecycle()
	a.StartAttack(dmath.Vec2{})
	for a.Phase != PhaseActive {
		a.Advance(0.05)
	}
	assert.True(t, a.MakeAttack())

	a.FinishAttack()
	a.Advance(0.01)
	assert.Equal(t, PhaseRecovering, a.Phase)
	assert.True(t, a.Rooted())
	assert.False(t, a.MakeAttack())

	_, _, completed := run(&a, 0.05, 10)
	assert.True(t, completed)
	assert.False(t, a.IsAttacking())
}

func TestCancelDropsPending(t *testing.T) {
	a := newTestLifecycle()
	a.StartAttack(dmath.Vec2{})
	a.StopAttack(true)
	a.Cancel()

	assert.Equal(t, PhaseIdle, a.Phase)
	assert.Nil(t, a.Pending)
	assert.False(t, a.MakeAttack())
	assert.False(t, a.Advance(0.1))
}
