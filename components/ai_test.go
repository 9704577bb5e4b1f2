package components

import (
	"testing"

	"github.com/automoto/fowlplay/config"
	"github.com/stretchr/testify/assert"
)

func TestChickenFSMTransitions(t *testing.T) {
	ai := NewAI()
	assert.Equal(t, config.StateChase, ai.State())

	assert.False(t, ai.Fire(config.EventStun), "stun only follows knockback")
	assert.True(t, ai.Fire(config.EventHit))
	assert.True(t, ai.Fire(config.EventStun))
	assert.Equal(t, config.StateStunned, ai.State())

	assert.False(t, ai.Fire(config.EventAttack))
	assert.True(t, ai.Fire(config.EventRecover))
	assert.True(t, ai.Fire(config.EventAttack))
	assert.Equal(t, config.StateAttack, ai.State())

	assert.False(t, ai.Fire(config.EventHit), "attacks are not interrupted by hits")
	assert.True(t, ai.Fire(config.EventFinish))
	assert.Equal(t, config.StateChase, ai.State())
}

func TestForceRequests(t *testing.T) {
	ai := NewAI()
	ai.Push(3, 4)
	assert.True(t, ai.Impulse)
	ai.Request(1, 0)
	assert.False(t, ai.Impulse)
	assert.Equal(t, 1.0, ai.Force.X)
	ai.Hold()
	assert.True(t, ai.Frozen)
	assert.Zero(t, ai.Force.X)
}
