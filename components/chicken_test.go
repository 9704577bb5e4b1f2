package components

import (
	"math/rand"
	"testing"

	"github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func newTestChicken(t *testing.T) ChickenData {
	t.Helper()
	typ, ok := config.ChickenType("Nugget")
	require.True(t, ok)
	return NewChicken("Nugget", typ, donburi.Entity(1))
}

func TestTakeDamageNeverIncreasesHealth(t *testing.T) {
	c := newTestChicken(t)
	rng := testRNG()

	prev := c.Health
	for i := 0; i < 200; i++ {
		amount := rng.Float64()*4 - 2 // includes negative requests
		c.TakeDamage(amount)
		assert.LessOrEqual(t, c.Health, prev)
		assert.GreaterOrEqual(t, c.Health, 0.0)
		prev = c.Health
	}
}

func TestTakeDamageReportsKill(t *testing.T) {
	c := newTestChicken(t)
	c.Health = 10

	assert.False(t, c.TakeDamage(5))
	assert.Equal(t, 5.0, c.Health)
	assert.True(t, c.IsAlive())

	assert.True(t, c.TakeDamage(5))
	assert.Equal(t, 0.0, c.Health)
	assert.False(t, c.IsAlive())

	assert.False(t, c.TakeDamage(5), "a dead chicken is not killed twice")
}

func TestSlowRoundTrip(t *testing.T) {
	c := newTestChicken(t)
	rng := testRNG()

	for i := 0; i < 50; i++ {
		before := c.Slow
		src := donburi.Entity(100 + i)
		c.ApplySlow(src, rng.Float64())
		assert.GreaterOrEqual(t, c.Slow, 0.0)
		assert.LessOrEqual(t, c.Slow, 1.0)
		c.RemoveSlow(src)
		assert.Equal(t, before, c.Slow)

		// leave some slows applied so later rounds start from other values
		if i%7 == 0 {
			c.ApplySlow(donburi.Entity(1000+i), 0.1)
		}
	}
}

func TestSlowOverlapClamps(t *testing.T) {
	c := newTestChicken(t)
	a, b := donburi.Entity(7), donburi.Entity(8)

	c.ApplySlow(a, 0.7)
	c.ApplySlow(b, 0.7)
	assert.Equal(t, 0.0, c.Slow)

	c.ApplySlow(a, 0.7)
	assert.Len(t, c.Slows, 2, "same source is applied once")

	c.RemoveSlow(a)
	assert.InDelta(t, 0.3, c.Slow, 1e-12)
	c.RemoveSlow(b)
	assert.Equal(t, 1.0, c.Slow)

	c.RemoveSlow(b)
	assert.Equal(t, 1.0, c.Slow)
}

func TestBurnTicksDownToInactive(t *testing.T) {
	c := newTestChicken(t)
	assert.False(t, c.Burning())

	c.ApplyBurn(0.5)
	total := 0.0
	for i := 0; i < 60; i++ {
		total += c.TickBurn(0.1, 2)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Equal(t, -1.0, c.BurnTimer)

	c.ApplyBurn(2)
	c.StopBurn()
	assert.False(t, c.Burning())
	assert.Zero(t, c.TickBurn(0.1, 2))
}

func TestLureAndReset(t *testing.T) {
	c := newTestChicken(t)
	lure := donburi.Entity(55)

	c.Lure(lure)
	assert.Equal(t, TargetRef{Kind: tags.KindTrap, Entity: lure}, c.Target)

	c.Unlure(donburi.Entity(56))
	assert.Equal(t, lure, c.Target.Entity, "leaving another lure keeps the target")

	c.Unlure(lure)
	assert.Equal(t, TargetRef{Kind: tags.KindChef, Entity: c.Chef}, c.Target)
}
