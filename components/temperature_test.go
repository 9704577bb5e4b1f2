package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookReachesMaxExactly(t *testing.T) {
	temp := NewTemperature(120, 1, 10)

	for i := 0; i < 119; i++ {
		temp.Cook(true)
		assert.False(t, temp.IsCooked(), "cooked early at tick %d", i+1)
	}
	temp.Cook(true)
	assert.True(t, temp.IsCooked())
	assert.Equal(t, 1.0, temp.PercentCooked())

	temp.Cook(true)
	assert.Equal(t, 120, temp.Value, "value never exceeds max")
}

func TestCookInactiveHolds(t *testing.T) {
	temp := NewTemperature(100, 1, 10)
	for i := 0; i < 40; i++ {
		temp.Cook(true)
	}
	for i := 0; i < 500; i++ {
		temp.Cook(false)
	}
	assert.Equal(t, 40, temp.Value)
	assert.False(t, temp.Cooking)
}

func TestReduceTempClampsAndNeverCooks(t *testing.T) {
	temp := NewTemperature(100, 1, 10)
	for i := 0; i < 5; i++ {
		temp.Cook(true)
	}

	temp.ReduceTemp(3)
	assert.Equal(t, 2, temp.Value)
	temp.ReduceTemp(50)
	assert.Equal(t, 0, temp.Value)
	assert.True(t, temp.Spent)
	assert.False(t, temp.IsCooked())

	temp.ReduceTemp(-10)
	assert.Equal(t, 0, temp.Value, "negative reduction is ignored")
}

func TestDamageForEndpointsAndMonotonic(t *testing.T) {
	const base = 5.0
	assert.Equal(t, base, DamageFor(base, 0))
	assert.Equal(t, 3*base, DamageFor(base, 1))

	prev := DamageFor(base, 0)
	for p := 0.0; p <= 1.0; p += 0.05 {
		d := DamageFor(base, p)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestDamageCalcDepletedResource(t *testing.T) {
	temp := NewTemperature(100, 1, 10)
	assert.Equal(t, 5.0, temp.DamageCalc(5), "a fresh level deals base damage")

	for i := 0; i < 10; i++ {
		temp.Cook(true)
	}
	assert.InDelta(t, 6.0, temp.DamageCalc(5), 1e-9)

	temp.ReduceTemp(10)
	assert.Zero(t, temp.DamageCalc(5), "drained resource deals nothing")

	temp.Cook(true)
	assert.False(t, temp.Spent)
	assert.InDelta(t, 5.1, temp.DamageCalc(5), 1e-9)
}
