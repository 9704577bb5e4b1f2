package components

import (
	"testing"

	"github.com/automoto/fowlplay/config"
	"github.com/stretchr/testify/assert"
)

func TestStoveProximityCounts(t *testing.T) {
	c := NewChef(nil)
	assert.False(t, c.CanCook())

	c.EnterStove()
	c.EnterStove()
	c.LeaveStove()
	assert.True(t, c.CanCook(), "still next to the second stove")
	c.LeaveStove()
	c.LeaveStove()
	assert.False(t, c.CanCook())
	assert.Zero(t, c.StovesNear)
}

func TestTrapStockIsCopied(t *testing.T) {
	stock := map[config.TrapKind]int{config.TrapSlow: 1}
	c := NewChef(stock)

	assert.True(t, c.TakeTrap(config.TrapSlow))
	assert.False(t, c.TakeTrap(config.TrapSlow))
	assert.False(t, c.TakeTrap(config.TrapLure))
	assert.Equal(t, 1, stock[config.TrapSlow], "config stock untouched")
}

func TestHealthDamage(t *testing.T) {
	h := HealthData{Current: 3, Max: 3}
	h.Damage(-2)
	assert.Equal(t, 3, h.Current)
	h.Damage(2)
	assert.False(t, h.Dead())
	h.Damage(5)
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.Dead())
}
