package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestDirection(t *testing.T) {
	x, y, d := Direction(0, 0, 3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)
	assert.InDelta(t, 5.0, d, 1e-9)

	x, y, d = Direction(1, 1, 1, 1)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, d)
}

func TestAwayVelocityOpposesHoming(t *testing.T) {
	hx, hy := CalculateHomingVelocity(0, 0, 10, 0, 2)
	ax, ay := CalculateAwayVelocity(0, 0, 10, 0, 2)
	assert.Equal(t, 2.0, hx)
	assert.Equal(t, -2.0, ax)
	assert.Zero(t, hy)
	assert.Zero(t, ay)
}

func TestClampLength(t *testing.T) {
	x, y := ClampLength(30, 40, 10)
	assert.InDelta(t, 6.0, x, 1e-9)
	assert.InDelta(t, 8.0, y, 1e-9)

	x, y = ClampLength(3, 4, 10)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestLerp(t *testing.T) {
	p := Lerp(dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 10, Y: -10}, 0.5)
	assert.Equal(t, dmath.Vec2{X: 5, Y: -5}, p)
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.0, Clamp01(-1))
}
