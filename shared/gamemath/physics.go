package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Direction returns the unit vector pointing from (fromX, fromY) to (toX, toY)
// and the distance between them. A zero distance yields a zero vector.
func Direction(fromX, fromY, toX, toY float64) (dirX, dirY, dist float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		dirX = dx / dist
		dirY = dy / dist
	}
	return dirX, dirY, dist
}

// CalculateHomingVelocity returns velocity components to move toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX, dirY, _ := Direction(fromX, fromY, targetX, targetY)
	return dirX * speed, dirY * speed
}

// CalculateAwayVelocity returns velocity components pointing away from a source.
func CalculateAwayVelocity(fromX, fromY, sourceX, sourceY, speed float64) (velX, velY float64) {
	velX, velY = CalculateHomingVelocity(fromX, fromY, sourceX, sourceY, speed)
	return -velX, -velY
}

// Distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b dmath.Vec2, t float64) dmath.Vec2 {
	return dmath.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// ClampLength scales (x, y) down so its length does not exceed max.
func ClampLength(x, y, max float64) (float64, float64) {
	l := math.Sqrt(x*x + y*y)
	if max <= 0 || l <= max {
		return x, y
	}
	return x / l * max, y / l * max
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
