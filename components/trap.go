package components

import (
	"github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type TrapData struct {
	Kind       config.TrapKind
	Position   dmath.Vec2
	Durability int
	Magnitude  float64 // slow strength or burn duration
	Radius     float64
	Box        bool
	Linger     bool
	Lifetime   float64 // seconds left for lingering traps
}

var Trap = donburi.NewComponentType[TrapData]()

// NewTrap builds a trap of kind at pos from the trap table.
func NewTrap(kind config.TrapKind, pos dmath.Vec2, t config.TrapTypeConfig) TrapData {
	return TrapData{
		Kind:       kind,
		Position:   pos,
		Durability: t.Durability,
		Magnitude:  t.Magnitude,
		Radius:     t.Radius,
		Box:        t.Box,
		Linger:     t.Linger,
		Lifetime:   t.Lifetime,
	}
}

// Use consumes one durability and reports whether the trap is spent.
// Lingering traps do not wear out by use.
func (t *TrapData) Use() bool {
	if t.Linger {
		return false
	}
	if t.Durability > 0 {
		t.Durability--
	}
	return t.Durability <= 0
}

// Tick advances a lingering trap's timer and reports expiry.
func (t *TrapData) Tick(dt float64) bool {
	if !t.Linger {
		return false
	}
	t.Lifetime -= dt
	return t.Lifetime <= 0
}

// SensorForTrap maps a trap kind to the sensor tag on its shape.
func SensorForTrap(kind config.TrapKind) tags.Sensor {
	switch kind {
	case config.TrapLure:
		return tags.SensorLure
	case config.TrapSlow:
		return tags.SensorSlow
	case config.TrapFire:
		return tags.SensorFire
	case config.TrapFireLinger:
		return tags.SensorFireLinger
	}
	return tags.SensorNone
}

// TrapForSensor is the inverse of SensorForTrap.
func TrapForSensor(s tags.Sensor) config.TrapKind {
	switch s {
	case tags.SensorLure:
		return config.TrapLure
	case tags.SensorSlow:
		return config.TrapSlow
	case tags.SensorFire:
		return config.TrapFire
	case tags.SensorFireLinger:
		return config.TrapFireLinger
	}
	return config.TrapNone
}
