package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAttackKind = errors.New("unknown attack kind")
	ErrUnknownTrapKind   = errors.New("unknown trap kind")
)

// Chicken AI states, used as looplab/fsm state names.
const (
	StateChase     = "chase"
	StateKnockback = "knockback"
	StateStunned   = "stunned"
	StateAttack    = "attack"
)

// Chicken AI events.
const (
	EventHit     = "hit"
	EventStun    = "stun"
	EventRecover = "recover"
	EventAttack  = "attack"
	EventFinish  = "finish"
)

// AttackKind is the behavior row a chicken attacks with.
type AttackKind int

const (
	AttackBasic AttackKind = iota
	AttackCharge
	AttackProjectile
	AttackKnockback
	AttackExplosion
)

var attackKindNames = [...]string{
	AttackBasic:      "Basic",
	AttackCharge:     "Charge",
	AttackProjectile: "Projectile",
	AttackKnockback:  "Knockback",
	AttackExplosion:  "Explosion",
}

func (k AttackKind) String() string {
	if k < 0 || int(k) >= len(attackKindNames) {
		return fmt.Sprintf("AttackKind(%d)", int(k))
	}
	return attackKindNames[k]
}

// ParseAttackKind maps a name such as "Charge" to its kind.
func ParseAttackKind(s string) (AttackKind, error) {
	for i, name := range attackKindNames {
		if name == s {
			return AttackKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttackKind, s)
}

func (k AttackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AttackKind) UnmarshalText(b []byte) error {
	v, err := ParseAttackKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// TrapKind identifies a placed trap.
type TrapKind int

const (
	TrapNone TrapKind = iota
	TrapLure
	TrapSlow
	TrapFire
	TrapFireLinger
)

var trapKindNames = [...]string{
	TrapNone:       "None",
	TrapLure:       "Lure",
	TrapSlow:       "Slow",
	TrapFire:       "Fire",
	TrapFireLinger: "FireLinger",
}

func (k TrapKind) String() string {
	if k < 0 || int(k) >= len(trapKindNames) {
		return fmt.Sprintf("TrapKind(%d)", int(k))
	}
	return trapKindNames[k]
}

// ParseTrapKind maps a name such as "Slow" to its kind. "None" is rejected.
func ParseTrapKind(s string) (TrapKind, error) {
	for i, name := range trapKindNames {
		if i != int(TrapNone) && name == s {
			return TrapKind(i), nil
		}
	}
	return TrapNone, fmt.Errorf("%w: %q", ErrUnknownTrapKind, s)
}

func (k TrapKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TrapKind) UnmarshalText(b []byte) error {
	v, err := ParseTrapKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// PlaceableTraps are the kinds the chef can put down, in key binding order.
var PlaceableTraps = []TrapKind{TrapLure, TrapSlow, TrapFire}
