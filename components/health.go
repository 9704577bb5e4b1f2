package components

import "github.com/yohamta/donburi"

// HealthData is the chef's hit points.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Damage lowers Current by amount, never below zero and never upward.
func (h *HealthData) Damage(amount int) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}
