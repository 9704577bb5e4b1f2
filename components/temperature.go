package components

import "github.com/yohamta/donburi"

// TemperatureData is the per-level cook progress. It is both the win
// condition and the multiplier on the chef's outgoing damage.
type TemperatureData struct {
	Value              int
	Max                int
	CookRate           int
	ReductionPerAttack int
	Cooking            bool // cook was active this frame
	Spent              bool // drained to zero by attacks; cleared once cooking raises it again
}

var Temperature = donburi.NewComponentType[TemperatureData]()

// NewTemperature builds a model for a level with the given max.
func NewTemperature(max, cookRate, reductionPerAttack int) TemperatureData {
	if max < 1 {
		max = 1
	}
	if cookRate < 1 {
		cookRate = 1
	}
	return TemperatureData{
		Max:                max,
		CookRate:           cookRate,
		ReductionPerAttack: reductionPerAttack,
	}
}

// Cook advances the value by one frame of cooking when active. The value
// holds when inactive.
func (t *TemperatureData) Cook(active bool) {
	t.Cooking = active
	if !active || t.Value >= t.Max {
		return
	}
	t.Value += t.CookRate
	if t.Value > t.Max {
		t.Value = t.Max
	}
	t.Spent = false
}

// ReduceTemp spends amount of progress, clamping at zero.
func (t *TemperatureData) ReduceTemp(amount int) {
	if amount <= 0 {
		return
	}
	t.Value -= amount
	if t.Value <= 0 {
		t.Value = 0
		t.Spent = true
	}
}

// IsCooked reports the level's win condition.
func (t *TemperatureData) IsCooked() bool {
	return t.Value == t.Max
}

// PercentCooked returns Value/Max in [0, 1].
func (t *TemperatureData) PercentCooked() float64 {
	if t.Max <= 0 {
		return 0
	}
	return float64(t.Value) / float64(t.Max)
}

// DamageCalc scales base damage by the current cook percentage. A resource
// drained by attacks deals nothing until cooking resumes.
func (t *TemperatureData) DamageCalc(base float64) float64 {
	if t.Spent && t.Value <= 0 {
		return 0
	}
	return DamageFor(base, t.PercentCooked())
}

// DamageFor is base + 2*base*percent: base at 0%, triple at 100%.
func DamageFor(base, percent float64) float64 {
	return base + 2*base*percent
}
