package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the kitchen scene.
const Default ecs.LayerID = 0

// TPS is the fixed simulation rate. DT is the per-frame elapsed time fed to every system.
const (
	TPS = 60
	DT  = 1.0 / TPS
)

// Config holds window level settings.
type Config struct {
	Width  int
	Height int
	Debug  bool
}

// ChefConfig contains all chef-related configuration values
type ChefConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"moveSpeed"`
	Radius    float64 `yaml:"radius"`
	Mass      float64 `yaml:"mass"`

	// Health
	MaxHealth   int     `yaml:"maxHealth"`
	InvulnTime  float64 `yaml:"invulnTime"`  // seconds of invulnerability after a hit
	KnockedTime float64 `yaml:"knockedTime"` // seconds without control after a knockback swipe

	// Slap (melee)
	SlapDamage   float64 `yaml:"slapDamage"`
	SlapReach    float64 `yaml:"slapReach"` // hitbox centre distance in front of the chef
	SlapRadius   float64 `yaml:"slapRadius"`
	SlapLifetime float64 `yaml:"slapLifetime"`
	SlapCooldown float64 `yaml:"slapCooldown"`

	// Bullet (thrown)
	BulletDamage   float64 `yaml:"bulletDamage"`
	BulletSpeed    float64 `yaml:"bulletSpeed"`
	BulletRadius   float64 `yaml:"bulletRadius"`
	BulletLifetime float64 `yaml:"bulletLifetime"`
	BulletCooldown float64 `yaml:"bulletCooldown"`

	// Traps
	TrapCooldown float64          `yaml:"trapCooldown"`
	TrapStock    map[TrapKind]int `yaml:"trapStock"`
}

// ChickenTypeConfig contains configuration for a specific chicken variant.
// Attack selects the behavior row used by the attack systems.
type ChickenTypeConfig struct {
	Name   string     `yaml:"name"`
	Attack AttackKind `yaml:"attack"`

	// Health
	MaxHealth float64 `yaml:"maxHealth"`

	// Movement
	ChaseSpeed        float64 `yaml:"chaseSpeed"`
	MaxSpeed          float64 `yaml:"maxSpeed"`
	KnockbackStrength float64 `yaml:"knockbackStrength"`
	Radius            float64 `yaml:"radius"`
	HurtboxRadius     float64 `yaml:"hurtboxRadius"`
	Mass              float64 `yaml:"mass"`

	// Attack timing, seconds
	AttackRange    float64 `yaml:"attackRange"`
	ChargeTime     float64 `yaml:"chargeTime"`
	AttackDuration float64 `yaml:"attackDuration"`
	RecoverTime    float64 `yaml:"recoverTime"`
	AttackCooldown float64 `yaml:"attackCooldown"`

	// Attack shape and effect
	Damage        int     `yaml:"damage"`
	HitboxRadius  float64 `yaml:"hitboxRadius"`
	HitboxReach   float64 `yaml:"hitboxReach"`   // melee hitbox distance in front of the chicken
	ChargeSpeed   float64 `yaml:"chargeSpeed"`   // Charge
	LobHeight     float64 `yaml:"lobHeight"`     // Projectile, visual arc peak
	SplatTime     float64 `yaml:"splatTime"`     // Projectile and Explosion, armed window after landing
	BlastRadius   float64 `yaml:"blastRadius"`   // Explosion
	ChefKnockback float64 `yaml:"chefKnockback"` // Knockback, impulse applied to the chef

	// Visual
	TintColor color.RGBA `yaml:"-"`
}

// CombatConfig holds the shared combat tuning.
type CombatConfig struct {
	InvulnTime          float64 `yaml:"invulnTime"`  // INVULN_TIME, seconds a chicken stays stunned
	FlickerRate         float64 `yaml:"flickerRate"` // Hz
	StopTime            float64 `yaml:"stopTime"`    // freeze after bumping into the chef
	BurnDamagePerSecond float64 `yaml:"burnDamagePerSecond"`
	ArrivalEpsilon      float64 `yaml:"arrivalEpsilon"`
}

// TrapTypeConfig describes one trap kind.
type TrapTypeConfig struct {
	Durability int     `yaml:"durability"`
	Magnitude  float64 `yaml:"magnitude"` // slow strength or burn duration
	Radius     float64 `yaml:"radius"`
	Box        bool    `yaml:"box"` // box shape of Radius*2 side instead of circle
	Linger     bool    `yaml:"linger"`
	Lifetime   float64 `yaml:"lifetime"` // seconds, only for lingering traps
}

// TrapConfig holds the trap table.
type TrapConfig struct {
	Types map[TrapKind]TrapTypeConfig `yaml:"types"`
}

// TemperatureConfig holds defaults used when a level does not override them.
type TemperatureConfig struct {
	Max                int `yaml:"max"`
	CookRate           int `yaml:"cookRate"` // ticks gained per cooking frame
	ReductionPerAttack int `yaml:"reductionPerAttack"`
}

// WaveConfig controls chicken spawning.
type WaveConfig struct {
	Gap           float64            `yaml:"gap"`   // seconds between waves
	First         float64            `yaml:"first"` // seconds before the first wave
	Size          int                `yaml:"size"`
	Count         int                `yaml:"count"` // 0 means unlimited
	MaxAlive      int                `yaml:"maxAlive"`
	Probabilities map[string]float64 `yaml:"probabilities"`
}

// PhysicsConfig controls the chipmunk space and obstacle grid.
type PhysicsConfig struct {
	Damping    float64 `yaml:"damping"`
	Iterations uint    `yaml:"iterations"`
	TileSize   int     `yaml:"tileSize"`
}

// AutopilotConfig tunes the scripted chef used by the headless simulator.
type AutopilotConfig struct {
	SlapRange      float64 `yaml:"slapRange"`
	ShootRange     float64 `yaml:"shootRange"`
	TrapCrowd      int     `yaml:"trapCrowd"` // chickens within ShootRange before a trap is placed
	DecisionFrames int     `yaml:"decisionFrames"`
}

// PauseConfig holds the pause overlay colors.
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

var C *Config
var Pause PauseConfig
var Chef ChefConfig
var Chickens map[string]ChickenTypeConfig
var Combat CombatConfig
var Traps TrapConfig
var Temperature TemperatureConfig
var Waves WaveConfig
var Physics PhysicsConfig
var Autopilot AutopilotConfig

// ChickenOrder is the stable iteration order of the chicken table.
var ChickenOrder = []string{"Nugget", "Buffalo", "Shredded", "Hot", "Dino"}

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}
	Pause = PauseConfig{
		OverlayColor: color.RGBA{0, 0, 0, 160},
		TextColor:    color.RGBA{255, 255, 255, 255},
	}
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	Chef = ChefConfig{
		MoveSpeed:      140,
		Radius:         12,
		Mass:           1,
		MaxHealth:      5,
		InvulnTime:     1.0,
		KnockedTime:    0.3,
		SlapDamage:     5,
		SlapReach:      18,
		SlapRadius:     16,
		SlapLifetime:   0.15,
		SlapCooldown:   0.3,
		BulletDamage:   3,
		BulletSpeed:    320,
		BulletRadius:   4,
		BulletLifetime: 1.0,
		BulletCooldown: 0.5,
		TrapCooldown:   0.5,
		TrapStock: map[TrapKind]int{
			TrapLure: 2,
			TrapSlow: 3,
			TrapFire: 2,
		},
	}

	nugget := ChickenTypeConfig{
		Name:              "Nugget",
		Attack:            AttackBasic,
		MaxHealth:         10,
		ChaseSpeed:        90,
		MaxSpeed:          220,
		KnockbackStrength: 180,
		Radius:            10,
		HurtboxRadius:     14,
		Mass:              1,
		AttackRange:       30,
		ChargeTime:        0.4,
		AttackDuration:    0.3,
		RecoverTime:       0.2,
		AttackCooldown:    0.5,
		Damage:            1,
		HitboxRadius:      12,
		HitboxReach:       14,
		TintColor:         color.RGBA{R: 240, G: 200, B: 120, A: 255},
	}

	buffalo := nugget
	buffalo.Name = "Buffalo"
	buffalo.Attack = AttackCharge
	buffalo.MaxHealth = 14
	buffalo.ChaseSpeed = 70
	buffalo.MaxSpeed = 300
	buffalo.AttackRange = 160
	buffalo.ChargeTime = 0.8
	buffalo.AttackDuration = 1.2
	buffalo.RecoverTime = 0.4
	buffalo.AttackCooldown = 1.5
	buffalo.Damage = 2
	buffalo.HitboxReach = 0
	buffalo.HitboxRadius = 13
	buffalo.ChargeSpeed = 260
	buffalo.TintColor = color.RGBA{R: 220, G: 80, B: 40, A: 255}

	shredded := nugget
	shredded.Name = "Shredded"
	shredded.Attack = AttackProjectile
	shredded.MaxHealth = 8
	shredded.ChaseSpeed = 60
	shredded.AttackRange = 200
	shredded.ChargeTime = 0.6
	shredded.AttackDuration = 0.8
	shredded.AttackCooldown = 1.2
	shredded.HitboxRadius = 18
	shredded.HitboxReach = 0
	shredded.LobHeight = 40
	shredded.SplatTime = 0.5
	shredded.TintColor = color.RGBA{R: 200, G: 170, B: 140, A: 255}

	hot := nugget
	hot.Name = "Hot"
	hot.Attack = AttackExplosion
	hot.MaxHealth = 12
	hot.ChaseSpeed = 80
	hot.AttackRange = 40
	hot.ChargeTime = 1.0
	hot.AttackDuration = 0.3
	hot.HitboxReach = 0
	hot.BlastRadius = 56
	hot.SplatTime = 0.3
	hot.Damage = 2
	hot.TintColor = color.RGBA{R: 255, G: 40, B: 40, A: 255}

	dino := nugget
	dino.Name = "Dino"
	dino.Attack = AttackKnockback
	dino.MaxHealth = 30
	dino.ChaseSpeed = 50
	dino.KnockbackStrength = 90
	dino.Radius = 14
	dino.HurtboxRadius = 18
	dino.Mass = 3
	dino.AttackRange = 44
	dino.ChargeTime = 0.6
	dino.HitboxRadius = 18
	dino.HitboxReach = 20
	dino.ChefKnockback = 300
	dino.TintColor = color.RGBA{R: 90, G: 160, B: 70, A: 255}

	Chickens = map[string]ChickenTypeConfig{
		nugget.Name:   nugget,
		buffalo.Name:  buffalo,
		shredded.Name: shredded,
		hot.Name:      hot,
		dino.Name:     dino,
	}

	Combat = CombatConfig{
		InvulnTime:          1.0,
		FlickerRate:         5,
		StopTime:            0.5,
		BurnDamagePerSecond: 3,
		ArrivalEpsilon:      6,
	}

	Traps = TrapConfig{
		Types: map[TrapKind]TrapTypeConfig{
			TrapLure: {
				Durability: 3,
				Radius:     96,
			},
			TrapSlow: {
				Durability: 4,
				Magnitude:  0.5,
				Radius:     16,
				Box:        true,
			},
			TrapFire: {
				Durability: 1,
				Radius:     12,
			},
			TrapFireLinger: {
				Durability: 1,
				Magnitude:  2.0,
				Radius:     40,
				Linger:     true,
				Lifetime:   4.0,
			},
		},
	}

	Temperature = TemperatureConfig{
		Max:                1800, // 30 seconds at the stove
		CookRate:           1,
		ReductionPerAttack: 30,
	}

	Waves = WaveConfig{
		Gap:      6,
		First:    2,
		Size:     3,
		MaxAlive: 24,
		Probabilities: map[string]float64{
			"Nugget":   0.5,
			"Buffalo":  0.15,
			"Shredded": 0.15,
			"Hot":      0.1,
			"Dino":     0.1,
		},
	}

	Physics = PhysicsConfig{
		Damping:    0.2,
		Iterations: 10,
		TileSize:   32,
	}

	Autopilot = AutopilotConfig{
		SlapRange:      34,
		ShootRange:     160,
		TrapCrowd:      3,
		DecisionFrames: 6,
	}
}

// ChickenType returns the named chicken config and whether it exists.
func ChickenType(name string) (*ChickenTypeConfig, bool) {
	t, ok := Chickens[name]
	if !ok {
		return nil, false
	}
	return &t, true
}
