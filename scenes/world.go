package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/fowlplay/assets"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/systems"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects what the kitchen scene is built from.
type Options struct {
	Level     string // level stem under assets/levels, e.g. "kitchen"
	Seed      int64
	Autopilot bool // the chef is driven by systems.UpdateAutopilot instead of devices
	Headless  bool // no renderers
}

// BuildKitchen creates a world, registers the systems in frame order and
// builds the level entities.
func BuildKitchen(opts Options) (*ecs.ECS, error) {
	data, err := assets.NewLevelLoader().LoadLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("build kitchen: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	if opts.Autopilot {
		e.AddSystem(systems.WithLevelOverCheck(systems.UpdateAutopilot))
	} else {
		e.AddSystem(systems.WithLevelOverCheck(systems.UpdateInput))
	}
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTemperature))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateChef))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAttacks))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAttackInstances))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCleanup))

	// Run after the level ends so the outcome is settled and recorded.
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLevel))
	e.AddSystem(systems.UpdatePersistence)

	if !opts.Headless {
		e.AddRenderer(cfg.Default, systems.DrawKitchen)
		e.AddRenderer(cfg.Default, systems.DrawDebug)
		e.AddRenderer(cfg.Default, systems.DrawHUD)
		e.AddRenderer(cfg.Default, systems.DrawPause)
	}

	factory.CreateLevel(e, data, opts.Seed)
	if opts.Autopilot {
		systems.EnableAutopilot(e)
	}
	return e, nil
}

type KitchenScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
}

func NewKitchenScene(opts Options) *KitchenScene {
	return &KitchenScene{opts: opts}
}

func (ks *KitchenScene) Update() {
	ks.once.Do(ks.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.C.Debug = !cfg.C.Debug
	}
	if ks.ecs == nil {
		return
	}
	if systems.LevelOver(ks.ecs) && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ks.opts.Seed++
		ks.configure()
		return
	}
	ks.ecs.Update()
}

func (ks *KitchenScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ks.ecs == nil {
		return
	}
	ks.ecs.Draw(screen)
}

func (ks *KitchenScene) configure() {
	e, err := BuildKitchen(ks.opts)
	if err != nil {
		log.Printf("scene: %v", err)
		return
	}
	ks.ecs = e
}
