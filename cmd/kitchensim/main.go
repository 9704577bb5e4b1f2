package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/fowlplay/components"
	"github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/scenes"
	"github.com/automoto/fowlplay/systems"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	level := flag.String("level", "kitchen", "level name under assets/levels")
	frames := flag.Int("frames", 60*60*5, "frame limit (0 = until the level ends)")
	seed := flag.Int64("seed", 1, "spawner seed")
	cfgPath := flag.String("config", "", "optional YAML tuning overrides")
	killAll := flag.Int("killall", 0, "remove every chicken each N frames (0 = never)")
	save := flag.Bool("save", false, "record the result in the best-results save")
	flag.Parse()

	if *cfgPath != "" {
		if err := config.LoadFile(*cfgPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *save {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	world, err := scenes.BuildKitchen(scenes.Options{
		Level:     *level,
		Seed:      *seed,
		Autopilot: true,
		Headless:  true,
	})
	if err != nil {
		log.Fatalf("kitchensim: %v", err)
	}

	state, err := run(ctx, world, *frames, *killAll)
	if err != nil {
		log.Printf("kitchensim: %v", err)
	}
	fmt.Printf("%s: %s frame=%d time=%.1fs removed=%d\n",
		state.Name, state.Outcome, state.Frame, state.Elapsed, state.ChickensRemoved)
	if !state.Over() {
		os.Exit(2)
	}
}

// run steps the world until the level ends, the frame limit is hit or ctx
// is cancelled.
func run(ctx context.Context, world *ecs.ECS, frames, killEvery int) (components.LevelStateData, error) {
	levelEntry, ok := factory.FindLevel(world.World)
	if !ok {
		return components.LevelStateData{}, fmt.Errorf("no level entity")
	}
	for i := 1; frames == 0 || i <= frames; i++ {
		select {
		case <-ctx.Done():
			return *components.LevelState.Get(levelEntry), ctx.Err()
		default:
		}
		if killEvery > 0 && i%killEvery == 0 {
			if n := systems.KillAll(world); n > 0 {
				log.Printf("kitchensim: frame %d removed %d chickens", i, n)
			}
		}
		world.Update()
		if systems.LevelOver(world) {
			break
		}
	}
	return *components.LevelState.Get(levelEntry), nil
}
