package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/fonts"
	"github.com/automoto/fowlplay/scenes"
	"github.com/automoto/fowlplay/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts scenes.Options) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewKitchenScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var (
		level     = flag.String("level", "kitchen", "level name under assets/levels")
		cfgPath   = flag.String("config", "", "optional YAML tuning overrides")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "spawner seed")
		autopilot = flag.Bool("autopilot", false, "let the scripted chef play")
		debug     = flag.Bool("debug", false, "draw collision shapes")
	)
	flag.Parse()

	if *cfgPath != "" {
		if err := config.LoadFile(*cfgPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	config.C.Debug = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("fowlplay")
	ebiten.SetTPS(config.TPS)

	// Initialize persistence for best results
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame(scenes.Options{
		Level:     *level,
		Seed:      *seed,
		Autopilot: *autopilot,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
