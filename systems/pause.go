package systems

import (
	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/fonts"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input, ok := levelInput(ecs)
	if !ok {
		return
	}

	// A finished level cannot be paused
	if LevelOver(ecs) {
		pause.IsPaused = false
		return
	}

	if input.JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
		pause.Frames = 0
	}
	if pause.IsPaused {
		pause.Frames++
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, "PAUSED")
	x := (int(width) - bounds.Dx()) / 2
	y := int(height) / 2
	text.Draw(screen, "PAUSED", face, x, y, cfg.Pause.TextColor)

	// Blink the hint at 1 Hz
	if (pause.Frames/cfg.TPS)%2 == 0 {
		hintFace := fonts.HUDSmall.Get()
		hint := "Esc / P: Resume"
		hb := text.BoundString(hintFace, hint)
		text.Draw(screen, hint, hintFace, (int(width)-hb.Dx())/2, y+28, cfg.Pause.TextColor)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or the level is over
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelOverCheck(system))
}

// GetOrCreatePause returns the level's Pause component. Levels spawn with
// one; the AddComponent path only serves hand-built worlds.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if entry, ok := components.Pause.First(ecs.World); ok {
		return components.Pause.Get(entry)
	}
	if levelEntry, ok := factory.FindLevel(ecs.World); ok {
		levelEntry.AddComponent(components.Pause)
		return components.Pause.Get(levelEntry)
	}
	// No level yet: a detached state nothing else reads
	return &components.PauseData{}
}
