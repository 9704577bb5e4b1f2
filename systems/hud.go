package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/fonts"
	"github.com/automoto/fowlplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
	heartSize    = 10
	heartGap     = 4
)

var (
	hudTextColor = color.RGBA{30, 30, 30, 255}
	hudBarBack   = color.RGBA{40, 40, 40, 255}
	hudHeart     = color.RGBA{220, 40, 60, 255}
	hudHeartGone = color.RGBA{120, 110, 110, 255}
	hudTempLow   = color.RGBA{240, 200, 80, 255}
	hudTempHigh  = color.RGBA{240, 60, 30, 255}
)

// DrawHUD renders the chef's hearts, the cook bar, trap stock, the wave
// counter and the outcome banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := factory.FindLevel(ecs.World)
	if !ok {
		return
	}
	temp := components.Temperature.Get(levelEntry)
	wave := components.Wave.Get(levelEntry)
	state := components.LevelState.Get(levelEntry)
	face := fonts.HUD.Get()

	y := hudMargin
	if chefEntry, ok := factory.FindChef(ecs.World); ok {
		hp := components.Health.Get(chefEntry)
		for i := 0; i < hp.Max; i++ {
			c := hudHeart
			if i >= hp.Current {
				c = hudHeartGone
			}
			vector.DrawFilledRect(screen, float32(hudMargin+i*(heartSize+heartGap)), float32(y), heartSize, heartSize, c, false)
		}

		chef := components.Chef.Get(chefEntry)
		stock := fmt.Sprintf("lure %d  slow %d  fire %d",
			chef.TrapStock[cfg.TrapLure], chef.TrapStock[cfg.TrapSlow], chef.TrapStock[cfg.TrapFire])
		text.Draw(screen, stock, fonts.HUDSmall.Get(), hudMargin, y+heartSize+hudBarHeight+22, hudTextColor)
	}

	// Cook bar
	y += heartSize + 6
	pct := temp.PercentCooked()
	vector.DrawFilledRect(screen, hudMargin, float32(y), hudBarWidth, hudBarHeight, hudBarBack, false)
	vector.DrawFilledRect(screen, hudMargin, float32(y), float32(hudBarWidth*pct), hudBarHeight, lerpColor(hudTempLow, hudTempHigh, pct), false)
	text.Draw(screen, fmt.Sprintf("%3.0f%%", pct*100), face, hudMargin+hudBarWidth+6, y+hudBarHeight, hudTextColor)

	waveText := fmt.Sprintf("wave %d", wave.Spawned)
	if wave.Count > 0 {
		waveText = fmt.Sprintf("wave %d/%d", wave.Spawned, wave.Count)
	}
	waveText += fmt.Sprintf("  chickens %d  removed %d", CountChickens(ecs), state.ChickensRemoved)
	text.Draw(screen, waveText, face, cfg.C.Width-230, hudMargin+12, hudTextColor)

	if state.Over() {
		banner := "COOKED!"
		if state.Outcome == components.OutcomeLost {
			banner = "PLUCKED"
		}
		bounds := text.BoundString(fonts.Banner.Get(), banner)
		x := (cfg.C.Width - bounds.Dx()) / 2
		text.Draw(screen, banner, fonts.Banner.Get(), x, cfg.C.Height/2, hudTextColor)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
