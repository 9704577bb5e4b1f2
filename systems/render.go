package systems

import (
	"image/color"

	"github.com/automoto/fowlplay/components"
	cfg "github.com/automoto/fowlplay/config"
	"github.com/automoto/fowlplay/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	floorColor     = color.RGBA{235, 225, 205, 255}
	wallColor      = color.RGBA{90, 80, 70, 255}
	stoveColor     = color.RGBA{200, 110, 40, 255}
	stoveHotColor  = color.RGBA{255, 150, 40, 255}
	chefColor      = color.RGBA{250, 250, 255, 255}
	chefHatColor   = color.RGBA{60, 90, 200, 255}
	slapColor      = color.RGBA{255, 255, 255, 140}
	bulletColor    = color.RGBA{250, 210, 60, 255}
	attackColor    = color.RGBA{255, 60, 60, 110}
	shadowColor    = color.RGBA{0, 0, 0, 60}
	chargeRimColor = color.RGBA{255, 255, 255, 255}

	trapColors = map[cfg.TrapKind]color.RGBA{
		cfg.TrapLure:       {250, 230, 120, 90},
		cfg.TrapSlow:       {90, 160, 230, 160},
		cfg.TrapFire:       {240, 90, 30, 220},
		cfg.TrapFireLinger: {255, 120, 20, 110},
	}
)

// DrawKitchen draws the level with flat shapes: floor, walls, stoves, traps,
// attacks, chickens and the chef, in that order.
func DrawKitchen(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(floorColor)

	cooking := false
	if levelEntry, ok := components.Temperature.First(ecs.World); ok {
		cooking = components.Temperature.Get(levelEntry).Cooking
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		drawBox(screen, components.Body.Get(e), wallColor)
	})
	tags.Stove.Each(ecs.World, func(e *donburi.Entry) {
		c := stoveColor
		if cooking {
			c = stoveHotColor
		}
		drawBox(screen, components.Body.Get(e), c)
	})

	tags.Trap.Each(ecs.World, func(e *donburi.Entry) {
		trap := components.Trap.Get(e)
		c := trapColors[trap.Kind]
		if trap.Box {
			side := float32(trap.Radius * 2)
			vector.DrawFilledRect(screen, float32(trap.Position.X-trap.Radius), float32(trap.Position.Y-trap.Radius), side, side, c, false)
			return
		}
		vector.DrawFilledCircle(screen, float32(trap.Position.X), float32(trap.Position.Y), float32(trap.Radius), c, true)
	})

	tags.Attack.Each(ecs.World, func(e *donburi.Entry) {
		drawAttack(screen, components.Attack.Get(e))
	})

	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		drawChicken(screen, e)
	})

	tags.Slap.Each(ecs.World, func(e *donburi.Entry) {
		drawCircle(screen, components.Body.Get(e), slapColor)
	})
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		drawCircle(screen, components.Body.Get(e), bulletColor)
	})

	if chefEntry, ok := tags.Chef.First(ecs.World); ok {
		drawChef(screen, chefEntry)
	}
}

func drawChicken(screen *ebiten.Image, e *donburi.Entry) {
	chicken := components.Chicken.Get(e)
	if chicken.Invisible {
		return
	}
	body := components.Body.Get(e)
	pos := body.Position()
	x, y, r := float32(pos.X), float32(pos.Y), float32(body.Radius)

	vector.DrawFilledCircle(screen, x, y, r, chicken.TypeConfig.TintColor, true)

	// Charging chickens get a rim so the player can read the windup
	if components.AttackLifecycle.Get(e).Phase == components.PhaseCharging {
		vector.StrokeCircle(screen, x, y, r+2, 1.5, chargeRimColor, true)
	}

	// Facing beak
	beak := r * 0.8
	if !chicken.FacingRight {
		beak = -beak
	}
	vector.DrawFilledCircle(screen, x+beak, y-r*0.2, r*0.3, bulletColor, true)

	// Health bar above damaged chickens
	if chicken.Health < chicken.MaxHealth {
		w := r * 2
		ratio := float32(chicken.Health / chicken.MaxHealth)
		vector.DrawFilledRect(screen, x-r, y-r-6, w, 3, color.RGBA{40, 40, 40, 200}, false)
		vector.DrawFilledRect(screen, x-r, y-r-6, w*ratio, 3, color.RGBA{220, 40, 40, 255}, false)
	}
}

func drawAttack(screen *ebiten.Image, a *components.AttackData) {
	switch a.Kind {
	case cfg.AttackProjectile:
		vector.DrawFilledCircle(screen, float32(a.Position.X), float32(a.Position.Y), 4, shadowColor, true)
		p := AttackDrawPosition(a)
		r := float32(5)
		if a.Splat {
			r = float32(a.Radius)
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, attackColor, true)
	case cfg.AttackExplosion:
		r := a.FuseRadius
		if a.Splat {
			r = a.Radius
		}
		vector.StrokeCircle(screen, float32(a.Position.X), float32(a.Position.Y), float32(r), 2, attackColor, true)
		if a.Splat {
			vector.DrawFilledCircle(screen, float32(a.Position.X), float32(a.Position.Y), float32(r), attackColor, true)
		}
	default:
		vector.DrawFilledCircle(screen, float32(a.Position.X), float32(a.Position.Y), float32(a.Radius), attackColor, true)
	}
}

func drawChef(screen *ebiten.Image, e *donburi.Entry) {
	chef := components.Chef.Get(e)
	// Flicker while invulnerable
	if chef.Invulnerable() && int(chef.InvulnTimer*cfg.Combat.FlickerRate*2)%2 == 1 {
		return
	}
	body := components.Body.Get(e)
	pos := body.Position()
	x, y, r := float32(pos.X), float32(pos.Y), float32(body.Radius)
	vector.DrawFilledCircle(screen, x, y, r, chefColor, true)
	vector.DrawFilledCircle(screen, x+float32(chef.Facing.X)*r*0.6, y+float32(chef.Facing.Y)*r*0.6, r*0.35, chefHatColor, true)
}

func drawBox(screen *ebiten.Image, body *components.BodyData, c color.Color) {
	pos := body.Position()
	vector.DrawFilledRect(screen,
		float32(pos.X-body.Width/2), float32(pos.Y-body.Height/2),
		float32(body.Width), float32(body.Height), c, false)
}

func drawCircle(screen *ebiten.Image, body *components.BodyData, c color.Color) {
	pos := body.Position()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(body.Radius), c, true)
}
