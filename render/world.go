package render

import (
	"image/color"
	"math"

	"github.com/automoto/dragonfight/arena"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/systems"
	"github.com/automoto/dragonfight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridStep        = 50
	barHeight       = 5
	barGap          = 8
	facingMarkWidth = 6
)

var gridColor = color.RGBA{R: 45, G: 45, B: 85, A: 255}

func shakeOffset(w donburi.World) (float32, float32) {
	if fx, ok := GetEffects(w); ok {
		return float32(fx.ShakeX), float32(fx.ShakeY)
	}
	return 0, 0
}

// NewArenaRenderer draws the playfield background and its grid.
func NewArenaRenderer(layout *arena.Layout) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.UI.Background)
		ox, oy := shakeOffset(e.World)

		w, h := float32(layout.Width), float32(layout.Height)
		for x := float32(gridStep); x < w; x += gridStep {
			vector.StrokeLine(screen, x+ox, oy, x+ox, h+oy, 1, gridColor, false)
		}
		for y := float32(gridStep); y < h; y += gridStep {
			vector.StrokeLine(screen, ox, y+oy, w+ox, y+oy, 1, gridColor, false)
		}
		vector.StrokeRect(screen, ox, oy, w, h, 2, cfg.Grey, false)
	}
}

// DrawPowerUps renders each pickup as a coloured square that blinks before
// it expires.
func DrawPowerUps(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e.World)
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		p := components.PowerUp.Get(entry)
		if p.Life < cfg.C.TickRate*2 && (p.Life/8)%2 == 0 {
			return
		}
		o := components.Object.Get(entry)
		clr := cfg.UI.PowerUpColors[p.Type.String()]
		vector.DrawFilledRect(screen, float32(o.X)+ox, float32(o.Y)+oy, float32(o.W), float32(o.H), clr, false)
		vector.StrokeRect(screen, float32(o.X)+ox, float32(o.Y)+oy, float32(o.W), float32(o.H), 2, cfg.White, false)
	})
}

// DrawProjectiles renders projectiles, fading them over their lifetime.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e.World)
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		o := components.Object.Get(entry)

		clr := cfg.UI.ProjectileFill
		switch p.Kind {
		case components.AttackStrong:
			clr = cfg.Red
		case components.AttackUltimate:
			clr = cfg.Gold
		}
		alpha := float32(1)
		if p.MaxLife > 0 {
			alpha = 0.4 + 0.6*float32(p.Life)/float32(p.MaxLife)
		}

		cx, cy := float32(o.X+o.W/2)+ox, float32(o.Y+o.H/2)+oy
		vector.DrawFilledCircle(screen, cx, cy, float32(o.W/2), fade(clr, alpha), true)
	})
}

// DrawCombatants renders every fighter with its guard, burn and facing cues
// and a health bar above it.
func DrawCombatants(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e.World)

	for _, o := range systems.Opponents(e.World) {
		slot := components.Opponent.Get(o).Slot
		drawCombatant(screen, o, cfg.UI.OpponentColors[slot%len(cfg.UI.OpponentColors)], ox, oy)
	}
	if player, ok := systems.GetPlayer(e.World); ok {
		drawCombatant(screen, player, cfg.UI.PlayerColor, ox, oy)
	}
}

func drawCombatant(screen *ebiten.Image, entry *donburi.Entry, base color.RGBA, ox, oy float32) {
	c := components.Combatant.Get(entry)
	o := components.Object.Get(entry)
	x, y := float32(o.X)+ox, float32(o.Y)+oy
	w, h := float32(o.W), float32(o.H)

	if c.IsDead {
		vector.DrawFilledRect(screen, x, y+h-10, w, 10, fade(base, 0.35), false)
		return
	}

	body := base
	if c.IsDashing {
		body = fade(base, 0.6)
	}
	vector.DrawFilledRect(screen, x, y, w, h, body, false)

	// Facing mark on the leading edge
	markX := x + w - facingMarkWidth
	if !c.FacingRight() {
		markX = x
	}
	vector.DrawFilledRect(screen, markX, y+h/4, facingMarkWidth, h/4, cfg.White, false)

	if c.IsAttacking {
		reach := float32(cfg.Combat.AttackRange)
		ax := x + w
		if !c.FacingRight() {
			ax = x - reach
		}
		vector.DrawFilledRect(screen, ax, y, reach, h, fade(base, 0.25), false)
	}
	if c.StatusEffects.Has(components.EffectBurn) {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, cfg.Orange, false)
	}
	if c.IsBlocking {
		vector.StrokeRect(screen, x-4, y-4, w+8, h+8, 3, cfg.UI.BlockColor, false)
	}

	// Health bar
	barY := y - barGap - barHeight
	ratio := float32(0)
	if c.MaxHealth > 0 {
		ratio = float32(math.Max(0, c.Health/c.MaxHealth))
	}
	vector.DrawFilledRect(screen, x, barY, w, barHeight, cfg.UI.BarBackground, false)
	vector.DrawFilledRect(screen, x, barY, w*ratio, barHeight, cfg.UI.HealthColor, false)

	if c.Side == components.SideOpponent {
		face := fonts.Small.Get()
		nx := int(x + (w-float32(textWidth(face, c.Name)))/2)
		drawText(screen, c.Name, face, nx, int(barY)-3, cfg.UI.TextColor)
	}
}
