package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 200
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 18
)

// DrawHUD renders the player's vitals in the top-left corner and the run
// statistics in the top-right.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetOrCreateSession(e.World)
	if session.State == cfg.StateMenu {
		return
	}
	player, ok := systems.GetPlayer(e.World)
	if !ok {
		return
	}
	c := components.Combatant.Get(player)

	drawBar(screen, hudMargin, hudMargin, c.Health, c.MaxHealth, cfg.UI.HealthColor)
	drawBar(screen, hudMargin, hudMargin+hudBarHeight+4, c.Stamina, c.MaxStamina, cfg.UI.StaminaColor)

	small := fonts.Small.Get()
	y := hudMargin + 2*hudBarHeight + 20
	drawText(screen, fmt.Sprintf("HP %.0f/%.0f", c.Health, c.MaxHealth), small, hudMargin, y, cfg.UI.TextColor)
	y += hudLine

	ult := "ULT READY"
	if c.UltimateCooldown > 0 {
		ult = fmt.Sprintf("ULT %ds", (c.UltimateCooldown+cfg.C.TickRate-1)/cfg.C.TickRate)
	}
	drawText(screen, ult, small, hudMargin, y, cfg.Gold)
	y += hudLine

	if c.DamageBoost > 0 {
		drawText(screen, "DAMAGE BOOST", small, hudMargin, y, cfg.UI.PowerUpColors["damage"])
		y += hudLine
	}
	if c.SpeedBoost > 0 {
		drawText(screen, "SPEED BOOST", small, hudMargin, y, cfg.UI.PowerUpColors["speed"])
		y += hudLine
	}
	if c.ComboCount > 1 {
		drawText(screen, fmt.Sprintf("COMBO x%d", c.ComboCount), fonts.Bold.Get(), hudMargin, y+6, cfg.UI.ComboColor)
	}

	stats := []string{
		fmt.Sprintf("SCORE %d", session.Score),
		fmt.Sprintf("BEST %d", session.BestScore),
		fmt.Sprintf("PHASE %d/%d", session.Phase, len(cfg.Phases)),
		fmt.Sprintf("TIME %ds", session.ElapsedSeconds()),
		fmt.Sprintf("KILLS %d", session.Kills),
	}
	face := fonts.Regular.Get()
	for i, s := range stats {
		x := cfg.C.Width - hudMargin - textWidth(face, s)
		drawText(screen, s, face, x, hudMargin+14+i*hudLine, cfg.UI.TextColor)
	}
}

func drawBar(screen *ebiten.Image, x, y int, value, maxValue float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, cfg.UI.BarBackground, false)
	if maxValue <= 0 {
		return
	}
	ratio := float32(min(max(value/maxValue, 0), 1))
	vector.DrawFilledRect(screen, float32(x), float32(y), hudBarWidth*ratio, hudBarHeight, clr, false)
}
