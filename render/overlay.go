package render

import (
	"fmt"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var controlsHelp = []string{
	"Arrows / WASD: move    double-tap: dash",
	"Space: attack    Shift+Space: strong attack",
	"Hold Shift: block    X: ultimate",
	"P: pause    R: restart",
}

func dim(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.UI.OverlayColor, false)
}

// DrawOverlay renders the full-screen panel for the current session state.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetOrCreateSession(e.World)
	if systems.GetOrCreatePause(e.World).IsPaused {
		drawPause(screen)
		return
	}

	switch session.State {
	case cfg.StateMenu:
		drawMenu(screen, session)
	case cfg.StatePhaseTransition:
		drawTransition(screen, session)
	case cfg.StateUpgradeSelect:
		drawUpgradeBackdrop(screen, session)
	case cfg.StateGameOver:
		drawGameOver(screen, session)
	}
}

func drawMenu(screen *ebiten.Image, session *components.SessionData) {
	dim(screen)
	h := cfg.C.Height

	drawCentered(screen, "DRAGON FIGHT", fonts.Title.Get(), h/4, cfg.UI.TitleColor)
	drawCentered(screen, fmt.Sprintf("Best score: %d", session.BestScore), fonts.Bold.Get(), h/4+50, cfg.UI.TextColor)

	face := fonts.Regular.Get()
	for i, line := range controlsHelp {
		drawCentered(screen, line, face, h/2+i*hudLine*3/2, cfg.Grey)
	}
	drawCentered(screen, "Press SPACE to fight", fonts.Bold.Get(), h*3/4+40, cfg.UI.TitleColor)
}

func drawPause(screen *ebiten.Image) {
	dim(screen)
	drawCentered(screen, "PAUSED", fonts.Title.Get(), cfg.C.Height/2, cfg.UI.TitleColor)
	drawCentered(screen, "P to resume    R to restart", fonts.Regular.Get(), cfg.C.Height/2+40, cfg.UI.TextColor)
}

func drawTransition(screen *ebiten.Image, session *components.SessionData) {
	seconds := (session.TransitionTicks + cfg.C.TickRate - 1) / cfg.C.TickRate
	drawCentered(screen, fmt.Sprintf("Phase %d begins in %d", session.Phase, seconds), fonts.Bold.Get(), cfg.C.Height/2+50, cfg.UI.TextColor)
}

func drawUpgradeBackdrop(screen *ebiten.Image, session *components.SessionData) {
	dim(screen)
	drawCentered(screen, fmt.Sprintf("PHASE %d CLEARED", session.Phase), fonts.Title.Get(), cfg.C.Height/4, cfg.UI.TitleColor)
	drawCentered(screen, "Choose an upgrade (1-3)", fonts.Regular.Get(), cfg.C.Height/4+40, cfg.UI.TextColor)
}

func drawGameOver(screen *ebiten.Image, session *components.SessionData) {
	dim(screen)
	h := cfg.C.Height

	title, clr := "DEFEAT", cfg.Red
	if session.Outcome == components.OutcomeVictory {
		title, clr = "VICTORY", cfg.UI.TitleColor
	}
	drawCentered(screen, title, fonts.Title.Get(), h/4, clr)

	face := fonts.Bold.Get()
	lines := []string{
		fmt.Sprintf("Score: %d", session.Score),
		fmt.Sprintf("Best: %d", session.BestScore),
		fmt.Sprintf("Phase reached: %d", session.Phase),
		fmt.Sprintf("Kills: %d", session.Kills),
		fmt.Sprintf("Damage dealt: %.0f", session.DamageDealt),
		fmt.Sprintf("Damage taken: %.0f", session.DamageTaken),
		fmt.Sprintf("Time: %ds", session.ElapsedSeconds()),
	}
	for i, line := range lines {
		drawCentered(screen, line, face, h/4+70+i*30, cfg.UI.TextColor)
	}
	drawCentered(screen, "Press R to return to the menu", fonts.Regular.Get(), h*3/4+60, cfg.Grey)
}
