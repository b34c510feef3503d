package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/input"
	"github.com/automoto/dragonfight/render"
	"github.com/automoto/dragonfight/session"
	"github.com/automoto/dragonfight/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs a session: it feeds device input into it once per tick and
// draws the world, overlays and the upgrade picker.
type ArenaScene struct {
	ecs       *ecs.ECS
	session   *session.Session
	input     *input.State
	upgradeUI *ui.UpgradeUI
	skipMenu  bool
	once      sync.Once
}

func NewArenaScene(s *session.Session, skipMenu bool) *ArenaScene {
	return &ArenaScene{session: s, skipMenu: skipMenu}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	as.input.Poll()
	as.handleCommands()

	as.session.Tick(as.input.Intent())
	as.ecs.Update()
}

// handleCommands applies the out-of-band controls for the current state
// before the tick runs.
func (as *ArenaScene) handleCommands() {
	in := as.input

	if in.JustPressed(cfg.ActionRestart) {
		as.session.Restart()
		if fx, ok := render.GetEffects(as.session.World()); ok {
			fx.Clear()
		}
		return
	}

	switch as.session.State() {
	case cfg.StateMenu:
		if in.JustPressed(cfg.ActionStart) {
			as.session.Start()
		}
	case cfg.StatePlaying, cfg.StatePaused:
		if in.JustPressed(cfg.ActionPause) {
			as.session.TogglePause()
		}
	case cfg.StateUpgradeSelect:
		if i, ok := in.UpgradeChoice(); ok {
			as.session.ChooseUpgrade(i)
			return
		}
		as.upgradeUI.Update()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)

	if as.session.Data().UpgradeScreen() {
		as.upgradeUI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	w := as.session.World()
	as.ecs = ecs.NewECS(w)
	as.input = input.NewState()
	as.upgradeUI = ui.NewUpgradeUI(func(i int) {
		as.session.ChooseUpgrade(i)
	})

	render.NewEffects(w)
	events.StateChangedEvent.Subscribe(w, func(w donburi.World, e events.StateChanged) {
		if e.To == cfg.StateUpgradeSelect {
			as.upgradeUI.SetOffers(as.session.Data().Offers)
		}
	})

	// Presentation systems; the simulation itself is stepped by the session
	as.ecs.AddSystem(render.UpdateEffects)

	as.ecs.AddRenderer(render.LayerArena, render.NewArenaRenderer(as.session.Layout()))
	as.ecs.AddRenderer(render.LayerEntities, render.DrawPowerUps)
	as.ecs.AddRenderer(render.LayerEntities, render.DrawProjectiles)
	as.ecs.AddRenderer(render.LayerEntities, render.DrawCombatants)
	as.ecs.AddRenderer(render.LayerEffects, render.DrawEffects)
	as.ecs.AddRenderer(render.LayerHUD, render.DrawHUD)
	as.ecs.AddRenderer(render.LayerOverlay, render.DrawOverlay)

	if as.skipMenu {
		as.session.Start()
	}
}
