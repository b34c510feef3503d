// Package session runs one game: it owns the world, steps the simulation and
// drives the Menu → Playing → UpgradeSelect → PhaseTransition → GameOver
// state machine. It has no dependency on ebiten.
package session

import (
	"log"

	"github.com/automoto/dragonfight/arena"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/systems"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

// Options configures a new session. Zero values pick the defaults.
type Options struct {
	Seed   int64
	Store  systems.ScoreStore
	Layout *arena.Layout
}

type Session struct {
	world     donburi.World
	store     systems.ScoreStore
	layout    *arena.Layout
	systems   []systems.System
	savedBest int
}

// New builds a session in the menu state with the persisted best score.
func New(opts Options) *Session {
	s := &Session{
		world:  donburi.NewWorld(),
		store:  opts.Store,
		layout: opts.Layout,
	}
	if s.store == nil {
		s.store = &systems.MemoryScoreStore{}
	}
	if s.layout == nil {
		s.layout = arena.Default()
	}

	best, err := s.store.LoadBestScore()
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
	}
	s.savedBest = best

	factory.CreateSpace(s.world, s.layout.Width, s.layout.Height, 50, 50)
	systems.SeedRandom(s.world, opts.Seed)

	// Order matters: combatants tick before acting, policy runs before
	// collisions, and the director sees the outcome of every hit.
	for _, sys := range []systems.System{
		countElapsed,
		systems.UpdateCombatants,
		systems.UpdatePlayerIntent,
		systems.UpdateOpponents,
		systems.UpdateProjectiles,
		systems.UpdatePowerUps,
		systems.UpdateMelee,
		systems.UpdateEncounter,
		advanceScheduler,
	} {
		s.systems = append(s.systems, systems.WithPauseCheck(sys))
	}

	s.reset(best)
	return s
}

func countElapsed(w donburi.World) {
	systems.GetOrCreateSession(w).ElapsedTicks++
}

func advanceScheduler(w donburi.World) {
	systems.GetOrCreateScheduler(w).Advance(w)
}

// World exposes the simulation world to renderers and event subscribers.
func (s *Session) World() donburi.World {
	return s.world
}

func (s *Session) Layout() *arena.Layout {
	return s.layout
}

// Data returns the run singleton. Callers must treat it as read-only.
func (s *Session) Data() *components.SessionData {
	return systems.GetOrCreateSession(s.world)
}

// State reports the current state, StatePaused while the pause flag is set.
func (s *Session) State() cfg.SessionState {
	if systems.GetOrCreatePause(s.world).IsPaused {
		return cfg.StatePaused
	}
	return s.Data().State
}

// Player returns the player's combatant state.
func (s *Session) Player() *components.CombatantData {
	player, ok := systems.GetPlayer(s.world)
	if !ok {
		return nil
	}
	return components.Combatant.Get(player)
}

// Start leaves the menu and begins phase 1.
func (s *Session) Start() bool {
	data := s.Data()
	if data.State != cfg.StateMenu {
		return false
	}

	data.Score = 0
	data.DamageDealt = 0
	data.DamageTaken = 0
	data.Kills = 0
	data.ElapsedTicks = 0
	data.Outcome = components.OutcomeNone

	s.StartPhase(1)
	systems.SetState(s.world, cfg.StatePlaying)
	events.ProcessAll(s.world)
	log.Printf("Run started")
	return true
}

// Tick advances the game by one fixed step with the player's intent for it.
func (s *Session) Tick(intent components.IntentData) {
	data := s.Data()

	switch data.State {
	case cfg.StatePlaying:
		if player, ok := systems.GetPlayer(s.world); ok {
			components.Intent.SetValue(player, intent)
		}
		for _, sys := range s.systems {
			sys(s.world)
		}
	case cfg.StatePhaseTransition:
		data.ElapsedTicks++
		data.TransitionTicks--
		if data.TransitionTicks <= 0 {
			data.TransitionTicks = 0
			systems.SetState(s.world, cfg.StatePlaying)
		}
	}

	if data.State == cfg.StateGameOver {
		s.saveBest()
	}

	events.ProcessAll(s.world)
}

// TogglePause flips the pause flag. Only a running fight can be paused.
func (s *Session) TogglePause() bool {
	if s.Data().State != cfg.StatePlaying {
		return false
	}

	pause := systems.GetOrCreatePause(s.world)
	pause.IsPaused = !pause.IsPaused

	from, to := cfg.StatePlaying, cfg.StatePaused
	if !pause.IsPaused {
		from, to = to, from
	}
	events.StateChangedEvent.Publish(s.world, events.StateChanged{From: from, To: to})
	events.ProcessAll(s.world)
	return true
}

// Restart abandons the run from any state and returns to the menu with a
// fresh player. The best score survives.
func (s *Session) Restart() {
	s.saveBest()
	s.reset(s.Data().BestScore)
	events.ProcessAll(s.world)
	log.Printf("Run restarted")
}

// ChooseUpgrade applies the i-th offered upgrade and moves on to the next
// phase. It reports false when no offer is open or i is out of range.
func (s *Session) ChooseUpgrade(i int) bool {
	data := s.Data()
	if data.State != cfg.StateUpgradeSelect || i < 0 || i >= len(data.Offers) {
		return false
	}

	upgrade := data.Offers[i]
	if player, ok := systems.GetPlayer(s.world); ok {
		components.Combatant.Get(player).ApplyUpgrade(upgrade)
	}
	data.Offers = nil
	log.Printf("Upgrade chosen: %s", upgrade)

	s.StartPhase(data.Phase + 1)
	data.TransitionTicks = cfg.Encounter.TransitionTicks
	systems.SetState(s.world, cfg.StatePhaseTransition)
	events.ProcessAll(s.world)
	return true
}

// StartPhase clears the arena, restores the player to its spawn and builds
// the roster for phase n.
func (s *Session) StartPhase(n int) {
	w := s.world
	data := s.Data()
	data.Phase = n
	data.RosterDefeated = false
	data.OfferPending = false
	data.Offers = nil
	data.DecisionTimer = 0

	destroyTagged(w, tags.Projectile, tags.PowerUp, tags.Opponent)

	if player, ok := systems.GetPlayer(w); ok {
		c := components.Combatant.Get(player)
		c.ClearTransient()
		c.Facing = cfg.DirectionRight
		c.Heal(c.MaxHealth * cfg.Encounter.HealFraction)

		obj := components.Object.Get(player)
		obj.X, obj.Y = s.layout.PlayerSpawn.X, s.layout.PlayerSpawn.Y
		obj.Update()
	}

	pc := factory.PhaseConfig(n)
	factory.CreateRoster(w, n, s.layout.Slots(pc.Opponents))

	events.PhaseAdvancedEvent.Publish(w, events.PhaseAdvanced{Phase: n})
	log.Printf("Phase %d started: %d x %s (%.0f HP)", n, pc.Opponents, pc.Name, pc.OpponentHealth)
}

// reset returns the world to the menu defaults.
func (s *Session) reset(best int) {
	w := s.world

	destroyTagged(w, tags.Player, tags.Projectile, tags.PowerUp, tags.Opponent)
	systems.GetOrCreateScheduler(w).Invalidate()
	systems.GetOrCreatePause(w).IsPaused = false

	data := s.Data()
	state := data.State
	*data = components.SessionData{
		State:     state,
		Phase:     1,
		BestScore: best,
	}
	systems.SetState(w, cfg.StateMenu)

	factory.CreatePlayer(w, s.layout.PlayerSpawn.X, s.layout.PlayerSpawn.Y)
}

func (s *Session) saveBest() {
	best := s.Data().BestScore
	if best <= s.savedBest {
		return
	}
	if err := s.store.SaveBestScore(best); err != nil {
		log.Printf("Warning: Could not save best score: %v", err)
		return
	}
	s.savedBest = best
	log.Printf("New best score: %d", best)
}

func destroyTagged(w donburi.World, ts ...*donburi.ComponentType[donburi.Tag]) {
	var toRemove []*donburi.Entry
	for _, t := range ts {
		t.Each(w, func(e *donburi.Entry) {
			toRemove = append(toRemove, e)
		})
	}
	for _, e := range toRemove {
		factory.Destroy(w, e)
	}
}
