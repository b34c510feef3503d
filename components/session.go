package components

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// Outcome is how a run ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// SessionData is the run-wide singleton
type SessionData struct {
	State cfg.SessionState
	Phase int

	Score       int
	BestScore   int
	DamageDealt float64
	DamageTaken float64
	Kills       int

	ElapsedTicks int
	Outcome      Outcome

	RosterDefeated  bool
	OfferPending    bool
	Offers          []UpgradeType
	TransitionTicks int
	DecisionTimer   int // ticks since the last opponent decision
}

var Session = donburi.NewComponentType[SessionData]()

// ElapsedSeconds is whole seconds of simulated play.
func (s *SessionData) ElapsedSeconds() int {
	return s.ElapsedTicks / cfg.C.TickRate
}

func (s *SessionData) UpgradeScreen() bool {
	return s.State == cfg.StateUpgradeSelect
}

func (s *SessionData) FinalPhase() bool {
	return s.Phase >= len(cfg.Phases)
}
