package config

// SessionState is the top-level state of a run.
type SessionState int

const (
	StateMenu SessionState = iota
	StatePlaying
	StatePhaseTransition
	StateUpgradeSelect
	StateGameOver
	StatePaused // reported while the pause flag is set; never stored
)

var sessionStateNames = map[SessionState]string{
	StateMenu:            "menu",
	StatePlaying:         "playing",
	StatePhaseTransition: "phase-transition",
	StateUpgradeSelect:   "upgrade-select",
	StateGameOver:        "game-over",
	StatePaused:          "paused",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical input action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionModifier // strong attack when combined with attack, block otherwise
	ActionUltimate
	ActionPause
	ActionRestart
	ActionStart
	ActionUpgrade1
	ActionUpgrade2
	ActionUpgrade3
	ActionCount // Must be last - used for array sizing
)
