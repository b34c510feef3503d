// Package events carries simulation output to the presentation layer.
// Events are queued during a tick and delivered by ProcessAllEvents at the
// end of it.
package events

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

type EntityDamaged struct {
	Entity   donburi.Entity
	Position math.Vec2
	Amount   float64
	Critical bool
	Blocked  bool
}

type EntityDied struct {
	Entity   donburi.Entity
	Name     string
	Position math.Vec2
	Side     components.Side
}

type PhaseAdvanced struct {
	Phase int
}

type PowerUpCollected struct {
	Type     components.PowerUpType
	Position math.Vec2
}

type AttackFired struct {
	Position  math.Vec2
	Direction float64
	Kind      components.AttackKind
}

type CameraShake struct {
	Intensity float64
}

type StateChanged struct {
	From cfg.SessionState
	To   cfg.SessionState
}

var (
	EntityDamagedEvent    = events.NewEventType[EntityDamaged]()
	EntityDiedEvent       = events.NewEventType[EntityDied]()
	PhaseAdvancedEvent    = events.NewEventType[PhaseAdvanced]()
	PowerUpCollectedEvent = events.NewEventType[PowerUpCollected]()
	AttackFiredEvent      = events.NewEventType[AttackFired]()
	CameraShakeEvent      = events.NewEventType[CameraShake]()
	StateChangedEvent     = events.NewEventType[StateChanged]()
)

// ProcessAll delivers every queued event to its subscribers.
func ProcessAll(w donburi.World) {
	events.ProcessAllEvents(w)
}
