package systems

import (
	"testing"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/yohamta/donburi"
)

// newTestWorld returns a playing world with a collision space.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.C.Width, cfg.C.Height, 50, 50)
	SeedRandom(w, 1)
	GetOrCreateSession(w).State = cfg.StatePlaying
	return w
}

func spawnPlayer(w donburi.World, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(w, x, y)
}

func spawnOpponent(w donburi.World, x, y float64, slot int) *donburi.Entry {
	return factory.CreateOpponent(w, x, y, slot, "Test Dragon", 100)
}

// eventLog records everything published during a test.
type eventLog struct {
	damaged  []events.EntityDamaged
	died     []events.EntityDied
	shakes   []events.CameraShake
	powerUps []events.PowerUpCollected
	states   []events.StateChanged
}

func recordEvents(w donburi.World) *eventLog {
	l := &eventLog{}
	events.EntityDamagedEvent.Subscribe(w, func(w donburi.World, e events.EntityDamaged) {
		l.damaged = append(l.damaged, e)
	})
	events.EntityDiedEvent.Subscribe(w, func(w donburi.World, e events.EntityDied) {
		l.died = append(l.died, e)
	})
	events.CameraShakeEvent.Subscribe(w, func(w donburi.World, e events.CameraShake) {
		l.shakes = append(l.shakes, e)
	})
	events.PowerUpCollectedEvent.Subscribe(w, func(w donburi.World, e events.PowerUpCollected) {
		l.powerUps = append(l.powerUps, e)
	})
	events.StateChangedEvent.Subscribe(w, func(w donburi.World, e events.StateChanged) {
		l.states = append(l.states, e)
	})
	return l
}

func combatant(e *donburi.Entry) *components.CombatantData {
	return components.Combatant.Get(e)
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
