package systems

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/yohamta/donburi"
)

// SetState moves the run to a new state and announces the change.
func SetState(w donburi.World, to cfg.SessionState) {
	session := GetOrCreateSession(w)
	from := session.State
	if from == to {
		return
	}
	session.State = to
	events.StateChangedEvent.Publish(w, events.StateChanged{From: from, To: to})
}

// IsPlaying reports whether the simulation should advance this tick.
func IsPlaying(w donburi.World) bool {
	return GetOrCreateSession(w).State == cfg.StatePlaying && !GetOrCreatePause(w).IsPaused
}
