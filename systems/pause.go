package systems

import (
	"github.com/automoto/dragonfight/components"
	"github.com/yohamta/donburi"
)

// System is one stage of the simulation tick.
type System func(w donburi.World)

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if pause := GetOrCreatePause(w); pause.IsPaused {
			return
		}
		system(w)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}
