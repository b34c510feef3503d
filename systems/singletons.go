package systems

import (
	"math/rand"
	"slices"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

// GetOrCreateSession returns the run singleton, creating it in the menu
// state on first use.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	if _, ok := components.Session.First(w); !ok {
		ent := w.Entry(w.Create(components.Session))
		components.Session.SetValue(ent, components.SessionData{
			State: cfg.StateMenu,
			Phase: 1,
		})
	}

	ent, _ := components.Session.First(w)
	return components.Session.Get(ent)
}

// GetOrCreateScheduler returns the deferred-callback singleton.
func GetOrCreateScheduler(w donburi.World) *components.SchedulerData {
	if _, ok := components.Scheduler.First(w); !ok {
		w.Create(components.Scheduler)
	}

	ent, _ := components.Scheduler.First(w)
	return components.Scheduler.Get(ent)
}

// GetOrCreateRandom returns the session generator. A world without one gets a
// generator seeded from the debug seed.
func GetOrCreateRandom(w donburi.World) *rand.Rand {
	if _, ok := components.Random.First(w); !ok {
		SeedRandom(w, cfg.Debug.Seed)
	}

	ent, _ := components.Random.First(w)
	return components.Random.Get(ent).Rand
}

// SeedRandom replaces the session generator.
func SeedRandom(w donburi.World, seed int64) {
	ent, ok := components.Random.First(w)
	if !ok {
		ent = w.Entry(w.Create(components.Random))
	}
	components.Random.SetValue(ent, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
}

// GetPlayer returns the player entry if one exists.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// Opponents returns the current roster ordered by spawn slot.
func Opponents(w donburi.World) []*donburi.Entry {
	var roster []*donburi.Entry
	tags.Opponent.Each(w, func(e *donburi.Entry) {
		roster = append(roster, e)
	})
	slices.SortFunc(roster, func(a, b *donburi.Entry) int {
		return components.Opponent.Get(a).Slot - components.Opponent.Get(b).Slot
	})
	return roster
}
