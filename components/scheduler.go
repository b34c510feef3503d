package components

import "github.com/yohamta/donburi"

type deferred struct {
	due        int
	generation uint64
	fn         func(w donburi.World)
}

// SchedulerData runs callbacks a number of ticks in the future. Every entry
// is stamped with the generation current at scheduling time; Invalidate drops
// pending entries and bumps the generation so nothing scheduled before it can
// run afterwards.
type SchedulerData struct {
	now        int
	generation uint64
	pending    []deferred
}

var Scheduler = donburi.NewComponentType[SchedulerData]()

// After schedules fn to run once ticks have elapsed.
func (s *SchedulerData) After(ticks int, fn func(w donburi.World)) {
	s.pending = append(s.pending, deferred{
		due:        s.now + max(ticks, 1),
		generation: s.generation,
		fn:         fn,
	})
}

// Advance moves the clock one tick and runs every due callback in scheduling
// order.
func (s *SchedulerData) Advance(w donburi.World) {
	s.now++

	var due []deferred
	kept := s.pending[:0]
	for _, d := range s.pending {
		if d.due <= s.now {
			due = append(due, d)
			continue
		}
		kept = append(kept, d)
	}
	s.pending = kept

	gen := s.generation
	for _, d := range due {
		if d.generation != gen || s.generation != gen {
			continue
		}
		d.fn(w)
	}
}

// Invalidate cancels everything pending.
func (s *SchedulerData) Invalidate() {
	s.pending = nil
	s.generation++
}

func (s *SchedulerData) Generation() uint64 {
	return s.generation
}

func (s *SchedulerData) Pending() int {
	return len(s.pending)
}
