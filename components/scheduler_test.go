package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestSchedulerRunsAtDueTick(t *testing.T) {
	w := donburi.NewWorld()
	var s SchedulerData
	ran := 0
	s.After(3, func(donburi.World) { ran++ })

	s.Advance(w)
	s.Advance(w)
	if ran != 0 {
		t.Fatal("callback ran early")
	}
	s.Advance(w)
	if ran != 1 {
		t.Fatalf("expected callback to run once at tick 3, ran %d", ran)
	}
	s.Advance(w)
	if ran != 1 || s.Pending() != 0 {
		t.Fatal("callback must run exactly once")
	}
}

func TestSchedulerInvalidateDropsPending(t *testing.T) {
	w := donburi.NewWorld()
	var s SchedulerData
	ran := false
	s.After(1, func(donburi.World) { ran = true })
	gen := s.Generation()

	s.Invalidate()
	s.Advance(w)
	if ran {
		t.Fatal("invalidated callback ran")
	}
	if s.Generation() == gen {
		t.Fatal("expected generation to change")
	}
}

func TestSchedulerCallbackInvalidatesLaterOnes(t *testing.T) {
	w := donburi.NewWorld()
	var s SchedulerData
	second := false
	s.After(1, func(donburi.World) { s.Invalidate() })
	s.After(1, func(donburi.World) { second = true })

	s.Advance(w)
	if second {
		t.Fatal("callback scheduled before an invalidation must not run")
	}
}

func TestSchedulerRescheduleFromCallback(t *testing.T) {
	w := donburi.NewWorld()
	var s SchedulerData
	ticks := 0
	s.After(1, func(donburi.World) {
		s.After(2, func(donburi.World) { ticks++ })
	})

	for i := 0; i < 3; i++ {
		s.Advance(w)
	}
	if ticks != 1 {
		t.Fatalf("expected the nested callback to run, ran %d", ticks)
	}
}
