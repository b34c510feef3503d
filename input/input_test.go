package input

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
)

func press(ids ...cfg.ActionID) [cfg.ActionCount]bool {
	var a [cfg.ActionCount]bool
	for _, id := range ids {
		a[id] = true
	}
	return a
}

func TestDoubleTapDashes(t *testing.T) {
	s := NewState()
	s.Step(press(cfg.ActionMoveRight))
	if s.Intent().Dash {
		t.Fatal("single tap should not dash")
	}
	s.Step(press())
	s.Step(press(cfg.ActionMoveRight))

	in := s.Intent()
	if !in.Dash {
		t.Fatal("second tap inside the window should dash")
	}
	if in.DashDir.X != 1 || in.DashDir.Y != 0 {
		t.Errorf("dash dir = %v, want (1,0)", in.DashDir)
	}

	// Dash is reported for one tick only
	s.Step(press(cfg.ActionMoveRight))
	if s.Intent().Dash {
		t.Error("holding the direction should not dash again")
	}
}

func TestDoubleTapOutsideWindow(t *testing.T) {
	s := NewState()
	s.Step(press(cfg.ActionMoveLeft))
	for i := 0; i < Default.DoubleTapWindow+1; i++ {
		s.Step(press())
	}
	s.Step(press(cfg.ActionMoveLeft))
	if s.Intent().Dash {
		t.Error("tap after the window should not dash")
	}
}

func TestDoubleTapNeedsSameDirection(t *testing.T) {
	s := NewState()
	s.Step(press(cfg.ActionMoveLeft))
	s.Step(press())
	s.Step(press(cfg.ActionMoveRight))
	if s.Intent().Dash {
		t.Error("taps in different directions should not dash")
	}
}

func TestIntentModifier(t *testing.T) {
	s := NewState()
	s.Step(press(cfg.ActionModifier))
	in := s.Intent()
	if !in.Block || in.Attack {
		t.Errorf("modifier alone: block=%v attack=%v, want block only", in.Block, in.Attack)
	}

	s.Step(press(cfg.ActionModifier, cfg.ActionAttack))
	in = s.Intent()
	if !in.Attack || !in.Strong || in.Block {
		t.Errorf("modifier+attack: attack=%v strong=%v block=%v", in.Attack, in.Strong, in.Block)
	}

	// Attack triggers on the press, not while held
	s.Step(press(cfg.ActionModifier, cfg.ActionAttack))
	if s.Intent().Attack {
		t.Error("held attack should not repeat")
	}
}

func TestIntentMovement(t *testing.T) {
	s := NewState()
	s.Step(press(cfg.ActionMoveLeft, cfg.ActionMoveUp))
	in := s.Intent()
	if in.MoveX != -1 || in.MoveY != -1 {
		t.Errorf("move = (%v,%v), want (-1,-1)", in.MoveX, in.MoveY)
	}

	s.Step(press(cfg.ActionMoveLeft, cfg.ActionMoveRight))
	if s.Intent().MoveX != 0 {
		t.Error("opposite directions should cancel")
	}
}

func TestUpgradeChoice(t *testing.T) {
	s := NewState()
	if _, ok := s.UpgradeChoice(); ok {
		t.Fatal("no key pressed")
	}
	s.Step(press(cfg.ActionUpgrade3))
	if i, ok := s.UpgradeChoice(); !ok || i != 2 {
		t.Errorf("choice = %d,%v want 2,true", i, ok)
	}
}
