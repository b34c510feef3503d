package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi/features/math"
)

func fighter(health float64) *components.CombatantData {
	c := components.NewCombatant("f", components.SideOpponent, cfg.DirectionLeft, 100)
	c.Health = health
	return &c
}

func TestDecisionInterval(t *testing.T) {
	tests := []struct{ phase, want int }{
		{1, 8},
		{2, 6},
		{3, 5},
		{4, 5},
	}
	for _, tt := range tests {
		if got := DecisionInterval(tt.phase); got != tt.want {
			t.Errorf("DecisionInterval(%d) = %d, want %d", tt.phase, got, tt.want)
		}
	}
}

func TestDecideApproachesDistantTarget(t *testing.T) {
	self, target := fighter(100), fighter(100)
	d := Decide(self, math.Vec2{X: 1000, Y: 500}, target, math.Vec2{X: 100, Y: 500}, 1, rand.New(rand.NewSource(1)))

	if d.Attack || d.Block {
		t.Fatalf("expected a pure move, got %+v", d)
	}
	if d.MoveX != -cfg.Combatant.MoveSpeed || d.MoveY != 0 {
		t.Fatalf("expected to move left only, got (%v,%v)", d.MoveX, d.MoveY)
	}
	if d.Facing != cfg.DirectionLeft {
		t.Fatalf("expected to face the direction of travel, got %v", d.Facing)
	}
}

func TestDecideRetreatsWhenHurt(t *testing.T) {
	self, target := fighter(50), fighter(100)
	self.AttackCooldown = 5
	d := Decide(self, math.Vec2{X: 500, Y: 500}, target, math.Vec2{X: 350, Y: 400}, 1, rand.New(rand.NewSource(1)))

	if d.MoveX != cfg.Combatant.MoveSpeed || d.MoveY != cfg.Combatant.MoveSpeed {
		t.Fatalf("expected to back away on both axes, got (%v,%v)", d.MoveX, d.MoveY)
	}
	if d.Facing != cfg.DirectionRight {
		t.Fatalf("expected to face away while retreating, got %v", d.Facing)
	}
}

func TestDecideAttacksInRange(t *testing.T) {
	self, target := fighter(100), fighter(100)
	// Phase 4 makes the attack threshold 0, so any draw attacks
	d := Decide(self, math.Vec2{X: 400, Y: 500}, target, math.Vec2{X: 100, Y: 500}, 4, rand.New(rand.NewSource(7)))

	if !d.Attack {
		t.Fatalf("expected an attack, got %+v", d)
	}
	if d.Facing != cfg.DirectionLeft {
		t.Fatalf("expected to face the target before attacking, got %v", d.Facing)
	}
	if d.MoveX != 0 || d.MoveY != 0 {
		t.Fatal("attacking opponents do not move")
	}
}

func TestDecideBlockRate(t *testing.T) {
	self, target := fighter(100), fighter(100)
	self.AttackCooldown = 5
	target.IsAttacking = true
	rng := rand.New(rand.NewSource(3))

	const n = 4000
	blocks := 0
	for i := 0; i < n; i++ {
		if Decide(self, math.Vec2{X: 350, Y: 500}, target, math.Vec2{X: 200, Y: 500}, 1, rng).Block {
			blocks++
		}
	}

	// Phase 1 blocks on draws above 0.5
	if blocks < n*4/10 || blocks > n*6/10 {
		t.Fatalf("expected about half the decisions to block, got %d/%d", blocks, n)
	}
}

func TestDecideNeverBlocksWhileAttacking(t *testing.T) {
	self, target := fighter(100), fighter(100)
	self.IsAttacking = true
	self.AttackCooldown = 5
	target.IsAttacking = true
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		if Decide(self, math.Vec2{X: 350, Y: 500}, target, math.Vec2{X: 200, Y: 500}, 1, rng).Block {
			t.Fatal("an attacking opponent must not raise its guard")
		}
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	self, target := fighter(100), fighter(100)
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		pos := math.Vec2{X: float64(200 + i*5), Y: 450}
		da := Decide(self, pos, target, math.Vec2{X: 100, Y: 500}, 2, a)
		db := Decide(self, pos, target, math.Vec2{X: 100, Y: 500}, 2, b)
		if da != db {
			t.Fatalf("decision %d differs: %+v vs %+v", i, da, db)
		}
	}
}

func TestDecideIgnoresDeadTarget(t *testing.T) {
	self, target := fighter(100), fighter(0)
	target.IsDead = true
	if d := Decide(self, math.Vec2{X: 300}, target, math.Vec2{X: 100}, 1, rand.New(rand.NewSource(1))); d != (Decision{}) {
		t.Fatalf("expected no action against a dead target, got %+v", d)
	}
}

func TestUpdateOpponentsRunsOnCadence(t *testing.T) {
	w := newTestWorld(t)
	spawnPlayer(w, 100, 500)
	opponent := spawnOpponent(w, 1000, 500, 0)
	start := components.Object.Get(opponent).X

	interval := DecisionInterval(1)
	for i := 0; i < interval-1; i++ {
		UpdateOpponents(w)
	}
	if components.Object.Get(opponent).X != start {
		t.Fatal("opponent acted before its decision tick")
	}

	UpdateOpponents(w)
	if got := components.Object.Get(opponent).X; got != start-cfg.Combatant.MoveSpeed {
		t.Fatalf("expected opponent to advance by %v, got x=%v", cfg.Combatant.MoveSpeed, got)
	}
	if GetOrCreateSession(w).DecisionTimer != 0 {
		t.Fatal("expected decision timer reset")
	}
}
