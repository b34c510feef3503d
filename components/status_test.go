package components

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
)

func TestBurnTicksOncePerSecond(t *testing.T) {
	c := NewCombatant("burning", SideOpponent, cfg.DirectionLeft, 100)
	c.AddStatusEffect(EffectBurn, cfg.Combat.BurnDuration)

	var total float64
	hits := 0
	for i := 0; i < cfg.Combat.BurnDuration; i++ {
		dmg, _ := c.Tick()
		if dmg > 0 {
			hits++
			total += dmg
		}
	}

	wantHits := cfg.Combat.BurnDuration / cfg.C.TickRate
	if hits != wantHits {
		t.Fatalf("expected %d burn hits, got %d", wantHits, hits)
	}
	if total != float64(wantHits)*cfg.Combat.BurnDamage {
		t.Fatalf("expected %v burn damage, got %v", float64(wantHits)*cfg.Combat.BurnDamage, total)
	}
	if c.StatusEffects.Has(EffectBurn) {
		t.Fatal("expected burn to expire")
	}
}

func TestBurnNotOnCreation(t *testing.T) {
	s := StatusEffects{}
	s[EffectBurn] = 60
	if dmg := s.Tick(); dmg != 0 {
		t.Fatalf("expected no damage on the first tick, got %v", dmg)
	}
	if s[EffectBurn] != 59 {
		t.Fatalf("expected 59 ticks remaining, got %d", s[EffectBurn])
	}
}

func TestStatusEffectReplaces(t *testing.T) {
	c := NewCombatant("burning", SideOpponent, cfg.DirectionLeft, 100)
	c.AddStatusEffect(EffectBurn, 30)
	c.AddStatusEffect(EffectBurn, 360)
	if len(c.StatusEffects) != 1 || c.StatusEffects[EffectBurn] != 360 {
		t.Fatalf("expected a single burn with 360 ticks, got %v", c.StatusEffects)
	}
}

func TestBurnCanKill(t *testing.T) {
	c := NewCombatant("burning", SideOpponent, cfg.DirectionLeft, 100)
	c.Health = cfg.Combat.BurnDamage
	c.AddStatusEffect(EffectBurn, cfg.C.TickRate+1)

	var died bool
	for i := 0; i <= cfg.C.TickRate && !died; i++ {
		_, died = c.Tick()
	}
	if !died || !c.IsDead || c.Health != 0 {
		t.Fatalf("expected burn to kill, got died=%v health=%v", died, c.Health)
	}
}
