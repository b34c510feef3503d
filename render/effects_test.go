package render

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const step = float32(1) / 60

func TestShakeDecays(t *testing.T) {
	var fx EffectsData
	fx.Shake(10)

	fx.Update(step)
	if fx.ShakeX == 0 && fx.ShakeY == 0 {
		t.Fatal("shake should offset the view")
	}

	for elapsed := step; elapsed <= cfg.ScreenShake.DecaySeconds+step; elapsed += step {
		fx.Update(step)
	}
	if fx.ShakeX != 0 || fx.ShakeY != 0 {
		t.Errorf("offset = (%v,%v) after decay, want 0", fx.ShakeX, fx.ShakeY)
	}
}

func TestWeakerShakeKeepsStronger(t *testing.T) {
	var fx EffectsData
	fx.Shake(15)
	fx.Shake(5)
	if fx.shakeAmp != 15 {
		t.Errorf("amplitude = %v, want 15", fx.shakeAmp)
	}
}

func TestFloatingTextExpires(t *testing.T) {
	var fx EffectsData
	fx.Float("10", 100, 100, cfg.White, fonts.Regular)

	fx.Update(step)
	if len(fx.texts) != 1 {
		t.Fatalf("texts = %d, want 1", len(fx.texts))
	}
	if fx.texts[0].offset <= 0 {
		t.Error("text should rise")
	}

	for i := 0; i < 60; i++ {
		fx.Update(step)
	}
	if len(fx.texts) != 0 {
		t.Errorf("texts = %d after %.1fs, want 0", len(fx.texts), floatSeconds)
	}
}

func TestEffectsFollowEvents(t *testing.T) {
	w := donburi.NewWorld()
	NewEffects(w)
	NewEffects(w)

	events.EntityDamagedEvent.Publish(w, events.EntityDamaged{Position: math.Vec2{X: 10, Y: 10}, Amount: 12})
	events.EntityDamagedEvent.Publish(w, events.EntityDamaged{Position: math.Vec2{X: 10, Y: 10}, Blocked: true})
	events.CameraShakeEvent.Publish(w, events.CameraShake{Intensity: 5})
	events.PhaseAdvancedEvent.Publish(w, events.PhaseAdvanced{Phase: 2})
	events.ProcessAll(w)

	fx, ok := GetEffects(w)
	if !ok {
		t.Fatal("effects singleton missing")
	}
	if len(fx.texts) != 2 {
		t.Errorf("texts = %d, want 2 (one per event, subscribed once)", len(fx.texts))
	}
	if fx.shake == nil {
		t.Error("camera shake event should start a shake")
	}
	if fx.Banner != cfg.Phases[1].Banner || fx.BannerAlpha != 1 {
		t.Errorf("banner = %q alpha %v", fx.Banner, fx.BannerAlpha)
	}

	fx.Clear()
	if len(fx.texts) != 0 || fx.Banner != "" {
		t.Error("Clear should drop every effect")
	}
}
