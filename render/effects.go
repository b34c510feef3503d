package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/systems"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	floatSeconds = 0.8
	floatRise    = 40
	bannerSecs   = 2.5
)

type floatingText struct {
	text   string
	x, y   float64
	clr    color.RGBA
	face   fonts.FontName
	rise   *gween.Tween
	offset float32
	done   bool
}

// EffectsData holds presentation-only feedback driven by simulation events.
type EffectsData struct {
	shake     *gween.Tween
	shakeAmp  float32
	shakeTime float64
	ShakeX    float64
	ShakeY    float64

	texts []*floatingText

	Banner      string
	Warning     string
	banner      *gween.Tween
	BannerAlpha float32
}

var Effects = donburi.NewComponentType[EffectsData]()

// NewEffects creates the effects singleton and subscribes it to the
// simulation's events.
func NewEffects(w donburi.World) {
	if _, ok := Effects.First(w); ok {
		return
	}
	w.Create(Effects)

	events.CameraShakeEvent.Subscribe(w, func(w donburi.World, e events.CameraShake) {
		withEffects(w, func(fx *EffectsData) {
			fx.Shake(float32(e.Intensity))
		})
	})
	events.EntityDamagedEvent.Subscribe(w, func(w donburi.World, e events.EntityDamaged) {
		withEffects(w, func(fx *EffectsData) {
			switch {
			case e.Blocked:
				fx.Float("BLOCK", e.Position.X, e.Position.Y, cfg.Grey, fonts.Small)
			case e.Critical:
				fx.Float(fmt.Sprintf("%.0f!", e.Amount), e.Position.X, e.Position.Y, cfg.UI.CriticalColor, fonts.Bold)
			case e.Amount > 0:
				fx.Float(fmt.Sprintf("%.0f", e.Amount), e.Position.X, e.Position.Y, cfg.UI.DamageColor, fonts.Regular)
			}
		})
	})
	events.EntityDiedEvent.Subscribe(w, func(w donburi.World, e events.EntityDied) {
		withEffects(w, func(fx *EffectsData) {
			fx.Float(e.Name+" down", e.Position.X, e.Position.Y-20, cfg.UI.TitleColor, fonts.Bold)
		})
	})
	events.PowerUpCollectedEvent.Subscribe(w, func(w donburi.World, e events.PowerUpCollected) {
		withEffects(w, func(fx *EffectsData) {
			clr := cfg.UI.PowerUpColors[e.Type.String()]
			fx.Float("+"+strings.ToUpper(e.Type.String()), e.Position.X, e.Position.Y, clr, fonts.Regular)
		})
	})
	events.PhaseAdvancedEvent.Subscribe(w, func(w donburi.World, e events.PhaseAdvanced) {
		withEffects(w, func(fx *EffectsData) {
			pc := factory.PhaseConfig(e.Phase)
			fx.ShowBanner(pc.Banner, pc.Warning)
		})
	})
}

func withEffects(w donburi.World, fn func(fx *EffectsData)) {
	if fx, ok := GetEffects(w); ok {
		fn(fx)
	}
}

// GetEffects returns the effects singleton, if the scene created one.
func GetEffects(w donburi.World) (*EffectsData, bool) {
	entry, ok := Effects.First(w)
	if !ok {
		return nil, false
	}
	return Effects.Get(entry), true
}

// Shake starts a decaying screen shake unless a stronger one is running.
func (fx *EffectsData) Shake(intensity float32) {
	if fx.shake != nil && fx.shakeAmp > intensity {
		return
	}
	fx.shake = gween.New(intensity, 0, cfg.ScreenShake.DecaySeconds, ease.OutQuad)
	fx.shakeAmp = intensity
}

// Float spawns a text that rises from (x, y) and disappears.
func (fx *EffectsData) Float(s string, x, y float64, clr color.RGBA, face fonts.FontName) {
	fx.texts = append(fx.texts, &floatingText{
		text: s,
		x:    x,
		y:    y,
		clr:  clr,
		face: face,
		rise: gween.New(0, floatRise, floatSeconds, ease.OutCubic),
	})
}

func (fx *EffectsData) ShowBanner(title, warning string) {
	fx.Banner = title
	fx.Warning = warning
	fx.banner = gween.New(1, 0, bannerSecs, ease.InQuad)
	fx.BannerAlpha = 1
}

// Update advances every tween by dt seconds.
func (fx *EffectsData) Update(dt float32) {
	if fx.shake != nil {
		amp, finished := fx.shake.Update(dt)
		fx.shakeAmp = amp
		fx.shakeTime += float64(dt)
		fx.ShakeX = math.Sin(fx.shakeTime*50) * float64(amp)
		fx.ShakeY = math.Cos(fx.shakeTime*43) * float64(amp)
		if finished {
			fx.shake = nil
			fx.shakeAmp = 0
			fx.ShakeX, fx.ShakeY = 0, 0
		}
	}

	alive := fx.texts[:0]
	for _, t := range fx.texts {
		t.offset, t.done = t.rise.Update(dt)
		if !t.done {
			alive = append(alive, t)
		}
	}
	fx.texts = alive

	if fx.banner != nil {
		alpha, finished := fx.banner.Update(dt)
		fx.BannerAlpha = alpha
		if finished {
			fx.banner = nil
			fx.BannerAlpha = 0
		}
	}
}

// Clear drops running effects, used when a run is abandoned.
func (fx *EffectsData) Clear() {
	*fx = EffectsData{}
}

// UpdateEffects advances the effects unless the game is paused.
func UpdateEffects(e *ecs.ECS) {
	if systems.GetOrCreatePause(e.World).IsPaused {
		return
	}
	fx, ok := GetEffects(e.World)
	if !ok {
		return
	}
	fx.Update(1 / float32(ebiten.TPS()))
}

// DrawEffects renders the floating texts and the phase banner.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	fx, ok := GetEffects(e.World)
	if !ok {
		return
	}

	for _, t := range fx.texts {
		face := t.face.Get()
		alpha := 1 - t.offset/floatRise
		x := t.x + fx.ShakeX - float64(textWidth(face, t.text))/2
		y := t.y + fx.ShakeY - float64(t.offset)
		drawText(screen, t.text, face, int(x), int(y), fade(t.clr, alpha))
	}

	if fx.BannerAlpha > 0 && fx.Banner != "" {
		drawCentered(screen, fx.Banner, fonts.Title.Get(), cfg.C.Height/2-40, fade(cfg.UI.TitleColor, fx.BannerAlpha))
		if fx.Warning != "" {
			drawCentered(screen, fx.Warning, fonts.Bold.Get(), cfg.C.Height/2, fade(cfg.UI.TextColor, fx.BannerAlpha))
		}
	}
}
