package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/yohamta/donburi"
)

// Move displaces a combatant, rejecting each axis independently when the box
// would leave the playfield. While dashing the requested vector is ignored in
// favour of the dash vector.
func Move(e *donburi.Entry, dx, dy float64) {
	c := components.Combatant.Get(e)
	if c.IsDead {
		return
	}

	mx, my := c.Displacement(dx, dy)
	if mx == 0 && my == 0 {
		return
	}

	obj := components.Object.Get(e)
	if nx := obj.X + mx; nx >= 0 && nx+obj.W <= float64(cfg.C.Width) {
		obj.X = nx
	}
	if ny := obj.Y + my; ny >= 0 && ny+obj.H <= float64(cfg.C.Height) {
		obj.Y = ny
	}
	obj.Update()
}

// Attack starts a normal or strong attack and launches its projectile.
func Attack(w donburi.World, e *donburi.Entry, strong bool) bool {
	c := components.Combatant.Get(e)
	if !c.BeginAttack(strong) {
		return false
	}

	p := factory.CreateProjectile(w, e, c.LastAttack, 0)
	events.AttackFiredEvent.Publish(w, events.AttackFired{
		Position:  components.Object.Get(p).Center(),
		Direction: c.Facing,
		Kind:      c.LastAttack,
	})
	return true
}

// Ultimate fires a fan of projectiles centred on the facing direction.
func Ultimate(w donburi.World, e *donburi.Entry) bool {
	c := components.Combatant.Get(e)
	if !c.BeginUltimate() {
		return false
	}

	half := cfg.Projectiles.UltimateCount / 2
	for i := -half; i <= half; i++ {
		factory.CreateProjectile(w, e, components.AttackUltimate, float64(i)*cfg.Projectiles.UltimateSpread)
	}

	events.AttackFiredEvent.Publish(w, events.AttackFired{
		Position:  components.Object.Get(e).Center(),
		Direction: c.Facing,
		Kind:      components.AttackUltimate,
	})
	events.CameraShakeEvent.Publish(w, events.CameraShake{Intensity: cfg.ScreenShake.UltimateIntensity})
	return true
}

// FaceTowards turns a combatant toward a point unless it is within the
// deadband.
func FaceTowards(e *donburi.Entry, x, threshold float64) {
	c := components.Combatant.Get(e)
	if c.IsDead {
		return
	}
	dx := x - components.Object.Get(e).Center().X
	switch {
	case dx > threshold:
		c.Facing = cfg.DirectionRight
	case dx < -threshold:
		c.Facing = cfg.DirectionLeft
	}
}

// NearestOpponent returns the living opponent closest on the horizontal axis.
func NearestOpponent(w donburi.World, from *donburi.Entry) (*donburi.Entry, bool) {
	fromX := components.Object.Get(from).Center().X

	var nearest *donburi.Entry
	best := 0.0
	for _, o := range Opponents(w) {
		if !components.Combatant.Get(o).Alive() {
			continue
		}
		dx := components.Object.Get(o).Center().X - fromX
		if dx < 0 {
			dx = -dx
		}
		if nearest == nil || dx < best {
			nearest, best = o, dx
		}
	}
	return nearest, nearest != nil
}
