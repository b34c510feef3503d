package systems

import (
	"math"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles advances every projectile, expires the stale ones and
// resolves the first combatant each remaining projectile touches.
func UpdateProjectiles(w donburi.World) {
	var toRemove []*donburi.Entry
	width := float64(cfg.C.Width)

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		obj.X += math.Cos(p.Angle) * p.Speed * p.Direction
		obj.Y += math.Sin(p.Angle) * p.Speed
		obj.Update()

		p.Life--
		if p.Life <= 0 ||
			obj.X < -cfg.Projectiles.BoundsMargin ||
			obj.X > width+cfg.Projectiles.BoundsMargin {
			toRemove = append(toRemove, e)
			return
		}

		if checkProjectileHit(w, e, p, obj) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(w, e)
	}
}

func checkProjectileHit(w donburi.World, e *donburi.Entry, p *components.ProjectileData, obj *components.ObjectData) bool {
	if p.Owner == nil || !p.Owner.Valid() {
		return false
	}

	check := obj.Check(0, 0, tags.ResolvCombatant)
	if check == nil {
		return false
	}

	for _, o := range check.ObjectsByTags(tags.ResolvCombatant) {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || target == nil || !target.Valid() || target.Entity() == p.Owner.Entity() {
			continue
		}
		if !components.Combatant.Get(target).Alive() {
			continue
		}
		if !obj.Overlaps(components.Object.Get(target)) {
			continue
		}
		Resolve(w, target, p.Damage, p.Owner)
		return true
	}
	return false
}
