package factory

import (
	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a projectile at the owner's mouth: the leading edge
// of its box in the facing direction, half way down.
func CreateProjectile(w donburi.World, owner *donburi.Entry, kind components.AttackKind, angle float64) *donburi.Entry {
	ownerObj := components.Object.Get(owner)
	combatant := components.Combatant.Get(owner)

	shape := cfg.Projectiles.Normal
	damage := cfg.Combat.AttackDamage
	switch kind {
	case components.AttackStrong:
		shape = cfg.Projectiles.Strong
		damage = cfg.Combat.StrongAttackDamage
	case components.AttackUltimate:
		shape = cfg.Projectiles.Ultimate
		damage = cfg.Combat.StrongAttackDamage * cfg.Combat.UltimateDamageMult
	}

	mouthX := ownerObj.X
	if combatant.FacingRight() {
		mouthX = ownerObj.X + ownerObj.W
	}
	mouthY := ownerObj.Y + ownerObj.H/2

	p := archetypes.Projectile.Spawn(w)
	addObject(w, p, mouthX, mouthY, shape.Width, shape.Height, tags.ResolvProjectile)

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner,
		Direction: combatant.Facing,
		Angle:     angle,
		Speed:     shape.Speed,
		Damage:    damage,
		Life:      shape.Lifetime,
		MaxLife:   shape.Lifetime,
		Kind:      kind,
	})

	return p
}
