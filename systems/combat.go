package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/yohamta/donburi"
)

// Hit is the outcome of one resolved attack.
type Hit struct {
	Amount   float64
	Blocked  bool
	Critical bool
	Killed   bool
}

// ComboMultiplier scales damage by the attacker's running combo.
func ComboMultiplier(combo int) float64 {
	if combo <= 0 {
		return 1
	}
	return min(1+float64(combo)*cfg.Combat.ComboStep, cfg.Combat.MaxComboMultiplier)
}

// Resolve applies one attack from attacker to defender. A blocking defender
// takes nothing and the attacker's combo does not advance.
func Resolve(w donburi.World, defender *donburi.Entry, raw float64, attacker *donburi.Entry) Hit {
	def := components.Combatant.Get(defender)
	if def.IsDead {
		return Hit{}
	}
	att := components.Combatant.Get(attacker)
	pos := components.Object.Get(defender).Center()

	if def.IsBlocking {
		events.EntityDamagedEvent.Publish(w, events.EntityDamaged{
			Entity:   defender.Entity(),
			Position: pos,
			Blocked:  true,
		})
		return Hit{Blocked: true}
	}

	hit := Hit{
		Amount:   raw * ComboMultiplier(att.ComboCount) * att.DamageMultiplier,
		Critical: att.ComboCount >= cfg.Combat.CriticalCombo,
	}

	switch att.LastAttack {
	case components.AttackStrong:
		def.AddStatusEffect(components.EffectBurn, cfg.Combat.BurnDuration)
	case components.AttackUltimate:
		def.AddStatusEffect(components.EffectBurn, cfg.Combat.BurnDuration*2)
	}

	hit.Killed = def.ApplyDamage(hit.Amount)

	if hit.Amount > 0 {
		session := GetOrCreateSession(w)
		if def.Side == components.SidePlayer {
			session.DamageTaken += hit.Amount
		}
		if att.Side == components.SidePlayer {
			session.DamageDealt += hit.Amount
		}
	}

	att.RegisterHit()

	events.EntityDamagedEvent.Publish(w, events.EntityDamaged{
		Entity:   defender.Entity(),
		Position: pos,
		Amount:   hit.Amount,
		Critical: hit.Critical,
	})
	events.CameraShakeEvent.Publish(w, events.CameraShake{Intensity: cfg.ScreenShake.HitIntensity})

	if hit.Killed {
		handleDeath(w, defender)
	}
	return hit
}

// handleDeath announces a death and counts opponent kills.
func handleDeath(w donburi.World, e *donburi.Entry) {
	c := components.Combatant.Get(e)
	if c.Side == components.SideOpponent {
		GetOrCreateSession(w).Kills++
	}
	events.EntityDiedEvent.Publish(w, events.EntityDied{
		Entity:   e.Entity(),
		Name:     c.Name,
		Position: components.Object.Get(e).Center(),
		Side:     c.Side,
	})
}

// InMeleeRange reports whether target lies within reach of attacker on the
// facing side. The attacker's box is stretched by reach toward its facing; a
// target exactly at the edge of reach counts, vertically the boxes must overlap.
func InMeleeRange(attacker *components.ObjectData, facing float64, target *components.ObjectData, reach float64) bool {
	left, right := attacker.X, attacker.X+attacker.W
	if facing >= 0 {
		if target.X+target.W/2 < attacker.X+attacker.W/2 {
			return false
		}
		right += reach
	} else {
		if target.X+target.W/2 > attacker.X+attacker.W/2 {
			return false
		}
		left -= reach
	}

	return left <= target.X+target.W &&
		right >= target.X &&
		attacker.Y < target.Y+target.H &&
		attacker.Y+attacker.H > target.Y
}

// UpdateMelee resolves close-range hits: the player against each opponent and
// each opponent against the player. An attack lands at most once.
func UpdateMelee(w donburi.World) {
	player, ok := GetPlayer(w)
	if !ok {
		return
	}
	pc := components.Combatant.Get(player)
	pObj := components.Object.Get(player)

	for _, o := range Opponents(w) {
		if !pc.Alive() || !pc.IsAttacking || pc.AttackLanded {
			break
		}
		oc := components.Combatant.Get(o)
		if !oc.Alive() {
			continue
		}
		if InMeleeRange(pObj, pc.Facing, components.Object.Get(o), cfg.Combat.AttackRange) {
			pc.AttackLanded = true
			Resolve(w, o, cfg.Combat.AttackDamage, player)
		}
	}

	for _, o := range Opponents(w) {
		if !pc.Alive() {
			return
		}
		oc := components.Combatant.Get(o)
		if !oc.Alive() || !oc.IsAttacking || oc.AttackLanded {
			continue
		}
		if InMeleeRange(components.Object.Get(o), oc.Facing, pObj, cfg.Combat.AttackRange) {
			oc.AttackLanded = true
			Resolve(w, player, cfg.Combat.AttackDamage, o)
		}
	}
}
