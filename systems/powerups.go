package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/events"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

// UpdatePowerUps ages pickups and applies the ones the living player touches.
func UpdatePowerUps(w donburi.World) {
	var toRemove []*donburi.Entry

	player, hasPlayer := GetPlayer(w)

	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		p := components.PowerUp.Get(e)
		p.Life--
		if p.Life <= 0 {
			toRemove = append(toRemove, e)
			return
		}

		if !hasPlayer || !components.Combatant.Get(player).Alive() {
			return
		}
		obj := components.Object.Get(e)
		if !obj.Overlaps(components.Object.Get(player)) {
			return
		}

		ApplyPowerUp(w, player, p.Type)
		events.PowerUpCollectedEvent.Publish(w, events.PowerUpCollected{
			Type:     p.Type,
			Position: obj.Center(),
		})
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		factory.Destroy(w, e)
	}
}

// ApplyPowerUp grants a pickup's effect. Boosts override the upgrade-derived
// multiplier until a deferred callback restores it.
func ApplyPowerUp(w donburi.World, target *donburi.Entry, t components.PowerUpType) {
	c := components.Combatant.Get(target)

	switch t {
	case components.PowerUpHealth:
		c.Heal(cfg.PowerUp.HealthAmount)
	case components.PowerUpStamina:
		c.RestoreStamina(cfg.PowerUp.StaminaAmount)
	case components.PowerUpDamage:
		c.DamageBoost = cfg.PowerUp.BoostValue
		c.DamageBoostSeq++
		seq := c.DamageBoostSeq
		expireBoost(w, target.Entity(), func(c *components.CombatantData) {
			if c.DamageBoostSeq == seq {
				c.DamageBoost = 0
			}
		})
	case components.PowerUpSpeed:
		c.SpeedBoost = cfg.PowerUp.BoostValue
		c.SpeedBoostSeq++
		seq := c.SpeedBoostSeq
		expireBoost(w, target.Entity(), func(c *components.CombatantData) {
			if c.SpeedBoostSeq == seq {
				c.SpeedBoost = 0
			}
		})
	}

	c.RecomputeMultipliers()
}

// expireBoost schedules the end of a boost. A newer pickup of the same kind
// bumps the sequence, so only the latest expiry clears the boost.
func expireBoost(w donburi.World, entity donburi.Entity, clearBoost func(c *components.CombatantData)) {
	GetOrCreateScheduler(w).After(cfg.PowerUp.BoostDuration, func(w donburi.World) {
		if !w.Valid(entity) {
			return
		}
		e := w.Entry(entity)
		if !e.HasComponent(components.Combatant) {
			return
		}
		c := components.Combatant.Get(e)
		clearBoost(c)
		c.RecomputeMultipliers()
	})
}
