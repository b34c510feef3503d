package systems

import (
	"github.com/automoto/dragonfight/components"
	"github.com/automoto/dragonfight/events"
	"github.com/yohamta/donburi"
)

// UpdateCombatants advances every combatant by one tick and carries dashing
// combatants along their dash vector.
func UpdateCombatants(w donburi.World) {
	var died []*donburi.Entry

	components.Combatant.Each(w, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		damage, killed := c.Tick()
		if damage > 0 {
			events.EntityDamagedEvent.Publish(w, events.EntityDamaged{
				Entity:   e.Entity(),
				Position: components.Object.Get(e).Center(),
				Amount:   damage,
			})
		}
		if killed {
			died = append(died, e)
			return
		}
		if c.IsDashing {
			Move(e, 0, 0)
		}
	})

	for _, e := range died {
		handleDeath(w, e)
	}
}
