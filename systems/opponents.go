package systems

import (
	"github.com/automoto/dragonfight/components"
	"github.com/yohamta/donburi"
)

// UpdateOpponents runs the decision policy for every living opponent once per
// decision interval. All opponents share one timer.
func UpdateOpponents(w donburi.World) {
	session := GetOrCreateSession(w)
	session.DecisionTimer++
	if session.DecisionTimer < DecisionInterval(session.Phase) {
		return
	}
	session.DecisionTimer = 0

	player, ok := GetPlayer(w)
	if !ok {
		return
	}
	target := components.Combatant.Get(player)
	if !target.Alive() {
		return
	}
	targetPos := components.Object.Get(player).Origin()
	rng := GetOrCreateRandom(w)

	for _, o := range Opponents(w) {
		self := components.Combatant.Get(o)
		if !self.Alive() {
			continue
		}
		d := Decide(self, components.Object.Get(o).Origin(), target, targetPos, session.Phase, rng)
		applyDecision(w, o, d)
	}
}

func applyDecision(w donburi.World, e *donburi.Entry, d Decision) {
	c := components.Combatant.Get(e)

	if d.Block {
		c.Block()
	} else {
		c.StopBlock()
	}

	if d.Attack {
		c.Facing = d.Facing
		Attack(w, e, false)
		return
	}

	if d.MoveX != 0 || d.MoveY != 0 {
		Move(e, d.MoveX, d.MoveY)
	}
	if d.Facing != 0 {
		c.Facing = d.Facing
	}
}
