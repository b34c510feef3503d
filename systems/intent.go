package systems

import (
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

// UpdatePlayerIntent turns the player's intent for this tick into actions.
// Block wins over attack and ultimate when both are requested.
func UpdatePlayerIntent(w donburi.World) {
	player, ok := GetPlayer(w)
	if !ok {
		return
	}
	c := components.Combatant.Get(player)
	if !c.Alive() {
		return
	}
	in := components.Intent.Get(player)

	moving := in.MoveX != 0 || in.MoveY != 0
	if !c.IsDashing && moving {
		Move(player, in.MoveX*cfg.Combatant.MoveSpeed, in.MoveY*cfg.Combatant.MoveSpeed)
		switch {
		case in.MoveX > 0:
			c.Facing = cfg.DirectionRight
		case in.MoveX < 0:
			c.Facing = cfg.DirectionLeft
		}
	}

	if in.Dash {
		c.Dash(in.DashDir)
	}

	if in.Block {
		c.Block()
	} else {
		c.StopBlock()
		if in.Attack {
			Attack(w, player, in.Strong)
		}
		if in.Ultimate {
			Ultimate(w, player)
		}
	}

	// Idle fighters keep facing the closest threat
	if !moving && !c.IsBlocking && !c.IsDashing {
		if target, ok := NearestOpponent(w, player); ok {
			FaceTowards(player, components.Object.Get(target).Center().X, 0)
		}
	}
}
