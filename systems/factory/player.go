package factory

import (
	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	addObject(w, player, x, y, cfg.Combatant.Width, cfg.Combatant.Height,
		tags.ResolvCombatant, tags.ResolvPlayer)

	components.Combatant.SetValue(player, components.NewCombatant(
		cfg.Encounter.PlayerName,
		components.SidePlayer,
		cfg.DirectionRight,
		cfg.Combatant.MaxHealth,
	))

	return player
}
