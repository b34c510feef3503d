package factory

import (
	"fmt"

	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

func CreateOpponent(w donburi.World, x, y float64, slot int, name string, health float64) *donburi.Entry {
	opponent := archetypes.Opponent.Spawn(w)

	addObject(w, opponent, x, y, cfg.Combatant.Width, cfg.Combatant.Height,
		tags.ResolvCombatant, tags.ResolvOpponent)

	components.Combatant.SetValue(opponent, components.NewCombatant(
		name,
		components.SideOpponent,
		cfg.DirectionLeft, // Start facing the player spawn
		health,
	))
	components.Opponent.SetValue(opponent, components.OpponentData{Slot: slot})

	return opponent
}

// CreateRoster spawns the opponents of a phase at the given spawn slots.
// Phases are 1-based; phases past the table reuse the last entry.
func CreateRoster(w donburi.World, phase int, spawns []cfg.Point) []*donburi.Entry {
	pc := PhaseConfig(phase)
	roster := make([]*donburi.Entry, 0, pc.Opponents)
	for i := 0; i < pc.Opponents && i < len(spawns); i++ {
		name := fmt.Sprintf("%s %d", pc.Name, i+1)
		roster = append(roster, CreateOpponent(w, spawns[i].X, spawns[i].Y, i, name, pc.OpponentHealth))
	}
	return roster
}

func PhaseConfig(phase int) cfg.PhaseConfig {
	idx := min(max(phase, 1), len(cfg.Phases)) - 1
	return cfg.Phases[idx]
}
