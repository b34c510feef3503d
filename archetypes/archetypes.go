package archetypes

import (
	"github.com/automoto/dragonfight/components"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Combatant,
		components.Object,
		components.Intent,
	)
	Opponent = newArchetype(
		tags.Opponent,
		components.Combatant,
		components.Opponent,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
