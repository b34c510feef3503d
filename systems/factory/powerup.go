package factory

import (
	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/tags"
	"github.com/yohamta/donburi"
)

func CreatePowerUp(w donburi.World, x, y float64, t components.PowerUpType) *donburi.Entry {
	p := archetypes.PowerUp.Spawn(w)
	addObject(w, p, x, y, cfg.PowerUp.Size, cfg.PowerUp.Size, tags.ResolvPowerUp)
	components.PowerUp.SetValue(p, components.PowerUpData{
		Type: t,
		Life: cfg.PowerUp.Lifetime,
	})
	return p
}
