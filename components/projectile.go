package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner     *donburi.Entry
	Direction float64 // +1 right, -1 left
	Angle     float64 // radians of spread, 0 flies straight
	Speed     float64
	Damage    float64
	Life      int
	MaxLife   int
	Kind      AttackKind
}

var Projectile = donburi.NewComponentType[ProjectileData]()
