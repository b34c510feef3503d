package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Opponent   = donburi.NewTag().SetName("Opponent")
	Projectile = donburi.NewTag().SetName("Projectile")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for collision checks
const (
	ResolvCombatant  = "combatant"
	ResolvPlayer     = "Player"
	ResolvOpponent   = "Opponent"
	ResolvProjectile = "Projectile"
	ResolvPowerUp    = "PowerUp"
)
