package components

import "github.com/yohamta/donburi"

type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpStamina
	PowerUpDamage
	PowerUpSpeed
)

// AllPowerUps lists every pickup type, drops choose uniformly among them.
var AllPowerUps = []PowerUpType{PowerUpHealth, PowerUpStamina, PowerUpDamage, PowerUpSpeed}

func (p PowerUpType) String() string {
	switch p {
	case PowerUpHealth:
		return "health"
	case PowerUpStamina:
		return "stamina"
	case PowerUpDamage:
		return "damage"
	case PowerUpSpeed:
		return "speed"
	}
	return "unknown"
}

type PowerUpData struct {
	Type PowerUpType
	Life int
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
