package components

type UpgradeType int

const (
	UpgradeHealth UpgradeType = iota
	UpgradeDamage
	UpgradeSpeed
	UpgradeStaminaRegen
)

// AllUpgrades is the pool upgrade offers are drawn from.
var AllUpgrades = []UpgradeType{UpgradeHealth, UpgradeDamage, UpgradeSpeed, UpgradeStaminaRegen}

var upgradeInfo = map[UpgradeType]struct{ name, description string }{
	UpgradeHealth:       {"Extra Life", "+20 max HP"},
	UpgradeDamage:       {"Increased Damage", "+10% damage"},
	UpgradeSpeed:        {"Speed", "+10% speed"},
	UpgradeStaminaRegen: {"Regeneration", "+20% stamina regeneration"},
}

func (u UpgradeType) String() string {
	if info, ok := upgradeInfo[u]; ok {
		return info.name
	}
	return "unknown"
}

func (u UpgradeType) Description() string {
	return upgradeInfo[u].description
}
