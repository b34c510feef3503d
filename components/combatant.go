package components

import (
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Side separates the player from the opponent roster
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// AttackKind records which action produced an attack
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackNormal
	AttackStrong
	AttackUltimate
)

func (k AttackKind) String() string {
	switch k {
	case AttackNormal:
		return "normal"
	case AttackStrong:
		return "strong"
	case AttackUltimate:
		return "ultimate"
	}
	return "none"
}

// UpgradeCounts are permanent bonuses accumulated across a run
type UpgradeCounts struct {
	Health       int
	Damage       int
	Speed        int
	StaminaRegen int
}

type CombatantData struct {
	Name   string
	Side   Side
	Facing float64 // cfg.DirectionLeft or cfg.DirectionRight

	Health     float64
	MaxHealth  float64
	Stamina    float64
	MaxStamina float64

	IsAttacking bool
	IsBlocking  bool
	IsDashing   bool
	IsDead      bool

	// Cooldowns in ticks, an action is allowed at 0
	AttackCooldown       int
	StrongAttackCooldown int
	UltimateCooldown     int
	DashCooldown         int
	BlockCooldown        int

	DashTicks     int
	DashDirection math.Vec2

	ComboCount int
	ComboTimer int

	SpeedMultiplier  float64
	DamageMultiplier float64

	// Transient power-up overrides, 0 when inactive
	DamageBoost    float64
	SpeedBoost     float64
	DamageBoostSeq int
	SpeedBoostSeq  int

	Upgrades      UpgradeCounts
	StatusEffects StatusEffects

	LastAttack   AttackKind
	AttackLanded bool // melee already resolved for the current attack
}

var Combatant = donburi.NewComponentType[CombatantData]()

// NewCombatant returns a fighter with full vitals and no cooldowns.
func NewCombatant(name string, side Side, facing, maxHealth float64) CombatantData {
	return CombatantData{
		Name:             name,
		Side:             side,
		Facing:           facing,
		Health:           maxHealth,
		MaxHealth:        maxHealth,
		Stamina:          cfg.Combatant.MaxStamina,
		MaxStamina:       cfg.Combatant.MaxStamina,
		SpeedMultiplier:  1,
		DamageMultiplier: 1,
		StatusEffects:    StatusEffects{},
	}
}

func (c *CombatantData) Alive() bool {
	return !c.IsDead && c.Health > 0
}

func (c *CombatantData) FacingRight() bool {
	return c.Facing >= 0
}

// Tick advances the combatant by one simulation tick. It returns the status
// damage taken and whether that damage was fatal.
func (c *CombatantData) Tick() (statusDamage float64, died bool) {
	if c.IsDead {
		return 0, false
	}

	c.AttackCooldown = decrement(c.AttackCooldown)
	c.StrongAttackCooldown = decrement(c.StrongAttackCooldown)
	c.UltimateCooldown = decrement(c.UltimateCooldown)
	c.DashCooldown = decrement(c.DashCooldown)
	c.BlockCooldown = decrement(c.BlockCooldown)
	if c.IsAttacking && c.AttackCooldown == 0 {
		c.IsAttacking = false
	}

	if c.IsDashing {
		c.DashTicks = decrement(c.DashTicks)
		if c.DashTicks == 0 {
			c.IsDashing = false
		}
	}

	if c.IsBlocking && c.Stamina > 0 {
		c.Stamina = max(0, c.Stamina-cfg.Combatant.BlockStaminaCost)
		if c.Stamina == 0 {
			c.StopBlock()
		}
	} else if c.Stamina < c.MaxStamina {
		c.Stamina = min(c.MaxStamina, c.Stamina+c.StaminaRegenRate())
	}

	if c.StatusEffects != nil {
		if statusDamage = c.StatusEffects.Tick(); statusDamage > 0 {
			died = c.ApplyDamage(statusDamage)
		}
	}

	c.RecomputeMultipliers()

	c.ComboTimer = decrement(c.ComboTimer)
	if c.ComboTimer == 0 {
		c.ComboCount = 0
	}

	return statusDamage, died
}

func decrement(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

// StaminaRegenRate is the per-tick regeneration after upgrades.
func (c *CombatantData) StaminaRegenRate() float64 {
	return cfg.Combatant.StaminaRegen * (1 + float64(c.Upgrades.StaminaRegen)*cfg.Combatant.StaminaRegenUpgradeBonus)
}

// RecomputeMultipliers derives both multipliers from upgrade counts unless a
// transient boost overrides them.
func (c *CombatantData) RecomputeMultipliers() {
	c.DamageMultiplier = 1 + float64(c.Upgrades.Damage)*cfg.Combat.UpgradeMultiplier
	if c.DamageBoost > 0 {
		c.DamageMultiplier = c.DamageBoost
	}
	c.SpeedMultiplier = 1 + float64(c.Upgrades.Speed)*cfg.Combat.UpgradeMultiplier
	if c.SpeedBoost > 0 {
		c.SpeedMultiplier = c.SpeedBoost
	}
}

// Displacement converts a requested move into the actual one. A dash locks
// movement to the dash vector.
func (c *CombatantData) Displacement(dx, dy float64) (float64, float64) {
	if c.IsDashing {
		return c.DashDirection.X * cfg.Combatant.DashSpeed, c.DashDirection.Y * cfg.Combatant.DashSpeed
	}
	return dx * c.SpeedMultiplier, dy * c.SpeedMultiplier
}

// BeginAttack starts a normal or strong attack. It reports whether the attack
// was accepted.
func (c *CombatantData) BeginAttack(strong bool) bool {
	if c.IsDead || c.IsBlocking {
		return false
	}

	if strong {
		if c.StrongAttackCooldown > 0 || c.Stamina < cfg.Combatant.StrongAttackStaminaCost {
			return false
		}
		c.Stamina -= cfg.Combatant.StrongAttackStaminaCost
		c.StrongAttackCooldown = cfg.Combatant.StrongAttackCooldown
		c.AttackCooldown = cfg.Combatant.StrongAttackRecovery
		c.LastAttack = AttackStrong
	} else {
		if c.AttackCooldown > 0 {
			return false
		}
		c.AttackCooldown = cfg.Combatant.AttackCooldown
		c.LastAttack = AttackNormal
	}

	c.IsAttacking = true
	c.AttackLanded = false
	return true
}

// BeginUltimate starts the ultimate attack.
func (c *CombatantData) BeginUltimate() bool {
	if c.IsDead || c.IsBlocking || c.UltimateCooldown > 0 || c.Stamina < cfg.Combatant.UltimateStaminaCost {
		return false
	}
	c.Stamina -= cfg.Combatant.UltimateStaminaCost
	c.UltimateCooldown = cfg.Combatant.UltimateCooldown
	c.AttackCooldown = cfg.Combatant.UltimateRecovery
	c.IsAttacking = true
	c.AttackLanded = false
	c.LastAttack = AttackUltimate
	return true
}

func (c *CombatantData) Block() bool {
	if c.IsDead || c.BlockCooldown > 0 || c.IsAttacking || c.Stamina <= 0 {
		return false
	}
	c.IsBlocking = true
	return true
}

func (c *CombatantData) StopBlock() {
	if !c.IsBlocking {
		return
	}
	c.IsBlocking = false
	c.BlockCooldown = cfg.Combatant.BlockCooldown
}

// Dash locks movement to dir for the dash duration.
func (c *CombatantData) Dash(dir math.Vec2) bool {
	if c.IsDead || c.IsDashing || c.DashCooldown > 0 || c.Stamina < cfg.Combatant.DashStaminaCost {
		return false
	}
	c.Stamina -= cfg.Combatant.DashStaminaCost
	c.IsDashing = true
	c.DashTicks = cfg.Combatant.DashDuration
	c.DashCooldown = cfg.Combatant.DashCooldown
	c.DashDirection = dir
	return true
}

// ApplyDamage lowers health, floored at 0, and latches death. It reports
// whether this call killed the combatant.
func (c *CombatantData) ApplyDamage(amount float64) bool {
	if c.IsDead {
		return false
	}
	c.Health = max(0, c.Health-amount)
	if c.Health > 0 {
		return false
	}
	c.IsDead = true
	c.IsAttacking = false
	c.IsBlocking = false
	c.IsDashing = false
	return true
}

// RegisterHit advances the combo after a landed hit.
func (c *CombatantData) RegisterHit() {
	c.ComboCount++
	c.ComboTimer = cfg.Combat.ComboWindow
}

func (c *CombatantData) AddStatusEffect(t StatusEffectType, ticks int) {
	if c.StatusEffects == nil {
		c.StatusEffects = StatusEffects{}
	}
	c.StatusEffects[t] = ticks
}

func (c *CombatantData) Heal(amount float64) {
	if c.IsDead {
		return
	}
	c.Health = min(c.MaxHealth, c.Health+amount)
}

func (c *CombatantData) RestoreStamina(amount float64) {
	c.Stamina = min(c.MaxStamina, c.Stamina+amount)
}

// ApplyUpgrade records a permanent upgrade.
func (c *CombatantData) ApplyUpgrade(u UpgradeType) {
	switch u {
	case UpgradeHealth:
		c.Upgrades.Health++
		c.MaxHealth += cfg.Upgrade.HealthBonus
		c.Heal(cfg.Upgrade.HealthBonus)
	case UpgradeDamage:
		c.Upgrades.Damage++
	case UpgradeSpeed:
		c.Upgrades.Speed++
	case UpgradeStaminaRegen:
		c.Upgrades.StaminaRegen++
	}
	c.RecomputeMultipliers()
}

// ClearTransient drops status effects and power-up boosts.
func (c *CombatantData) ClearTransient() {
	clear(c.StatusEffects)
	c.DamageBoost = 0
	c.SpeedBoost = 0
	c.DamageBoostSeq++
	c.SpeedBoostSeq++
	c.RecomputeMultipliers()
}
