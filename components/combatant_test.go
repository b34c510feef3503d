package components

import (
	"testing"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi/features/math"
)

func newTestCombatant() CombatantData {
	return NewCombatant("test", SidePlayer, cfg.DirectionRight, cfg.Combatant.MaxHealth)
}

func TestNewCombatantStartsFull(t *testing.T) {
	c := newTestCombatant()
	if c.Health != c.MaxHealth || c.Stamina != c.MaxStamina {
		t.Fatalf("expected full vitals, got health=%v stamina=%v", c.Health, c.Stamina)
	}
	if c.SpeedMultiplier != 1 || c.DamageMultiplier != 1 {
		t.Fatalf("expected baseline multipliers, got speed=%v damage=%v", c.SpeedMultiplier, c.DamageMultiplier)
	}
	if !c.Alive() {
		t.Fatal("expected new combatant to be alive")
	}
}

func TestNormalAttackCooldown(t *testing.T) {
	c := newTestCombatant()
	if !c.BeginAttack(false) {
		t.Fatal("expected first attack to start")
	}
	if c.AttackCooldown != cfg.Combatant.AttackCooldown || !c.IsAttacking {
		t.Fatalf("expected cooldown %d and attacking, got %d/%v", cfg.Combatant.AttackCooldown, c.AttackCooldown, c.IsAttacking)
	}
	if c.BeginAttack(false) {
		t.Fatal("expected attack during cooldown to be rejected")
	}

	for i := 0; i < cfg.Combatant.AttackCooldown; i++ {
		c.Tick()
	}
	if c.AttackCooldown != 0 || c.IsAttacking {
		t.Fatalf("expected cooldown to clear after %d ticks, got %d attacking=%v", cfg.Combatant.AttackCooldown, c.AttackCooldown, c.IsAttacking)
	}
	if !c.BeginAttack(false) {
		t.Fatal("expected attack to be allowed at cooldown 0")
	}
}

func TestStrongAttackCostsStamina(t *testing.T) {
	c := newTestCombatant()
	if !c.BeginAttack(true) {
		t.Fatal("expected strong attack to start")
	}
	if c.Stamina != c.MaxStamina-cfg.Combatant.StrongAttackStaminaCost {
		t.Fatalf("expected stamina %v, got %v", c.MaxStamina-cfg.Combatant.StrongAttackStaminaCost, c.Stamina)
	}
	if c.StrongAttackCooldown != cfg.Combatant.StrongAttackCooldown || c.AttackCooldown != cfg.Combatant.StrongAttackRecovery {
		t.Fatalf("unexpected cooldowns strong=%d attack=%d", c.StrongAttackCooldown, c.AttackCooldown)
	}
	if c.LastAttack != AttackStrong {
		t.Fatalf("expected last attack strong, got %s", c.LastAttack)
	}

	c2 := newTestCombatant()
	c2.Stamina = cfg.Combatant.StrongAttackStaminaCost - 1
	if c2.BeginAttack(true) {
		t.Fatal("expected strong attack without stamina to be rejected")
	}
	if c2.Stamina != cfg.Combatant.StrongAttackStaminaCost-1 {
		t.Fatal("rejected attack must not spend stamina")
	}
}

func TestAttackWhileBlockingIsNoop(t *testing.T) {
	c := newTestCombatant()
	if !c.Block() {
		t.Fatal("expected block to start")
	}
	if c.BeginAttack(false) || c.BeginAttack(true) || c.BeginUltimate() {
		t.Fatal("expected every attack to be rejected while blocking")
	}
	if c.IsAttacking {
		t.Fatal("blocking combatant must not be attacking")
	}
}

func TestUltimate(t *testing.T) {
	c := newTestCombatant()
	if !c.BeginUltimate() {
		t.Fatal("expected ultimate to start")
	}
	if c.UltimateCooldown != cfg.Combatant.UltimateCooldown ||
		c.AttackCooldown != cfg.Combatant.UltimateRecovery ||
		c.Stamina != c.MaxStamina-cfg.Combatant.UltimateStaminaCost {
		t.Fatalf("unexpected state after ultimate: %+v", c)
	}
	if c.LastAttack != AttackUltimate {
		t.Fatalf("expected last attack ultimate, got %s", c.LastAttack)
	}
	if c.BeginUltimate() {
		t.Fatal("expected ultimate during cooldown to be rejected")
	}
}

func TestBlockDrainsStaminaAndReleases(t *testing.T) {
	c := newTestCombatant()
	c.Stamina = 3
	if !c.Block() {
		t.Fatal("expected block to start")
	}
	c.Tick()
	if !c.IsBlocking || c.Stamina != 1 {
		t.Fatalf("expected blocking with stamina 1, got blocking=%v stamina=%v", c.IsBlocking, c.Stamina)
	}
	c.Tick()
	if c.IsBlocking {
		t.Fatal("expected block to release when stamina runs out")
	}
	if c.Stamina != 0 || c.BlockCooldown != cfg.Combatant.BlockCooldown {
		t.Fatalf("expected empty stamina and block cooldown, got %v/%d", c.Stamina, c.BlockCooldown)
	}
	if c.Block() {
		t.Fatal("expected block during cooldown to be rejected")
	}
}

func TestStaminaRegenWithUpgrades(t *testing.T) {
	c := newTestCombatant()
	c.Stamina = 0
	c.Upgrades.StaminaRegen = 2
	c.Tick()

	want := cfg.Combatant.StaminaRegen * (1 + 2*cfg.Combatant.StaminaRegenUpgradeBonus)
	if diff := c.Stamina - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected stamina %v, got %v", want, c.Stamina)
	}

	c.Stamina = c.MaxStamina - 0.01
	c.Tick()
	if c.Stamina != c.MaxStamina {
		t.Fatalf("expected stamina capped at %v, got %v", c.MaxStamina, c.Stamina)
	}
}

func TestDash(t *testing.T) {
	c := newTestCombatant()
	dir := math.Vec2{X: 1}
	if !c.Dash(dir) {
		t.Fatal("expected dash to start")
	}
	if c.Stamina != c.MaxStamina-cfg.Combatant.DashStaminaCost {
		t.Fatalf("expected dash to cost stamina, got %v", c.Stamina)
	}
	if c.Dash(dir) {
		t.Fatal("expected dash while dashing to be rejected")
	}

	dx, dy := c.Displacement(-5, 5)
	if dx != cfg.Combatant.DashSpeed || dy != 0 {
		t.Fatalf("expected dash displacement (%v,0), got (%v,%v)", cfg.Combatant.DashSpeed, dx, dy)
	}

	for i := 0; i < cfg.Combatant.DashDuration; i++ {
		c.Tick()
	}
	if c.IsDashing {
		t.Fatal("expected dash to end after its duration")
	}
	if c.DashCooldown != cfg.Combatant.DashCooldown-cfg.Combatant.DashDuration {
		t.Fatalf("expected dash cooldown %d, got %d", cfg.Combatant.DashCooldown-cfg.Combatant.DashDuration, c.DashCooldown)
	}
}

func TestDashNeedsStamina(t *testing.T) {
	c := newTestCombatant()
	c.Stamina = cfg.Combatant.DashStaminaCost - 1

	if c.Dash(math.Vec2{X: 1}) {
		t.Fatal("expected dash without enough stamina to be rejected")
	}
	if c.IsDashing || c.DashTicks != 0 || c.DashCooldown != 0 {
		t.Fatalf("expected no dash state, got dashing=%v ticks=%d cooldown=%d", c.IsDashing, c.DashTicks, c.DashCooldown)
	}
	if c.Stamina != cfg.Combatant.DashStaminaCost-1 {
		t.Fatalf("expected stamina unchanged, got %v", c.Stamina)
	}
}

func TestApplyDamageClampsAndLatchesDeath(t *testing.T) {
	c := newTestCombatant()
	c.IsAttacking = true
	c.IsBlocking = true

	if !c.ApplyDamage(c.MaxHealth + 50) {
		t.Fatal("expected lethal damage to report death")
	}
	if c.Health != 0 || !c.IsDead {
		t.Fatalf("expected health 0 and dead, got %v/%v", c.Health, c.IsDead)
	}
	if c.IsAttacking || c.IsBlocking || c.IsDashing {
		t.Fatal("dead combatant must not keep action flags")
	}
	if c.ApplyDamage(10) {
		t.Fatal("a dead combatant cannot die twice")
	}

	c.Heal(50)
	if c.Health != 0 {
		t.Fatal("healing must not revive")
	}
	if c.BeginAttack(false) || c.Block() || c.Dash(math.Vec2{X: 1}) {
		t.Fatal("dead combatant must not act")
	}
}

func TestComboResetsWhenWindowCloses(t *testing.T) {
	c := newTestCombatant()
	c.RegisterHit()
	c.RegisterHit()
	if c.ComboCount != 2 || c.ComboTimer != cfg.Combat.ComboWindow {
		t.Fatalf("expected combo 2 with full window, got %d/%d", c.ComboCount, c.ComboTimer)
	}
	for i := 0; i < cfg.Combat.ComboWindow-1; i++ {
		c.Tick()
	}
	if c.ComboCount != 2 {
		t.Fatalf("combo reset early at timer %d", c.ComboTimer)
	}
	c.Tick()
	if c.ComboCount != 0 {
		t.Fatal("expected combo to reset when its window closes")
	}
}

func TestUpgradesAndBoosts(t *testing.T) {
	c := newTestCombatant()
	c.ApplyUpgrade(UpgradeDamage)
	c.ApplyUpgrade(UpgradeDamage)
	c.ApplyUpgrade(UpgradeSpeed)
	if c.DamageMultiplier != 1.2 || c.SpeedMultiplier != 1.1 {
		t.Fatalf("expected multipliers 1.2/1.1, got %v/%v", c.DamageMultiplier, c.SpeedMultiplier)
	}

	c.DamageBoost = 1.5
	c.Tick()
	if c.DamageMultiplier != 1.5 {
		t.Fatalf("expected boost to override, got %v", c.DamageMultiplier)
	}

	c.ClearTransient()
	if c.DamageMultiplier != 1.2 {
		t.Fatalf("expected upgrade multiplier after clearing boosts, got %v", c.DamageMultiplier)
	}

	c.Health = 50
	c.ApplyUpgrade(UpgradeHealth)
	if c.MaxHealth != cfg.Combatant.MaxHealth+cfg.Upgrade.HealthBonus || c.Health != 50+cfg.Upgrade.HealthBonus {
		t.Fatalf("unexpected health after upgrade: %v/%v", c.Health, c.MaxHealth)
	}
}
