package config

import "image/color"

// Config holds general arena configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // simulation ticks per second
}

// CombatantConfig contains the stat block shared by every fighter
type CombatantConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Vitals
	MaxHealth  float64
	MaxStamina float64

	// Movement
	MoveSpeed float64

	// Stamina economy
	StaminaRegen             float64 // per tick
	StaminaRegenUpgradeBonus float64 // fraction of StaminaRegen added per upgrade
	BlockStaminaCost         float64 // per tick while blocking
	StrongAttackStaminaCost  float64
	DashStaminaCost          float64
	UltimateStaminaCost      float64

	// Cooldowns (ticks)
	AttackCooldown       int
	StrongAttackRecovery int // attack cooldown after a strong attack
	StrongAttackCooldown int
	UltimateCooldown     int
	UltimateRecovery     int // attack cooldown after an ultimate
	BlockCooldown        int
	DashCooldown         int

	// Dash
	DashSpeed    float64
	DashDuration int // ticks
}

// CombatConfig contains damage and combo tuning
type CombatConfig struct {
	AttackDamage       float64 // melee and normal projectile
	StrongAttackDamage float64
	UltimateDamageMult float64 // multiplier over StrongAttackDamage
	AttackRange        float64 // melee reach beyond the bounding box

	ComboWindow        int // ticks
	ComboStep          float64
	MaxComboMultiplier float64
	CriticalCombo      int // combo count at which hits read as critical

	BurnDuration      int     // ticks
	BurnDamage        float64 // per second
	UpgradeMultiplier float64 // per damage/speed upgrade
}

// ProjectileConfig describes a single projectile shape
type ProjectileConfig struct {
	Width    float64
	Height   float64
	Speed    float64
	Lifetime int // ticks
}

// ProjectilesConfig groups the three projectile variants
type ProjectilesConfig struct {
	Normal   ProjectileConfig
	Strong   ProjectileConfig
	Ultimate ProjectileConfig

	UltimateCount  int     // projectiles in the ultimate fan
	UltimateSpread float64 // radians between fan projectiles
	BoundsMargin   float64 // horizontal distance past the arena edge before removal
}

// AIConfig contains opponent decision tuning
type AIConfig struct {
	MinDecisionInterval  int
	BaseDecisionInterval int
	IntervalPerPhase     int

	BaseAttackRange     float64
	AttackRangePerPhase float64
	BaseAttackChance    float64
	AttackChancePhase   float64
	BaseBlockChance     float64
	BlockChancePhase    float64

	BlockReactRange float64 // target must be this close while attacking
	ApproachRange   float64 // advance when farther than this
	RetreatRange    float64 // retreat when closer than this
	RetreatHealth   float64 // retreat when own health < target health * this
	Deadband        float64 // per-axis distance below which no move is issued
	FaceThreshold   float64 // horizontal distance above which facing tracks the target
	JitterChance    float64
	JitterScale     float64 // fraction of MoveSpeed
}

// EncounterConfig contains phase progression tuning
type EncounterConfig struct {
	HealFraction    float64 // of max health, on roster defeat and on phase start
	DropChance      float64
	OfferDelay      int // ticks between roster defeat and the upgrade offer
	TransitionTicks int
	OfferCount      int
	ComboScore      int // per combo count, per phase, per tick
	TimeBonus       int // per elapsed second
	PhaseBonus      int // per phase on final victory
	PlayerName      string
	PlayerSpawnX    float64
	PlayerSpawnY    float64
	OpponentSpawns  []Point // used when the arena map has no spawn slots
}

// Point is a position in arena coordinates
type Point struct {
	X, Y float64
}

// PhaseConfig describes one difficulty tier
type PhaseConfig struct {
	Name           string
	Banner         string
	Warning        string
	OpponentHealth float64
	Opponents      int
}

// PowerUpConfig contains pickup tuning
type PowerUpConfig struct {
	Size          float64
	Lifetime      int // ticks
	HealthAmount  float64
	StaminaAmount float64
	BoostValue    float64
	BoostDuration int // ticks
}

// UpgradeConfig contains permanent upgrade tuning
type UpgradeConfig struct {
	HealthBonus float64
}

// ScreenShakeConfig contains camera shake intensities published by the core
type ScreenShakeConfig struct {
	HitIntensity      float64
	UltimateIntensity float64
	DecaySeconds      float32
}

// UIConfig contains presentation colours
type UIConfig struct {
	Background     color.RGBA
	PlayerColor    color.RGBA
	OpponentColors []color.RGBA
	ProjectileFill color.RGBA
	BlockColor     color.RGBA
	HealthColor    color.RGBA
	StaminaColor   color.RGBA
	BarBackground  color.RGBA
	CriticalColor  color.RGBA
	DamageColor    color.RGBA
	ComboColor     color.RGBA
	PowerUpColors  map[string]color.RGBA
	OverlayColor   color.RGBA
	TitleColor     color.RGBA
	TextColor      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip menu and go directly to the fight
	Seed     int64 // RNG seed for the session
}

// Global configuration instances
var C *Config
var Combatant CombatantConfig
var Combat CombatConfig
var Projectiles ProjectilesConfig
var AI AIConfig
var Encounter EncounterConfig
var Phases []PhaseConfig
var PowerUp PowerUpConfig
var Upgrade UpgradeConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 102, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 136, B: 255, A: 255}
	Purple       = color.RGBA{R: 170, G: 68, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Night        = color.RGBA{R: 30, G: 30, B: 62, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    1400,
		Height:   800,
		TickRate: 60,
	}

	Combatant = CombatantConfig{
		Width:  200,
		Height: 200,

		MaxHealth:  100,
		MaxStamina: 100,

		MoveSpeed: 7,

		StaminaRegen:             0.3,
		StaminaRegenUpgradeBonus: 0.2,
		BlockStaminaCost:         2,
		StrongAttackStaminaCost:  30,
		DashStaminaCost:          20,
		UltimateStaminaCost:      50,

		AttackCooldown:       30,
		StrongAttackRecovery: 10,
		StrongAttackCooldown: 60,
		UltimateCooldown:     300,
		UltimateRecovery:     20,
		BlockCooldown:        10,
		DashCooldown:         20,

		DashSpeed:    15,
		DashDuration: 10,
	}

	Combat = CombatConfig{
		AttackDamage:       10,
		StrongAttackDamage: 20,
		UltimateDamageMult: 1.5,
		AttackRange:        80,

		ComboWindow:        60,
		ComboStep:          0.1,
		MaxComboMultiplier: 2.0,
		CriticalCombo:      3,

		BurnDuration:      180,
		BurnDamage:        2,
		UpgradeMultiplier: 0.1,
	}

	Projectiles = ProjectilesConfig{
		Normal:   ProjectileConfig{Width: 40, Height: 30, Speed: 8, Lifetime: 60},
		Strong:   ProjectileConfig{Width: 60, Height: 50, Speed: 10, Lifetime: 60},
		Ultimate: ProjectileConfig{Width: 70, Height: 60, Speed: 12, Lifetime: 60},

		UltimateCount:  5,
		UltimateSpread: 0.2,
		BoundsMargin:   100,
	}

	AI = AIConfig{
		MinDecisionInterval:  5,
		BaseDecisionInterval: 10,
		IntervalPerPhase:     2,

		BaseAttackRange:     350,
		AttackRangePerPhase: 50,
		BaseAttackChance:    0.4,
		AttackChancePhase:   -0.1,
		BaseBlockChance:     0.4,
		BlockChancePhase:    0.1,

		BlockReactRange: 250,
		ApproachRange:   300,
		RetreatRange:    200,
		RetreatHealth:   0.8,
		Deadband:        30,
		FaceThreshold:   50,
		JitterChance:    0.4,
		JitterScale:     0.5,
	}

	Encounter = EncounterConfig{
		HealFraction:    0.3,
		DropChance:      0.3,
		OfferDelay:      180, // 3 seconds at 60 ticks
		TransitionTicks: 180,
		OfferCount:      3,
		ComboScore:      10,
		TimeBonus:       5,
		PhaseBonus:      1000,
		PlayerName:      "Purple Dragon",
		PlayerSpawnX:    100,
		PlayerSpawnY:    500,
		OpponentSpawns: []Point{
			{X: 1000, Y: 500},
			{X: 1200, Y: 400},
			{X: 1000, Y: 600},
			{X: 1200, Y: 500},
		},
	}

	Phases = []PhaseConfig{
		{Name: "Green Dragon", Banner: "", Warning: "Get ready for battle!", OpponentHealth: 100, Opponents: 2},
		{Name: "Legendary Dragon", Banner: "A Legendary Dragon appears!", Warning: "Get ready for battle!", OpponentHealth: 150, Opponents: 2},
		{Name: "Epic Dragon", Banner: "An Epic Dragon appears!", Warning: "The battle is getting harder!", OpponentHealth: 200, Opponents: 3},
		{Name: "Supreme Dragon", Banner: "The Supreme Dragon appears!", Warning: "The final battle! Maximum difficulty!", OpponentHealth: 250, Opponents: 4},
	}

	PowerUp = PowerUpConfig{
		Size:          40,
		Lifetime:      600,
		HealthAmount:  30,
		StaminaAmount: 50,
		BoostValue:    1.5,
		BoostDuration: 300, // 5 seconds at 60 ticks
	}

	Upgrade = UpgradeConfig{
		HealthBonus: 20,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:      5,
		UltimateIntensity: 15,
		DecaySeconds:      0.5,
	}

	UI = UIConfig{
		Background:     Night,
		PlayerColor:    Purple,
		OpponentColors: []color.RGBA{{R: 68, G: 255, B: 68, A: 255}, {R: 255, G: 170, B: 0, A: 255}, {R: 68, G: 136, B: 255, A: 255}, {R: 0, G: 170, B: 68, A: 255}},
		ProjectileFill: Orange,
		BlockColor:     White,
		HealthColor:    Red,
		StaminaColor:   Blue,
		BarBackground:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		CriticalColor:  Yellow,
		DamageColor:    White,
		ComboColor:     Magenta,
		PowerUpColors: map[string]color.RGBA{
			"health":  Green,
			"stamina": Blue,
			"damage":  Red,
			"speed":   Yellow,
		},
		OverlayColor: BlackOverlay,
		TitleColor:   Gold,
		TextColor:    White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Seed:     42,
	}
}
