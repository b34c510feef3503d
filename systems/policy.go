package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Decision is what an opponent does on a decision tick.
type Decision struct {
	Block  bool // raise the guard; false releases it
	Attack bool
	MoveX  float64
	MoveY  float64
	Facing float64 // 0 keeps the current facing
}

// DecisionInterval is the number of ticks between opponent decisions.
func DecisionInterval(phase int) int {
	return max(cfg.AI.MinDecisionInterval, cfg.AI.BaseDecisionInterval-cfg.AI.IntervalPerPhase*phase)
}

// Decide picks an opponent's next action from its own state, the target's and
// the phase. Positions are box origins. It reads nothing else, so the same rng
// state yields the same decision.
func Decide(self *components.CombatantData, selfPos dmath.Vec2, target *components.CombatantData, targetPos dmath.Vec2, phase int, rng *rand.Rand) Decision {
	var d Decision
	if self.IsDead || target.IsDead {
		return d
	}

	dx := targetPos.X - selfPos.X
	dy := targetPos.Y - selfPos.Y
	distance := math.Hypot(dx, dy)

	p := float64(phase)
	attackThreshold := cfg.AI.BaseAttackChance + cfg.AI.AttackChancePhase*p
	blockThreshold := cfg.AI.BaseBlockChance + cfg.AI.BlockChancePhase*p
	attackRange := cfg.AI.BaseAttackRange + cfg.AI.AttackRangePerPhase*p

	shouldAttack := distance < attackRange && self.AttackCooldown == 0 && rng.Float64() > attackThreshold
	shouldBlock := distance < cfg.AI.BlockReactRange && target.IsAttacking && rng.Float64() > blockThreshold
	approach := distance > cfg.AI.ApproachRange
	retreat := distance < cfg.AI.RetreatRange && self.Health < target.Health*cfg.AI.RetreatHealth

	toward := cfg.DirectionLeft
	if selfPos.X < targetPos.X {
		toward = cfg.DirectionRight
	}

	d.Block = shouldBlock && !self.IsAttacking
	blocking := d.Block && (self.IsBlocking || self.BlockCooldown == 0 && self.Stamina > 0)

	switch {
	case shouldAttack && !blocking:
		d.Attack = true
		d.Facing = toward

	case approach || retreat:
		step := cfg.Combatant.MoveSpeed
		mx, my := step, step
		if dx < 0 {
			mx = -step
		}
		if dy < 0 {
			my = -step
		}
		if retreat {
			mx, my = -mx, -my
		}

		if math.Abs(dx) > cfg.AI.Deadband {
			d.MoveX = mx
			d.Facing = cfg.DirectionLeft
			if mx > 0 {
				d.Facing = cfg.DirectionRight
			}
		}
		if math.Abs(dy) > cfg.AI.Deadband {
			d.MoveY = my
		}
		if d.MoveX == 0 && !blocking {
			d.Facing = toward
		}

	default:
		if rng.Float64() > 1-cfg.AI.JitterChance {
			scale := cfg.Combatant.MoveSpeed * cfg.AI.JitterScale
			d.MoveX = (rng.Float64() - 0.5) * scale
			d.MoveY = (rng.Float64() - 0.5) * scale
			switch {
			case d.MoveX > 0:
				d.Facing = cfg.DirectionRight
			case d.MoveX < 0:
				d.Facing = cfg.DirectionLeft
			}
		}
	}

	if !approach && !retreat && !blocking && math.Abs(dx) > cfg.AI.FaceThreshold {
		d.Facing = toward
	}

	return d
}
