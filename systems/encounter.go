package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateEncounter accrues combo score and checks the end conditions of the
// current phase: player defeat, roster defeat and final victory.
func UpdateEncounter(w donburi.World) {
	if !IsPlaying(w) {
		return
	}
	session := GetOrCreateSession(w)
	player, ok := GetPlayer(w)
	if !ok {
		return
	}
	pc := components.Combatant.Get(player)

	session.Score += pc.ComboCount * cfg.Encounter.ComboScore * session.Phase

	if !pc.Alive() {
		EndRun(w, components.OutcomeDefeat)
		return
	}

	if session.RosterDefeated {
		return
	}
	roster := Opponents(w)
	if len(roster) == 0 {
		return
	}
	for _, o := range roster {
		if components.Combatant.Get(o).Alive() {
			return
		}
	}

	session.RosterDefeated = true
	pc.Heal(pc.MaxHealth * cfg.Encounter.HealFraction)
	dropPowerUps(w, roster)

	if session.FinalPhase() {
		EndRun(w, components.OutcomeVictory)
		return
	}

	if !session.OfferPending {
		session.OfferPending = true
		GetOrCreateScheduler(w).After(cfg.Encounter.OfferDelay, OfferUpgrades)
	}
}

func dropPowerUps(w donburi.World, roster []*donburi.Entry) {
	rng := GetOrCreateRandom(w)
	for _, o := range roster {
		if rng.Float64() >= cfg.Encounter.DropChance {
			continue
		}
		t := components.AllPowerUps[rng.Intn(len(components.AllPowerUps))]
		c := components.Object.Get(o).Center()
		half := cfg.PowerUp.Size / 2
		factory.CreatePowerUp(w, c.X-half, c.Y-half, t)
	}
}

// OfferUpgrades draws the upgrade choices and opens the upgrade screen.
func OfferUpgrades(w donburi.World) {
	session := GetOrCreateSession(w)
	session.OfferPending = false
	if session.State != cfg.StatePlaying {
		return
	}
	session.Offers = GenerateUpgrades(GetOrCreateRandom(w), cfg.Encounter.OfferCount)
	SetState(w, cfg.StateUpgradeSelect)
}

// GenerateUpgrades draws n distinct upgrades with a Fisher-Yates shuffle of
// the pool.
func GenerateUpgrades(rng *rand.Rand, n int) []components.UpgradeType {
	pool := make([]components.UpgradeType, len(components.AllUpgrades))
	copy(pool, components.AllUpgrades)
	for i := len(pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:min(n, len(pool))]
}

// EndRun finishes the run with the given outcome, adds the end-of-run bonus
// and cancels every pending callback.
func EndRun(w donburi.World, outcome components.Outcome) {
	session := GetOrCreateSession(w)
	session.Outcome = outcome

	bonus := session.ElapsedSeconds() * cfg.Encounter.TimeBonus
	if outcome == components.OutcomeVictory {
		bonus += session.Phase * cfg.Encounter.PhaseBonus
	}
	session.Score += bonus
	if session.Score > session.BestScore {
		session.BestScore = session.Score
	}

	GetOrCreateScheduler(w).Invalidate()
	session.OfferPending = false
	SetState(w, cfg.StateGameOver)

	log.Printf("Run over: %s in phase %d, score %d (best %d)", outcome, session.Phase, session.Score, session.BestScore)
}
