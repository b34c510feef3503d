package components

import cfg "github.com/automoto/dragonfight/config"

type StatusEffectType int

const (
	EffectBurn StatusEffectType = iota
)

func (t StatusEffectType) String() string {
	switch t {
	case EffectBurn:
		return "burn"
	}
	return "unknown"
}

// StatusEffects maps an effect type to its remaining ticks. A type is either
// active once or absent, so re-applying an effect replaces its duration.
type StatusEffects map[StatusEffectType]int

// Tick decrements every effect, removes expired ones and returns the damage
// dealt this tick. Burn deals its per-second damage whenever the remaining
// duration lands on a whole second, including the final tick.
func (s StatusEffects) Tick() float64 {
	var damage float64
	for t, remaining := range s {
		remaining--
		if t == EffectBurn && remaining%cfg.C.TickRate == 0 {
			damage += cfg.Combat.BurnDamage
		}
		if remaining <= 0 {
			delete(s, t)
			continue
		}
		s[t] = remaining
	}
	return damage
}

func (s StatusEffects) Has(t StatusEffectType) bool {
	_, ok := s[t]
	return ok
}
