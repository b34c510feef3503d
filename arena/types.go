// Package arena reads the fight arena from a Tiled map: its size, the player
// spawn and the opponent spawn slots. It has no dependencies on ebiten,
// donburi or resolv.
package arena

import cfg "github.com/automoto/dragonfight/config"

// Layout is everything the simulation needs to know about the arena.
type Layout struct {
	Width          int
	Height         int
	PlayerSpawn    cfg.Point
	OpponentSpawns []cfg.Point // ordered by slot
}

// Default is the layout used when no map is available.
func Default() *Layout {
	spawns := make([]cfg.Point, len(cfg.Encounter.OpponentSpawns))
	copy(spawns, cfg.Encounter.OpponentSpawns)
	return &Layout{
		Width:          cfg.C.Width,
		Height:         cfg.C.Height,
		PlayerSpawn:    cfg.Point{X: cfg.Encounter.PlayerSpawnX, Y: cfg.Encounter.PlayerSpawnY},
		OpponentSpawns: spawns,
	}
}

// Slots returns the first n opponent spawn slots.
func (l *Layout) Slots(n int) []cfg.Point {
	return l.OpponentSpawns[:min(n, len(l.OpponentSpawns))]
}
