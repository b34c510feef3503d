// Package assets embeds the data files the game ships with. It has no
// dependency on ebiten so the simulation can load maps headless.
package assets

import "embed"

var (
	//go:embed all:levels
	LevelsFS embed.FS
)

// ArenaPath is the arena map inside LevelsFS.
const ArenaPath = "levels/arena.tmx"
