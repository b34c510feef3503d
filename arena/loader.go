package arena

import (
	"fmt"
	"io/fs"
	"sort"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/lafriks/go-tiled"
)

const (
	playerSpawnGroup   = "PlayerSpawn"
	opponentSpawnGroup = "OpponentSpawn"
)

// Load parses a TMX arena. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS. Missing spawn groups fall back to the configured
// positions.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := Default()
	layout.Width = arenaMap.Width * arenaMap.TileWidth
	layout.Height = arenaMap.Height * arenaMap.TileHeight

	type slot struct {
		index int
		point cfg.Point
	}
	var slots []slot

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case playerSpawnGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.PlayerSpawn = cfg.Point{X: o.X, Y: o.Y}
			}
		case opponentSpawnGroup:
			for _, o := range og.Objects {
				slots = append(slots, slot{
					index: o.Properties.GetInt("slot"),
					point: cfg.Point{X: o.X, Y: o.Y},
				})
			}
		}
	}

	if len(slots) > 0 {
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].index < slots[j].index
		})
		layout.OpponentSpawns = layout.OpponentSpawns[:0]
		for _, s := range slots {
			layout.OpponentSpawns = append(layout.OpponentSpawns, s.point)
		}
	}

	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("arena %s: %w", tmxPath, err)
	}
	return layout, nil
}

// validate checks every spawn keeps a combatant box inside the arena.
func (l *Layout) validate() error {
	check := func(name string, p cfg.Point) error {
		if p.X < 0 || p.Y < 0 ||
			p.X+cfg.Combatant.Width > float64(l.Width) ||
			p.Y+cfg.Combatant.Height > float64(l.Height) {
			return fmt.Errorf("%s spawn (%.0f,%.0f) outside %dx%d", name, p.X, p.Y, l.Width, l.Height)
		}
		return nil
	}

	if err := check("player", l.PlayerSpawn); err != nil {
		return err
	}
	for i, p := range l.OpponentSpawns {
		if err := check(fmt.Sprintf("opponent slot %d", i), p); err != nil {
			return err
		}
	}

	maxRoster := 0
	for _, pc := range cfg.Phases {
		maxRoster = max(maxRoster, pc.Opponents)
	}
	if len(l.OpponentSpawns) < maxRoster {
		return fmt.Errorf("%d opponent slots, phases need %d", len(l.OpponentSpawns), maxRoster)
	}
	return nil
}
