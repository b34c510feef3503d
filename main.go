package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dragonfight/arena"
	"github.com/automoto/dragonfight/assets"
	"github.com/automoto/dragonfight/config"
	"github.com/automoto/dragonfight/fonts"
	"github.com/automoto/dragonfight/scenes"
	"github.com/automoto/dragonfight/session"
	"github.com/automoto/dragonfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(s *session.Session) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(s, config.Debug.SkipMenu),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start fighting immediately")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed for the session")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	layout, err := arena.Load(assets.LevelsFS, assets.ArenaPath)
	if err != nil {
		log.Printf("Warning: Could not load arena map, using defaults: %v", err)
		layout = arena.Default()
	}

	opts := session.Options{Seed: config.Debug.Seed, Layout: layout}
	// Initialize persistence; scores stay in memory when it is unavailable
	if store, err := systems.OpenScoreStore("dragonfight"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		opts.Store = store
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dragon Fight")
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(session.New(opts))); err != nil {
		log.Fatal(err)
	}
}
