// Package render draws the simulation with ebiten. It reads the world and
// never mutates simulation state.
package render

import (
	"image/color"

	cfg "github.com/automoto/dragonfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Draw order, lowest first
const (
	LayerArena ecs.LayerID = iota
	LayerEntities
	LayerEffects
	LayerHUD
	LayerOverlay
)

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y, clr)
}

// drawCentered draws s horizontally centred on the screen with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	x := (cfg.C.Width - textWidth(face, s)) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// fade scales a colour's alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
