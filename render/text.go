package render

import (
	"image/color"

	cfg "github.com/automoto/nightslash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawCentered draws s horizontally centered on the playfield at baseline y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck // text/v1 matches the loaded faces
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, c) //nolint:staticcheck
}

// DrawCentered is drawCentered for scenes outside a match.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	drawCentered(screen, s, face, y, c)
}
