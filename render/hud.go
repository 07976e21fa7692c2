package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/engine"
	"github.com/automoto/nightslash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin    = 12
	heartSize    = 10
	heartSpacing = 26
	barHeight    = 6
	bossBarWidth = 360
)

var (
	hudText      = color.RGBA{R: 235, G: 235, B: 245, A: 255}
	comboText    = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	emptyHeart   = color.RGBA{R: 70, G: 50, B: 70, A: 255}
	barBack      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	progressFill = color.RGBA{R: 120, G: 100, B: 220, A: 255}
	bossFill     = color.RGBA{R: 200, G: 30, B: 50, A: 255}
	overlayShade = color.RGBA{A: 170}
)

// drawHUD renders score, combo, lives, level and song progress.
func drawHUD(screen *ebiten.Image, s engine.Snapshot) {
	face := fonts.Regular.Get()
	//nolint:staticcheck // text/v1 matches the loaded faces
	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score), face, hudMargin, hudMargin+14, hudText)
	if s.Combo > 1 {
		//nolint:staticcheck
		text.Draw(screen, fmt.Sprintf("COMBO x%d", s.Combo), fonts.Bold.Get(), hudMargin, hudMargin+40, comboText)
	}

	for i := 0; i < s.MaxLives; i++ {
		c := heartFill
		if i >= s.Lives {
			c = emptyHeart
		}
		x := float64(cfg.C.Width - hudMargin - heartSize - i*heartSpacing)
		drawHeart(screen, x, hudMargin+heartSize, heartSize, c)
	}

	if s.Exp.Level > 0 {
		label := fmt.Sprintf("LV %d", s.Exp.Level)
		//nolint:staticcheck
		text.Draw(screen, label, fonts.Small.Get(), cfg.C.Width-hudMargin-90, hudMargin+44, hudText)
	}

	if s.Duration > 0 {
		w := float32(cfg.C.Width - 2*hudMargin)
		y := float32(cfg.C.Height - hudMargin - barHeight)
		ratio := float32(s.MusicTime / s.Duration)
		if ratio > 1 {
			ratio = 1
		}
		vector.DrawFilledRect(screen, hudMargin, y, w, barHeight, barBack, false)
		vector.DrawFilledRect(screen, hudMargin, y, w*ratio, barHeight, progressFill, false)
	}
}

// drawBossBar shows the boss's remaining health while it is alive.
func drawBossBar(screen *ebiten.Image, s engine.Snapshot) {
	if !s.BossActive || s.BossMaxHealth <= 0 {
		return
	}
	x := float32(cfg.C.Width-bossBarWidth) / 2
	y := float32(hudMargin + 24)
	ratio := float32(s.BossHealth) / float32(s.BossMaxHealth)

	vector.DrawFilledRect(screen, x, y, bossBarWidth, barHeight*2, barBack, false)
	vector.DrawFilledRect(screen, x, y, bossBarWidth*ratio, barHeight*2, bossFill, false)
	drawCentered(screen, s.BossName, fonts.Small.Get(), int(y)-4, hudText)
}

// drawOverlay dims the playfield for pause and the end screens.
func drawOverlay(screen *ebiten.Image, s engine.Snapshot) {
	var title, hint string
	switch {
	case s.State == cfg.MatchStateGameOver:
		title, hint = "GAME OVER", "R to retry, ESC for stage select"
	case s.State == cfg.MatchStateCleared:
		title, hint = "STAGE CLEAR", "ENTER to continue"
	case s.Paused:
		title, hint = "PAUSED", "P to resume"
	default:
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), overlayShade, false)
	mid := cfg.C.Height / 2
	drawCentered(screen, title, fonts.Title.Get(), mid-20, hudText)
	if s.State.Terminal() {
		stats := fmt.Sprintf("SCORE %d   MAX COMBO %d   KILLS %d", s.Score, s.MaxCombo, s.Kills)
		drawCentered(screen, stats, fonts.Regular.Get(), mid+20, hudText)
	}
	drawCentered(screen, hint, fonts.Small.Get(), mid+50, hudText)
}
