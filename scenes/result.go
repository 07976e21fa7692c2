package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/fonts"
	"github.com/automoto/nightslash/render"
	"github.com/automoto/nightslash/services"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 14, G: 10, B: 24, A: 255}

// ResultScene displays the outcome of a finished stage
type ResultScene struct {
	sceneChanger SceneChanger
	ctx          *Context
	result       services.MatchResult
}

// NewResultScene creates a new result scene
func NewResultScene(sc SceneChanger, ctx *Context, r services.MatchResult) *ResultScene {
	return &ResultScene{sceneChanger: sc, ctx: ctx, result: r}
}

func (rs *ResultScene) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		rs.sceneChanger.ChangeScene(NewStageScene(rs.sceneChanger, rs.ctx, rs.result.Stage))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.ctx))
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	title, c := "GAME OVER", menuTitle
	if rs.result.Cleared {
		title, c = "STAGE CLEAR", menuSelected
	}
	render.DrawCentered(screen, title, fonts.Title.Get(), 120, c)

	stats := rs.ctx.Progress.Record()
	lines := []string{
		fmt.Sprintf("%s (%s)", rs.result.Stage, rs.result.Difficulty),
		fmt.Sprintf("SCORE %d", rs.result.Score),
		fmt.Sprintf("MAX COMBO %d", rs.result.MaxCombo),
		fmt.Sprintf("KILLS %d", rs.result.Kills),
		fmt.Sprintf("TIME %.1fs", rs.result.Elapsed),
		fmt.Sprintf("BEST %d   LEVEL %d", stats.BestScore, stats.Level),
	}
	face := fonts.Regular.Get()
	for i, line := range lines {
		render.DrawCentered(screen, line, face, 190+i*30, menuNormal)
	}
	render.DrawCentered(screen, "R retry   ENTER menu", fonts.Small.Get(), cfg.C.Height-30, menuNormal)
}
