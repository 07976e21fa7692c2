package scenes

import (
	"fmt"
	"image/color"
	"sort"

	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/fonts"
	"github.com/automoto/nightslash/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	menuTop        = 150
	menuItemHeight = 30
)

var (
	menuTitle    = color.RGBA{R: 200, G: 40, B: 60, A: 255}
	menuNormal   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	menuSelected = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	menuBoss     = color.RGBA{R: 255, G: 110, B: 110, A: 255}
)

// MenuScene is the stage select screen
type MenuScene struct {
	sceneChanger SceneChanger
	ctx          *Context

	ids          []string
	selected     int
	difficulties []string
	difficulty   int
}

// NewMenuScene creates a new stage select scene
func NewMenuScene(sc SceneChanger, ctx *Context) *MenuScene {
	ms := &MenuScene{
		sceneChanger: sc,
		ctx:          ctx,
		ids:          ctx.Stages.IDs(),
	}
	for name := range cfg.Difficulties {
		ms.difficulties = append(ms.difficulties, name)
	}
	sort.Slice(ms.difficulties, func(i, j int) bool {
		return cfg.Difficulties[ms.difficulties[i]].SpeedMultiplier < cfg.Difficulties[ms.difficulties[j]].SpeedMultiplier
	})
	for i, name := range ms.difficulties {
		if name == ctx.Difficulty {
			ms.difficulty = i
		}
	}
	return ms
}

func (ms *MenuScene) Update() {
	if len(ms.ids) == 0 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		ms.selected = (ms.selected + 1) % len(ms.ids)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		ms.selected = (ms.selected - 1 + len(ms.ids)) % len(ms.ids)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		ms.difficulty = (ms.difficulty + 1) % len(ms.difficulties)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		ms.difficulty = (ms.difficulty - 1 + len(ms.difficulties)) % len(ms.difficulties)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		ms.start(ms.selected)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		if i := (y - menuTop + menuItemHeight) / menuItemHeight; y >= menuTop-menuItemHeight && i < len(ms.ids) {
			ms.start(i)
		}
	}
}

func (ms *MenuScene) start(i int) {
	ms.ctx.Difficulty = ms.difficulties[ms.difficulty]
	ms.sceneChanger.ChangeScene(NewStageScene(ms.sceneChanger, ms.ctx, ms.ids[i]))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	render.DrawCentered(screen, "NIGHTSLASH", fonts.Title.Get(), 70, menuTitle)

	stats := ms.ctx.Progress.Record()
	summary := fmt.Sprintf("LEVEL %d   BEST %d   MAX COMBO %d", stats.Level, stats.BestScore, stats.MaxCombo)
	render.DrawCentered(screen, summary, fonts.Small.Get(), 100, menuNormal)

	face := fonts.Regular.Get()
	for i, id := range ms.ids {
		c := menuNormal
		if i == ms.selected {
			c = menuSelected
		}
		label := id
		if st, err := ms.ctx.Stages.Stage(id); err == nil {
			label = st.Name
			if st.Boss != nil {
				label += "  [" + st.Boss.Name + "]"
				if i != ms.selected {
					c = menuBoss
				}
			}
		}
		//nolint:staticcheck // text/v1 matches the loaded faces
		text.Draw(screen, label, face, cfg.C.Width/2-160, menuTop+i*menuItemHeight, c)
	}

	diff := fmt.Sprintf("< %s >", ms.difficulties[ms.difficulty])
	render.DrawCentered(screen, diff, fonts.Bold.Get(), cfg.C.Height-50, menuSelected)
	render.DrawCentered(screen, "ENTER to play", fonts.Small.Get(), cfg.C.Height-20, menuNormal)
}
