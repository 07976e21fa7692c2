package scenes

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"
	"sync"

	"github.com/automoto/nightslash/assets"
	"github.com/automoto/nightslash/chart"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/engine"
	"github.com/automoto/nightslash/render"
	"github.com/automoto/nightslash/services"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// generatedBPM is the tempo of charts built for tracks that ship without one.
const generatedBPM = 120

// StageScene plays one stage against its chart and music.
type StageScene struct {
	sceneChanger SceneChanger
	ctx          *Context
	stage        string

	once    sync.Once
	match   *engine.Match
	watcher *chart.Watcher
	res     render.Resources
	touches []ebiten.TouchID
	result  *services.MatchResult
}

// NewStageScene creates a scene for stage. Loading happens on the first update.
func NewStageScene(sc SceneChanger, ctx *Context, stage string) *StageScene {
	return &StageScene{
		sceneChanger: sc,
		ctx:          ctx,
		stage:        stage,
	}
}

func (ss *StageScene) configure() {
	var clock services.AudioClock = services.SilentClock{}
	if ss.ctx.Music != nil {
		if p, ok := ss.track(); ok {
			if err := ss.ctx.Music.Load(p); err != nil {
				log.Printf("Warning: %v", err)
			} else {
				clock = ss.ctx.Music
			}
		}
	}

	c, err := ss.loadChart(clock)
	if err != nil {
		log.Printf("Error: %v", err)
		ss.leave()
		return
	}

	ss.match, err = engine.New(engine.Options{
		Stage:      ss.stage,
		Difficulty: ss.ctx.Difficulty,
		Chart:      c,
		Audio:      clock,
		Stages:     ss.ctx.Stages,
		Equipment:  ss.ctx.Loadout,
		Experience: ss.ctx.Progress,
		Hooks: services.Hooks{
			OnLevelUp: func(level int, message string) {
				log.Printf("Level up: %d %s", level, message)
			},
			OnStageClear: func(r services.MatchResult) {
				ss.result = &r
			},
		},
		Seed: ss.ctx.Seed,
	})
	if err != nil {
		log.Printf("Error: %v", err)
		ss.leave()
		return
	}

	ss.res = render.Resources{Sprites: ss.ctx.Sprites, Trail: ss.ctx.Loadout.WeaponTrail()}

	if ss.ctx.Watch {
		path := ss.chartPath()
		if ss.watcher, err = chart.Watch(path); err != nil {
			log.Printf("Warning: could not watch %s: %v", path, err)
		}
	}
}

func (ss *StageScene) overridden() bool {
	return ss.ctx.OverrideStage == ss.stage
}

func (ss *StageScene) chartPath() string {
	if ss.overridden() && ss.ctx.ChartFile != "" {
		return ss.ctx.ChartFile
	}
	return filepath.Join(ss.ctx.ChartDir, ss.stage+".json")
}

func (ss *StageScene) track() (string, bool) {
	if ss.overridden() && ss.ctx.MusicFile != "" {
		return ss.ctx.MusicFile, true
	}
	return assets.FindTrack(ss.ctx.Assets, ss.stage)
}

// loadChart reads the stage chart. A missing chart is generated from the track
// when one is playing, otherwise the fallback timer drives spawns.
func (ss *StageScene) loadChart(clock services.AudioClock) (*chart.Chart, error) {
	c, err := chart.LoadFile(ss.chartPath())
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, fs.ErrNotExist):
		if d := clock.Duration(); d > 0 {
			log.Printf("No chart for %s, generating one at %d bpm", ss.stage, generatedBPM)
			return chart.Generate(d, generatedBPM), nil
		}
		return nil, nil
	default:
		return nil, err
	}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	if ss.match == nil {
		return
	}

	ss.drainWatcher()

	snap := ss.match.Snapshot()
	switch snap.State {
	case cfg.MatchStateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			ss.match.Restart()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			ss.finish(ss.match.Result())
		}
		return
	case cfg.MatchStateCleared:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			result := ss.match.Result()
			if ss.result != nil {
				result = *ss.result
			}
			ss.finish(result)
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ss.match.Paused() {
			ss.match.Resume()
		} else {
			ss.match.Pause()
		}
	}
	if ss.match.Paused() {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			ss.leave()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ss.match.Restart()
		return
	}

	ss.handlePointer()
	ss.match.Update(1 / float64(ebiten.TPS()))
}

// handlePointer forwards held mouse and touch positions as swipe samples.
func (ss *StageScene) handlePointer() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ss.match.HandleSwipe(float64(x), float64(y))
	}
	ss.touches = ebiten.AppendTouchIDs(ss.touches[:0])
	for _, id := range ss.touches {
		x, y := ebiten.TouchPosition(id)
		ss.match.HandleSwipe(float64(x), float64(y))
	}
}

func (ss *StageScene) drainWatcher() {
	if ss.watcher == nil {
		return
	}
	for {
		select {
		case c := <-ss.watcher.Charts:
			log.Printf("Reloaded chart for %s: %d notes", ss.stage, len(c.Notes))
			ss.match.AttachChart(c)
		case err := <-ss.watcher.Errors:
			log.Printf("Warning: chart reload: %v", err)
		default:
			return
		}
	}
}

func (ss *StageScene) finish(r services.MatchResult) {
	ss.close()
	ss.sceneChanger.ChangeScene(NewResultScene(ss.sceneChanger, ss.ctx, r))
}

func (ss *StageScene) leave() {
	ss.close()
	ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.ctx))
}

func (ss *StageScene) close() {
	if ss.watcher != nil {
		if err := ss.watcher.Close(); err != nil {
			log.Printf("Warning: closing chart watcher: %v", err)
		}
		ss.watcher = nil
	}
	if ss.ctx.Music != nil {
		ss.ctx.Music.Stop()
	}
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	if ss.match == nil {
		screen.Fill(background)
		return
	}
	render.Draw(screen, ss.match, ss.res)
}
