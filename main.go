package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/automoto/nightslash/assets"
	"github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/equipment"
	"github.com/automoto/nightslash/fonts"
	"github.com/automoto/nightslash/progression"
	"github.com/automoto/nightslash/scenes"
	"github.com/automoto/nightslash/stages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const fontPath = "fonts/main.ttf"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(ctx *scenes.Context, stage string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if stage != "" {
		g.scene = scenes.NewStageScene(g, ctx, stage)
	} else {
		g.scene = scenes.NewMenuScene(g, ctx)
	}

	return g
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
	assetDir := flag.String("assets", "assets", "directory holding fonts, images and audio/music")
	stage := flag.String("stage", "", "start this stage directly instead of the menu")
	difficulty := flag.String("difficulty", config.Default, "easy, normal or hard")
	chartFile := flag.String("chart", "", "chart file for -stage")
	musicFile := flag.String("music", "", "music file for -stage, relative to -assets")
	chartDir := flag.String("charts", "charts", "directory holding <stage>.json charts")
	stagesFile := flag.String("stages", "", "stage catalog override (yaml)")
	weapon := flag.String("weapon", "dagger", "equipped weapon")
	armor := flag.String("armor", "", "equipped armor")
	watch := flag.Bool("watch", false, "reload the chart when its file changes")
	windowed := flag.Bool("windowed", false, "run in a window instead of fullscreen")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	if _, ok := config.Difficulties[*difficulty]; !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	catalog, err := loadCatalog(*stagesFile)
	if err != nil {
		log.Fatalf("Failed to load stage catalog: %v", err)
	}
	if *stage != "" {
		if _, err := catalog.Stage(*stage); err != nil {
			log.Printf("Warning: %v, using the default enemy set", err)
		}
	}

	loadout, err := equipment.NewLoadout(*weapon, *armor)
	if err != nil {
		log.Fatalf("Failed to equip: %v", err)
	}

	tracker, err := progression.NewTracker(progression.OpenStore("nightslash"))
	if err != nil {
		log.Printf("Warning: %v, starting with fresh progression", err)
		tracker, _ = progression.NewTracker(progression.NewMemoryStore())
	}

	var fsys fs.FS
	if info, err := os.Stat(*assetDir); err == nil && info.IsDir() {
		fsys = os.DirFS(*assetDir)
	} else {
		log.Printf("Warning: asset directory %s not found, drawing shapes without music", *assetDir)
	}

	fonts.LoadAll(fsys, fontPath)
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}
	sprites := assets.NewSpriteLoader(fsys)
	sprites.Preload()

	ctx := &scenes.Context{
		Stages:        catalog,
		Progress:      tracker,
		Loadout:       loadout,
		Music:         assets.NewMusicPlayer(audio.NewContext(config.Audio.SampleRate), fsys),
		Sprites:       sprites,
		Assets:        fsys,
		ChartDir:      *chartDir,
		Difficulty:    *difficulty,
		Watch:         *watch,
		Seed:          *seed,
		OverrideStage: *stage,
		ChartFile:     *chartFile,
		MusicFile:     *musicFile,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("nightslash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(!*windowed)

	if err := ebiten.RunGame(NewGame(ctx, *stage)); err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(path string) (*stages.Catalog, error) {
	if path == "" {
		return stages.Default()
	}
	return stages.LoadFile(path)
}
