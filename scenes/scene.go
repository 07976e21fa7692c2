package scenes

import (
	"io/fs"

	"github.com/automoto/nightslash/assets"
	"github.com/automoto/nightslash/equipment"
	"github.com/automoto/nightslash/progression"
	"github.com/automoto/nightslash/stages"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Context is shared by every scene for the lifetime of the game.
type Context struct {
	Stages   *stages.Catalog
	Progress *progression.Tracker
	Loadout  *equipment.Loadout
	Music    *assets.MusicPlayer // nil when audio is unavailable
	Sprites  *assets.SpriteLoader
	Assets   fs.FS // nil when no asset directory was given

	ChartDir   string
	Difficulty string
	Watch      bool
	Seed       int64

	// Chart and music files given on the command line replace the lookup for
	// this stage only.
	OverrideStage string
	ChartFile     string
	MusicFile     string
}
