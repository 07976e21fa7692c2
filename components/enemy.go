package components

import (
	"image/color"

	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// EnemyData is the identity of a spawned enemy. Normal enemies die in one hit;
// bosses carry BossData for their health.
type EnemyData struct {
	Type    cfg.EnemyType
	Speed   float64 // pixels per reference frame, difficulty applied
	Size    float64 // hit radius
	Pattern cfg.Pattern
	Score   int
	Color   color.RGBA

	PhaseOffset float64 // desynchronises idle bobbing when drawn
}

var Enemy = donburi.NewComponentType[EnemyData]()

// IsBomb reports whether hitting this enemy costs a life.
func (e *EnemyData) IsBomb() bool {
	return e.Type == cfg.Bomb
}
