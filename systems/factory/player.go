package factory

import (
	"github.com/automoto/nightslash/archetypes"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerStart is the player's spawn point on the playfield.
func PlayerStart() dmath.Vec2 {
	return dmath.NewVec2(float64(cfg.C.Width)*cfg.Player.StartX, float64(cfg.C.Height)*cfg.Player.StartY)
}

func CreatePlayer(w donburi.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	start := PlayerStart()
	components.Position.SetValue(player, start)
	components.Player.SetValue(player, components.PlayerData{
		Target: start,
		State:  cfg.Idle,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Sprite:   "player",
		Animator: components.NewAnimator(cfg.AnimMulti, "player"),
	})
	return player
}
