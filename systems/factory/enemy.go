package factory

import (
	"math"

	"github.com/automoto/nightslash/archetypes"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a normal enemy of type t centered at (x, y). Unknown types
// fall back to the default type.
func CreateEnemy(w donburi.World, t cfg.EnemyType, x, y, speedMultiplier float64, extra ...donburi.IComponentType) *donburi.Entry {
	if !cfg.IsEnemyType(string(t)) {
		t = cfg.DefaultEnemyType
	}
	enemyType := cfg.EnemyFor(t)

	comps := extra
	if enemyType.Melee {
		comps = append(comps, components.MeleeAI)
	}
	enemy := archetypes.Enemy.Spawn(w, comps...)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:        t,
		Speed:       enemyType.Speed * speedMultiplier,
		Size:        enemyType.Size,
		Pattern:     enemyType.Pattern,
		Score:       enemyType.Score,
		Color:       enemyType.Color,
		PhaseOffset: math.Mod(y, 16) * 0.4,
	})
	components.Position.SetValue(enemy, dmath.NewVec2(x, y))
	components.Motion.SetValue(enemy, components.MotionData{
		StartX:    x,
		StartY:    y,
		SlowTimer: cfg.Movement.DashSlowTime,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		Sprite:   enemyType.SpriteKey,
		Animator: components.NewAnimator(enemyType.Animation, enemyType.SpriteKey),
	})
	if enemyType.Melee {
		components.MeleeAI.SetValue(enemy, components.MeleeAIData{
			State:    cfg.Idle,
			Cooldown: cfg.Melee.InitialCooldown,
		})
	}
	attachObject(w, enemy, x, y, enemyType.Size, tags.ResolvEnemy)
	return enemy
}

// SpawnX is where enemies of the given size enter the field.
func SpawnX(size float64) float64 {
	return float64(cfg.C.Width) + size
}
