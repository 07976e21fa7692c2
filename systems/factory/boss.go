package factory

import (
	"math"

	"github.com/automoto/nightslash/archetypes"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBoss spawns a boss moving with the wave pattern.
func CreateBoss(w donburi.World, d *services.BossDescriptor, x, y, speedMultiplier float64) *donburi.Entry {
	boss := archetypes.Enemy.Spawn(w, tags.Boss, components.Boss, components.Flash)

	components.Enemy.SetValue(boss, components.EnemyData{
		Type:    cfg.EnemyType(d.ID),
		Speed:   d.Speed * speedMultiplier,
		Size:    d.Size,
		Pattern: cfg.PatternWave,
		Score:   d.Score,
		Color:   d.Color,
	})
	components.Position.SetValue(boss, dmath.NewVec2(x, y))
	components.Motion.SetValue(boss, components.MotionData{StartX: x, StartY: y})
	components.Animation.SetValue(boss, components.AnimationData{
		Sprite:   d.ID,
		Animator: components.NoAnimation{},
	})
	components.Boss.SetValue(boss, components.BossData{
		Descriptor: d,
		Health:     d.Health,
		MaxHealth:  d.Health,
	})
	attachObject(w, boss, x, y, d.Size, tags.ResolvEnemy)
	return boss
}

// CreateGuards spawns n guards evenly spaced on a circle around the boss and
// records them on the boss.
func CreateGuards(w donburi.World, boss *donburi.Entry, t cfg.EnemyType, n int, radius float64) []*donburi.Entry {
	if n <= 0 {
		return nil
	}
	center := *components.Position.Get(boss)
	speed := components.Enemy.Get(boss).Speed

	guards := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := center.X + radius*math.Cos(angle)
		y := center.Y + radius*math.Sin(angle)

		g := CreateEnemy(w, t, x, y, 1, tags.Guard, components.Guard)
		// Guards drift at the boss's pace once released.
		components.Enemy.Get(g).Speed = speed
		components.Guard.SetValue(g, components.GuardData{
			Boss:   boss.Entity(),
			Angle:  angle,
			Radius: radius,
			Bound:  true,
		})
		guards = append(guards, g)
	}

	bossData := components.Boss.Get(boss)
	for _, g := range guards {
		bossData.Guards = append(bossData.Guards, g.Entity())
	}
	return guards
}
