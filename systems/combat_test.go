package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestScore(t *testing.T) {
	tests := []struct {
		base, combo, want int
	}{
		{10, 0, 10},
		{10, 5, 15},
		{25, 3, 32},
		{50, 10, 100},
		{18, 7, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.base, tt.combo), "base %d combo %d", tt.base, tt.combo)
	}
}

func TestSwipeKillsEnemy(t *testing.T) {
	f := newFixture(t, nil, nil)
	e := f.spawnAtOrigin(cfg.BatBlue)

	f.swipe()

	assert.False(t, e.Valid())
	m := f.match()
	assert.Equal(t, 10, m.Score)
	assert.Equal(t, 1, m.Combo)
	assert.Equal(t, 1, m.Kills)
	assert.Equal(t, []int{1}, f.rec.Combos)
	assert.Equal(t, []int{10}, f.rec.Scores)
	require.Len(t, f.exp.Kills, 1)
	assert.Equal(t, string(cfg.BatBlue), f.exp.Kills[0].Enemy)
	assert.Len(t, f.rec.Exp, 1)
}

func TestSwipeUsesComboBeforeIncrement(t *testing.T) {
	f := newFixture(t, nil, nil)
	for i := 0; i < 3; i++ {
		f.spawnAtOrigin(cfg.BatBlue)
		f.swipe()
	}
	// 10 + 11 + 12
	assert.Equal(t, 33, f.match().Score)
	assert.Equal(t, 3, f.match().MaxCombo)
}

func TestSwipeMissesOutsideRadius(t *testing.T) {
	f := newFixture(t, nil, nil)
	o := f.origin()
	e := factory.CreateEnemy(f.w, cfg.BatBlue, o.X+45, o.Y, 1)

	f.swipe()

	assert.True(t, e.Valid())
	assert.Equal(t, 0, f.match().Combo)
}

func TestSwipeHitsEveryOverlappingEnemy(t *testing.T) {
	f := newFixture(t, nil, nil)
	o := f.origin()
	a := factory.CreateEnemy(f.w, cfg.BatBlue, o.X+10, o.Y, 1)
	b := factory.CreateEnemy(f.w, cfg.BatBlue, o.X-10, o.Y+5, 1)

	f.swipe()

	assert.False(t, a.Valid())
	assert.False(t, b.Valid())
	assert.Equal(t, 2, f.match().Kills)
}

func TestBombCostsLifeAndResetsCombo(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.spawnAtOrigin(cfg.BatBlue)
	f.swipe()
	require.Equal(t, 1, f.match().Combo)

	bomb := f.spawnAtOrigin(cfg.Bomb)
	f.swipe()

	assert.False(t, bomb.Valid())
	assert.Equal(t, 0, f.match().Combo)
	assert.Equal(t, 2, f.lives().Lives)
	assert.Equal(t, 10, f.match().Score)
	assert.Equal(t, []int{2}, f.rec.Lives)
}

func TestBombResetsComboInsideDamageCooldown(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.spawnAtOrigin(cfg.Bomb)
	f.swipe()
	require.Equal(t, 2, f.lives().Lives)

	f.spawnAtOrigin(cfg.BatBlue)
	f.swipe()
	require.Equal(t, 1, f.match().Combo)

	f.spawnAtOrigin(cfg.Bomb)
	f.swipe()
	assert.Equal(t, 2, f.lives().Lives, "second bomb is inside the shared cooldown")
	assert.Equal(t, 0, f.match().Combo)
}

func TestComboMilestonePublishesEvent(t *testing.T) {
	f := newFixture(t, nil, nil)
	var milestones []int
	ComboMilestoneEvent.Subscribe(f.w, func(w donburi.World, m ComboMilestone) {
		milestones = append(milestones, m.Combo)
	})

	for i := 0; i < 10; i++ {
		f.spawnAtOrigin(cfg.BatBlue)
		f.swipe()
	}
	UpdateFeedback(f.w)

	assert.Equal(t, []int{5, 10}, milestones)
}

func TestLevelUpsReachHooks(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.exp.LevelEvery = 2

	for i := 0; i < 4; i++ {
		f.spawnAtOrigin(cfg.BatBlue)
		f.swipe()
	}

	require.Len(t, f.rec.LevelUps, 2)
	assert.Equal(t, 3, f.rec.LevelUps[1].Level)
}

func TestHeartRestoresLife(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.spawnAtOrigin(cfg.Bomb)
	f.swipe()
	require.Equal(t, 2, f.lives().Lives)

	heart := factory.CreateHeart(f.w, f.origin())
	f.swipe()

	assert.False(t, heart.Valid())
	assert.Equal(t, 3, f.lives().Lives)
	assert.Equal(t, []int{2, 3}, f.rec.Lives)
}

func TestHeartNeverExceedsMaxLives(t *testing.T) {
	f := newFixture(t, nil, nil)
	factory.CreateHeart(f.w, f.origin())
	f.swipe()
	assert.Equal(t, 3, f.lives().Lives)
	assert.Empty(t, f.rec.Lives)
}

func bossDescriptor() *services.BossDescriptor {
	return &services.BossDescriptor{
		ID:        "bat_king",
		Name:      "Bat King",
		Health:    2,
		Speed:     0.5,
		Size:      80,
		Score:     500,
		GuardType: cfg.BatRed,
		Guards:    map[string]int{"normal": 2},
		Color:     color.RGBA{R: 150, A: 255},
	}
}

func TestBossTriggersOnce(t *testing.T) {
	f := newFixture(t, nil, bossDescriptor())
	f.clock.Playing = true

	f.clock.Now = 59
	UpdateBossDirector(f.w)
	assert.Equal(t, 0, countEnemies(f.w))

	f.clock.Now = 60
	UpdateBossDirector(f.w)
	UpdateBossDirector(f.w)

	bosses := 0
	components.Boss.Each(f.w, func(*donburi.Entry) { bosses++ })
	assert.Equal(t, 1, bosses)
	assert.Equal(t, 3, countEnemies(f.w))

	health, maxHealth, ok := BossHealth(f.w)
	assert.True(t, ok)
	assert.Equal(t, 2, health)
	assert.Equal(t, 2, maxHealth)
	assert.Equal(t, "Bat King", BossName(f.w))
}

func TestNoBossWithoutDuration(t *testing.T) {
	f := newFixture(t, nil, bossDescriptor())
	f.clock.Length = 0
	f.clock.Now = 1000
	UpdateBossDirector(f.w)
	assert.Equal(t, 0, countEnemies(f.w))
}

func TestBossDefeatRemovesGuards(t *testing.T) {
	f := newFixture(t, nil, bossDescriptor())
	f.clock.Now = 60
	UpdateBossDirector(f.w)

	boss, ok := components.Boss.First(f.w)
	require.True(t, ok)
	*components.Position.Get(boss) = f.origin()
	UpdateMovement(f.w)
	UpdateObjects(f.w)

	f.swipe()
	require.True(t, boss.Valid())
	assert.Equal(t, 1, components.Boss.Get(boss).Health)
	assert.Greater(t, components.Flash.Get(boss).Remaining, 0.0)
	assert.Equal(t, 0, f.match().Kills)

	f.swipe()
	assert.False(t, boss.Valid())
	assert.Equal(t, 0, countEnemies(f.w))
	assert.Equal(t, 1, f.match().Kills)
	// First hit makes the combo 1, so the kill scores at combo 1.
	assert.Equal(t, Score(500, 1), f.match().Score)

	e, _ := matchEntry(f.w)
	assert.True(t, components.BossDirector.Get(e).Defeated)
	_, _, alive := BossHealth(f.w)
	assert.False(t, alive)
}

func TestSwipeIgnoredAfterGameOver(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.match().State = cfg.MatchStateGameOver
	e := f.spawnAtOrigin(cfg.BatBlue)

	f.swipe()

	assert.True(t, e.Valid())
	assert.Equal(t, 0, f.match().Score)
}
