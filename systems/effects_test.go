package systems

import (
	"testing"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func countOf(w donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func runFeedback(f *fixture, seconds float64) {
	for t := 0.0; t < seconds; t += tick {
		f.advance(tick)
		UpdateFeedback(f.w)
	}
}

func TestMilestoneParticles(t *testing.T) {
	assert.Equal(t, 20, MilestoneParticles(5))
	assert.Equal(t, 30, MilestoneParticles(10))
	assert.Equal(t, cfg.Feedback.ComboParticleMax, MilestoneParticles(25))
	assert.Equal(t, cfg.Feedback.ComboParticleMax, MilestoneParticles(100))
}

func TestKillSpawnsFeedback(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.spawnAtOrigin(cfg.BatBlue)
	f.swipe()
	UpdateFeedback(f.w)

	n := countOf(f.w, components.Particle)
	assert.GreaterOrEqual(t, n, cfg.Feedback.HitParticlesMin)
	assert.LessOrEqual(t, n, cfg.Feedback.HitParticlesMax)
	assert.Equal(t, 1, countOf(f.w, components.FloatingText))
}

func TestMilestoneShakes(t *testing.T) {
	f := newFixture(t, nil, nil)
	for i := 0; i < cfg.Combat.MilestoneEvery; i++ {
		f.spawnAtOrigin(cfg.BatBlue)
		f.swipe()
	}
	UpdateFeedback(f.w)

	e, _ := components.ScreenShake.First(f.w)
	shake := components.ScreenShake.Get(e)
	assert.NotNil(t, shake.Decay)
	assert.InDelta(t, MilestoneShake(5), shake.Intensity, 1e-9)
	assert.Equal(t, 3.0, MilestoneShake(5))
	assert.Equal(t, cfg.Feedback.ShakeMax, MilestoneShake(60))
}

func TestParticlesExpire(t *testing.T) {
	f := newFixture(t, nil, nil)
	factory.CreateBurst(f.w, servicesOf(f.w).Rand, dmath.NewVec2(100, 100), 10, cfg.Player.Color)
	require.Equal(t, 10, countOf(f.w, components.Particle))

	runFeedback(f, cfg.Feedback.ParticleLife+0.1)
	assert.Equal(t, 0, countOf(f.w, components.Particle))
}

func TestFloatingTextRisesAndExpires(t *testing.T) {
	f := newFixture(t, nil, nil)
	text := factory.CreateFloatingText(f.w, "+10", dmath.NewVec2(100, 100), cfg.Player.Color)

	runFeedback(f, 0.3)
	assert.Greater(t, components.FloatingText.Get(text).Offset, 0.0)

	runFeedback(f, float64(cfg.Feedback.TextLife))
	assert.False(t, text.Valid())
}

func TestScreenShakeDecays(t *testing.T) {
	f := newFixture(t, nil, nil)
	factory.TriggerScreenShake(f.w, 8, 0.4)
	e, _ := components.ScreenShake.First(f.w)
	shake := components.ScreenShake.Get(e)

	runFeedback(f, 0.1)
	assert.LessOrEqual(t, shake.Offset.X, 8.0)
	assert.GreaterOrEqual(t, shake.Offset.X, -8.0)

	runFeedback(f, 0.4)
	assert.Nil(t, shake.Decay)
	assert.Equal(t, dmath.Vec2{}, shake.Offset)
}

func TestTrailExpires(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.swipe()
	e, _ := components.Trail.First(f.w)
	require.Len(t, components.Trail.Get(e).Points, 1)

	runFeedback(f, cfg.Feedback.TrailLife+0.05)
	assert.Empty(t, components.Trail.Get(e).Points)
}

func TestHeartsDriftAndExpire(t *testing.T) {
	f := newFixture(t, nil, nil)
	heart := factory.CreateHeart(f.w, dmath.NewVec2(600, 200))

	f.advance(tick)
	UpdateRegistry(f.w)
	assert.InDelta(t, 600-cfg.Feedback.HeartSpeed, components.Position.Get(heart).X, 1e-9)

	for i := 0; i < int(cfg.Feedback.HeartLife*60)+5; i++ {
		f.advance(tick)
		UpdateRegistry(f.w)
	}
	assert.False(t, heart.Valid())
}
