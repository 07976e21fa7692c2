package systems

import (
	"math"
	"testing"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestMoveLinear(t *testing.T) {
	m := &components.MotionData{StartX: 1000, StartY: 200}
	pos := dmath.NewVec2(1000, 200)
	for i := 0; i < 60; i++ {
		pos = Move(cfg.PatternLinear, pos, m, 2, 1, tick)
	}
	assert.InDelta(t, 880, pos.X, 1e-9)
	assert.Equal(t, 200.0, pos.Y)
}

func TestMoveLinearIsFrameRateIndependent(t *testing.T) {
	fast := dmath.NewVec2(1000, 200)
	slow := dmath.NewVec2(1000, 200)
	for i := 0; i < 120; i++ {
		fast = Move(cfg.PatternLinear, fast, &components.MotionData{}, 3, 0.5, tick/2)
	}
	for i := 0; i < 60; i++ {
		slow = Move(cfg.PatternLinear, slow, &components.MotionData{}, 3, 1, tick)
	}
	assert.InDelta(t, slow.X, fast.X, 1e-9)
}

func TestMoveWaveStaysInBand(t *testing.T) {
	m := &components.MotionData{StartX: 1000, StartY: 300}
	pos := dmath.NewVec2(1000, 300)
	for i := 0; i < 600; i++ {
		pos = Move(cfg.PatternWave, pos, m, 2.5, 1, tick)
		assert.LessOrEqual(t, math.Abs(pos.Y-300), cfg.Movement.WaveAmplitude+1e-9)
	}
	assert.InDelta(t, 1000-2.5*600, pos.X, 1e-6)
}

func TestMoveSineStaysInBand(t *testing.T) {
	m := &components.MotionData{StartX: 1000, StartY: 300}
	pos := dmath.NewVec2(1000, 300)
	for i := 0; i < 600; i++ {
		pos = Move(cfg.PatternSine, pos, m, 2, 1, tick)
		assert.LessOrEqual(t, math.Abs(pos.Y-300), cfg.Movement.SineAmplitude+1e-9)
	}
}

func TestMoveDashAlternates(t *testing.T) {
	m := &components.MotionData{SlowTimer: cfg.Movement.DashSlowTime}
	pos := dmath.NewVec2(1000, 300)

	prev := pos.X
	pos = Move(cfg.PatternDash, pos, m, 2, 1, tick)
	assert.InDelta(t, 2*cfg.Movement.DashSlowFactor, prev-pos.X, 1e-9)

	sawBurst := false
	for i := 0; i < 90; i++ {
		prev = pos.X
		pos = Move(cfg.PatternDash, pos, m, 2, 1, tick)
		if prev-pos.X > 2 {
			sawBurst = true
		}
	}
	assert.True(t, sawBurst)
	assert.Less(t, pos.X, 1000.0)
}

func TestMoveDiveClimbsThenFalls(t *testing.T) {
	m := &components.MotionData{StartX: 1000, StartY: 300}
	pos := dmath.NewVec2(1000, 300)

	minY := pos.Y
	for pos.X > 0 {
		pos = Move(cfg.PatternDive, pos, m, 3.5, 1, tick)
		minY = math.Min(minY, pos.Y)
	}
	assert.InDelta(t, 300-cfg.Movement.DiveHeight, minY, 3)
	assert.Greater(t, pos.Y, minY)
}

func TestGuardsOrbitThenDegrade(t *testing.T) {
	f := newFixture(t, nil, bossDescriptor())
	f.clock.Now = 60
	UpdateBossDirector(f.w)
	boss, ok := components.Boss.First(f.w)
	require.True(t, ok)
	guards := components.Boss.Get(boss).Guards
	require.Len(t, guards, 2)

	for i := 0; i < 30; i++ {
		f.advance(tick)
		UpdateMovement(f.w)
	}
	center := *components.Position.Get(boss)
	for _, id := range guards {
		pos := *components.Position.Get(f.w.Entry(id))
		assert.InDelta(t, cfg.Movement.GuardRadius, math.Hypot(pos.X-center.X, pos.Y-center.Y), 1e-6)
	}

	factory.Destroy(f.w, boss)
	g := f.w.Entry(guards[0])
	before := *components.Position.Get(g)
	f.advance(tick)
	UpdateMovement(f.w)
	after := *components.Position.Get(g)

	assert.False(t, components.Guard.Get(g).Bound)
	assert.Equal(t, before.Y, after.Y)
	assert.InDelta(t, components.Enemy.Get(g).Speed, before.X-after.X, 1e-9)
}

func TestEnemiesLeaveAtLeftEdge(t *testing.T) {
	f := newFixture(t, nil, nil)
	e := factory.CreateEnemy(f.w, cfg.Bomb, -40, 200, 1)
	f.advance(tick)
	UpdateMovement(f.w)
	UpdateRegistry(f.w)
	assert.False(t, e.Valid())
	assert.Equal(t, 3, f.lives().Lives, "bombs escape for free")
}
