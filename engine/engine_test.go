package engine

import (
	"testing"

	"github.com/automoto/nightslash/chart"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services/servicestest"
	"github.com/automoto/nightslash/systems"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/automoto/nightslash/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tick = 1.0 / 60.0

type harness struct {
	m     *Match
	clock *servicestest.Clock
	rec   *servicestest.Recorder
	exp   *servicestest.Experience
}

// emptyChart keeps the match in chart mode without spawning anything.
func emptyChart(duration float64) *chart.Chart {
	return &chart.Chart{Metadata: chart.Metadata{BPM: 120, Duration: duration}, Notes: []chart.Note{}}
}

func newHarness(t *testing.T, c *chart.Chart, length float64) *harness {
	t.Helper()
	h := &harness{
		clock: servicestest.NewClock(length),
		rec:   &servicestest.Recorder{},
		exp:   &servicestest.Experience{},
	}
	m, err := New(Options{
		Stage:      "test",
		Chart:      c,
		Audio:      h.clock,
		Stages:     &servicestest.Stages{Allowed: []cfg.EnemyType{cfg.BatBlue}},
		Equipment:  servicestest.NewEquipment(3),
		Experience: h.exp,
		Hooks:      h.rec.Hooks(),
		Seed:       42,
	})
	require.NoError(t, err)
	h.m = m
	return h
}

// frame plays one driver frame: the music advances on its own, then the match ticks.
func (h *harness) frame() {
	h.clock.Advance(tick)
	h.m.Update(tick)
}

func (h *harness) run(seconds float64) {
	for i := 0; i < int(seconds*60+0.5); i++ {
		h.frame()
	}
}

// bombAhead places a bomb where a swipe straight ahead of the player lands and
// returns that swipe position.
func (h *harness) bombAhead(t *testing.T) (float64, float64) {
	t.Helper()
	w := h.m.World()
	p, ok := tags.Player.First(w)
	require.True(t, ok)
	pos := *components.Position.Get(p)
	x, y := pos.X+200, pos.Y

	systems.AimAt(w, x, y)
	o, ok := systems.AttackOrigin(w)
	require.True(t, ok)
	factory.CreateEnemy(w, cfg.Bomb, o.X, o.Y, 1)
	return x, y
}

func TestNewAppliesDefaults(t *testing.T) {
	m, err := New(Options{})
	require.NoError(t, err)

	s := m.Snapshot()
	assert.Equal(t, cfg.MatchStatePlaying, s.State)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, cfg.Default, m.Options().Difficulty)

	for i := 0; i < 120; i++ {
		m.Update(tick)
	}
	assert.InDelta(t, 2.0, m.Snapshot().Elapsed, 1e-9)
}

func TestNewRejectsInvalidChart(t *testing.T) {
	c := emptyChart(10)
	c.Metadata.BPM = -1
	_, err := New(Options{Chart: c})
	assert.ErrorIs(t, err, chart.ErrInvalidBPM)
}

func TestUpdateStartsMusic(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	assert.Equal(t, 0, h.clock.Plays)

	h.m.Update(tick)
	h.m.Update(tick)
	assert.Equal(t, 1, h.clock.Plays)
	assert.True(t, h.clock.Playing)
}

func TestUpdateClampsLongFrames(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	h.m.Update(5)
	assert.InDelta(t, cfg.Sim.MaxDT, h.m.Snapshot().Elapsed, 1e-9)
}

func TestPauseResumeHasNoTimeJump(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	h.run(1)
	before := h.m.Snapshot()

	h.m.Pause()
	assert.True(t, h.m.Paused())
	assert.Equal(t, 1, h.clock.Pauses)
	h.run(3)

	paused := h.m.Snapshot()
	assert.Equal(t, before.Elapsed, paused.Elapsed)
	assert.Equal(t, before.MusicTime, paused.MusicTime)

	h.m.Resume()
	assert.False(t, h.m.Paused())
	h.frame()

	after := h.m.Snapshot()
	assert.InDelta(t, before.Elapsed+tick, after.Elapsed, 1e-9)
	assert.InDelta(t, before.MusicTime+tick, after.MusicTime, 1e-9)
	assert.Equal(t, 2, h.clock.Plays)
}

func TestSwipeIgnoredWhilePaused(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	h.frame()
	x, y := h.bombAhead(t)

	h.m.Pause()
	h.m.HandleSwipe(x, y)
	assert.Equal(t, 3, h.m.Snapshot().Lives)

	h.m.Resume()
	h.m.HandleSwipe(x, y)
	assert.Equal(t, 2, h.m.Snapshot().Lives)
}

func TestThreeBombsEndTheMatchOnce(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	h.frame()

	for i := 0; i < 3; i++ {
		x, y := h.bombAhead(t)
		h.m.HandleSwipe(x, y)
		assert.Equal(t, 2-i, h.m.Snapshot().Lives)
		if i < 2 {
			h.run(cfg.Combat.DamageCooldown + 0.1)
		}
	}

	s := h.m.Snapshot()
	assert.Equal(t, cfg.MatchStateGameOver, s.State)
	assert.Equal(t, 1, h.rec.GameOvers)
	assert.Equal(t, []int{2, 1, 0}, h.rec.Lives)
	assert.Equal(t, 1, h.clock.Stops)
	require.Len(t, h.exp.Results, 1)

	elapsed := s.Elapsed
	h.run(1)
	h.m.HandleSwipe(h.bombAhead(t))
	assert.Equal(t, elapsed, h.m.Snapshot().Elapsed)
	assert.Equal(t, 1, h.rec.GameOvers)
}

func TestBombsInsideCooldownCostOneLife(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	h.frame()

	for i := 0; i < 3; i++ {
		x, y := h.bombAhead(t)
		h.m.HandleSwipe(x, y)
		h.run(0.2)
	}
	assert.Equal(t, 2, h.m.Snapshot().Lives)
	assert.Equal(t, 0, h.rec.GameOvers)
}

func TestRestart(t *testing.T) {
	h := newHarness(t, emptyChart(120), 120)
	h.run(1)
	x, y := h.bombAhead(t)
	h.m.HandleSwipe(x, y)
	old := h.m.World()

	h.m.Restart()

	assert.NotSame(t, old, h.m.World())
	s := h.m.Snapshot()
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0.0, s.Elapsed)
	assert.Equal(t, 0.0, h.clock.Now)
	assert.Equal(t, 1, h.clock.Stops)

	h.frame()
	assert.Equal(t, 2, h.clock.Plays)

	x, y = h.bombAhead(t)
	h.m.HandleSwipe(x, y)
	assert.Equal(t, []int{2, 2}, h.rec.Lives)
}

func TestStageClear(t *testing.T) {
	h := newHarness(t, emptyChart(2), 2)

	h.run(3)

	s := h.m.Snapshot()
	assert.Equal(t, cfg.MatchStateCleared, s.State)
	require.Len(t, h.rec.Clears, 1)
	assert.True(t, h.rec.Clears[0].Cleared)
	assert.Equal(t, "test", h.rec.Clears[0].Stage)
	require.Len(t, h.exp.Results, 1)
	assert.Equal(t, 0, h.rec.GameOvers)
}

func TestChartSpawnsEnemies(t *testing.T) {
	c := emptyChart(120)
	c.Notes = []chart.Note{{Time: 2}, {Time: 3}}
	h := newHarness(t, c, 120)

	h.run(1.2)
	enemies := 0
	tags.Enemy.Each(h.m.World(), func(*donburi.Entry) { enemies++ })
	assert.Equal(t, 1, enemies)
}

func TestAttachChartSkipsPastNotes(t *testing.T) {
	h := newHarness(t, nil, 120)
	h.clock.Now = 10

	c := emptyChart(120)
	c.Notes = []chart.Note{{Time: 5}, {Time: 10}, {Time: 12}}
	h.m.AttachChart(c)

	e, ok := components.Match.First(h.m.World())
	require.True(t, ok)
	sched := components.Scheduler.Get(e)
	assert.Same(t, c, sched.Chart)
	assert.Equal(t, 2, sched.Cursor)
	assert.Same(t, c, h.m.Options().Chart)

	h.m.AttachChart(nil)
	assert.Nil(t, sched.Chart)
}
