package systems

import (
	"testing"

	"github.com/automoto/nightslash/chart"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testChart(duration float64, times ...float64) *chart.Chart {
	c := &chart.Chart{Metadata: chart.Metadata{BPM: 120, Duration: duration}}
	for _, t := range times {
		c.Notes = append(c.Notes, chart.Note{Time: t, Type: cfg.BatBlue})
	}
	return c
}

func pending(f *fixture) []components.SpawnRequest {
	e, _ := matchEntry(f.w)
	return components.Scheduler.Get(e).Pending
}

func TestSchedulerWaitsForInitialDelay(t *testing.T) {
	f := newFixture(t, testChart(120, 0.05, 0.10, 0.30), nil)
	f.clock.Playing = true

	f.clock.Now = 0.5
	UpdateScheduler(f.w)
	assert.Empty(t, pending(f))

	f.clock.Now = cfg.Chart.InitialDelay
	UpdateScheduler(f.w)
	assert.Len(t, pending(f), 2)

	UpdateSpawner(f.w)
	assert.Empty(t, pending(f))
	assert.Equal(t, 2, countEnemies(f.w))

	UpdateScheduler(f.w)
	assert.Len(t, pending(f), 1)
}

func TestSchedulerUsesStageTypes(t *testing.T) {
	f := newFixture(t, testChart(120, 1.0, 1.5, 2.0), nil)
	f.stages.Allowed = []cfg.EnemyType{cfg.Crow}
	e, _ := matchEntry(f.w)
	components.Scheduler.Get(e).Allowed = f.stages.Allowed

	f.clock.Now = 1.0
	UpdateScheduler(f.w)
	UpdateSpawner(f.w)

	components.Enemy.Each(f.w, func(e *donburi.Entry) {
		assert.Equal(t, cfg.Crow, components.Enemy.Get(e).Type)
	})
}

func TestSchedulerRespectsNoteY(t *testing.T) {
	y := 100.0
	c := testChart(120)
	c.Notes = append(c.Notes, chart.Note{Time: 1.2, Y: &y})
	f := newFixture(t, c, nil)

	f.clock.Now = 1.0
	UpdateScheduler(f.w)
	UpdateSpawner(f.w)

	e, ok := components.Enemy.First(f.w)
	require.True(t, ok)
	assert.Equal(t, 100.0, components.Position.Get(e).Y)
	assert.Greater(t, components.Position.Get(e).X, float64(cfg.C.Width))
}

func TestFallbackSpawnInterval(t *testing.T) {
	f := newFixture(t, nil, nil)

	f.advance(0.5)
	UpdateScheduler(f.w)
	assert.Empty(t, pending(f))

	f.advance(0.5)
	UpdateScheduler(f.w)
	assert.Len(t, pending(f), 1)
}

func TestFallbackWhenTrackHasNoDuration(t *testing.T) {
	f := newFixture(t, testChart(0, 0.5), nil)
	f.clock.Length = 0

	e, _ := matchEntry(f.w)
	assert.False(t, ChartMode(components.Scheduler.Get(e), f.clock))

	f.advance(1.0)
	UpdateScheduler(f.w)
	assert.Len(t, pending(f), 1)
}

func TestStageClearsWhenSongEnds(t *testing.T) {
	f := newFixture(t, testChart(2, 1.0), nil)
	f.clock.Length = 2
	f.clock.Playing = true

	for i := 0; i < 60*20 && !Terminal(f.w); i++ {
		f.step(tick)
	}

	assert.Equal(t, cfg.MatchStateCleared, f.match().State)
	require.Len(t, f.rec.Clears, 1)
	assert.True(t, f.rec.Clears[0].Cleared)
	require.Len(t, f.exp.Results, 1)
	assert.Equal(t, 0, f.rec.GameOvers)

	UpdateMatchEnd(f.w)
	assert.Len(t, f.rec.Clears, 1)
}

func TestStageNotClearedWhileEnemiesRemain(t *testing.T) {
	f := newFixture(t, testChart(2, 1.0), nil)
	f.clock.Length = 2
	f.clock.Now = 2
	e, _ := matchEntry(f.w)
	components.Scheduler.Get(e).Cursor = 1
	SpawnEnemy(f.w, cfg.BatBlue, 200, 1)

	UpdateMatchEnd(f.w)
	assert.Equal(t, cfg.MatchStatePlaying, f.match().State)
}
