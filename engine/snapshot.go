package engine

import (
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/systems"
)

// Snapshot is a read-only summary of the match for HUDs and result screens.
type Snapshot struct {
	State  cfg.MatchStateID
	Paused bool

	Score    int
	Combo    int
	MaxCombo int
	Kills    int
	Lives    int
	MaxLives int

	Elapsed   float64 // simulated seconds
	MusicTime float64
	Duration  float64

	BossName      string
	BossActive    bool
	BossHealth    int
	BossMaxHealth int

	Exp services.ExpStats
}

// Snapshot reads the current match state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Paused:    m.paused,
		MusicTime: m.opts.Audio.CurrentTime(),
		Duration:  m.opts.Audio.Duration(),
		Exp:       m.opts.Experience.Stats(),
	}
	e, ok := components.Match.First(m.world)
	if !ok {
		return s
	}
	match := components.Match.Get(e)
	lives := components.Lives.Get(e)
	s.State = match.State
	s.Score = match.Score
	s.Combo = match.Combo
	s.MaxCombo = match.MaxCombo
	s.Kills = match.Kills
	s.Lives = lives.Lives
	s.MaxLives = lives.MaxLives
	s.Elapsed = components.Clock.Get(e).Elapsed
	if d := m.opts.Chart.Duration(); d > 0 {
		s.Duration = d
	}

	s.BossName = systems.BossName(m.world)
	s.BossHealth, s.BossMaxHealth, s.BossActive = systems.BossHealth(m.world)
	return s
}

// Result is the match outcome as reported to the experience collaborator.
func (m *Match) Result() services.MatchResult {
	return systems.Result(m.world)
}
