package factory

import (
	"math/rand"

	"github.com/automoto/nightslash/archetypes"
	"github.com/automoto/nightslash/chart"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// MatchSetup is everything needed to create the match singleton.
type MatchSetup struct {
	Stage      string
	Difficulty string
	Chart      *chart.Chart
	Services   components.ServicesData
}

// CreateMatch spawns the match singleton holding the ledger, lives, clock,
// scheduler and boss director.
func CreateMatch(w donburi.World, s MatchSetup) *donburi.Entry {
	e := archetypes.Match.Spawn(w)

	if s.Services.Rand == nil {
		s.Services.Rand = rand.New(rand.NewSource(1))
	}
	components.Services.SetValue(e, s.Services)

	components.Match.SetValue(e, components.MatchData{
		State:      cfg.MatchStatePlaying,
		Stage:      s.Stage,
		Difficulty: s.Difficulty,
	})

	lives := s.Services.Equipment.MaxLives()
	if lives < 1 {
		lives = 1
	}
	components.Lives.SetValue(e, components.LivesData{Lives: lives, MaxLives: lives})

	allowed := s.Services.Stages.AllowedTypes(s.Stage)
	if len(allowed) == 0 {
		allowed = []cfg.EnemyType{cfg.DefaultEnemyType}
	}
	components.Scheduler.SetValue(e, components.SchedulerData{
		Chart:      s.Chart,
		Allowed:    allowed,
		Difficulty: cfg.DifficultyFor(s.Difficulty),
	})

	components.BossDirector.SetValue(e, components.BossDirectorData{
		Descriptor: s.Services.Stages.Boss(s.Stage),
	})
	return e
}
