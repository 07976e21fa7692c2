package components

import (
	"github.com/automoto/nightslash/chart"
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// SpawnRequest is an enemy waiting to be instantiated.
type SpawnRequest struct {
	Type cfg.EnemyType
	Y    float64
	HasY bool
}

// SchedulerData drives enemy spawning from a chart or the fallback timer.
type SchedulerData struct {
	Chart  *chart.Chart
	Cursor int

	Allowed    []cfg.EnemyType
	Difficulty cfg.DifficultyConfig

	FallbackTimer float64
	Pending       []SpawnRequest
}

var Scheduler = donburi.NewComponentType[SchedulerData]()

// Exhausted reports whether every chart note has been admitted.
func (s *SchedulerData) Exhausted() bool {
	return s.Chart != nil && s.Cursor >= len(s.Chart.Notes)
}
