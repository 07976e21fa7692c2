package components

import (
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// MatchData is the score ledger and lifecycle of the running match.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	State      cfg.MatchStateID
	Stage      string
	Difficulty string

	Score    int
	Combo    int
	MaxCombo int
	Kills    int

	GameOverFired bool
	ClearFired    bool
}

var Match = donburi.NewComponentType[MatchData]()

// AddCombo increments the combo and tracks the best run.
func (m *MatchData) AddCombo() int {
	m.Combo++
	if m.Combo > m.MaxCombo {
		m.MaxCombo = m.Combo
	}
	return m.Combo
}
