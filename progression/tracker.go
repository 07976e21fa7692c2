package progression

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/nightslash/services"
)

const statsKey = "player_stats"

// Stats is the persisted progression record.
type Stats struct {
	Level     int `json:"level"`
	Exp       int `json:"exp"`
	TotalExp  int `json:"totalExp"`
	KillCount int `json:"killCount"`
	MaxCombo  int `json:"maxCombo"`
	BestScore int `json:"bestScore"`
	Matches   int `json:"matches"`
}

func defaultStats() Stats {
	return Stats{Level: 1}
}

// Tracker implements services.Experience and saves after every change.
type Tracker struct {
	store Store
	stats Stats
}

// NewTracker loads saved stats from store, starting fresh when none exist.
func NewTracker(store Store) (*Tracker, error) {
	t := &Tracker{store: store, stats: defaultStats()}
	data, err := store.LoadItem(statsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load player stats: %w", err)
	}
	if len(data) == 0 {
		return t, nil
	}
	if err := json.Unmarshal(data, &t.stats); err != nil {
		return nil, fmt.Errorf("failed to parse player stats: %w", err)
	}
	if t.stats.Level < 1 {
		t.stats.Level = 1
	}
	return t, nil
}

// Record returns a copy of the persisted stats.
func (t *Tracker) Record() Stats { return t.stats }

func (t *Tracker) Stats() services.ExpStats {
	return services.ExpStats{
		Level:     t.stats.Level,
		Exp:       t.stats.Exp,
		ExpToNext: ExpToNext(t.stats.Level),
		TotalExp:  t.stats.TotalExp,
	}
}

// AddKill awards kill experience and applies every level-up it causes.
func (t *Tracker) AddKill(enemy string, combo int) (services.ExpStats, []services.LevelUp) {
	t.stats.KillCount++
	if combo > t.stats.MaxCombo {
		t.stats.MaxCombo = combo
	}
	ups := t.addExp(KillExp(enemy, combo))
	t.save()
	return t.Stats(), ups
}

func (t *Tracker) addExp(amount int) []services.LevelUp {
	t.stats.Exp += amount
	t.stats.TotalExp += amount

	var ups []services.LevelUp
	for t.stats.Exp >= ExpToNext(t.stats.Level) {
		t.stats.Exp -= ExpToNext(t.stats.Level)
		t.stats.Level++
		msg := fmt.Sprintf("Level %d!", t.stats.Level)
		if r, ok := Rewards[t.stats.Level]; ok {
			msg = r.Message
		}
		ups = append(ups, services.LevelUp{Level: t.stats.Level, Message: msg})
	}
	return ups
}

// RecordMatch folds a finished match into the personal bests.
func (t *Tracker) RecordMatch(r services.MatchResult) {
	t.stats.Matches++
	if r.Score > t.stats.BestScore {
		t.stats.BestScore = r.Score
	}
	if r.MaxCombo > t.stats.MaxCombo {
		t.stats.MaxCombo = r.MaxCombo
	}
	t.save()
}

// Reset clears all progression.
func (t *Tracker) Reset() {
	t.stats = defaultStats()
	t.save()
}

func (t *Tracker) save() {
	data, err := json.Marshal(t.stats)
	if err != nil {
		log.Printf("Warning: Could not serialize player stats: %v", err)
		return
	}
	if err := t.store.SaveItem(statsKey, data); err != nil {
		log.Printf("Warning: Could not save player stats: %v", err)
	}
}
