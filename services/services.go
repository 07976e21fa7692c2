// Package services declares the collaborators a match talks to. The match only
// reads snapshots from them and writes through the narrow methods below; it never
// owns their persistence.
package services

import (
	"image/color"

	cfg "github.com/automoto/nightslash/config"
)

// AudioClock is the music player. CurrentTime is the authoritative music position
// and advances independently of simulation ticks.
type AudioClock interface {
	Load(path string) error
	Play()
	Pause()
	Stop()
	CurrentTime() float64
	Duration() float64
}

// TrailShape names how a weapon trail is stroked.
type TrailShape string

const (
	TrailSingle     TrailShape = "single_line"
	TrailDual       TrailShape = "dual_line"
	TrailThick      TrailShape = "thick_line"
	TrailUltraThick TrailShape = "ultra_thick"
	TrailWave       TrailShape = "wave_line"
	TrailArc        TrailShape = "arc_line"
)

// WeaponTrail describes the swipe trail of the equipped weapon.
type WeaponTrail struct {
	Shape TrailShape
	Width float64
	Color color.RGBA
}

// Equipment is read-only for the match.
type Equipment interface {
	WeaponTrail() WeaponTrail
	MaxLives() int
}

// ExpStats is a snapshot of the player's progression.
type ExpStats struct {
	Level     int
	Exp       int
	ExpToNext int
	TotalExp  int
}

// LevelUp is returned for every level gained by a kill.
type LevelUp struct {
	Level   int
	Message string
}

// MatchResult summarises a finished match.
type MatchResult struct {
	Stage      string
	Difficulty string
	Score      int
	MaxCombo   int
	Kills      int
	Lives      int
	Elapsed    float64
	Cleared    bool
}

// Experience receives kill reports and returns the resulting progression.
type Experience interface {
	AddKill(enemy string, combo int) (ExpStats, []LevelUp)
	RecordMatch(r MatchResult)
	Stats() ExpStats
}

// BossDescriptor is the static description of a stage boss.
type BossDescriptor struct {
	ID        string
	Name      string
	Health    int
	Speed     float64
	Size      float64
	Damage    int
	Score     int
	GuardType cfg.EnemyType
	Guards    map[string]int
	Color     color.RGBA
}

// GuardsFor returns the escort size for a difficulty, falling back to the default one.
func (b *BossDescriptor) GuardsFor(difficulty string) int {
	if b == nil {
		return 0
	}
	if n, ok := b.Guards[difficulty]; ok {
		return n
	}
	if n, ok := b.Guards[cfg.Default]; ok {
		return n
	}
	return cfg.DifficultyFor(difficulty).Guards
}

// StageCatalog provides per-stage spawn tables.
type StageCatalog interface {
	AllowedTypes(stage string) []cfg.EnemyType
	Boss(stage string) *BossDescriptor
}
