package services

import (
	"image/color"

	cfg "github.com/automoto/nightslash/config"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// SilentClock stands in for a missing music track. It never advances, so a match
// using it runs the fallback spawn timer.
type SilentClock struct{}

func (SilentClock) Load(string) error    { return nil }
func (SilentClock) Play()                {}
func (SilentClock) Pause()               {}
func (SilentClock) Stop()                {}
func (SilentClock) CurrentTime() float64 { return 0 }
func (SilentClock) Duration() float64    { return 0 }

// BareHands is the equipment used when no loadout is supplied.
type BareHands struct{}

func (BareHands) WeaponTrail() WeaponTrail {
	return WeaponTrail{Shape: TrailSingle, Width: 2, Color: white}
}

func (BareHands) MaxLives() int { return 3 }

// NoExperience discards kill reports.
type NoExperience struct{}

func (NoExperience) AddKill(string, int) (ExpStats, []LevelUp) { return ExpStats{Level: 1}, nil }
func (NoExperience) RecordMatch(MatchResult)                   {}
func (NoExperience) Stats() ExpStats                           { return ExpStats{Level: 1} }

// DefaultStages serves the default spawn table for every stage and no bosses.
type DefaultStages struct{}

func (DefaultStages) AllowedTypes(string) []cfg.EnemyType {
	return []cfg.EnemyType{cfg.BatBlue, cfg.BatPurple, cfg.Skeleton, cfg.Bomb}
}

func (DefaultStages) Boss(string) *BossDescriptor { return nil }
