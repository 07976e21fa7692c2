// Package servicestest provides in-memory collaborators for match tests.
package servicestest

import (
	"image/color"

	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
)

// Clock is a manually advanced music clock. Advance moves it only while playing.
type Clock struct {
	Now     float64
	Length  float64
	Playing bool
	Loaded  string

	Plays, Pauses, Stops int
}

func NewClock(length float64) *Clock {
	return &Clock{Length: length}
}

func (c *Clock) Load(path string) error {
	c.Loaded = path
	return nil
}

func (c *Clock) Play() {
	c.Playing = true
	c.Plays++
}

func (c *Clock) Pause() {
	c.Playing = false
	c.Pauses++
}

func (c *Clock) Stop() {
	c.Playing = false
	c.Now = 0
	c.Stops++
}

func (c *Clock) CurrentTime() float64 { return c.Now }
func (c *Clock) Duration() float64    { return c.Length }

func (c *Clock) Advance(dt float64) {
	if !c.Playing {
		return
	}
	c.Now += dt
	if c.Length > 0 && c.Now > c.Length {
		c.Now = c.Length
	}
}

// Equipment is a fixed loadout.
type Equipment struct {
	Lives int
	Trail services.WeaponTrail
}

func NewEquipment(lives int) *Equipment {
	return &Equipment{
		Lives: lives,
		Trail: services.WeaponTrail{Shape: services.TrailSingle, Width: 2, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
}

func (e *Equipment) WeaponTrail() services.WeaponTrail { return e.Trail }
func (e *Equipment) MaxLives() int                     { return e.Lives }

// Kill is one recorded experience report.
type Kill struct {
	Enemy string
	Combo int
}

// Experience records kills and levels up on a fixed schedule.
type Experience struct {
	Kills      []Kill
	Results    []services.MatchResult
	LevelEvery int

	stats services.ExpStats
}

func (e *Experience) AddKill(enemy string, combo int) (services.ExpStats, []services.LevelUp) {
	e.Kills = append(e.Kills, Kill{Enemy: enemy, Combo: combo})
	if e.stats.Level == 0 {
		e.stats.Level = 1
	}
	e.stats.TotalExp++
	var ups []services.LevelUp
	if e.LevelEvery > 0 && len(e.Kills)%e.LevelEvery == 0 {
		e.stats.Level++
		ups = append(ups, services.LevelUp{Level: e.stats.Level, Message: "level up"})
	}
	return e.stats, ups
}

func (e *Experience) RecordMatch(r services.MatchResult) {
	e.Results = append(e.Results, r)
}

func (e *Experience) Stats() services.ExpStats { return e.stats }

// Stages serves one allowed-type table and an optional boss for every stage.
type Stages struct {
	Allowed []cfg.EnemyType
	BossDef *services.BossDescriptor
}

func (s *Stages) AllowedTypes(string) []cfg.EnemyType  { return s.Allowed }
func (s *Stages) Boss(string) *services.BossDescriptor { return s.BossDef }

// Recorder captures every hook invocation.
type Recorder struct {
	Scores    []int
	Combos    []int
	Lives     []int
	GameOvers int
	Exp       []services.ExpStats
	LevelUps  []services.LevelUp
	Clears    []services.MatchResult
}

func (r *Recorder) Hooks() services.Hooks {
	return services.Hooks{
		OnScoreChange: func(n int) { r.Scores = append(r.Scores, n) },
		OnComboChange: func(n int) { r.Combos = append(r.Combos, n) },
		OnLivesChange: func(n int) { r.Lives = append(r.Lives, n) },
		OnGameOver:    func() { r.GameOvers++ },
		OnExpChange:   func(s services.ExpStats) { r.Exp = append(r.Exp, s) },
		OnLevelUp: func(level int, msg string) {
			r.LevelUps = append(r.LevelUps, services.LevelUp{Level: level, Message: msg})
		},
		OnStageClear: func(res services.MatchResult) { r.Clears = append(r.Clears, res) },
	}
}
