package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/nightslash/chart"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/services/servicestest"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60.0

type fixture struct {
	w      donburi.World
	clock  *servicestest.Clock
	rec    *servicestest.Recorder
	exp    *servicestest.Experience
	stages *servicestest.Stages
}

func newFixture(t *testing.T, c *chart.Chart, boss *services.BossDescriptor) *fixture {
	t.Helper()
	f := &fixture{
		w:      donburi.NewWorld(),
		clock:  servicestest.NewClock(120),
		rec:    &servicestest.Recorder{},
		exp:    &servicestest.Experience{},
		stages: &servicestest.Stages{Allowed: []cfg.EnemyType{cfg.BatBlue}, BossDef: boss},
	}
	factory.CreateSpace(f.w)
	factory.CreateMatch(f.w, factory.MatchSetup{
		Stage:      "test",
		Difficulty: "normal",
		Chart:      c,
		Services: components.ServicesData{
			Audio:      f.clock,
			Stages:     f.stages,
			Equipment:  servicestest.NewEquipment(3),
			Experience: f.exp,
			Hooks:      f.rec.Hooks(),
			Rand:       rand.New(rand.NewSource(7)),
		},
	})
	factory.CreatePlayer(f.w)
	SubscribeFeedback(f.w)
	return f
}

// step runs one full tick, advancing the music clock first.
func (f *fixture) step(dt float64) {
	f.clock.Advance(dt)
	SetTick(f.w, dt)
	for _, s := range Pipeline() {
		s(f.w)
	}
}

// advance moves the simulation clock without running any system.
func (f *fixture) advance(seconds float64) {
	SetTick(f.w, seconds)
}

func (f *fixture) match() *components.MatchData {
	e, _ := matchEntry(f.w)
	return components.Match.Get(e)
}

func (f *fixture) lives() *components.LivesData {
	e, _ := matchEntry(f.w)
	return components.Lives.Get(e)
}

// swipeTarget is a pointer position straight ahead of the player; swiping there
// keeps the rotation at zero so the attack origin is predictable.
func (f *fixture) swipeTarget() (float64, float64) {
	p, _ := playerEntry(f.w)
	pos := components.Position.Get(p)
	return pos.X + 200, pos.Y
}

// origin is where a swipe at swipeTarget lands.
func (f *fixture) origin() dmath.Vec2 {
	p, _ := playerEntry(f.w)
	return originFrom(*components.Position.Get(p), 0)
}

// spawnAtOrigin places an enemy of type t on the attack origin.
func (f *fixture) spawnAtOrigin(t cfg.EnemyType) *donburi.Entry {
	o := f.origin()
	return factory.CreateEnemy(f.w, t, o.X, o.Y, 1)
}

func (f *fixture) swipe() {
	x, y := f.swipeTarget()
	HandleSwipe(f.w, x, y)
}
