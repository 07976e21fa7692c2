// Package engine drives one match: it owns the donburi world, runs the systems in
// order on every tick and exposes the input, pause and restart controls.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/automoto/nightslash/chart"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/systems"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/yohamta/donburi"
)

// Options configures a match. Nil collaborators are replaced by no-op defaults.
type Options struct {
	Stage      string
	Difficulty string
	Chart      *chart.Chart // nil runs the fallback spawn timer

	Audio      services.AudioClock
	Stages     services.StageCatalog
	Equipment  services.Equipment
	Experience services.Experience
	Hooks      services.Hooks

	Seed int64
}

func (o Options) withDefaults() Options {
	if o.Difficulty == "" {
		o.Difficulty = cfg.Default
	}
	if o.Audio == nil {
		o.Audio = services.SilentClock{}
	}
	if o.Stages == nil {
		o.Stages = services.DefaultStages{}
	}
	if o.Equipment == nil {
		o.Equipment = services.BareHands{}
	}
	if o.Experience == nil {
		o.Experience = services.NoExperience{}
	}
	return o
}

// Match is a running stage.
type Match struct {
	opts    Options
	world   donburi.World
	systems []systems.System

	paused  bool
	started bool
}

// New validates the chart and builds the first world.
func New(opts Options) (*Match, error) {
	opts = opts.withDefaults()
	if opts.Chart != nil {
		if err := opts.Chart.Validate(); err != nil {
			return nil, fmt.Errorf("invalid chart for stage %q: %w", opts.Stage, err)
		}
	}
	m := &Match{
		opts:    opts,
		systems: systems.Pipeline(),
	}
	m.reset()
	return m, nil
}

func (m *Match) reset() {
	w := donburi.NewWorld()
	factory.CreateSpace(w)
	factory.CreateMatch(w, factory.MatchSetup{
		Stage:      m.opts.Stage,
		Difficulty: m.opts.Difficulty,
		Chart:      m.opts.Chart,
		Services: components.ServicesData{
			Audio:      m.opts.Audio,
			Stages:     m.opts.Stages,
			Equipment:  m.opts.Equipment,
			Experience: m.opts.Experience,
			Hooks:      m.opts.Hooks,
			Rand:       rand.New(rand.NewSource(m.opts.Seed)),
		},
	})
	factory.CreatePlayer(w)
	systems.SubscribeFeedback(w)

	m.world = w
	m.paused = false
	m.started = false
}

// Update advances the simulation by dt seconds. It does nothing while paused or
// after the match has ended.
func (m *Match) Update(dt float64) {
	if m.paused || systems.Terminal(m.world) {
		return
	}
	if !m.started {
		m.started = true
		m.opts.Audio.Play()
	}
	if dt <= 0 {
		return
	}
	if dt > cfg.Sim.MaxDT {
		dt = cfg.Sim.MaxDT
	}

	systems.SetTick(m.world, dt)
	for _, s := range m.systems {
		s(m.world)
	}
	m.afterStep()
}

// HandleSwipe resolves a pointer sample in playfield coordinates.
func (m *Match) HandleSwipe(x, y float64) {
	if m.paused {
		return
	}
	systems.HandleSwipe(m.world, x, y)
	m.afterStep()
}

// afterStep stops the music once the player has run out of lives.
func (m *Match) afterStep() {
	if m.state() == cfg.MatchStateGameOver && m.started {
		m.started = false
		m.opts.Audio.Stop()
	}
}

func (m *Match) state() cfg.MatchStateID {
	e, ok := components.Match.First(m.world)
	if !ok {
		return cfg.MatchStateGameOver
	}
	return components.Match.Get(e).State
}

// Pause freezes the simulation and the music.
func (m *Match) Pause() {
	if m.paused || systems.Terminal(m.world) {
		return
	}
	m.paused = true
	if m.started {
		m.opts.Audio.Pause()
	}
}

// Resume continues from where Pause left off.
func (m *Match) Resume() {
	if !m.paused {
		return
	}
	m.paused = false
	if m.started {
		m.opts.Audio.Play()
	}
}

func (m *Match) Paused() bool { return m.paused }

// Restart discards the world and starts the stage over from the beginning of the
// song. Collaborators and hooks are kept.
func (m *Match) Restart() {
	m.opts.Audio.Stop()
	m.reset()
}

// AttachChart swaps the chart of the running match. Notes at or before the
// current music position are skipped. A nil chart switches to the fallback timer.
func (m *Match) AttachChart(c *chart.Chart) {
	m.opts.Chart = c
	e, ok := components.Match.First(m.world)
	if !ok {
		return
	}
	sched := components.Scheduler.Get(e)
	sched.Chart = c
	sched.Cursor = 0
	sched.Pending = nil
	if c != nil {
		sched.Cursor = c.IndexAfter(m.opts.Audio.CurrentTime())
	}
}

// World exposes the entity set for rendering. Callers must not modify it.
func (m *Match) World() donburi.World { return m.world }

// Options returns the options the match was built with, defaults applied.
func (m *Match) Options() Options { return m.opts }
