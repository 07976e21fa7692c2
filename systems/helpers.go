package systems

import (
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/tags"
	"github.com/yohamta/donburi"
)

// System is one step of the per-tick update.
type System func(w donburi.World)

func matchEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Match.First(w)
}

func servicesOf(w donburi.World) *components.ServicesData {
	e, ok := components.Services.First(w)
	if !ok {
		return nil
	}
	return components.Services.Get(e)
}

func clockOf(w donburi.World) *components.ClockData {
	e, ok := components.Clock.First(w)
	if !ok {
		return &components.ClockData{}
	}
	return components.Clock.Get(e)
}

func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// Terminal reports whether the match has ended.
func Terminal(w donburi.World) bool {
	e, ok := matchEntry(w)
	if !ok {
		return true
	}
	return components.Match.Get(e).State.Terminal()
}

// frames converts the current tick into reference frames.
func frames(w donburi.World) float64 {
	return clockOf(w).Frames(cfg.Sim.ReferenceFPS)
}

// SetTick stores dt for this tick and advances the simulation clock.
func SetTick(w donburi.World, dt float64) {
	e, ok := components.Clock.First(w)
	if !ok {
		return
	}
	c := components.Clock.Get(e)
	c.DT = dt
	c.Elapsed += dt
	c.Frame++
}

func countEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// Pipeline returns the per-tick system order. SetTick runs before it.
func Pipeline() []System {
	return []System{
		UpdateScheduler,
		UpdateBossDirector,
		UpdateSpawner,
		UpdatePlayer,
		UpdateMovement,
		UpdateEnemyAI,
		UpdateAnimations,
		UpdateObjects,
		UpdateRegistry,
		UpdateFeedback,
		UpdateMatchEnd,
	}
}
