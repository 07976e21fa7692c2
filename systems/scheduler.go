package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/nightslash/chart"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/yohamta/donburi"
)

func admissionWindow() chart.Window {
	return chart.Window{
		Lead:    cfg.Chart.LeadTime,
		MaxRun:  cfg.Chart.MaxPerTick,
		MaxSpan: cfg.Chart.MaxSpan,
	}
}

// ChartMode reports whether spawns follow the chart. Without a chart or a
// playable track the fallback timer drives spawning.
func ChartMode(sched *components.SchedulerData, audio services.AudioClock) bool {
	return sched.Chart != nil && audio.Duration() > 0
}

// UpdateScheduler queues the spawns due this tick.
func UpdateScheduler(w donburi.World) {
	e, ok := matchEntry(w)
	if !ok || components.Match.Get(e).State.Terminal() {
		return
	}
	sched := components.Scheduler.Get(e)
	svc := servicesOf(w)

	if ChartMode(sched, svc.Audio) {
		// Sample the music clock directly; tick time and audio time drift apart.
		now := svc.Audio.CurrentTime()
		if now < cfg.Chart.InitialDelay {
			return
		}
		due, cursor := chart.Admit(sched.Chart.Notes, sched.Cursor, now, admissionWindow())
		sched.Cursor = cursor
		for _, n := range due {
			sched.Pending = append(sched.Pending, noteRequest(n, sched.Allowed, svc.Rand))
		}
		return
	}

	density := sched.Difficulty.DensityMultiplier
	if density <= 0 {
		density = 1
	}
	interval := cfg.Chart.FallbackSeconds / density
	sched.FallbackTimer += clockOf(w).DT
	for n := 0; sched.FallbackTimer >= interval && n < cfg.Chart.MaxPerTick; n++ {
		sched.FallbackTimer -= interval
		sched.Pending = append(sched.Pending, components.SpawnRequest{Type: pickType(sched.Allowed, svc.Rand)})
	}
}

// noteRequest turns a note into a spawn. The note only contributes timing and
// position; the enemy type is drawn from the stage table.
func noteRequest(n chart.Note, allowed []cfg.EnemyType, rng *rand.Rand) components.SpawnRequest {
	req := components.SpawnRequest{Type: pickType(allowed, rng)}
	if n.Y != nil && !math.IsNaN(*n.Y) {
		req.Y = *n.Y
		req.HasY = true
	}
	return req
}

func pickType(allowed []cfg.EnemyType, rng *rand.Rand) cfg.EnemyType {
	if len(allowed) == 0 {
		return cfg.DefaultEnemyType
	}
	return allowed[rng.Intn(len(allowed))]
}

// UpdateSpawner instantiates queued spawns at the right edge of the field.
func UpdateSpawner(w donburi.World) {
	e, ok := matchEntry(w)
	if !ok {
		return
	}
	sched := components.Scheduler.Get(e)
	if len(sched.Pending) == 0 {
		return
	}
	pending := sched.Pending
	sched.Pending = nil
	speed := sched.Difficulty.SpeedMultiplier
	rng := servicesOf(w).Rand

	for _, req := range pending {
		size := cfg.EnemyFor(req.Type).Size
		y := spawnY(req, size, rng)
		SpawnEnemy(w, req.Type, y, speed)
	}
}

// SpawnEnemy creates an enemy entering from the right edge at height y.
func SpawnEnemy(w donburi.World, t cfg.EnemyType, y, speedMultiplier float64) *donburi.Entry {
	return factory.CreateEnemy(w, t, factory.SpawnX(cfg.EnemyFor(t).Size), y, speedMultiplier)
}

func spawnY(req components.SpawnRequest, size float64, rng *rand.Rand) float64 {
	h := float64(cfg.C.Height)
	if req.HasY {
		return math.Max(size, math.Min(h-size, req.Y))
	}
	lo, hi := h*cfg.Chart.SpawnMinY, h*cfg.Chart.SpawnMaxY
	return lo + rng.Float64()*(hi-lo)
}
