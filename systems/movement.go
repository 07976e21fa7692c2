package systems

import (
	"math"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateMovement advances every enemy by its movement pattern. Bound guards orbit
// their boss instead.
func UpdateMovement(w donburi.World) {
	f := frames(w)
	dt := clockOf(w).DT
	if f <= 0 {
		return
	}

	// Guards follow their boss's new position, so they move last.
	var guards []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Guard) {
			guards = append(guards, e)
			return
		}
		enemy := components.Enemy.Get(e)
		pos := components.Position.Get(e)
		motion := components.Motion.Get(e)
		*pos = Move(enemy.Pattern, *pos, motion, enemy.Speed, f, dt)
	})
	for _, g := range guards {
		moveGuard(w, g, f)
	}
}

// Move applies one tick of a pattern. f is the tick length in reference frames
// and dt the same tick in seconds.
func Move(p cfg.Pattern, pos dmath.Vec2, m *components.MotionData, speed, f, dt float64) dmath.Vec2 {
	switch p {
	case cfg.PatternWave:
		pos.X -= speed * f
		m.Phase += cfg.Movement.WaveFrequency * f
		pos.Y = m.StartY + math.Sin(m.Phase)*cfg.Movement.WaveAmplitude
	case cfg.PatternSine:
		pos.X -= speed * f
		m.Phase += 2 * cfg.Movement.WaveFrequency * f
		pos.Y = m.StartY + math.Sin(m.Phase)*cfg.Movement.SineAmplitude
	case cfg.PatternDash:
		pos.X -= dashStep(m, speed, f, dt)
	case cfg.PatternDive:
		pos.X -= speed * f
		pos.Y = diveY(m, pos.X)
	default:
		pos.X -= speed * f
	}
	return pos
}

// dashStep alternates a slow glide and a burst, each ending when its timer runs out.
func dashStep(m *components.MotionData, speed, f, dt float64) float64 {
	if m.Bursting {
		m.BurstTimer -= dt
		if m.BurstTimer <= 0 {
			m.Bursting = false
			m.SlowTimer = cfg.Movement.DashSlowTime
		}
		return speed * cfg.Movement.DashBurstBoost * f
	}
	m.SlowTimer -= dt
	if m.SlowTimer <= 0 {
		m.Bursting = true
		m.BurstTimer = cfg.Movement.DashBurstTime
	}
	return speed * cfg.Movement.DashSlowFactor * f
}

// diveY climbs for the first part of the crossing and then descends, driven by
// how far across the field the enemy has travelled.
func diveY(m *components.MotionData, x float64) float64 {
	span := m.StartX
	if span <= 0 {
		return m.StartY
	}
	progress := (m.StartX - x) / span
	progress = math.Max(0, math.Min(1, progress))

	rise := cfg.Movement.DiveRise
	peak := m.StartY - cfg.Movement.DiveHeight
	if progress < rise {
		return m.StartY - cfg.Movement.DiveHeight*(progress/rise)
	}
	floor := math.Min(m.StartY+2*cfg.Movement.DiveHeight, float64(cfg.C.Height)*cfg.Chart.SpawnMaxY)
	return peak + (floor-peak)*((progress-rise)/(1-rise))
}

func moveGuard(w donburi.World, e *donburi.Entry, f float64) {
	guard := components.Guard.Get(e)
	pos := components.Position.Get(e)

	if guard.Bound {
		if boss, ok := liveBoss(w, guard.Boss); ok {
			center := components.Position.Get(boss)
			guard.Angle += cfg.Movement.GuardStep * f
			pos.X = center.X + guard.Radius*math.Cos(guard.Angle)
			pos.Y = center.Y + guard.Radius*math.Sin(guard.Angle)
			return
		}
		guard.Bound = false
	}
	pos.X -= components.Enemy.Get(e).Speed * f
}

func liveBoss(w donburi.World, id donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(id) {
		return nil, false
	}
	e := w.Entry(id)
	if !e.HasComponent(components.Boss) {
		return nil, false
	}
	return e, true
}
