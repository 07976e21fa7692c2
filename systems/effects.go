package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	bombColor  = color.RGBA{R: 255, G: 90, B: 40, A: 255}
	heartColor = color.RGBA{R: 255, G: 80, B: 120, A: 255}
	comboColor = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	scoreColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// SubscribeFeedback turns gameplay events into particles, labels and shake. It
// must be called once per world.
func SubscribeFeedback(w donburi.World) {
	HitEvent.Subscribe(w, onHit)
	ComboMilestoneEvent.Subscribe(w, onComboMilestone)
	LevelUpEvent.Subscribe(w, onLevelUp)
}

func onHit(w donburi.World, h Hit) {
	rng := servicesOf(w).Rand
	switch h.Kind {
	case HitKill, HitBossKill:
		fb := cfg.Feedback
		n := fb.HitParticlesMin + rng.Intn(fb.HitParticlesMax-fb.HitParticlesMin+1)
		if h.Kind == HitBossKill {
			n *= 2
		}
		factory.CreateBurst(w, rng, h.Pos, n, h.Color)
		factory.CreateFloatingText(w, fmt.Sprintf("+%d", h.Points), h.Pos, scoreColor)
		if h.Kind == HitBossKill {
			factory.TriggerScreenShake(w, fb.ShakeMax, fb.ShakeDuration)
		}
	case HitBoss:
		factory.CreateBurst(w, rng, h.Pos, cfg.Feedback.HitParticlesMin/2, h.Color)
	case HitBomb:
		factory.CreateBurst(w, rng, h.Pos, cfg.Feedback.HitParticlesMax, bombColor)
	case HitHeart:
		factory.CreateBurst(w, rng, h.Pos, cfg.Feedback.HitParticlesMin/2, heartColor)
		factory.CreateFloatingText(w, "+1", h.Pos, heartColor)
	}
}

// MilestoneShake is the screen shake intensity for a combo milestone.
func MilestoneShake(combo int) float64 {
	fb := cfg.Feedback
	return math.Min(fb.ShakeBase+float64(combo)*fb.ShakePerCombo, fb.ShakeMax)
}

// MilestoneParticles is the burst size for a combo milestone.
func MilestoneParticles(combo int) int {
	fb := cfg.Feedback
	n := fb.ComboParticleBase + fb.ComboParticleStep*combo
	if n > fb.ComboParticleMax {
		return fb.ComboParticleMax
	}
	return n
}

func onComboMilestone(w donburi.World, m ComboMilestone) {
	factory.CreateBurst(w, servicesOf(w).Rand, m.Pos, MilestoneParticles(m.Combo), comboColor)
	above := dmath.NewVec2(m.Pos.X, m.Pos.Y-30)
	factory.CreateFloatingText(w, fmt.Sprintf("COMBO x%d", m.Combo), above, comboColor)
	factory.TriggerScreenShake(w, MilestoneShake(m.Combo), cfg.Feedback.ShakeDuration)
}

func onLevelUp(w donburi.World, l LevelUp) {
	above := dmath.NewVec2(l.Pos.X, l.Pos.Y-60)
	factory.CreateFloatingText(w, fmt.Sprintf("LEVEL %d!", l.Level), above, cfg.Feedback.LevelUpTextColor)
}

// UpdateFeedback dispatches queued events and advances every cosmetic effect.
func UpdateFeedback(w donburi.World) {
	events.ProcessAllEvents(w)

	updateParticles(w)
	updateFloatingTexts(w)
	updateScreenShake(w)
	updateTrail(w)
	updateFlashEffects(w)
}

func updateParticles(w donburi.World) {
	f := frames(w)
	dt := clockOf(w).DT

	var dead []*donburi.Entry
	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		pos := components.Position.Get(e)
		p.Velocity.Y += cfg.Feedback.ParticleGravity * f
		pos.X += p.Velocity.X * f
		pos.Y += p.Velocity.Y * f
		p.Life -= dt
		if p.Life <= 0 {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		w.Remove(e.Entity())
	}
}

func updateFloatingTexts(w donburi.World) {
	dt := float32(clockOf(w).DT)

	var dead []*donburi.Entry
	components.FloatingText.Each(w, func(e *donburi.Entry) {
		t := components.FloatingText.Get(e)
		offset, done := t.Rise.Update(dt)
		t.Offset = float64(offset)
		if done {
			t.Done = true
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		w.Remove(e.Entity())
	}
}

func updateScreenShake(w donburi.World) {
	e, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(e)
	if shake.Decay == nil {
		return
	}
	v, done := shake.Decay.Update(float32(clockOf(w).DT))
	if done {
		shake.Decay = nil
		shake.Intensity = 0
		shake.Offset = dmath.Vec2{}
		return
	}
	shake.Intensity = float64(v)
	rng := servicesOf(w).Rand
	shake.Offset = dmath.NewVec2(
		(rng.Float64()*2-1)*shake.Intensity,
		(rng.Float64()*2-1)*shake.Intensity,
	)
}

func updateTrail(w donburi.World) {
	e, ok := components.Trail.First(w)
	if !ok {
		return
	}
	trail := components.Trail.Get(e)
	cutoff := clockOf(w).Elapsed - cfg.Feedback.TrailLife
	keep := trail.Points[:0]
	for _, p := range trail.Points {
		if p.At >= cutoff {
			keep = append(keep, p)
		}
	}
	trail.Points = keep
}

func updateFlashEffects(w donburi.World) {
	dt := clockOf(w).DT
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining = math.Max(0, flash.Remaining-dt)
		}
	})
}
