package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/nightslash/archetypes"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateParticle spawns one spark.
func CreateParticle(w donburi.World, pos, vel dmath.Vec2, life, size float64, c color.RGBA) *donburi.Entry {
	p := archetypes.Particle.Spawn(w)
	components.Position.SetValue(p, pos)
	components.Particle.SetValue(p, components.ParticleData{
		Velocity: vel,
		Life:     life,
		MaxLife:  life,
		Size:     size,
		Color:    c,
	})
	return p
}

// CreateBurst spawns count sparks flying out from pos in random directions.
func CreateBurst(w donburi.World, rng *rand.Rand, pos dmath.Vec2, count int, c color.RGBA) {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.Feedback.ParticleSpeed * (0.4 + 0.6*rng.Float64())
		vel := dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed)
		life := cfg.Feedback.ParticleLife * (0.6 + 0.4*rng.Float64())
		size := cfg.Feedback.ParticleSize * (0.5 + rng.Float64())
		CreateParticle(w, pos, vel, life, size, c)
	}
}

// CreateFloatingText spawns a label that rises and fades out.
func CreateFloatingText(w donburi.World, text string, pos dmath.Vec2, c color.RGBA) *donburi.Entry {
	t := archetypes.FloatingText.Spawn(w)
	components.FloatingText.SetValue(t, components.FloatingTextData{
		Text:   text,
		Color:  c,
		Origin: pos,
		Rise:   gween.New(0, cfg.Feedback.TextRise, cfg.Feedback.TextLife, ease.OutCubic),
	})
	return t
}

// CreateHeart drops a life pickup at pos.
func CreateHeart(w donburi.World, pos dmath.Vec2) *donburi.Entry {
	h := archetypes.Heart.Spawn(w)
	components.Position.SetValue(h, pos)
	components.Heart.SetValue(h, components.HeartData{
		Heal:   cfg.Feedback.HeartHealAmount,
		Radius: cfg.Feedback.HeartRadius,
		Life:   cfg.Feedback.HeartLife,
		Speed:  cfg.Feedback.HeartSpeed,
	})
	attachObject(w, h, pos.X, pos.Y, cfg.Feedback.HeartRadius, tags.ResolvHeart)
	return h
}

// TriggerScreenShake starts a shake unless a stronger one is already running.
func TriggerScreenShake(w donburi.World, intensity float64, duration float32) {
	e, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(e)
	if shake.Decay != nil && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Decay = gween.New(float32(intensity), 0, duration, ease.OutQuad)
}
