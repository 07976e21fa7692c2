package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ParticleData is one cosmetic spark.
type ParticleData struct {
	Velocity dmath.Vec2 // pixels per reference frame
	Life     float64    // seconds left
	MaxLife  float64
	Size     float64
	Color    color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()

// Alpha fades the particle out with its remaining life.
func (p *ParticleData) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	return a
}

// FloatingTextData is a label that rises from Origin and fades.
type FloatingTextData struct {
	Text   string
	Color  color.RGBA
	Origin dmath.Vec2
	Rise   *gween.Tween
	Offset float64 // current rise in pixels
	Done   bool
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()

// ScreenShakeData is a singleton shake whose intensity decays through a tween.
type ScreenShakeData struct {
	Intensity float64 // current max offset in pixels
	Decay     *gween.Tween
	Offset    dmath.Vec2
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints an enemy after a non-lethal hit
type FlashData struct {
	Remaining float64 // seconds
}

var Flash = donburi.NewComponentType[FlashData]()

// TrailPoint is one sampled swipe position.
type TrailPoint struct {
	X, Y float64
	At   float64 // clock time
}

// TrailData keeps the recent swipe for the weapon trail.
type TrailData struct {
	Points []TrailPoint
}

var Trail = donburi.NewComponentType[TrailData]()
