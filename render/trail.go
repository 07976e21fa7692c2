package render

import (
	"math"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// segment is one stroke of the weapon trail in playfield coordinates.
type segment struct {
	x0, y0, x1, y1 float64
	width          float64
	alpha          float64
}

// trailSegments turns the recent swipe samples into strokes for the equipped
// weapon's trail shape. Older samples are thinner and more transparent.
func trailSegments(points []components.TrailPoint, now float64, t services.WeaponTrail) []segment {
	if len(points) < 2 {
		return nil
	}
	life := cfg.Feedback.TrailLife
	width := t.Width
	if width <= 0 {
		width = 2
	}
	switch t.Shape {
	case services.TrailThick:
		width *= 2
	case services.TrailUltraThick:
		width *= 3.5
	}

	var out []segment
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		fade := 1 - (now-b.At)/life
		if fade <= 0 {
			continue
		}
		progress := float64(i) / float64(len(points)-1)
		seg := segment{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, width: width, alpha: fade}

		switch t.Shape {
		case services.TrailDual:
			nx, ny := normal(a, b, width*1.5)
			out = append(out,
				segment{a.X + nx, a.Y + ny, b.X + nx, b.Y + ny, width * 0.7, fade},
				segment{a.X - nx, a.Y - ny, b.X - nx, b.Y - ny, width * 0.7, fade},
			)
			continue
		case services.TrailWave:
			nx, ny := normal(a, b, 1)
			w0 := math.Sin(float64(i-1)*1.3) * width * 2
			w1 := math.Sin(float64(i)*1.3) * width * 2
			seg.x0, seg.y0 = a.X+nx*w0, a.Y+ny*w0
			seg.x1, seg.y1 = b.X+nx*w1, b.Y+ny*w1
		case services.TrailArc:
			seg.width = width * (0.3 + 0.7*progress)
		}
		out = append(out, seg)
	}
	return out
}

// normal is the unit perpendicular of a→b scaled by length.
func normal(a, b components.TrailPoint, length float64) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0
	}
	return -dy / d * length, dx / d * length
}

func (v *view) drawTrail() {
	e, ok := components.Trail.First(v.world)
	if !ok {
		return
	}
	trail := components.Trail.Get(e)
	for _, s := range trailSegments(trail.Points, v.elapsed, v.res.Trail) {
		x0, y0 := v.pt(s.x0, s.y0)
		x1, y1 := v.pt(s.x1, s.y1)
		vector.StrokeLine(v.screen, x0, y0, x1, y1, float32(s.width), withAlpha(v.res.Trail.Color, s.alpha), true)
	}
}
