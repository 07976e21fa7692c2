// Package render draws a match. It only reads the world; all state changes
// happen in the engine's update.
package render

import (
	"image/color"
	"math"

	"github.com/automoto/nightslash/assets"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/engine"
	"github.com/automoto/nightslash/fonts"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// Resources are the loaded assets a frame is drawn with. Sprites may be nil, in
// which case every entity is drawn as a shape.
type Resources struct {
	Sprites *assets.SpriteLoader
	Trail   services.WeaponTrail
}

var (
	background = color.RGBA{R: 14, G: 10, B: 24, A: 255}
	ground     = color.RGBA{R: 28, G: 20, B: 40, A: 255}
	fuseColor  = color.RGBA{R: 255, G: 60, B: 30, A: 255}
	heartFill  = color.RGBA{R: 230, G: 50, B: 90, A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	drawOp = &ebiten.DrawImageOptions{}
)

// view is the per-frame drawing context.
type view struct {
	screen  *ebiten.Image
	world   donburi.World
	res     Resources
	snap    engine.Snapshot
	ox, oy  float64 // screen shake
	elapsed float64
}

func (v *view) pt(x, y float64) (float32, float32) {
	return float32(x + v.ox), float32(y + v.oy)
}

// Draw renders the whole frame: playfield, entities, HUD and overlays.
func Draw(screen *ebiten.Image, m *engine.Match, res Resources) {
	v := &view{
		screen: screen,
		world:  m.World(),
		res:    res,
		snap:   m.Snapshot(),
	}
	v.elapsed = v.snap.Elapsed
	if e, ok := components.ScreenShake.First(v.world); ok {
		shake := components.ScreenShake.Get(e)
		v.ox, v.oy = shake.Offset.X, shake.Offset.Y
	}

	screen.Fill(background)
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, h*0.85, w, h*0.15, ground, false)

	v.drawHearts()
	v.drawEnemies()
	v.drawPlayer()
	v.drawTrail()
	v.drawParticles()
	v.drawFloatingTexts()

	drawHUD(screen, v.snap)
	drawBossBar(screen, v.snap)
	drawOverlay(screen, v.snap)
}

func (v *view) drawEnemies() {
	tags.Enemy.Each(v.world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		pos := components.Position.Get(e)
		bob := math.Sin(v.elapsed*4+enemy.PhaseOffset) * 3
		x, y := pos.X, pos.Y+bob

		flash := 0.0
		if e.HasComponent(components.Flash) {
			flash = components.Flash.Get(e).Remaining / cfg.Boss.HitFlash
		}
		if v.drawSprite(e, x, y, enemy.Size, flash) {
			return
		}

		c := enemy.Color
		if flash > 0 {
			c = white
		}
		cx, cy := v.pt(x, y)
		vector.DrawFilledCircle(v.screen, cx, cy, float32(enemy.Size), c, true)
		if enemy.IsBomb() {
			fx, fy := v.pt(x+enemy.Size*0.5, y-enemy.Size*0.8)
			vector.DrawFilledCircle(v.screen, fx, fy, 5, fuseColor, true)
		}
	})
}

// drawSprite draws the current animation frame of e scaled to its size. It
// reports false when there is no frame to draw.
func (v *view) drawSprite(e *donburi.Entry, x, y, radius, flash float64) bool {
	if v.res.Sprites == nil {
		return false
	}
	anim := components.Animation.Get(e)
	if anim.Animator == nil {
		return false
	}
	cur := anim.Animator.Current()
	if cur == nil {
		return false
	}
	state := cfg.Idle
	if ms, ok := anim.Animator.(*components.MultiState); ok {
		state = ms.State
	}
	frame := v.res.Sprites.Frame(anim.Sprite, state, cur.Frame())
	if frame == nil {
		return false
	}

	size := float64(cfg.SpriteFrameSize)
	scale := radius * 2 / size
	cx, cy := v.pt(x, y)

	if flash > 0 && assets.FlashShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(-size/2, -size/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(cx), float64(cy))
		op.Images[0] = frame
		op.Uniforms = map[string]any{"Amount": float32(math.Min(flash, 1))}
		b := frame.Bounds()
		v.screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, op)
		return true
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-size/2, -size/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(float64(cx), float64(cy))
	v.screen.DrawImage(frame, drawOp)
	return true
}

func (v *view) drawPlayer() {
	e, ok := tags.Player.First(v.world)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	pos := components.Position.Get(e)

	// Blink while invincible.
	if player.Invincible(v.elapsed) && int(v.elapsed*10)%2 == 0 {
		return
	}
	r := cfg.Player.Radius
	if !v.drawSprite(e, pos.X, pos.Y, r, 0) {
		cx, cy := v.pt(pos.X, pos.Y)
		vector.DrawFilledCircle(v.screen, cx, cy, float32(r), cfg.Player.Color, true)
	}

	// Weapon pointing at the attack origin.
	reach := cfg.Combat.AttackReach
	x0, y0 := v.pt(pos.X, pos.Y-cfg.Combat.AttackLift)
	x1, y1 := v.pt(pos.X+math.Cos(player.Rotation)*reach, pos.Y+math.Sin(player.Rotation)*reach-cfg.Combat.AttackLift)
	vector.StrokeLine(v.screen, x0, y0, x1, y1, 3, v.res.Trail.Color, true)
}

func (v *view) drawHearts() {
	components.Heart.Each(v.world, func(e *donburi.Entry) {
		heart := components.Heart.Get(e)
		pos := components.Position.Get(e)
		// Fade out over the last second.
		alpha := math.Min(1, heart.Life)
		drawHeart(v.screen, pos.X+v.ox, pos.Y+v.oy, heart.Radius*0.6, withAlpha(heartFill, alpha))
	})
}

// drawHeart draws a heart from two lobes over a smaller point.
func drawHeart(screen *ebiten.Image, x, y, r float64, c color.Color) {
	fx, fy, fr := float32(x), float32(y), float32(r)
	vector.DrawFilledCircle(screen, fx-fr/2, fy-fr/3, fr/2+1, c, true)
	vector.DrawFilledCircle(screen, fx+fr/2, fy-fr/3, fr/2+1, c, true)
	vector.DrawFilledCircle(screen, fx, fy+fr/5, fr*0.6, c, true)
}

func (v *view) drawParticles() {
	components.Particle.Each(v.world, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		pos := components.Position.Get(e)
		x, y := v.pt(pos.X, pos.Y)
		s := float32(p.Size)
		vector.DrawFilledRect(v.screen, x-s/2, y-s/2, s, s, withAlpha(p.Color, p.Alpha()), false)
	})
}

func (v *view) drawFloatingTexts() {
	face := fonts.Bold.Get()
	rise := float64(cfg.Feedback.TextRise)
	components.FloatingText.Each(v.world, func(e *donburi.Entry) {
		t := components.FloatingText.Get(e)
		alpha := 1.0
		if rise > 0 {
			alpha = 1 - t.Offset/rise
		}
		bounds := text.BoundString(face, t.Text) //nolint:staticcheck // text/v1 matches the loaded faces
		x := t.Origin.X + v.ox - float64(bounds.Dx())/2
		y := t.Origin.Y + v.oy - t.Offset
		text.Draw(v.screen, t.Text, face, int(x), int(y), withAlpha(t.Color, alpha)) //nolint:staticcheck
	})
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
