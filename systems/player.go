package systems

import (
	"math"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer eases the player toward its target, plays out a lunge and expires
// timed animation states.
func UpdatePlayer(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	dt := clockOf(w).DT
	player := components.Player.Get(e)
	pos := components.Position.Get(e)

	if player.Lunge != nil {
		t, done := player.Lunge.Update(float32(dt))
		pos.X = player.LungeFrom.X + (player.LungeTo.X-player.LungeFrom.X)*float64(t)
		pos.Y = player.LungeFrom.Y + (player.LungeTo.Y-player.LungeFrom.Y)*float64(t)
		if done {
			player.Lunge = nil
			if player.State == cfg.Dashing {
				player.SetState(cfg.Idle, 0)
			}
		}
	} else {
		// Exponential smoothing, frame-rate independent.
		k := 1 - math.Pow(1-cfg.Player.Smoothing, frames(w))
		pos.X += (player.Target.X - pos.X) * k
		pos.Y += (player.Target.Y - pos.Y) * k
	}

	if player.StateTimer > 0 {
		player.StateTimer -= dt
		if player.StateTimer <= 0 {
			player.SetState(cfg.Idle, 0)
		}
	}
	components.Animation.Get(e).Animator.SetState(player.State)
}

// AimAt turns the player toward (x, y) and makes it the new movement target.
func AimAt(w donburi.World, x, y float64) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	pos := components.Position.Get(e)

	player.Rotation = clampRotation(math.Atan2(y-pos.Y, x-pos.X))
	player.Target = clampToField(x, y)
}

func clampRotation(r float64) float64 {
	limit := cfg.Player.MaxRotation
	// Pointing behind the player mirrors onto the facing arc.
	if r > math.Pi/2 {
		r = math.Pi - r
	} else if r < -math.Pi/2 {
		r = -math.Pi - r
	}
	return math.Max(-limit, math.Min(limit, r))
}

func clampToField(x, y float64) dmath.Vec2 {
	r := cfg.Player.Radius
	maxX := float64(cfg.C.Width) / 2
	x = math.Max(r, math.Min(maxX, x))
	y = math.Max(r, math.Min(float64(cfg.C.Height)-r, y))
	return dmath.NewVec2(x, y)
}

// AttackOrigin is the hit-test anchor: a fixed reach along the facing direction,
// lifted above the player's center.
func AttackOrigin(w donburi.World) (dmath.Vec2, bool) {
	e, ok := playerEntry(w)
	if !ok {
		return dmath.Vec2{}, false
	}
	player := components.Player.Get(e)
	pos := components.Position.Get(e)
	return originFrom(*pos, player.Rotation), true
}

func originFrom(pos dmath.Vec2, rotation float64) dmath.Vec2 {
	return dmath.NewVec2(
		pos.X+math.Cos(rotation)*cfg.Combat.AttackReach,
		pos.Y+math.Sin(rotation)*cfg.Combat.AttackReach-cfg.Combat.AttackLift,
	)
}

// startLunge dashes the player a short way toward target.
func startLunge(w donburi.World, target dmath.Vec2) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	pos := components.Position.Get(e)

	dx, dy := target.X-pos.X, target.Y-pos.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	step := math.Min(cfg.Combat.LungeDistance, dist)
	to := clampToField(pos.X+dx/dist*step, pos.Y+dy/dist*step)

	player.LungeFrom = *pos
	player.LungeTo = to
	player.Target = to
	player.Lunge = gween.New(0, 1, cfg.Combat.LungeDuration, ease.OutCubic)
	player.SetState(cfg.Dashing, 0)
}
