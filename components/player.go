package components

import (
	cfg "github.com/automoto/nightslash/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Target   dmath.Vec2 // smoothing target
	Rotation float64    // radians, clamped to the facing arc

	InvincibleUntil float64 // clock time, cosmetic only

	State      cfg.StateID
	StateTimer float64 // seconds left in a timed state

	Lunge     *gween.Tween // 0..1 progress of the dash
	LungeFrom dmath.Vec2
	LungeTo   dmath.Vec2
}

var Player = donburi.NewComponentType[PlayerData]()

// SetState switches to a timed state. A zero duration holds until replaced.
func (p *PlayerData) SetState(s cfg.StateID, duration float64) {
	p.State = s
	p.StateTimer = duration
}

// Invincible reports whether the blink window is open at now.
func (p *PlayerData) Invincible(now float64) bool {
	return now < p.InvincibleUntil
}
