package systems

import (
	"image/color"

	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// HitKind classifies a resolved swipe hit.
type HitKind int

const (
	HitKill HitKind = iota
	HitBomb
	HitBoss
	HitBossKill
	HitHeart
)

// Hit is published for every resolved swipe hit.
type Hit struct {
	Kind   HitKind
	Pos    dmath.Vec2
	Color  color.RGBA
	Points int
}

// ComboMilestone is published when the combo reaches a multiple of five.
type ComboMilestone struct {
	Pos   dmath.Vec2
	Combo int
}

// LevelUp is published for each level gained from a kill.
type LevelUp struct {
	Pos     dmath.Vec2
	Level   int
	Message string
}

// LifeLost is published after an accepted life loss.
type LifeLost struct {
	Lives int
}

var (
	HitEvent            = events.NewEventType[Hit]()
	ComboMilestoneEvent = events.NewEventType[ComboMilestone]()
	LevelUpEvent        = events.NewEventType[LevelUp]()
	LifeLostEvent       = events.NewEventType[LifeLost]()
)
