package systems

import (
	"github.com/automoto/nightslash/components"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/automoto/nightslash/tags"
	"github.com/yohamta/donburi"
)

// UpdateRegistry removes enemies that crossed the left edge, charging a life for
// every escape that is not a bomb, and expires pickups.
func UpdateRegistry(w donburi.World) {
	var escaped []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		if pos.X < -components.Enemy.Get(e).Size {
			escaped = append(escaped, e)
		}
	})

	for _, e := range escaped {
		if !e.Valid() {
			continue
		}
		bomb := components.Enemy.Get(e).IsBomb()
		factory.Destroy(w, e)
		if !bomb {
			RequestLifeLoss(w, DamageEscape)
		}
	}

	updateHearts(w)
}

// updateHearts drifts pickups left and drops the ones that ran out of time or
// left the field.
func updateHearts(w donburi.World) {
	f := frames(w)
	dt := clockOf(w).DT

	var expired []*donburi.Entry
	components.Heart.Each(w, func(e *donburi.Entry) {
		heart := components.Heart.Get(e)
		pos := components.Position.Get(e)
		pos.X -= heart.Speed * f
		heart.Life -= dt
		if heart.Life <= 0 || pos.X < -heart.Radius {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		factory.Destroy(w, e)
	}
}
