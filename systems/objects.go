package systems

import (
	"github.com/automoto/nightslash/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every broad-phase box to its entity's position.
func UpdateObjects(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		pos := components.Position.Get(e)
		obj.CenterOn(pos.X, pos.Y)
	})
}

// UpdateAnimations advances every animator by one tick.
func UpdateAnimations(w donburi.World) {
	dt := clockOf(w).DT
	components.Animation.Each(w, func(e *donburi.Entry) {
		if a := components.Animation.Get(e).Animator; a != nil {
			a.Update(dt)
		}
	})
}
