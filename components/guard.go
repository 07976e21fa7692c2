package components

import "github.com/yohamta/donburi"

// GuardData binds a minion to the boss it orbits.
type GuardData struct {
	Boss   donburi.Entity
	Angle  float64
	Radius float64
	Bound  bool // false once the boss is gone
}

var Guard = donburi.NewComponentType[GuardData]()
