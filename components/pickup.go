package components

import "github.com/yohamta/donburi"

// HeartData is a life-restoring pickup dropped on combo milestones.
type HeartData struct {
	Heal   int
	Radius float64
	Life   float64 // seconds left before it vanishes
	Speed  float64 // pixels per reference frame, leftwards
}

var Heart = donburi.NewComponentType[HeartData]()
