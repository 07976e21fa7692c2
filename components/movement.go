package components

import "github.com/yohamta/donburi"

// MotionData is per-pattern movement state.
type MotionData struct {
	StartX, StartY float64
	Phase          float64 // wave and sine angle

	// dash
	Bursting   bool
	SlowTimer  float64
	BurstTimer float64
}

var Motion = donburi.NewComponentType[MotionData]()
