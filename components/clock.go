package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. It only advances while the match updates, so
// cooldowns freeze during pause.
type ClockData struct {
	DT      float64 // seconds of the current tick
	Elapsed float64 // seconds of simulated run time
	Frame   int64
}

// Frames is DT expressed in reference frames.
func (c *ClockData) Frames(fps float64) float64 {
	return c.DT * fps
}

var Clock = donburi.NewComponentType[ClockData]()
