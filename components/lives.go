package components

import "github.com/yohamta/donburi"

// LivesData holds the life counter and the shared damage gate.
type LivesData struct {
	Lives    int
	MaxLives int

	LastLossAt float64 // clock time of the last accepted loss
	HasLost    bool
}

var Lives = donburi.NewComponentType[LivesData]()

// SinceLastLoss returns seconds since the last accepted loss, or false if none.
func (l *LivesData) SinceLastLoss(now float64) (float64, bool) {
	if !l.HasLost {
		return 0, false
	}
	return now - l.LastLossAt, true
}
