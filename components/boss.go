package components

import (
	"github.com/automoto/nightslash/services"
	"github.com/yohamta/donburi"
)

// BossData is attached to the boss entity.
type BossData struct {
	Descriptor *services.BossDescriptor
	Health     int
	MaxHealth  int
	Guards     []donburi.Entity
}

var Boss = donburi.NewComponentType[BossData]()

// BossDirectorData is the per-match boss encounter state.
type BossDirectorData struct {
	Descriptor *services.BossDescriptor
	Spawned    bool // one-shot latch
	Boss       donburi.Entity
	Defeated   bool
}

var BossDirector = donburi.NewComponentType[BossDirectorData]()
