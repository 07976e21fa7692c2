package components

import (
	"math/rand"

	"github.com/automoto/nightslash/services"
	"github.com/yohamta/donburi"
)

// ServicesData holds the collaborators injected into the match.
type ServicesData struct {
	Audio      services.AudioClock
	Stages     services.StageCatalog
	Equipment  services.Equipment
	Experience services.Experience
	Hooks      services.Hooks
	Rand       *rand.Rand
}

var Services = donburi.NewComponentType[ServicesData]()
