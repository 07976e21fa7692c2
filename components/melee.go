package components

import (
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// MeleeAIData is the melee attacker state machine.
type MeleeAIData struct {
	State          cfg.StateID // Idle or Attacking
	Cooldown       float64     // seconds until the next swing may start
	AttackTimer    float64     // seconds into the current swing
	HasDealtDamage bool        // set once the hit frame fired this swing
}

var MeleeAI = donburi.NewComponentType[MeleeAIData]()

// AttackFrame is the current frame of the swing.
func (m *MeleeAIData) AttackFrame(fps float64) int {
	return int(m.AttackTimer * fps)
}
