package systems

import (
	"math"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// UpdateEnemyAI runs the melee attacker state machine.
func UpdateEnemyAI(w donburi.World) {
	if Terminal(w) {
		return
	}
	p, ok := playerEntry(w)
	if !ok {
		return
	}
	playerPos := *components.Position.Get(p)
	dt := clockOf(w).DT

	var swings []*donburi.Entry
	components.MeleeAI.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		dist := math.Hypot(pos.X-playerPos.X, pos.Y-playerPos.Y)
		if updateMelee(components.MeleeAI.Get(e), dist, dt) {
			swings = append(swings, e)
		}
		ai := components.MeleeAI.Get(e)
		components.Animation.Get(e).Animator.SetState(ai.State)
	})

	// Damage is applied after iteration so a game over cannot cut a pass short.
	for range swings {
		RequestLifeLoss(w, DamageMelee)
	}
}

// updateMelee advances one enemy's state machine and reports whether this tick
// reached the hit frame of a swing that has not dealt damage yet.
func updateMelee(ai *components.MeleeAIData, dist, dt float64) bool {
	switch ai.State {
	case cfg.Attacking:
		ai.AttackTimer += dt
		hit := false
		if !ai.HasDealtDamage && ai.AttackFrame(cfg.Melee.AttackFPS) >= cfg.Melee.HitFrame {
			ai.HasDealtDamage = true
			hit = true
		}
		if ai.AttackTimer >= float64(cfg.Melee.AttackFrames)/cfg.Melee.AttackFPS {
			ai.State = cfg.Idle
			ai.AttackTimer = 0
			ai.Cooldown = cfg.Melee.AttackCooldown
			ai.HasDealtDamage = false
		}
		return hit
	default:
		if dist >= cfg.Melee.AttackRange {
			return false
		}
		if ai.Cooldown > 0 {
			ai.Cooldown -= dt
			return false
		}
		ai.State = cfg.Attacking
		ai.AttackTimer = 0
		ai.HasDealtDamage = false
		return false
	}
}
