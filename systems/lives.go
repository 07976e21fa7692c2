package systems

import (
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/yohamta/donburi"
)

// DamageSource identifies what is asking for a life.
type DamageSource int

const (
	DamageBomb DamageSource = iota
	DamageMelee
	DamageEscape
)

func (d DamageSource) String() string {
	switch d {
	case DamageBomb:
		return "bomb"
	case DamageMelee:
		return "melee"
	default:
		return "escape"
	}
}

// RequestLifeLoss applies the damage gates and, if the request is accepted,
// takes a life. It reports whether a life was lost.
func RequestLifeLoss(w donburi.World, source DamageSource) bool {
	e, ok := matchEntry(w)
	if !ok {
		return false
	}
	match := components.Match.Get(e)
	if match.State.Terminal() {
		return false
	}
	lives := components.Lives.Get(e)
	now := clockOf(w).Elapsed

	since, lost := lives.SinceLastLoss(now)
	if source == DamageEscape {
		if now < cfg.Combat.GracePeriod {
			return false
		}
		if lost && since < cfg.Combat.EscapeCooldown {
			return false
		}
	}
	if lost && since < cfg.Combat.DamageCooldown {
		return false
	}

	lives.Lives--
	lives.LastLossAt = now
	lives.HasLost = true
	match.Combo = 0

	svc := servicesOf(w)
	svc.Hooks.Lives(lives.Lives)
	svc.Hooks.Combo(0)

	if p, ok := playerEntry(w); ok {
		player := components.Player.Get(p)
		player.InvincibleUntil = now + cfg.Combat.InvincibleTime
		player.Lunge = nil
		player.SetState(cfg.Hurt, cfg.Combat.HurtTime)
	}
	factory.TriggerScreenShake(w, cfg.Feedback.DamageShake, cfg.Feedback.DamageShakeTime)
	LifeLostEvent.Publish(w, LifeLost{Lives: lives.Lives})

	if lives.Lives <= 0 {
		lives.Lives = 0
		endMatch(w, cfg.MatchStateGameOver)
	}
	return true
}

// RestoreLife adds heal lives up to the maximum.
func RestoreLife(w donburi.World, heal int) {
	e, ok := matchEntry(w)
	if !ok || components.Match.Get(e).State.Terminal() {
		return
	}
	lives := components.Lives.Get(e)
	if lives.Lives >= lives.MaxLives {
		return
	}
	lives.Lives += heal
	if lives.Lives > lives.MaxLives {
		lives.Lives = lives.MaxLives
	}
	servicesOf(w).Hooks.Lives(lives.Lives)
}
