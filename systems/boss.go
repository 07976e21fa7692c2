package systems

import (
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/yohamta/donburi"
)

// bossTriggerTime is the music position at which the boss enters, or false when
// there is no duration to measure against.
func bossTriggerTime(sched *components.SchedulerData, audio services.AudioClock) (float64, bool) {
	duration := sched.Chart.Duration()
	if duration <= 0 {
		duration = audio.Duration()
	}
	if duration <= 0 {
		return 0, false
	}
	return duration * cfg.Boss.TriggerFraction, true
}

// UpdateBossDirector spawns the stage boss and its guards once the song passes
// the trigger point.
func UpdateBossDirector(w donburi.World) {
	e, ok := matchEntry(w)
	if !ok {
		return
	}
	match := components.Match.Get(e)
	dir := components.BossDirector.Get(e)
	if match.State.Terminal() || dir.Descriptor == nil || dir.Spawned {
		return
	}

	sched := components.Scheduler.Get(e)
	audio := servicesOf(w).Audio
	at, ok := bossTriggerTime(sched, audio)
	if !ok || audio.CurrentTime() < at {
		return
	}

	dir.Spawned = true
	x := float64(cfg.C.Width) * cfg.Boss.SpawnX
	y := float64(cfg.C.Height) * cfg.Boss.SpawnY
	boss := factory.CreateBoss(w, dir.Descriptor, x, y, sched.Difficulty.SpeedMultiplier)
	dir.Boss = boss.Entity()
	factory.CreateGuards(w, boss, dir.Descriptor.GuardType, dir.Descriptor.GuardsFor(match.Difficulty), cfg.Movement.GuardRadius)
}

// BossHealth exposes the live boss's health for the HUD.
func BossHealth(w donburi.World) (health, maxHealth int, ok bool) {
	e, found := matchEntry(w)
	if !found {
		return 0, 0, false
	}
	dir := components.BossDirector.Get(e)
	if !dir.Spawned {
		return 0, 0, false
	}
	boss, alive := liveBoss(w, dir.Boss)
	if !alive {
		return 0, 0, false
	}
	b := components.Boss.Get(boss)
	return b.Health, b.MaxHealth, true
}

// BossName returns the name of the stage boss, if any.
func BossName(w donburi.World) string {
	e, ok := matchEntry(w)
	if !ok {
		return ""
	}
	if d := components.BossDirector.Get(e).Descriptor; d != nil {
		return d.Name
	}
	return ""
}
