package systems

import (
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"github.com/yohamta/donburi"
)

// Result summarises the match so far.
func Result(w donburi.World) services.MatchResult {
	e, ok := matchEntry(w)
	if !ok {
		return services.MatchResult{}
	}
	match := components.Match.Get(e)
	return services.MatchResult{
		Stage:      match.Stage,
		Difficulty: match.Difficulty,
		Score:      match.Score,
		MaxCombo:   match.MaxCombo,
		Kills:      match.Kills,
		Lives:      components.Lives.Get(e).Lives,
		Elapsed:    clockOf(w).Elapsed,
		Cleared:    match.State == cfg.MatchStateCleared,
	}
}

// endMatch moves the match into a terminal state and fires its hook once.
func endMatch(w donburi.World, state cfg.MatchStateID) {
	e, ok := matchEntry(w)
	if !ok {
		return
	}
	match := components.Match.Get(e)
	if match.State.Terminal() {
		return
	}
	match.State = state

	svc := servicesOf(w)
	svc.Experience.RecordMatch(Result(w))
	switch state {
	case cfg.MatchStateGameOver:
		if !match.GameOverFired {
			match.GameOverFired = true
			svc.Hooks.GameOver()
		}
	case cfg.MatchStateCleared:
		if !match.ClearFired {
			match.ClearFired = true
			svc.Hooks.StageClear(Result(w))
		}
	}
}

// UpdateMatchEnd clears the stage once the chart is spent, the field is empty
// and the song has finished.
func UpdateMatchEnd(w donburi.World) {
	e, ok := matchEntry(w)
	if !ok || components.Match.Get(e).State.Terminal() {
		return
	}
	sched := components.Scheduler.Get(e)
	if !sched.Exhausted() {
		return
	}
	if countEnemies(w) > 0 {
		return
	}
	audio := servicesOf(w).Audio
	if audio.Duration() <= 0 || audio.CurrentTime() < audio.Duration() {
		return
	}
	endMatch(w, cfg.MatchStateCleared)
}
