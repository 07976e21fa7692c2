package systems

import (
	"math"
	"sort"

	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/systems/factory"
	"github.com/automoto/nightslash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Score is the points for a kill: the base value scaled by 10% per combo step.
func Score(base, combo int) int {
	v := float64(base) * (1 + float64(combo)*cfg.Combat.ComboMultiplier)
	return int(math.Floor(v + 1e-9))
}

// HandleSwipe resolves a pointer sample against every live enemy and pickup.
func HandleSwipe(w donburi.World, x, y float64) {
	if Terminal(w) {
		return
	}
	p, ok := playerEntry(w)
	if !ok {
		return
	}

	AimAt(w, x, y)
	recordTrail(w, x, y)
	player := components.Player.Get(p)
	if player.State == cfg.Idle {
		player.SetState(cfg.Attacking, 0.25)
	}

	origin, _ := AttackOrigin(w)
	for _, e := range candidates(w, origin, tags.ResolvHeart) {
		collectHeart(w, e, origin)
	}
	for _, e := range candidates(w, origin, tags.ResolvEnemy) {
		// Entries removed earlier in this pass (boss cascade, game over) are skipped.
		if !e.Valid() || Terminal(w) {
			continue
		}
		enemy := components.Enemy.Get(e)
		pos := *components.Position.Get(e)
		if dist(pos, origin) >= enemy.Size {
			continue
		}
		switch {
		case enemy.IsBomb():
			hitBomb(w, e, pos)
		case e.HasComponent(components.Boss):
			hitBoss(w, e, pos)
		default:
			hitEnemy(w, e, pos)
		}
	}
}

// candidates returns the entries whose broad-phase box shares a cell with
// origin, in a stable order.
func candidates(w donburi.World, origin dmath.Vec2, tag string) []*donburi.Entry {
	space := factory.SpaceOf(w)
	if space == nil {
		return nil
	}
	probe := resolv.NewObject(origin.X+components.SpaceOffset, origin.Y+components.SpaceOffset, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	seen := make(map[donburi.Entity]bool, len(check.Objects))
	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Entity() < out[j].Entity()
	})
	return out
}

func dist(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func hitBomb(w donburi.World, e *donburi.Entry, pos dmath.Vec2) {
	color := components.Enemy.Get(e).Color
	factory.Destroy(w, e)
	RequestLifeLoss(w, DamageBomb)

	// The bomb resets the combo even when the damage gate swallows the life loss.
	m, _ := matchEntry(w)
	match := components.Match.Get(m)
	if match.Combo != 0 {
		match.Combo = 0
		servicesOf(w).Hooks.Combo(0)
	}
	HitEvent.Publish(w, Hit{Kind: HitBomb, Pos: pos, Color: color})
}

func hitBoss(w donburi.World, e *donburi.Entry, pos dmath.Vec2) {
	boss := components.Boss.Get(e)
	enemy := components.Enemy.Get(e)
	boss.Health--
	components.Flash.SetValue(e, components.FlashData{Remaining: cfg.Boss.HitFlash})

	combo := bumpCombo(w, pos)
	startLunge(w, pos)

	if boss.Health > 0 {
		HitEvent.Publish(w, Hit{Kind: HitBoss, Pos: pos, Color: enemy.Color})
		return
	}

	points := Score(enemy.Score, combo-1)
	t := enemy.Type
	color := enemy.Color
	guards := append([]donburi.Entity(nil), boss.Guards...)

	for _, g := range guards {
		if w.Valid(g) {
			factory.Destroy(w, w.Entry(g))
		}
	}
	factory.Destroy(w, e)
	if m, ok := matchEntry(w); ok {
		components.BossDirector.Get(m).Defeated = true
	}

	awardKill(w, t, points, combo, pos)
	HitEvent.Publish(w, Hit{Kind: HitBossKill, Pos: pos, Color: color, Points: points})
}

func hitEnemy(w donburi.World, e *donburi.Entry, pos dmath.Vec2) {
	enemy := components.Enemy.Get(e)
	t, base, color := enemy.Type, enemy.Score, enemy.Color

	combo := bumpCombo(w, pos)
	points := Score(base, combo-1)
	factory.Destroy(w, e)
	startLunge(w, pos)

	awardKill(w, t, points, combo, pos)
	HitEvent.Publish(w, Hit{Kind: HitKill, Pos: pos, Color: color, Points: points})
}

// bumpCombo counts a non-bomb hit and handles combo milestones. It returns the
// new combo.
func bumpCombo(w donburi.World, pos dmath.Vec2) int {
	m, _ := matchEntry(w)
	match := components.Match.Get(m)
	combo := match.AddCombo()
	svc := servicesOf(w)
	svc.Hooks.Combo(combo)

	every := cfg.Combat.MilestoneEvery
	if every > 0 && combo >= every && combo%every == 0 {
		ComboMilestoneEvent.Publish(w, ComboMilestone{Pos: pos, Combo: combo})
		if svc.Rand.Float64() < cfg.Combat.HeartChance {
			factory.CreateHeart(w, pos)
		}
	}
	return combo
}

// awardKill books the score and reports the kill to the experience collaborator.
func awardKill(w donburi.World, t cfg.EnemyType, points, combo int, pos dmath.Vec2) {
	m, _ := matchEntry(w)
	match := components.Match.Get(m)
	match.Score += points
	match.Kills++

	svc := servicesOf(w)
	svc.Hooks.Score(match.Score)

	stats, ups := svc.Experience.AddKill(string(t), combo)
	svc.Hooks.Exp(stats)
	for _, up := range ups {
		svc.Hooks.LevelUp(up.Level, up.Message)
		LevelUpEvent.Publish(w, LevelUp{Pos: pos, Level: up.Level, Message: up.Message})
	}
}

func collectHeart(w donburi.World, e *donburi.Entry, origin dmath.Vec2) {
	heart := components.Heart.Get(e)
	pos := *components.Position.Get(e)
	if dist(pos, origin) >= heart.Radius {
		return
	}
	heal := heart.Heal
	factory.Destroy(w, e)
	RestoreLife(w, heal)
	HitEvent.Publish(w, Hit{Kind: HitHeart, Pos: pos})
}

func recordTrail(w donburi.World, x, y float64) {
	e, ok := components.Trail.First(w)
	if !ok {
		return
	}
	trail := components.Trail.Get(e)
	trail.Points = append(trail.Points, components.TrailPoint{X: x, Y: y, At: clockOf(w).Elapsed})
}
