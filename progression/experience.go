// Package progression tracks experience, levels and personal bests across matches.
package progression

import (
	"math"

	cfg "github.com/automoto/nightslash/config"
)

const (
	BaseExp       = 100
	ExpMultiplier = 1.5
	defaultKill   = 5
)

// Reward is unlocked when reaching a level.
type Reward struct {
	Level   int
	Ability string
	Message string
}

var Rewards = map[int]Reward{
	2:  {Level: 2, Ability: "attack_range_up", Message: "Attack range increased!"},
	3:  {Level: 3, Ability: "move_speed_up", Message: "Movement speed increased!"},
	5:  {Level: 5, Ability: "double_attack", Message: "Double attack unlocked!"},
	7:  {Level: 7, Ability: "max_hp_up", Message: "Max lives +1!"},
	10: {Level: 10, Ability: "area_attack", Message: "Area attack unlocked!"},
	12: {Level: 12, Ability: "combo_bonus_x2", Message: "Combo bonus doubled!"},
	15: {Level: 15, Ability: "pierce_attack", Message: "Piercing attack unlocked!"},
	20: {Level: 20, Ability: "berserk_mode", Message: "Berserk mode unlocked!"},
	25: {Level: 25, Ability: "time_slow", Message: "Time slow unlocked!"},
	30: {Level: 30, Ability: "master_hunter", Message: "Master vampire hunter!"},
}

var bossExp = map[cfg.EnemyType]int{
	cfg.BatKing:        200,
	cfg.ZombieKing:     300,
	cfg.AlchemistGhost: 400,
}

// ExpToNext is the experience needed to go from level to level+1.
func ExpToNext(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseExp * math.Pow(ExpMultiplier, float64(level-1))))
}

// TotalExpFor is the cumulative experience needed to reach level.
func TotalExpFor(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += ExpToNext(l)
	}
	return total
}

// KillExp is the experience for a kill: the type's base value plus 10% per full
// ten combo.
func KillExp(enemy string, combo int) int {
	t := cfg.EnemyType(enemy)
	base, ok := bossExp[t]
	if !ok {
		if c, known := cfg.Enemies[t]; known {
			base = c.Exp
		} else {
			base = defaultKill
		}
	}
	bonus := float64(combo/10) * 0.1
	return int(math.Floor(float64(base)*(1+bonus) + 1e-9))
}
