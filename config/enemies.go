package config

import "image/color"

// EnemyType is the closed set of enemy kinds.
type EnemyType string

const (
	BatBlue    EnemyType = "bat_blue"
	BatPurple  EnemyType = "bat_purple"
	BatRed     EnemyType = "bat_red"
	BatYellow  EnemyType = "bat_yellow"
	Vampire    EnemyType = "vampire"
	Bomb       EnemyType = "bomb"
	Skeleton   EnemyType = "skeleton"
	Ghost      EnemyType = "ghost"
	Werewolf   EnemyType = "werewolf"
	MedusaHead EnemyType = "medusa_head"
	Crow       EnemyType = "crow"

	BatKing        EnemyType = "bat_king"
	ZombieKing     EnemyType = "zombie_king"
	AlchemistGhost EnemyType = "alchemist_ghost"
)

// DefaultEnemyType is used for unknown chart note types and empty stage tables.
const DefaultEnemyType = BatBlue

// Pattern selects a movement rule.
type Pattern int

const (
	PatternLinear Pattern = iota
	PatternWave
	PatternSine
	PatternDash
	PatternDive
)

func (p Pattern) String() string {
	switch p {
	case PatternWave:
		return "wave"
	case PatternSine:
		return "sine"
	case PatternDash:
		return "dash"
	case PatternDive:
		return "dive"
	default:
		return "linear"
	}
}

// AnimationKind tells the spawner which animation shape an enemy type carries.
type AnimationKind int

const (
	AnimNone AnimationKind = iota
	AnimSingle
	AnimMulti
)

// EnemyTypeConfig contains the static description of an enemy type
type EnemyTypeConfig struct {
	Name       string
	Speed      float64 // pixels per reference frame
	Size       float64 // hit radius
	Pattern    Pattern
	Score      int
	Exp        int
	Color      color.RGBA
	Melee      bool
	Animation  AnimationKind
	SpriteKey  string
	FrameCount int
	FPS        float64
}

var Enemies map[EnemyType]EnemyTypeConfig

// EnemyFor returns the type table entry, falling back to the default type.
func EnemyFor(t EnemyType) EnemyTypeConfig {
	if c, ok := Enemies[t]; ok {
		return c
	}
	return Enemies[DefaultEnemyType]
}

// IsEnemyType reports whether s names a known enemy type.
func IsEnemyType(s string) bool {
	_, ok := Enemies[EnemyType(s)]
	return ok
}

func init() {
	Enemies = map[EnemyType]EnemyTypeConfig{
		BatBlue: {
			Name: "Blue Bat", Speed: 2, Size: 40, Pattern: PatternLinear, Score: 10, Exp: 5,
			Color: color.RGBA{R: 70, G: 130, B: 255, A: 255},
		},
		BatPurple: {
			Name: "Purple Bat", Speed: 2.5, Size: 45, Pattern: PatternWave, Score: 15, Exp: 8,
			Color: color.RGBA{R: 150, G: 70, B: 220, A: 255},
		},
		BatRed: {
			Name: "Red Bat", Speed: 3, Size: 50, Pattern: PatternLinear, Score: 20, Exp: 12,
			Color: color.RGBA{R: 220, G: 40, B: 40, A: 255},
		},
		BatYellow: {
			Name: "Yellow Bat", Speed: 2, Size: 42, Pattern: PatternSine, Score: 18, Exp: 10,
			Color: color.RGBA{R: 240, G: 210, B: 40, A: 255},
		},
		Vampire: {
			Name: "Vampire", Speed: 1.5, Size: 60, Pattern: PatternDash, Score: 50, Exp: 25,
			Color: color.RGBA{R: 120, G: 0, B: 30, A: 255},
		},
		Bomb: {
			Name: "Bomb", Speed: 1.8, Size: 35, Pattern: PatternLinear, Score: -50, Exp: 0,
			Color: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		},
		Skeleton: {
			Name: "Skeleton", Speed: 1.5, Size: 55, Pattern: PatternLinear, Score: 25, Exp: 15,
			Color: color.RGBA{R: 230, G: 230, B: 210, A: 255},
			Melee: true, Animation: AnimMulti, SpriteKey: "skeleton", FrameCount: 8, FPS: 12,
		},
		Ghost: {
			Name: "Ghost", Speed: 2.2, Size: 48, Pattern: PatternWave, Score: 22, Exp: 12,
			Color:     color.RGBA{R: 200, G: 220, B: 255, A: 200},
			Animation: AnimSingle, SpriteKey: "ghost", FrameCount: 6, FPS: 10,
		},
		Werewolf: {
			Name: "Werewolf", Speed: 4, Size: 65, Pattern: PatternLinear, Score: 60, Exp: 30,
			Color: color.RGBA{R: 110, G: 80, B: 50, A: 255},
			Melee: true,
		},
		MedusaHead: {
			Name: "Medusa Head", Speed: 2.5, Size: 45, Pattern: PatternSine, Score: 35, Exp: 18,
			Color: color.RGBA{R: 60, G: 180, B: 90, A: 255},
		},
		Crow: {
			Name: "Crow", Speed: 3.5, Size: 40, Pattern: PatternDive, Score: 40, Exp: 20,
			Color: color.RGBA{R: 30, G: 30, B: 60, A: 255},
		},
	}
}
