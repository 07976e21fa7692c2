package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	FPS   float64
	Loop  bool
}

// CharacterAnimations maps a sprite key to its animation definitions.
// Keys missing here render as filled circles.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:      {First: 0, Last: 5, Step: 1, FPS: 8, Loop: true},
		Attacking: {First: 0, Last: 4, Step: 1, FPS: 20},
		Hurt:      {First: 0, Last: 2, Step: 1, FPS: 10},
		Dashing:   {First: 0, Last: 3, Step: 1, FPS: 24},
	},
	"skeleton": {
		Idle:      {First: 0, Last: 3, Step: 1, FPS: 6, Loop: true},
		Attacking: {First: 0, Last: 7, Step: 1, FPS: 12},
	},
	"ghost": {
		Idle: {First: 0, Last: 5, Step: 1, FPS: 10, Loop: true},
	},
}

// SpriteFrameSize is the square frame size of every sprite sheet.
const SpriteFrameSize = 64
