package components

import (
	"github.com/automoto/nightslash/assets/animations"
	cfg "github.com/automoto/nightslash/config"
	"github.com/yohamta/donburi"
)

// Animator is the animation shape of an entity, fixed at spawn time. It is one of
// NoAnimation, SingleState or MultiState.
type Animator interface {
	Update(dt float64)
	SetState(s cfg.StateID)
	// Current returns the playing animation, or nil.
	Current() *animations.Animation
	animator()
}

// NoAnimation is drawn as a plain shape.
type NoAnimation struct{}

func (NoAnimation) Update(float64)                 {}
func (NoAnimation) SetState(cfg.StateID)           {}
func (NoAnimation) Current() *animations.Animation { return nil }
func (NoAnimation) animator()                      {}

// SingleState loops one animation regardless of behaviour state.
type SingleState struct {
	Anim *animations.Animation
}

func (s *SingleState) Update(dt float64)              { s.Anim.Update(dt) }
func (s *SingleState) SetState(cfg.StateID)           {}
func (s *SingleState) Current() *animations.Animation { return s.Anim }
func (s *SingleState) animator()                      {}

// MultiState switches between animations keyed by state. States without an
// animation keep the previous one playing.
type MultiState struct {
	States map[cfg.StateID]*animations.Animation
	State  cfg.StateID
}

func (m *MultiState) Update(dt float64) {
	if a := m.Current(); a != nil {
		a.Update(dt)
	}
}

func (m *MultiState) SetState(s cfg.StateID) {
	if m.State == s {
		return
	}
	a, ok := m.States[s]
	if !ok {
		return
	}
	m.State = s
	a.Restart()
}

func (m *MultiState) Current() *animations.Animation { return m.States[m.State] }
func (m *MultiState) animator()                      {}

// AnimationData pairs an animator with the sprite sheet key it draws from.
type AnimationData struct {
	Sprite   string
	Animator Animator
}

var Animation = donburi.NewComponentType[AnimationData]()

// NewAnimator resolves the animation shape for a sprite key.
func NewAnimator(kind cfg.AnimationKind, sprite string) Animator {
	defs := cfg.CharacterAnimations[sprite]
	switch kind {
	case cfg.AnimSingle:
		if d, ok := defs[cfg.Idle]; ok {
			return &SingleState{Anim: animations.FromDef(d)}
		}
	case cfg.AnimMulti:
		if len(defs) == 0 {
			break
		}
		m := &MultiState{States: make(map[cfg.StateID]*animations.Animation, len(defs)), State: cfg.Idle}
		for s, d := range defs {
			m.States[s] = animations.FromDef(d)
		}
		return m
	}
	return NoAnimation{}
}
