package animations

import cfg "github.com/automoto/nightslash/config"

// Animation steps through sheet indices at a fixed rate driven by elapsed seconds.
type Animation struct {
	First  int
	Last   int
	Step   int     // how many indices to move per frame
	FPS    float64 // frames per second
	Loop   bool    // false stays on the last frame
	Looped bool    // set once the last frame has been passed

	elapsed float64
	frame   int
}

func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || dt <= 0 {
		return
	}
	a.elapsed += dt
	period := 1 / a.FPS
	for a.elapsed >= period {
		a.elapsed -= period
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.Loop {
				a.frame = a.First
			} else {
				a.frame = a.Last
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a non-looping animation has reached its end.
func (a *Animation) Done() bool {
	return !a.Loop && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, fps float64, loop bool) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		FPS:   fps,
		Loop:  loop,
		frame: first,
	}
}

// FromDef builds an animation from a config definition.
func FromDef(d cfg.AnimationDef) *Animation {
	step := d.Step
	if step == 0 {
		step = 1
	}
	return NewAnimation(d.First, d.Last, step, d.FPS, d.Loop)
}
