package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvancesWithElapsedTime(t *testing.T) {
	a := NewAnimation(0, 3, 1, 10, true)

	a.Update(0.05)
	assert.Equal(t, 0, a.Frame())

	a.Update(0.06)
	assert.Equal(t, 1, a.Frame())

	// Uneven ticks land on the same frame as even ones.
	a.Update(0.25)
	assert.Equal(t, 3, a.Frame())
	assert.False(t, a.Looped)

	a.Update(0.1)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationHoldsLastFrameWhenNotLooping(t *testing.T) {
	a := NewAnimation(0, 2, 1, 10, false)
	a.Update(1)
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.Done())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Done())
}

func TestAnimationIgnoresDegenerateInput(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0, true)
	a.Update(1)
	assert.Equal(t, 0, a.Frame())

	b := NewAnimation(0, 2, 1, 10, true)
	b.Update(-1)
	assert.Equal(t, 0, b.Frame())
}
