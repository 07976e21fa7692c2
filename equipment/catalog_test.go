package equipment

import (
	"image/color"
	"testing"

	"github.com/automoto/nightslash/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ services.Equipment = (*Loadout)(nil)

func TestLoadoutMaxLives(t *testing.T) {
	tests := []struct {
		armor string
		want  int
	}{
		{"", 3},
		{"cloth", 4},
		{"leather", 5},
		{"chain", 6},
		{"plate", 8},
		{"legendary", 10},
	}
	for _, tt := range tests {
		t.Run("armor="+tt.armor, func(t *testing.T) {
			l, err := NewLoadout("dagger", tt.armor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.MaxLives())
		})
	}
}

func TestWeaponTrails(t *testing.T) {
	l, err := NewLoadout("greatsword", "")
	require.NoError(t, err)

	trail := l.WeaponTrail()
	assert.Equal(t, services.TrailUltraThick, trail.Shape)
	assert.Equal(t, 15.0, trail.Width)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}, trail.Color)

	assert.Len(t, Weapons, 6)
	assert.Equal(t, services.TrailWave, Weapons["whip"].Trail.Shape)
}

func TestUnknownItems(t *testing.T) {
	_, err := NewLoadout("spoon", "")
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = NewLoadout("dagger", "cardboard")
	assert.ErrorIs(t, err, ErrUnknownItem)
}
