package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfg "github.com/automoto/nightslash/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "metadata": {"title": "Night", "bpm": 140, "duration": 90, "difficulty": "hard"},
  "notes": [
    {"time": 2.0, "type": "heavy"},
    {"time": 0.5, "type": "light", "y": 200},
    {"time": 1.0, "type": "mystery"},
    {"time": 1.5, "type": "danger", "intensity": 0.9}
  ]
}`

func TestParseSortsAndMapsNotes(t *testing.T) {
	c, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "Night", c.Metadata.Title)
	assert.Equal(t, 140.0, c.Metadata.BPM)
	require.Len(t, c.Notes, 4)

	times := []float64{c.Notes[0].Time, c.Notes[1].Time, c.Notes[2].Time, c.Notes[3].Time}
	assert.Equal(t, []float64{0.5, 1.0, 1.5, 2.0}, times)

	assert.Equal(t, cfg.BatBlue, c.Notes[0].Type)
	assert.Equal(t, cfg.DefaultEnemyType, c.Notes[1].Type, "unknown types coerce to the default")
	assert.Equal(t, cfg.Bomb, c.Notes[2].Type)
	assert.Equal(t, cfg.Vampire, c.Notes[3].Type)

	require.NotNil(t, c.Notes[0].Y)
	assert.Equal(t, 200.0, *c.Notes[0].Y)
	assert.Equal(t, DefaultIntensity, c.Notes[0].Intensity)
	assert.Equal(t, 0.9, c.Notes[2].Intensity)
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader(`{"metadata": {"title": "x"}, "notes": []}`))
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultBPM), c.Metadata.BPM)
	assert.Equal(t, cfg.Default, c.Metadata.Difficulty)
	assert.Empty(t, c.Notes)
}

func TestParseRejectsMalformedCharts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no metadata", `{"notes": []}`, ErrMissingMetadata},
		{"no notes", `{"metadata": {"bpm": 100}}`, ErrMissingNotes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestMapNoteType(t *testing.T) {
	assert.Equal(t, cfg.BatPurple, MapNoteType("normal"))
	assert.Equal(t, cfg.BatYellow, MapNoteType("special"))
	assert.Equal(t, cfg.Skeleton, MapNoteType("skeleton"))
	assert.Equal(t, cfg.BatBlue, MapNoteType(""))
}

func TestValidate(t *testing.T) {
	c := &Chart{Metadata: Metadata{BPM: 120}, Notes: []Note{{Time: 1}}}
	assert.NoError(t, c.Validate())

	c.Metadata.BPM = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidBPM)

	c.Metadata.BPM = 120
	c.Notes = append(c.Notes, Note{Time: -0.5})
	assert.ErrorIs(t, c.Validate(), ErrNegativeTime)
}

func TestDuration(t *testing.T) {
	var nilChart *Chart
	assert.Zero(t, nilChart.Duration())

	c := &Chart{Notes: []Note{{Time: 3}, {Time: 7.5}}}
	assert.Equal(t, 7.5, c.Duration())

	c.Metadata.Duration = 60
	assert.Equal(t, 60.0, c.Duration())
}

func TestIndexAfter(t *testing.T) {
	c := &Chart{Notes: []Note{{Time: 1}, {Time: 2}, {Time: 2}, {Time: 3}}}
	assert.Equal(t, 0, c.IndexAfter(0.5))
	assert.Equal(t, 3, c.IndexAfter(2))
	assert.Equal(t, 4, c.IndexAfter(10))
}

func TestGenerate(t *testing.T) {
	c := Generate(10, 120)
	require.NoError(t, c.Validate())
	require.Len(t, c.Notes, 19)

	assert.Equal(t, 0.5, c.Notes[0].Time)
	assert.Equal(t, cfg.BatBlue, c.Notes[0].Type)
	assert.Equal(t, cfg.BatPurple, c.Notes[1].Type)
	assert.Equal(t, cfg.Vampire, c.Notes[3].Type)
	assert.Equal(t, cfg.Bomb, c.Notes[7].Type)
	assert.Equal(t, 10.0, c.Duration())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Notes, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
