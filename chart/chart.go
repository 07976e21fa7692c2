// Package chart loads note charts and decides which notes are due for spawning.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	cfg "github.com/automoto/nightslash/config"
)

var (
	ErrMissingMetadata = errors.New("chart: missing metadata")
	ErrMissingNotes    = errors.New("chart: missing notes")
	ErrInvalidBPM      = errors.New("chart: bpm must be positive")
	ErrNegativeTime    = errors.New("chart: note time must not be negative")
)

const (
	DefaultBPM       = 120
	DefaultIntensity = 0.5
)

// Metadata describes the song a chart belongs to.
type Metadata struct {
	Title      string  `json:"title"`
	BPM        float64 `json:"bpm"`
	Duration   float64 `json:"duration"`
	Difficulty string  `json:"difficulty"`
}

// Note is one timed cue. Type is a hint only; the scheduler picks the visual type
// from the stage table.
type Note struct {
	Time      float64       `json:"time"`
	Type      cfg.EnemyType `json:"-"`
	RawType   string        `json:"type"`
	X         *float64      `json:"x,omitempty"`
	Y         *float64      `json:"y,omitempty"`
	Intensity float64       `json:"intensity,omitempty"`
}

// Chart is a parsed chart with notes sorted by time.
type Chart struct {
	Metadata Metadata `json:"metadata"`
	Notes    []Note   `json:"notes"`
}

var noteTypes = map[string]cfg.EnemyType{
	"light":   cfg.BatBlue,
	"normal":  cfg.BatPurple,
	"heavy":   cfg.Vampire,
	"special": cfg.BatYellow,
	"danger":  cfg.Bomb,
}

// MapNoteType coerces a chart note type to an enemy type. Unknown values map to
// the default type.
func MapNoteType(s string) cfg.EnemyType {
	if t, ok := noteTypes[s]; ok {
		return t
	}
	if cfg.IsEnemyType(s) {
		return cfg.EnemyType(s)
	}
	return cfg.DefaultEnemyType
}

// Parse decodes a JSON chart, applies defaults and sorts its notes.
func Parse(r io.Reader) (*Chart, error) {
	var raw struct {
		Metadata *Metadata `json:"metadata"`
		Notes    *[]Note   `json:"notes"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("chart: failed to decode: %w", err)
	}
	if raw.Metadata == nil {
		return nil, ErrMissingMetadata
	}
	if raw.Notes == nil {
		return nil, ErrMissingNotes
	}

	c := &Chart{Metadata: *raw.Metadata, Notes: *raw.Notes}
	if c.Metadata.BPM == 0 {
		c.Metadata.BPM = DefaultBPM
	}
	if c.Metadata.Difficulty == "" {
		c.Metadata.Difficulty = cfg.Default
	}
	for i := range c.Notes {
		n := &c.Notes[i]
		n.Type = MapNoteType(n.RawType)
		if n.Intensity == 0 {
			n.Intensity = DefaultIntensity
		}
	}
	c.Sort()
	return c, nil
}

// LoadFile reads and parses a chart file.
func LoadFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart %s: %w", path, err)
	}
	return c, nil
}

// Sort orders notes ascending by time. Notes sharing a time keep their order.
func (c *Chart) Sort() {
	sort.SliceStable(c.Notes, func(i, j int) bool {
		return c.Notes[i].Time < c.Notes[j].Time
	})
}

// Validate reports the first structural problem in the chart.
func (c *Chart) Validate() error {
	if c.Metadata.BPM <= 0 {
		return ErrInvalidBPM
	}
	for i, n := range c.Notes {
		if n.Time < 0 {
			return fmt.Errorf("note %d at %.3fs: %w", i, n.Time, ErrNegativeTime)
		}
	}
	return nil
}

// Duration is the metadata duration, or the last note time when it is unset.
func (c *Chart) Duration() float64 {
	if c == nil {
		return 0
	}
	if c.Metadata.Duration > 0 {
		return c.Metadata.Duration
	}
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}

// IndexAfter returns the index of the first note strictly later than t.
func (c *Chart) IndexAfter(t float64) int {
	return sort.Search(len(c.Notes), func(i int) bool {
		return c.Notes[i].Time > t
	})
}
