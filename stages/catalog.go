// Package stages holds the per-stage spawn tables and boss encounters.
package stages

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
	"gopkg.in/yaml.v3"
)

//go:embed stages.yaml
var defaultCatalog []byte

var ErrUnknownStage = errors.New("stages: unknown stage")

type StageSpec struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Allowed []string `yaml:"allowed"`
	Boss    string   `yaml:"boss"`
}

type BossSpec struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Health    int            `yaml:"health"`
	Speed     float64        `yaml:"speed"`
	Size      float64        `yaml:"size"`
	Damage    int            `yaml:"damage"`
	Score     int            `yaml:"score"`
	Color     string         `yaml:"color"`
	GuardType string         `yaml:"guard_type"`
	Guards    map[string]int `yaml:"guards"`
}

type CatalogSpec struct {
	Default struct {
		Allowed []string `yaml:"allowed"`
	} `yaml:"default"`
	Stages []StageSpec `yaml:"stages"`
	Bosses []BossSpec  `yaml:"bosses"`
}

// Stage is a resolved stage entry.
type Stage struct {
	ID      string
	Name    string
	Allowed []cfg.EnemyType
	Boss    *services.BossDescriptor
}

// Catalog implements services.StageCatalog.
type Catalog struct {
	stages   map[string]*Stage
	order    []string
	fallback []cfg.EnemyType
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault is Default for callers that cannot recover from a broken build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("stages: embedded catalog: %v", err))
	}
	return c
}

// LoadFile parses a catalog override from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stages: load %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("stages: parse %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var spec CatalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("stages: unmarshal: %w", err)
	}

	bosses := make(map[string]*services.BossDescriptor, len(spec.Bosses))
	for _, b := range spec.Bosses {
		d, err := b.descriptor()
		if err != nil {
			return nil, err
		}
		bosses[b.ID] = d
	}

	c := &Catalog{
		stages:   make(map[string]*Stage, len(spec.Stages)),
		fallback: enemyTypes(spec.Default.Allowed),
	}
	if len(c.fallback) == 0 {
		c.fallback = services.DefaultStages{}.AllowedTypes("")
	}
	for _, s := range spec.Stages {
		if s.ID == "" {
			return nil, errors.New("stages: stage without id")
		}
		st := &Stage{ID: s.ID, Name: s.Name, Allowed: enemyTypes(s.Allowed)}
		if s.Boss != "" {
			b, ok := bosses[s.Boss]
			if !ok {
				return nil, fmt.Errorf("stages: stage %s references unknown boss %q", s.ID, s.Boss)
			}
			st.Boss = b
		}
		c.stages[s.ID] = st
		c.order = append(c.order, s.ID)
	}
	return c, nil
}

func (b BossSpec) descriptor() (*services.BossDescriptor, error) {
	if b.Health <= 0 {
		return nil, fmt.Errorf("stages: boss %s needs positive health", b.ID)
	}
	col, err := cfg.ParseHex(b.Color)
	if err != nil {
		return nil, fmt.Errorf("stages: boss %s: %w", b.ID, err)
	}
	guard := cfg.EnemyType(b.GuardType)
	if !cfg.IsEnemyType(b.GuardType) || guard == cfg.Bomb {
		guard = cfg.BatRed
	}
	return &services.BossDescriptor{
		ID:        b.ID,
		Name:      b.Name,
		Health:    b.Health,
		Speed:     b.Speed,
		Size:      b.Size,
		Damage:    b.Damage,
		Score:     b.Score,
		GuardType: guard,
		Guards:    b.Guards,
		Color:     col,
	}, nil
}

// enemyTypes keeps known names and drops the rest.
func enemyTypes(names []string) []cfg.EnemyType {
	out := make([]cfg.EnemyType, 0, len(names))
	for _, n := range names {
		if cfg.IsEnemyType(n) {
			out = append(out, cfg.EnemyType(n))
		}
	}
	return out
}

// Stage returns the stage with the given id.
func (c *Catalog) Stage(id string) (*Stage, error) {
	s, ok := c.stages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStage, id)
	}
	return s, nil
}

// IDs lists stage ids in catalog order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// AllowedTypes returns the spawn table of a stage, or the default table.
func (c *Catalog) AllowedTypes(stage string) []cfg.EnemyType {
	if s, ok := c.stages[stage]; ok && len(s.Allowed) > 0 {
		return s.Allowed
	}
	return c.fallback
}

// Boss returns the stage boss, or nil.
func (c *Catalog) Boss(stage string) *services.BossDescriptor {
	if s, ok := c.stages[stage]; ok {
		return s.Boss
	}
	return nil
}

// BossStages lists the stages that end in a boss fight.
func (c *Catalog) BossStages() []string {
	var ids []string
	for id, s := range c.stages {
		if s.Boss != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
