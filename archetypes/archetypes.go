package archetypes

import (
	"github.com/automoto/nightslash/components"
	"github.com/automoto/nightslash/tags"
	"github.com/yohamta/donburi"
)

var (
	Match = newArchetype(
		components.Match,
		components.Lives,
		components.Clock,
		components.Scheduler,
		components.BossDirector,
		components.Services,
		components.ScreenShake,
		components.Trail,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Motion,
		components.Object,
		components.Animation,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Position,
	)
	FloatingText = newArchetype(
		tags.FloatingText,
		components.FloatingText,
	)
	Heart = newArchetype(
		tags.Heart,
		components.Heart,
		components.Position,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
