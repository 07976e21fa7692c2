package factory

import (
	"github.com/automoto/nightslash/archetypes"
	"github.com/automoto/nightslash/components"
	cfg "github.com/automoto/nightslash/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const spaceCell = 32

// CreateSpace builds the broad-phase space covering the playfield plus a margin
// on every side.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	margin := int(2 * components.SpaceOffset)
	spaceData := resolv.NewSpace(cfg.C.Width+margin, cfg.C.Height+margin, spaceCell, spaceCell)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceOf returns the world's resolv space, or nil before CreateSpace.
func SpaceOf(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// attachObject gives a round entity a square broad-phase box.
func attachObject(w donburi.World, e *donburi.Entry, x, y, radius float64, tag string) {
	obj := resolv.NewObject(0, 0, radius*2, radius*2, tag)
	obj.Data = e
	data := components.ObjectData{Object: obj}
	components.Object.SetValue(e, data)
	if space := SpaceOf(w); space != nil {
		space.Add(obj)
	}
	data.CenterOn(x, y)
}

// Destroy removes an entity and its broad-phase box.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if space := SpaceOf(w); space != nil {
				space.Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}

