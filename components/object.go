package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceOffset shifts playfield coordinates into resolv space so that entities
// spawned just outside the field still land in a cell.
const SpaceOffset = 256.0

// ObjectData is the broad-phase box of a round entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// CenterOn moves the box so it is centered on (x, y) in playfield coordinates.
func (o *ObjectData) CenterOn(x, y float64) {
	o.X = x + SpaceOffset - o.W/2
	o.Y = y + SpaceOffset - o.H/2
	o.Update()
}
