package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Position is the center of an entity in playfield coordinates.
var Position = donburi.NewComponentType[dmath.Vec2]()
