package components

import (
	"github.com/automoto/squadfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the authoritative box of every simulated thing. Shape is its
// mirror in the collision space and is synced from Box before queries.
type ObjectData struct {
	gamemath.Box
	ID    int
	Shape *resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
