package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IntentData is the player's requested actions for one tick. The
// presentation layer fills it; the simulation never polls devices.
type IntentData struct {
	MoveX    float64 // -1..1
	MoveY    float64 // -1..1
	Attack   bool
	Strong   bool
	Block    bool
	Dash     bool
	DashDir  math.Vec2
	Ultimate bool
}

var Intent = donburi.NewComponentType[IntentData]()
