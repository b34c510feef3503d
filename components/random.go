package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData holds the session's seeded generator so every draw in a run is
// reproducible from the seed.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
