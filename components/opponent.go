package components

import "github.com/yohamta/donburi"

// OpponentData marks a roster member
type OpponentData struct {
	Slot int // spawn slot within the phase roster
}

var Opponent = donburi.NewComponentType[OpponentData]()
