package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Overlaps reports whether the two boxes intersect. Touching edges do not count.
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return o.X < other.X+other.W &&
		o.X+o.W > other.X &&
		o.Y < other.Y+other.H &&
		o.Y+o.H > other.Y
}

// Origin returns the top-left corner of the bounding box.
func (o *ObjectData) Origin() math.Vec2 {
	return math.Vec2{X: o.X, Y: o.Y}
}

// Center returns the midpoint of the bounding box.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
