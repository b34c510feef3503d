package factory

import (
	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addObject creates a collision box linked back to its entry and registers it
// in the space.
func addObject(w donburi.World, entry *donburi.Entry, x, y, width, height float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = entry // Linked for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
