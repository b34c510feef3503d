package factory

import (
	"github.com/automoto/dragonfight/components"
	"github.com/yohamta/donburi"
)

// Destroy removes an entry and its collision object from the space.
func Destroy(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(w); ok {
			obj := components.Object.Get(entry)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	w.Remove(entry.Entity())
}
